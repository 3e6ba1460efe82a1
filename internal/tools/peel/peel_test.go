package peel

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rollpeel/grid"
	"github.com/katalvlaran/rollpeel/internal/config"
)

const sample = "" +
	"..@@.@@@@.\n" +
	"@@@.@.@.@@\n" +
	"@@@@@.@.@@\n" +
	"@.@@@@..@.\n" +
	"@@.@@@@.@@\n" +
	".@@@@@@@.@\n" +
	".@.@.@.@@@\n" +
	"@.@@@.@@@@\n" +
	".@@@@@@@@.\n" +
	"@.@.@@@.@.\n"

func stdinConfig() config.Config {
	cfg := config.Default()
	cfg.Input = "-"
	return cfg
}

func quietLogger() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

func TestRunModes(t *testing.T) {
	cases := []struct {
		mode string
		want string
	}{
		{config.ModeSingle, "accessible: 13\n"},
		{config.ModeFixed, "removed: 43\npasses: 9\n"},
		{config.ModeBoth, "accessible: 13\nremoved: 43\npasses: 9\n"},
	}
	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			cfg := stdinConfig()
			cfg.Mode = tc.mode
			out := &bytes.Buffer{}
			require.NoError(t, Run(cfg, strings.NewReader(sample), out, quietLogger()))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRunPrintAndClusters(t *testing.T) {
	cfg := stdinConfig()
	cfg.Mode = config.ModeSingle
	cfg.Print = true
	cfg.Clusters = true

	out := &bytes.Buffer{}
	require.NoError(t, Run(cfg, strings.NewReader("@.@\n.@.\n@.@\n"), out, quietLogger()))
	assert.Equal(t, "accessible: 4\nclusters: 1\n...\n.@.\n...\n", out.String())
}

func TestRunFromFileWithSymbols(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("###\n###\n###\n"), 0o600))

	cfg := config.Default()
	cfg.Input = path
	cfg.Occupied, cfg.Empty = "#", " "
	cfg.Mode = config.ModeFixed
	cfg.Threshold = 3
	cfg.Print = true

	out := &bytes.Buffer{}
	require.NoError(t, Run(cfg, nil, out, quietLogger()))
	// Corners have exactly 3 neighbours, so nothing is below threshold 3.
	assert.Equal(t, "removed: 0\npasses: 0\n###\n###\n###\n", out.String())
}

func TestRunLogsGridLoaded(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	out := &bytes.Buffer{}
	require.NoError(t, Run(stdinConfig(), strings.NewReader("@@\n@.\n"), out, logger))

	entry := hook.Entries[0]
	assert.Equal(t, "grid loaded", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, 2, entry.Data["width"])
	assert.Equal(t, 3, entry.Data["rolls"])
}

func TestRunLoadErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		cfg   func(*config.Config)
		is    error
	}{
		{"Ragged", "@@@\n@@\n", nil, grid.ErrNonRectangular},
		{"BadSymbol", "@x\n", nil, grid.ErrBadSymbol},
		{"Empty", "", nil, grid.ErrEmptyGrid},
		{"MissingFile", "", func(c *config.Config) { c.Input = "/nonexistent/map.txt" }, os.ErrNotExist},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := stdinConfig()
			if tc.cfg != nil {
				tc.cfg(&cfg)
			}
			err := Run(cfg, strings.NewReader(tc.input), &bytes.Buffer{}, quietLogger())
			require.Error(t, err)

			var le *LoadError
			require.True(t, errors.As(err, &le), "want *LoadError, got %T", err)
			assert.ErrorIs(t, err, tc.is)
			assert.True(t, strings.HasPrefix(err.Error(), "failed to load grid: "), err.Error())
		})
	}
}

func TestRunRejectsBadInvocation(t *testing.T) {
	assert.EqualError(t, Run(stdinConfig(), strings.NewReader("@\n"), nil, nil), "output is required")

	cfg := stdinConfig()
	cfg.Mode = "sideways"
	assert.ErrorContains(t, Run(cfg, strings.NewReader("@\n"), &bytes.Buffer{}, nil), "unknown mode")

	err := Run(stdinConfig(), nil, &bytes.Buffer{}, quietLogger())
	assert.ErrorContains(t, err, "stdin is not available")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestRunWriteError(t *testing.T) {
	err := Run(stdinConfig(), strings.NewReader("@\n"), failWriter{}, quietLogger())
	assert.EqualError(t, err, "pipe closed")
}
