// Package peel is the rollpeel command: load a roll map, erode it and
// report the counts.
package peel

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rollpeel/erosion"
	"github.com/katalvlaran/rollpeel/grid"
	"github.com/katalvlaran/rollpeel/internal/config"
)

// LoadError marks a failure to read or parse the input grid, so the caller
// can report it as bad input rather than as a bug.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "failed to load grid: " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

// Run loads cfg.Input (stdin when "-"), runs the configured mode and writes
// the report to out.
//
// Report lines, in order:
//
//	accessible: N   (single, both)
//	removed: N      (fixed, both)
//	passes: P       (fixed, both)
//	clusters: K     (-clusters)
//	<grid>          (-print)
func Run(cfg config.Config, stdin io.Reader, out io.Writer, log logrus.FieldLogger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := load(cfg, stdin)
	if err != nil {
		return &LoadError{Err: err}
	}
	log.WithFields(logrus.Fields{
		"input":  cfg.Input,
		"width":  g.Width(),
		"height": g.Height(),
		"rolls":  g.Occupied(),
	}).Info("grid loaded")

	opts := []erosion.Option{
		erosion.WithThreshold(cfg.Threshold),
		erosion.WithLogger(log),
	}

	if cfg.Mode == config.ModeSingle || cfg.Mode == config.ModeBoth {
		target := g
		if cfg.Mode == config.ModeBoth {
			// the fixed-point run starts from the untouched grid
			target = g.Clone()
		}
		n, err := erosion.RunSinglePass(target, opts...)
		if err != nil {
			return fmt.Errorf("single pass: %w", err)
		}
		if _, err := fmt.Fprintf(out, "accessible: %d\n", n); err != nil {
			return err
		}
	}

	if cfg.Mode == config.ModeFixed || cfg.Mode == config.ModeBoth {
		res, err := erosion.Run(g, opts...)
		if err != nil {
			return fmt.Errorf("fixed point: %w", err)
		}
		if _, err := fmt.Fprintf(out, "removed: %d\npasses: %d\n", res.Removed, res.Passes); err != nil {
			return err
		}
	}

	if cfg.Clusters {
		if _, err := fmt.Fprintf(out, "clusters: %d\n", len(g.Clusters())); err != nil {
			return err
		}
	}
	if cfg.Print {
		if _, err := io.WriteString(out, g.String()); err != nil {
			return err
		}
	}
	return nil
}

func load(cfg config.Config, stdin io.Reader) (*grid.Grid, error) {
	opts := []grid.Option{grid.WithSymbols(cfg.Occupied[0], cfg.Empty[0])}
	if cfg.Input == "-" {
		if stdin == nil {
			return nil, errors.New("stdin is not available")
		}
		return grid.Load(stdin, opts...)
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Input, err)
	}
	defer f.Close()
	return grid.Load(f, opts...)
}
