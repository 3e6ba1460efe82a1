// Package config resolves rollpeel settings from, in increasing priority:
// built-in defaults, an optional YAML file, ROLLPEEL_* environment variables
// and explicitly set command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Run modes.
const (
	ModeSingle = "single" // one pass: count accessible rolls
	ModeFixed  = "fixed"  // peel until nothing changes
	ModeBoth   = "both"
)

// Config holds every tunable of a rollpeel run.
type Config struct {
	Mode      string `yaml:"mode" env:"ROLLPEEL_MODE"`
	Threshold int    `yaml:"threshold" env:"ROLLPEEL_THRESHOLD"`
	Occupied  string `yaml:"occupied" env:"ROLLPEEL_OCCUPIED"`
	Empty     string `yaml:"empty" env:"ROLLPEEL_EMPTY"`
	LogLevel  string `yaml:"log_level" env:"ROLLPEEL_LOG_LEVEL"`
	Print     bool   `yaml:"print" env:"ROLLPEEL_PRINT"`
	Clusters  bool   `yaml:"clusters" env:"ROLLPEEL_CLUSTERS"`

	// ConfigFile names the YAML file; it never comes from the file itself.
	ConfigFile string `yaml:"-" env:"ROLLPEEL_CONFIG"`
	// Input is the grid path, "-" for stdin.
	Input string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:      ModeBoth,
		Threshold: 4,
		Occupied:  "@",
		Empty:     ".",
		LogLevel:  logrus.InfoLevel.String(),
	}
}

// Load resolves a Config for args (without the program name).
//
// Behavior:
//  1. Register flags on fs and parse args.
//  2. Start from Default, overlay the YAML file named by -config or
//     ROLLPEEL_CONFIG, then the environment.
//  3. Re-apply only the flags that were set explicitly.
//  4. Take the first positional argument as Input and validate.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	flagged := Default()
	fs.StringVar(&flagged.Mode, "mode", flagged.Mode, "run mode: single, fixed or both")
	fs.IntVar(&flagged.Threshold, "threshold", flagged.Threshold, "rolls with fewer occupied neighbours are removed")
	fs.StringVar(&flagged.Occupied, "occupied", flagged.Occupied, "symbol marking a roll")
	fs.StringVar(&flagged.Empty, "empty", flagged.Empty, "symbol marking a free tile")
	fs.StringVar(&flagged.LogLevel, "log-level", flagged.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&flagged.Print, "print", flagged.Print, "print the grid after peeling")
	fs.BoolVar(&flagged.Clusters, "clusters", flagged.Clusters, "report clusters of surviving rolls")
	fs.StringVar(&flagged.ConfigFile, "config", "", "optional YAML config file")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	path := cfg.ConfigFile
	if flagged.ConfigFile != "" {
		path = flagged.ConfigFile
	}
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
		// env outranks the file
		if err := ParseEnv(&cfg); err != nil {
			return Config{}, err
		}
		cfg.ConfigFile = path
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = flagged.Mode
		case "threshold":
			cfg.Threshold = flagged.Threshold
		case "occupied":
			cfg.Occupied = flagged.Occupied
		case "empty":
			cfg.Empty = flagged.Empty
		case "log-level":
			cfg.LogLevel = flagged.LogLevel
		case "print":
			cfg.Print = flagged.Print
		case "clusters":
			cfg.Clusters = flagged.Clusters
		}
	})

	switch fs.NArg() {
	case 0:
		return Config{}, errors.New("missing input file")
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("expected one input file, got %d", fs.NArg())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readFile overlays the YAML document at path onto cfg.
func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks that the settings describe a runnable job.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeSingle, ModeFixed, ModeBoth:
	default:
		return fmt.Errorf("unknown mode %q (want single, fixed or both)", c.Mode)
	}
	if c.Threshold < 0 || c.Threshold > 9 {
		return fmt.Errorf("threshold %d out of range 0..9", c.Threshold)
	}
	if len(c.Occupied) != 1 || len(c.Empty) != 1 {
		return fmt.Errorf("symbols must be single bytes, got %q and %q", c.Occupied, c.Empty)
	}
	if c.Occupied == c.Empty {
		return fmt.Errorf("occupied and empty symbols must differ, both are %q", c.Occupied)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the parsed log level; call after Validate.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
