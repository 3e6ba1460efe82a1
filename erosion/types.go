package erosion

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to the engine.
	ErrGridNil = errors.New("erosion: grid is nil")

	// ErrBadThreshold indicates a negative removal threshold.
	ErrBadThreshold = errors.New("erosion: threshold must be non-negative")
)

// DefaultThreshold is the neighbour count a roll needs to stay put.
const DefaultThreshold = 4

// PassStats describes one completed pass.
type PassStats struct {
	Pass      int // 1-based pass number
	Removed   int // rolls removed by this pass
	Remaining int // rolls left on the grid after this pass
}

// Result summarises a run to the fixed point.
type Result struct {
	// Removed is the cumulative number of rolls removed.
	Removed int
	// Passes counts the passes that removed at least one roll; the final
	// empty pass that confirms convergence is not included.
	Passes int
	// PerPass[i] is the removal count of pass i+1.
	PerPass []int
	// Remaining is the number of rolls left at convergence.
	Remaining int
}

// Option configures optional behavior of an erosion run.
type Option func(*Options)

// Options holds the engine parameters.
type Options struct {
	// Threshold: rolls with fewer occupied neighbours are removed.
	Threshold int

	// OnPass, if non-nil, is invoked after every pass, including the final
	// pass that removes nothing.
	OnPass func(PassStats)

	// Logger receives Debug entries per pass. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with:
//   - Threshold = DefaultThreshold
//   - no OnPass hook
//   - a logger writing to io.Discard
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		OnPass:    nil,
		Logger:    discardLogger(),
	}
}

// WithThreshold sets the removal threshold.
func WithThreshold(n int) Option {
	return func(o *Options) {
		o.Threshold = n
	}
}

// WithOnPass installs fn as a per-pass hook.
func WithOnPass(fn func(PassStats)) Option {
	return func(o *Options) {
		o.OnPass = fn
	}
}

// WithLogger routes pass logging to l. Passing nil keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Threshold < 0 {
		return Options{}, ErrBadThreshold
	}
	return o, nil
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
