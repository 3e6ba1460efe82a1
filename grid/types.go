package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the source has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadSymbol indicates a byte that is neither the occupied nor the empty symbol.
	ErrBadSymbol = errors.New("grid: unexpected symbol")
	// ErrBadSymbols indicates the configured symbol pair cannot be used.
	ErrBadSymbols = errors.New("grid: occupied and empty symbols must differ and must not be line terminators")
)

// Default text symbols.
const (
	DefaultOccupied byte = '@'
	DefaultEmpty    byte = '.'
)

// Symbols selects the two bytes used in the textual form of a grid.
type Symbols struct {
	Occupied byte // marks a roll
	Empty    byte // marks a free tile
}

// DefaultSymbols returns '@' for rolls and '.' for free tiles.
func DefaultSymbols() Symbols {
	return Symbols{Occupied: DefaultOccupied, Empty: DefaultEmpty}
}

func (s Symbols) validate() error {
	if s.Occupied == s.Empty || isTerminator(s.Occupied) || isTerminator(s.Empty) {
		return ErrBadSymbols
	}
	return nil
}

func isTerminator(b byte) bool {
	return b == '\n' || b == '\r'
}

// Option configures Grid construction.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Symbols used by Parse and String.
	Symbols Symbols
}

// DefaultOptions returns Options with DefaultSymbols.
func DefaultOptions() Options {
	return Options{Symbols: DefaultSymbols()}
}

// WithSymbols sets the occupied and empty bytes.
func WithSymbols(occupied, empty byte) Option {
	return func(o *Options) {
		o.Symbols = Symbols{Occupied: occupied, Empty: empty}
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.Symbols.validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Grid is a rectangular tile field. Width and Height are fixed at construction;
// cells[y*width+x] is true when a roll sits at (x, y).
type Grid struct {
	width, height int
	cells         []bool
	symbols       Symbols
}
