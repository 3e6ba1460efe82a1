package grid

import (
	"bytes"
	"fmt"
	"io"
)

// Load reads every byte from r and parses it with Parse.
// A read failure is returned wrapped; parse failures match the package
// sentinels via errors.Is.
func Load(r io.Reader, opts ...Option) (*Grid, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read source: %w", err)
	}
	return Parse(src, opts...)
}

// Parse builds a Grid from text rows.
//
// Behavior:
//  1. Rows are separated by '\n'; the last row may omit its terminator.
//  2. A single trailing '\r' per row is dropped, so CRLF text parses too.
//  3. Width is the length of the first row; every row must match it.
//  4. Every byte must be the occupied or the empty symbol.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadSymbol or ErrBadSymbols,
// wrapped with the offending row/column where one applies.
// Complexity: O(len(src)) time, O(W×H) memory.
func Parse(src []byte, opts ...Option) (*Grid, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	rows := splitRows(src)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w, h := len(rows[0]), len(rows)
	cells := make([]bool, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		for x, b := range row {
			switch b {
			case o.Symbols.Occupied:
				cells = append(cells, true)
			case o.Symbols.Empty:
				cells = append(cells, false)
			default:
				return nil, fmt.Errorf("row %d col %d: %q: %w", y, x, b, ErrBadSymbol)
			}
		}
	}

	return &Grid{width: w, height: h, cells: cells, symbols: o.Symbols}, nil
}

// splitRows cuts src on '\n', dropping one final terminator and a trailing
// '\r' on each row.
func splitRows(src []byte) [][]byte {
	if len(src) == 0 {
		return nil
	}
	src = bytes.TrimSuffix(src, []byte{'\n'})
	rows := bytes.Split(src, []byte{'\n'})
	for i, row := range rows {
		rows[i] = bytes.TrimSuffix(row, []byte{'\r'})
	}
	return rows
}
