package grid

import (
	"fmt"
	"strings"
)

// New constructs an all-empty width×height Grid.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		width:   width,
		height:  height,
		cells:   make([]bool, width*height),
		symbols: o.Symbols,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Symbols returns the symbol pair used by String.
func (g *Grid) Symbols() Symbols { return g.symbols }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOccupied reports whether a roll sits at (x,y).
// Panics if (x,y) is out of range.
// Complexity: O(1).
func (g *Grid) IsOccupied(x, y int) bool {
	return g.cells[g.mustIndex("IsOccupied", x, y)]
}

// Remove clears the cell at (x,y) and reports whether a roll was there.
// Removing from an empty cell is a no-op.
// Panics if (x,y) is out of range.
// Complexity: O(1).
func (g *Grid) Remove(x, y int) bool {
	i := g.mustIndex("Remove", x, y)
	had := g.cells[i]
	g.cells[i] = false
	return had
}

// Place puts a roll at (x,y) and reports whether the cell was empty before.
// Panics if (x,y) is out of range.
func (g *Grid) Place(x, y int) bool {
	i := g.mustIndex("Place", x, y)
	was := g.cells[i]
	g.cells[i] = true
	return !was
}

// Occupied returns the number of rolls currently on the grid.
// Complexity: O(W×H).
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells, symbols: g.symbols}
}

// String renders the grid with its symbols, one '\n'-terminated row per line.
// The result parses back into an equal grid.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] {
				sb.WriteByte(g.symbols.Occupied)
			} else {
				sb.WriteByte(g.symbols.Empty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (x,y) to a row-major index: y*width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// mustIndex is index with a bounds check; a miss is a caller bug.
func (g *Grid) mustIndex(method string, x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: %s(%d,%d) outside %dx%d grid", method, x, y, g.width, g.height))
	}
	return g.index(x, y)
}
