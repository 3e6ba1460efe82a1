package erosion

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rollpeel/grid"
)

// CountOccupiedNeighbors returns how many of the cells around the roll at
// (x,y) hold a roll. The 3×3 window is clipped to the grid, so a corner roll
// has at most 3 neighbours, an edge roll at most 5 and an interior roll 8.
// The roll itself is never counted.
//
// Panics if (x,y) is out of range or holds no roll.
// Complexity: O(1).
func CountOccupiedNeighbors(g *grid.Grid, x, y int) int {
	if !g.IsOccupied(x, y) {
		panic(fmt.Sprintf("erosion: CountOccupiedNeighbors(%d,%d) on an empty cell", x, y))
	}

	n := 0
	for ny := max(y-1, 0); ny <= min(y+1, g.Height()-1); ny++ {
		for nx := max(x-1, 0); nx <= min(x+1, g.Width()-1); nx++ {
			if g.IsOccupied(nx, ny) {
				n++
			}
		}
	}

	return n - 1 // the window includes the roll itself
}

// Accessible returns the row-major indices of every roll with fewer than
// Threshold occupied neighbours, in scan order. The grid is not modified.
// Use g.Coordinate to turn an index back into (x,y).
//
// Errors: ErrGridNil, ErrBadThreshold.
func Accessible(g *grid.Grid, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	marked, _ := scan(g, o.Threshold)

	return marked, nil
}

// RunSinglePass performs one top-to-bottom, left-to-right pass: every roll
// accessible at the start of the pass is removed. Returns the number removed.
//
// Errors: ErrGridNil, ErrBadThreshold.
// Complexity: O(W×H).
func RunSinglePass(g *grid.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	st := pass(g, o, 1)

	return st.Removed, nil
}

// RunToFixedPoint repeats passes until one removes nothing and returns the
// total number of rolls removed.
//
// Errors: ErrGridNil, ErrBadThreshold.
// Complexity: O(P×W×H) for P passes.
func RunToFixedPoint(g *grid.Grid, opts ...Option) (int, error) {
	res, err := Run(g, opts...)
	if err != nil {
		return 0, err
	}

	return res.Removed, nil
}

// Run is RunToFixedPoint with per-pass detail.
//
// Behavior:
//  1. Validate the grid and options.
//  2. Run passes, invoking OnPass and logging after each.
//  3. Stop after the first pass that removes nothing.
//
// Errors: ErrGridNil, ErrBadThreshold.
func Run(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for i := 1; ; i++ {
		st := pass(g, o, i)
		res.Remaining = st.Remaining
		if st.Removed == 0 {
			break
		}
		res.Removed += st.Removed
		res.Passes++
		res.PerPass = append(res.PerPass, st.Removed)
	}
	o.Logger.WithFields(logrus.Fields{
		"removed":   res.Removed,
		"passes":    res.Passes,
		"remaining": res.Remaining,
	}).Debug("erosion converged")

	return res, nil
}

// pass runs pass number i: decide against the current grid, then remove.
func pass(g *grid.Grid, o Options, i int) PassStats {
	marked, occupied := scan(g, o.Threshold)
	for _, idx := range marked {
		x, y := g.Coordinate(idx)
		if !g.Remove(x, y) {
			panic(fmt.Sprintf("erosion: pass %d marked (%d,%d) twice", i, x, y))
		}
	}

	st := PassStats{Pass: i, Removed: len(marked), Remaining: occupied - len(marked)}
	o.Logger.WithFields(logrus.Fields{
		"pass":      st.Pass,
		"removed":   st.Removed,
		"remaining": st.Remaining,
	}).Debug("erosion pass")
	if o.OnPass != nil {
		o.OnPass(st)
	}

	return st
}

// scan collects the indices of accessible rolls without mutating g, and
// returns the number of rolls seen.
func scan(g *grid.Grid, threshold int) (marked []int, occupied int) {
	w := g.Width()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < w; x++ {
			if !g.IsOccupied(x, y) {
				continue
			}
			occupied++
			if CountOccupiedNeighbors(g, x, y) < threshold {
				marked = append(marked, y*w+x)
			}
		}
	}

	return marked, occupied
}
