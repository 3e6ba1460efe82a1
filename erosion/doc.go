// Package erosion peels "accessible" rolls off a grid.Grid.
//
// What
//
//   - A roll is accessible when fewer than Threshold (default 4) of its up to
//     eight neighbours hold a roll.
//   - RunSinglePass removes every roll that is accessible at the start of the
//     pass and returns how many went.
//   - RunToFixedPoint repeats passes until one removes nothing and returns the
//     cumulative count; Run does the same and keeps per-pass detail.
//   - Accessible reports what a pass would remove without touching the grid.
//
// Pass semantics
//
//	Every removal decision in a pass is taken against the grid as it was when
//	the pass started. Removals are collected first and applied after the scan,
//	so a roll removed early in a pass never lowers the neighbour count of a
//	roll scanned later in the same pass.
//
// Termination
//
//	Each pass either removes at least one roll or ends the run, so a grid
//	with R rolls converges in at most R+1 passes.
//
// Complexity (W×H grid, P passes)
//
//   - CountOccupiedNeighbors: O(1)
//   - RunSinglePass:          O(W×H) time, O(removed) memory
//   - RunToFixedPoint / Run:  O(P×W×H) time
//
// Usage
//
//	g, err := grid.Load(r)
//	if err != nil {
//		// ErrEmptyGrid, ErrNonRectangular, ErrBadSymbol ...
//	}
//	accessible, _ := erosion.RunSinglePass(g.Clone())
//	removed, _ := erosion.RunToFixedPoint(g,
//		erosion.WithThreshold(4),
//		erosion.WithLogger(log),
//	)
//
// A run borrows the grid exclusively; do not share it with other goroutines
// while a pass is in progress.
package erosion
