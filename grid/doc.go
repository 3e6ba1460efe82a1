// Package grid holds a rectangular field of tiles where every tile is either
// empty or occupied by a roll.
//
// What:
//
//   - Grid stores width×height cells in a flat row-major buffer (offset y*Width+x).
//   - Load/Parse build a Grid from text rows made of two symbols ('@' and '.' by default).
//   - IsOccupied/Remove query and clear single cells; the grid is never resized.
//   - Clusters groups the remaining rolls into 8-connected regions.
//   - String renders the grid back to the same text form it was parsed from.
//
// Why:
//
//   - Erosion-style simulations (see package erosion) need a compact, mutable
//     occupancy buffer with cheap bounds-checked neighbour access.
//
// Complexity:
//
//   - Parse:      O(W×H), Memory: O(W×H).
//   - IsOccupied: O(1); Remove: O(1).
//   - Clusters:   O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: source has no rows or a zero-width row.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSymbol: a byte is neither the occupied nor the empty symbol.
//   - ErrBadSymbols: the configured symbols are unusable.
//
// Out-of-range coordinates are programmer errors and panic.
//
// A Grid is not safe for concurrent use.
package grid
