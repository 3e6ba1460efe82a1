// Package rollpeel erodes roll maps: rectangular grids where every tile is
// either free or holds a roll.
//
// What is rollpeel?
//
//	A small, dependency-light toolkit that:
//		• loads a roll map from text (grid)
//		• counts the rolls accessible in one pass (erosion.RunSinglePass)
//		• peels accessible rolls until nothing changes (erosion.RunToFixedPoint)
//		• reports what survives, including its 8-connected clusters
//
// A roll is accessible when fewer than four of its up to eight neighbours
// hold a roll. Every pass decides against the map as it was when the pass
// began, so a removal never influences another decision in the same pass.
//
// Layout:
//
//	grid/                 - Grid type, text parsing and rendering, clusters
//	erosion/              - neighbour counting, single pass, fixed point
//	internal/config/      - defaults, YAML file, ROLLPEEL_* env and flags
//	internal/tools/peel/  - the rollpeel command as a testable function
//	cmd/rollpeel/         - main
//
// Quick ASCII example:
//
//	@.@        ...        ...
//	.@.   →    .@.   →    ...
//	@.@        ...        ...
//
//	pass 1 removes the four corners (one neighbour each); the center kept
//	four neighbours during that pass and only goes in pass 2.
//
//	go install github.com/katalvlaran/rollpeel/cmd/rollpeel@latest
package rollpeel
