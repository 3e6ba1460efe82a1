package grid

// neighborOffsets lists the 8-neighbourhood: N, NE, E, SE, S, SW, W, NW.
var neighborOffsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Clusters finds all 8-connected regions of rolls.
// Returns a slice of clusters; each cluster is a slice of cell indices
// (row-major) in BFS order. Clusters appear in scan order of their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Clusters() [][]int {
	seen := make([]bool, len(g.cells))
	var clusters [][]int

	for i0, occupied := range g.cells {
		if !occupied || seen[i0] {
			continue
		}
		// BFS to collect the cluster
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if g.cells[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		clusters = append(clusters, queue)
	}
	return clusters
}
