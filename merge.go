package navmesh

import "github.com/irfansharif/navmesh/geom"

// mergeTriangles greedily fuses adjacent triangles into larger convex
// polygons.
//
// Triangles are visited in emission order. Each unvisited triangle seeds a
// new merged polygon; its neighbors are then tried in adjacency-list order,
// and a neighbor is absorbed only when it still shares an edge with the
// current merged boundary and the fused result stays convex. A neighbor
// rejected once is not retried, even if a later fusion would have made it
// compatible. Convexity rejection is normal control flow, not an error.
//
// The traversal order fixes the outcome, so the result is deterministic per
// input, but the polygon count is a greedy local heuristic rather than a
// minimal decomposition. Downstream consumers may depend on the specific
// shapes produced; do not reorder the traversal.
func mergeTriangles(triangles []Polygon, adjacency [][]int) []Polygon {
	visited := make([]bool, len(triangles))
	result := make([]Polygon, 0, len(triangles))

	for i := range triangles {
		if visited[i] {
			continue
		}
		visited[i] = true

		merged := triangles[i]
		for _, j := range adjacency[i] {
			if visited[j] {
				continue
			}
			fused, ok := fuse(merged, triangles[j])
			if !ok || !geom.IsConvex(fused) {
				continue
			}
			merged = fused
			visited[j] = true
		}
		result = append(result, merged)
	}
	return result
}

// fuse splices two polygons sharing an edge into a single ordered boundary.
//
// The shared edge is located by comparing every directed edge of p1 against
// every directed edge of p2 under point tolerance, in either orientation.
// p1's vertices are emitted up to and including the shared edge's first
// endpoint; p2's remaining vertices (both shared endpoints excluded) are
// spliced in following p2's own order from just past that endpoint; then the
// rest of p1 is emitted. Reports false when no shared edge exists.
func fuse(p1, p2 Polygon) (Polygon, bool) {
	n1, n2 := len(p1), len(p2)
	for i := 0; i < n1; i++ {
		a := p1[i]
		b := p1[(i+1)%n1]
		for j := 0; j < n2; j++ {
			c := p2[j]
			d := p2[(j+1)%n2]

			// Position of a within p2, matching either edge orientation.
			var at int
			switch {
			case geom.Equal(a, c) && geom.Equal(b, d):
				at = j
			case geom.Equal(a, d) && geom.Equal(b, c):
				at = (j + 1) % n2
			default:
				continue
			}

			fused := make(Polygon, 0, n1+n2-2)
			fused = append(fused, p1[:i+1]...)
			for off := 1; off < n2; off++ {
				v := p2[(at+off)%n2]
				if geom.Equal(v, b) {
					continue // the other shared endpoint
				}
				fused = append(fused, v)
			}
			fused = append(fused, p1[i+1:]...)
			return fused, true
		}
	}
	return nil, false
}
