package navmesh

import "github.com/irfansharif/navmesh/geom"

// buildAdjacency computes, for every triangle, which other triangles share
// an edge with it. Two triangles are adjacent when some edge of one matches
// some edge of the other under point tolerance, in either orientation. The
// relation is symmetric by construction: both (i, j) and (j, i) are tested
// with the same predicate.
//
// The dense O(T²) pairwise scan (9 edge comparisons per pair) is fine for
// navmesh-scale triangle counts. A port handling large T should switch to a
// map from canonicalized undirected edge to the ≤2 triangles using it.
func buildAdjacency(triangles []Polygon) [][]int {
	adjacency := make([][]int, len(triangles))
	for i := range triangles {
		for j := range triangles {
			if i == j {
				continue
			}
			if sharesEdge(triangles[i], triangles[j]) {
				adjacency[i] = append(adjacency[i], j)
			}
		}
	}
	return adjacency
}

// sharesEdge reports whether polygons a and b have a common undirected edge.
func sharesEdge(a, b Polygon) bool {
	bEdges := geom.Edges(b)
	for _, ea := range geom.Edges(a) {
		for _, eb := range bEdges {
			if ea.Matches(eb) {
				return true
			}
		}
	}
	return false
}
