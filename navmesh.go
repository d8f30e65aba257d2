// Package navmesh decomposes a rectangular walkable area containing convex
// polygonal obstacles into a set of convex polygons suitable for
// navigation-mesh pathfinding.
//
// The pipeline works in several stages:
//  1. Validate the bounding box and obstacles.
//  2. Flatten them into the triangulator's vertex/hole-index format.
//  3. Triangulate the rectangle-with-holes region using earcut.
//  4. Build the triangle adjacency graph (shared-edge relation).
//  5. Greedily merge adjacent triangles into larger convex polygons.
//
// The result is a set of convex polygons whose union equals the rectangle
// minus the obstacles. The merge is a greedy local heuristic: it is
// deterministic for a given input but does not minimize polygon count.
package navmesh

import "github.com/irfansharif/navmesh/geom"

// Polygon is an ordered vertex sequence describing a simple boundary. Vertex
// order encodes winding (clockwise in this domain); rotating the sequence
// describes the same polygon, reversing it the opposite winding.
type Polygon []geom.Point

// Decompose converts the walkable rectangle described by bounds, minus the
// given convex obstacles, into convex polygons.
//
// bounds must have exactly 4 vertices; every obstacle must be convex with at
// least 3 vertices. The returned polygons follow the internal triangle
// traversal order, which carries no semantic guarantee beyond validity.
// Identical inputs always produce identical output.
func Decompose(bounds Polygon, obstacles []Polygon) ([]Polygon, error) {
	if err := validate(bounds, obstacles); err != nil {
		return nil, err
	}

	triangles, err := triangulate(bounds, obstacles)
	if err != nil {
		return nil, err
	}

	adj := buildAdjacency(triangles)
	return mergeTriangles(triangles, adj), nil
}
