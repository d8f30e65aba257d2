package navmesh

import (
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/irfansharif/navmesh/geom"
)

// triangulate tiles the rectangle-with-holes region with triangles using the
// earcut algorithm. Bounding box vertices are flattened first, followed by
// each obstacle's vertices in the order given; earcut consumes the flat
// coordinate buffer plus the hole start indices and returns a flat list of
// vertex-index triples, which are dereferenced back into triangles here.
//
// Triangulation failures are propagated verbatim; there is no recovery.
func triangulate(bounds Polygon, obstacles []Polygon) ([]Polygon, error) {
	vertexCoords, holeIndices := flatten(bounds, obstacles)

	triangleIndices, err := earcut.Earcut(vertexCoords, holeIndices, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulation failed: %w", err)
	}
	if len(triangleIndices)%3 != 0 {
		return nil, fmt.Errorf("triangulation returned %d indices, not divisible by 3", len(triangleIndices))
	}
	if len(triangleIndices) == 0 {
		return nil, fmt.Errorf("triangulation produced no triangles")
	}

	// Convert triangle indices back into concrete triangles. Each vertex
	// index maps to an (x,y) pair in vertexCoords.
	triangleCount := len(triangleIndices) / 3
	triangles := make([]Polygon, triangleCount)
	for t := 0; t < triangleCount; t++ {
		base := t * 3
		triangle := make(Polygon, 3)
		for v := 0; v < 3; v++ {
			idx := triangleIndices[base+v]
			triangle[v] = geom.MakePoint(vertexCoords[idx*2], vertexCoords[idx*2+1])
		}
		triangles[t] = triangle
	}
	return triangles, nil
}

// flatten builds the triangulator's input: one flat coordinate buffer
// [x0, y0, x1, y1, ...] holding the bounding box vertices followed by each
// obstacle's vertices, plus the index (in vertices, not buffer positions) at
// which each obstacle begins. The index list is the "hole" descriptor
// consumed by earcut; hole starts are cumulative vertex counts.
func flatten(bounds Polygon, obstacles []Polygon) ([]float64, []int) {
	total := len(bounds)
	for _, obstacle := range obstacles {
		total += len(obstacle)
	}

	vertexCoords := make([]float64, 0, total*2)
	for _, p := range bounds {
		vertexCoords = append(vertexCoords, p.X, p.Y)
	}

	holeIndices := make([]int, 0, len(obstacles))
	vertexCount := len(bounds)
	for _, obstacle := range obstacles {
		holeIndices = append(holeIndices, vertexCount)
		for _, p := range obstacle {
			vertexCoords = append(vertexCoords, p.X, p.Y)
		}
		vertexCount += len(obstacle)
	}
	return vertexCoords, holeIndices
}
