package navmesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/navmesh/geom"
)

// poly builds a Polygon from flat x, y coordinate pairs.
func poly(coords ...float64) Polygon {
	p := make(Polygon, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		p = append(p, geom.MakePoint(coords[i], coords[i+1]))
	}
	return p
}

func square10() Polygon {
	return poly(0, 0, 10, 0, 10, 10, 0, 10)
}

func TestDecomposeValidation(t *testing.T) {
	t.Run("bounding box with 3 vertices", func(t *testing.T) {
		_, err := Decompose(poly(0, 0, 10, 0, 5, 10), nil)
		assert.ErrorIs(t, err, ErrInvalidBoundingBox)
	})

	t.Run("bounding box with 5 vertices", func(t *testing.T) {
		_, err := Decompose(poly(0, 0, 10, 0, 10, 10, 5, 12, 0, 10), nil)
		assert.ErrorIs(t, err, ErrInvalidBoundingBox)
	})

	t.Run("obstacle with 2 vertices", func(t *testing.T) {
		_, err := Decompose(square10(), []Polygon{poly(4, 4, 6, 6)})

		var obsErr *ObstacleError
		require.ErrorAs(t, err, &obsErr)
		assert.Equal(t, 0, obsErr.Index)
	})

	t.Run("concave obstacle reports its index", func(t *testing.T) {
		valid := poly(1, 1, 2, 1, 2, 2, 1, 2)
		arrowhead := poly(5, 5, 7, 9, 9, 5, 7, 6)
		_, err := Decompose(square10(), []Polygon{valid, arrowhead})

		var obsErr *ObstacleError
		require.ErrorAs(t, err, &obsErr)
		assert.Equal(t, 1, obsErr.Index)
	})

	t.Run("valid input produces no error", func(t *testing.T) {
		_, err := Decompose(square10(), []Polygon{poly(4, 4, 6, 4, 6, 6, 4, 6)})
		assert.NoError(t, err)
	})
}

func TestDecomposeEmptyRectangle(t *testing.T) {
	bounds := square10()
	result, err := Decompose(bounds, nil)
	require.NoError(t, err)

	// The two triangles of a convex quad always re-merge into the quad.
	require.Len(t, result, 1)
	assert.True(t, geom.IsConvex(result[0]))
	assert.Len(t, result[0], 4)
	assert.InDelta(t, 100.0, geom.Area(result[0]), 1e-9)

	// The polygon is the rectangle itself, up to vertex rotation.
	for _, corner := range bounds {
		found := false
		for _, p := range result[0] {
			if geom.Equal(corner, p) {
				found = true
				break
			}
		}
		assert.True(t, found, "missing corner %v", corner)
	}
}

func TestDecomposeCenteredObstacle(t *testing.T) {
	bounds := square10()
	hole := poly(4, 4, 6, 4, 6, 6, 4, 6)

	result, err := Decompose(bounds, []Polygon{hole})
	require.NoError(t, err)

	// A square frame cannot be covered by fewer than 4 convex pieces.
	assert.GreaterOrEqual(t, len(result), 4)

	total := 0.0
	for i, polygon := range result {
		assert.True(t, geom.IsConvex(polygon), "polygon %d is not convex: %v", i, polygon)
		total += geom.Area(polygon)
	}
	assert.InDelta(t, 100.0-4.0, total, 1e-9)
}

func TestDecomposeMultipleObstacles(t *testing.T) {
	bounds := square10()
	obstacles := []Polygon{
		poly(1, 1, 3, 1, 3, 3, 1, 3),
		poly(6, 6, 9, 6, 9, 9, 6, 9),
		poly(6, 1, 8, 1, 7, 3), // triangular obstacle
	}

	result, err := Decompose(bounds, obstacles)
	require.NoError(t, err)

	holeArea := 0.0
	for _, obstacle := range obstacles {
		holeArea += geom.Area(obstacle)
	}
	total := 0.0
	for i, polygon := range result {
		assert.True(t, geom.IsConvex(polygon), "polygon %d is not convex: %v", i, polygon)
		total += geom.Area(polygon)
	}
	assert.InDelta(t, 100.0-holeArea, total, 1e-9)
}

func TestDecomposeDeterministic(t *testing.T) {
	bounds := square10()
	obstacles := []Polygon{poly(4, 4, 6, 4, 6, 6, 4, 6)}

	first, err := Decompose(bounds, obstacles)
	require.NoError(t, err)
	second, err := Decompose(bounds, obstacles)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestObstacleErrorMessage(t *testing.T) {
	err := &ObstacleError{Index: 3, Reason: "not convex"}
	assert.Equal(t, "obstacle 3: not convex", err.Error())
	assert.False(t, errors.Is(err, ErrInvalidBoundingBox))
}
