package navmesh

import (
	"errors"
	"fmt"

	"github.com/irfansharif/navmesh/geom"
)

// ErrInvalidBoundingBox is returned when the outer boundary does not have
// exactly 4 vertices.
var ErrInvalidBoundingBox = errors.New("bounding box must have exactly 4 vertices")

// ObstacleError identifies an ill-formed obstacle by its position in the
// input list.
type ObstacleError struct {
	Index  int
	Reason string
}

func (e *ObstacleError) Error() string {
	return fmt.Sprintf("obstacle %d: %s", e.Index, e.Reason)
}

// validate is the pure validation gate run once at the start of the
// pipeline. It has no side effects.
func validate(bounds Polygon, obstacles []Polygon) error {
	if len(bounds) != 4 {
		return ErrInvalidBoundingBox
	}
	for i, obstacle := range obstacles {
		if len(obstacle) < 3 {
			return &ObstacleError{Index: i, Reason: "fewer than 3 vertices"}
		}
		if !geom.IsConvex(obstacle) {
			return &ObstacleError{Index: i, Reason: "not convex"}
		}
	}
	return nil
}
