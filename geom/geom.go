// Package geom provides the 2D geometric primitives used by the
// decomposition pipeline:
// - Points with tolerance-based equality
// - Polygon edge extraction and undirected edge matching
// - Convexity testing that tolerates collinear vertices
// - Polygon area via the shoelace formula
package geom

import "math"

// Tolerance is the maximum per-coordinate difference under which two points
// are considered the same vertex. Triangulation and fusion reconstruct
// vertices from independently-computed floats that can differ in the least
// significant bits, so every identity check in the pipeline (edge matching,
// convexity, splice lookup) goes through this constant rather than ==.
const Tolerance = 1e-6

// Point represents a 2D point or vector in Cartesian coordinates.
type Point struct {
	X float64
	Y float64
}

func MakePoint(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Cross returns the 2D cross product (z-component) of p and q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Equal reports whether p and q coincide under Tolerance.
func Equal(p, q Point) bool {
	return math.Abs(p.X-q.X) < Tolerance && math.Abs(p.Y-q.Y) < Tolerance
}

// Edge is a directed polygon edge from A to B.
type Edge struct {
	A Point
	B Point
}

// Edges returns the boundary edges of poly in vertex order, including the
// wrapping edge from the last vertex back to the first.
func Edges(poly []Point) []Edge {
	edges := make([]Edge, len(poly))
	for i := range poly {
		edges[i] = Edge{A: poly[i], B: poly[(i+1)%len(poly)]}
	}
	return edges
}

// Matches reports whether e and o describe the same undirected edge, i.e.
// their endpoints coincide under Tolerance in either orientation.
func (e Edge) Matches(o Edge) bool {
	return (Equal(e.A, o.A) && Equal(e.B, o.B)) ||
		(Equal(e.A, o.B) && Equal(e.B, o.A))
}

// IsConvex reports whether the ordered polygon is convex. It tracks the sign
// of the first nonzero cross product of consecutive edge vectors; any later
// nonzero cross product with the opposite sign means a reflex vertex.
// Near-zero cross products (collinear triples, common after fusion) are
// skipped and do not affect the verdict. Polygons with fewer than 3 vertices
// are not convex.
func IsConvex(poly []Point) bool {
	if len(poly) < 3 {
		return false
	}

	n := len(poly)
	sign := 0.0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		c := poly[(i+2)%n]

		cross := b.Sub(a).Cross(c.Sub(b))
		if math.Abs(cross) < Tolerance {
			continue // collinear
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// Area returns the unsigned area enclosed by the polygon boundary.
func Area(poly []Point) float64 {
	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(sum) / 2
}
