// Package point defines the foundational geometric primitive used throughout
// this module: a two-dimensional point with float64 coordinates.
//
// # Overview
//
// The Point type represents a single (x, y) location. It provides the small
// set of vector operations the sweepline core actually needs: distance,
// cross product (for orientation tests), and an epsilon-tolerant equality
// check threaded through the [github.com/kallsen/voronoi/options] functional
// options, the same pattern used across this module for floating-point
// tolerance.
//
// Unlike a general-purpose computational geometry library, this package does
// not carry rotation, scaling, or image-coordinate conversions: the
// sweepline core has no use for them, and carrying unused surface area
// invites bit rot.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/kallsen/voronoi/numeric"
	"github.com/kallsen/voronoi/options"
)

// Point represents a point in two-dimensional space with float64 coordinates.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Sub returns the vector from q to p, i.e. p - q.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// CrossProduct returns the 2D cross product (determinant) of the vectors p
// and q:
//
//	p × q = p.x*q.y - p.y*q.x
//
// A positive result indicates a counterclockwise turn from p to q, negative
// indicates clockwise, and zero indicates that p and q are collinear with
// the origin.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between p
// and q, avoiding the square root when only relative comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx := q.x - p.x
	dy := q.y - p.y
	return dx*dx + dy*dy
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq determines whether p and q are equal, optionally within an epsilon
// tolerance supplied via [options.WithEpsilon].
//
// By default the comparison is exact; it is only approximate when an
// epsilon option is supplied, matching the rest of this module's
// functional-options convention.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	if geoOpts.Epsilon == 0 {
		return p.x == q.x && p.y == q.y
	}
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// String returns a string representation of p in the format "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}
