// Package predicate implements the geometric predicates that the sweepline
// core builds on: parabola breakpoint intersection, circumcenters, and
// orientation.
//
// # Overview
//
// Every function here is total: none of them panic, and degenerate inputs
// (collinear triples, coincident sites, horizontal site pairs) return
// sentinel infinities or an arbitrary-but-consistent sign rather than an
// error. Callers that need to treat a degeneracy specially inspect the
// result (an infinite coordinate, a zero orientation) themselves.
//
// All comparisons that need to treat floating-point values as "essentially
// equal" take an epsilon via [github.com/kallsen/voronoi/options], the same
// functional-options convention used across this module.
package predicate

import (
	"math"

	"github.com/kallsen/voronoi/numeric"
	"github.com/kallsen/voronoi/options"
	"github.com/kallsen/voronoi/point"
)

// Orientation describes the turn formed by three ordered points.
type Orientation uint8

// Valid values for Orientation.
const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// String returns the name of o.
func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "Orientation(invalid)"
	}
}

// defaultEpsilon is used when the caller supplies no [options.WithEpsilon].
const defaultEpsilon = 1e-9

func resolveEpsilon(opts []options.GeometryOptionsFunc) float64 {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: defaultEpsilon}, opts...)
	return geoOpts.Epsilon
}

// IsCCW reports whether the ordered triple a, b, c forms a strictly
// counterclockwise turn: the sign of the 2D cross product (b−a) × (c−a).
func IsCCW(a, b, c point.Point) bool {
	return b.Sub(a).CrossProduct(c.Sub(a)) > 0
}

// OrientationOf classifies the turn formed by a, b, c.
func OrientationOf(a, b, c point.Point, opts ...options.GeometryOptionsFunc) Orientation {
	epsilon := resolveEpsilon(opts)
	cross := b.Sub(a).CrossProduct(c.Sub(a))
	switch {
	case numeric.FloatGreaterThan(cross, 0, epsilon):
		return CounterClockwise
	case numeric.FloatLessThan(cross, 0, epsilon):
		return Clockwise
	default:
		return Collinear
	}
}

// BreakpointX returns the X-coordinate of the intersection of the parabola
// defined by site a and the parabola defined by site b, both measured
// against the horizontal sweepline at sweepY, selecting the intersection at
// which a's arc gives way to b's arc as X increases (a's parabola lies
// below b's parabola immediately to the left of the returned X).
//
// Precondition: a.X() <= b.X(), and both sites lie strictly below, or
// essentially on, the sweepline.
//
// positiveBig selects the sign of the result in the horizontal-pair
// degenerate case: when the two sites are essentially equidistant from the
// sweepline and do not overlap in X, there is no finite breakpoint, and the
// caller is asking "is this breakpoint effectively to the right (+Inf) or
// left (-Inf) of everything else".
func BreakpointX(a, b point.Point, sweepY float64, positiveBig bool, opts ...options.GeometryOptionsFunc) float64 {
	epsilon := resolveEpsilon(opts)

	ay, by := a.Y(), b.Y()
	ax, bx := a.X(), b.X()

	if numeric.FloatEquals(ay, sweepY, epsilon) {
		return ax
	}
	if numeric.FloatEquals(by, sweepY, epsilon) {
		return bx
	}
	if math.Abs(by-ay) < epsilon {
		if bx > ax-epsilon {
			return (ax + bx) / 2
		}
		if positiveBig {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}

	// Translate so that a is at the origin; solve A*x^2 + B*x + C = 0 for
	// the parabola intersection in translated coordinates, then translate
	// the root back by ax.
	dx := bx - ax
	dy := by - ay
	sa := sweepY - ay

	A := dy
	B := -2 * sa * dx
	C := sa * (dx*dx + dy*dy - dy*sa)

	discriminant := B*B - 4*A*C
	if discriminant < 0 {
		discriminant = 0
	}
	sqrtDisc := math.Sqrt(discriminant)

	var root float64
	if B > 0 {
		root = (2 * C) / (-B + sqrtDisc)
	} else {
		root = (-B - sqrtDisc) / (2 * A)
	}

	return ax + root
}

// Circumcenter returns the center of the circle passing through a, b, and
// c. If the three points are collinear, the divisor used in the linear
// solve is zero and Circumcenter returns a point with infinite coordinates.
func Circumcenter(a, b, c point.Point) point.Point {
	bx, by := b.Sub(a).Coordinates()
	cx, cy := c.Sub(a).Coordinates()

	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		return point.New(math.Inf(1), math.Inf(1))
	}

	bLenSq := bx*bx + by*by
	cLenSq := cx*cx + cy*cy

	ux := (cy*bLenSq - by*cLenSq) / d
	uy := (bx*cLenSq - cx*bLenSq) / d

	ax, ay := a.Coordinates()
	return point.New(ax+ux, ay+uy)
}

// CircumcircleTopY returns the Y-coordinate of the topmost point of the
// circle through a, b, and c: Circumcenter(a,b,c).Y() plus the circle's
// radius. If the computation yields NaN, it returns +Inf so that a caller
// treating this as an event priority will never schedule it ahead of real,
// well-defined events. For collinear a, b, c the result is already +Inf,
// since Circumcenter returns infinite coordinates.
func CircumcircleTopY(a, b, c point.Point) float64 {
	center := Circumcenter(a, b, c)
	radius := center.DistanceToPoint(a)
	top := center.Y() + radius
	if math.IsNaN(top) {
		return math.Inf(1)
	}
	return top
}
