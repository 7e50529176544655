// Package voronoi computes planar Voronoi diagrams with Fortune's
// sweepline algorithm.
//
// The package is built around three collaborating types: [point.Point],
// the input coordinate type; [fortune.Algorithm], the stepwise sweepline
// driver, for callers that want to observe the sweep in progress or bound
// the work done per call; and [dcel.VoronoiDiagram], the half-edge mesh
// produced as output. [ComputeVoronoi] is the one-shot convenience entry
// point most callers want.
//
// # Coordinate system
//
// Sites and vertices use a standard Cartesian coordinate system with the
// Y-axis increasing upward; the sweepline advances from the lowest Y
// towards the highest.
//
// # Face numbering
//
// Face i in the returned diagram always corresponds to input site i.
//
// # Degenerate inputs
//
// An empty site list produces an empty diagram (0 faces, 0 edges, 0
// vertices). A single site produces 1 face with a NIL boundary edge, 0
// edges, 0 vertices. Collinear sites produce a chain of unbounded edges
// and no vertices; the result remains combinatorially consistent.
package voronoi

import (
	"github.com/kallsen/voronoi/dcel"
	"github.com/kallsen/voronoi/fortune"
	"github.com/kallsen/voronoi/point"
)

// ComputeVoronoi builds the Voronoi diagram of sites in one call. It is
// equivalent to constructing a [fortune.Algorithm] over sites and calling
// Finish, then taking its Diagram.
func ComputeVoronoi(sites []point.Point) *dcel.VoronoiDiagram {
	algorithm := fortune.New(sites)
	algorithm.Finish()
	return algorithm.Diagram()
}
