package dcel

import "github.com/kallsen/voronoi/point"

// NearestFace returns the index of the site in sites closest to q. It is a
// brute-force O(n) query, useful for validating a diagram's
// face-correspondence property and for simple downstream lookups; callers
// needing faster point location should build their own spatial index over
// the diagram.
func NearestFace(q point.Point, sites []point.Point) int {
	best := 0
	bestDist := q.DistanceSquaredToPoint(sites[0])
	for i := 1; i < len(sites); i++ {
		if d := q.DistanceSquaredToPoint(sites[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Segment is a pair of endpoints, used by [VoronoiDiagram.BoundedEdgeSegments].
type Segment struct {
	Start, End point.Point
}

// BoundedEdgeSegments returns one [Segment] per half-edge whose start and
// end vertices are both known, suitable as a minimal rendering aid. It does
// not clip unbounded edges to a bounding region and does not merge
// coincident segments; both are the caller's responsibility.
func (d *VoronoiDiagram) BoundedEdgeSegments() []Segment {
	var segments []Segment
	for e := 0; e < len(d.edges); e++ {
		start, end := d.StartVertex(e), d.EndVertex(e)
		if start == NIL || end == NIL {
			continue
		}
		segments = append(segments, Segment{
			Start: d.VertexPosition(start),
			End:   d.VertexPosition(end),
		})
	}
	return segments
}
