// Package dcel builds the doubly-connected edge list (half-edge mesh) that
// represents a planar Voronoi diagram.
//
// # Overview
//
// A [VoronoiDiagram] owns three dense arrays — faces, half-edges, and
// vertices — addressed by stable integer ids. Half-edges are allocated in
// twinned pairs: the twin of edge e is e^1, so pairs always occupy
// consecutive indices starting at an even offset. Callers (the sweepline
// driver) are responsible for eventually linking every half-edge's
// next/prev chain; a half-edge whose far side reaches to infinity may have
// a NIL next or prev until the driver's finalization pass closes it.
package dcel

import "github.com/kallsen/voronoi/point"

// NIL is the sentinel value for "no half-edge/vertex".
const NIL = -1

type halfEdge struct {
	face               int
	endVertex          int
	nextEdge, prevEdge int
}

// VoronoiDiagram is the half-edge mesh produced by the sweepline driver.
type VoronoiDiagram struct {
	faceBoundaryEdge []int
	edges            []halfEdge
	vertexPos        []point.Point
}

// New constructs a VoronoiDiagram with the given number of faces, all with
// a NIL boundary edge, and no edges or vertices yet.
func New(faceCount int) *VoronoiDiagram {
	faceBoundaryEdge := make([]int, faceCount)
	for i := range faceBoundaryEdge {
		faceBoundaryEdge[i] = NIL
	}
	return &VoronoiDiagram{faceBoundaryEdge: faceBoundaryEdge}
}

// FaceCount returns the number of faces.
func (d *VoronoiDiagram) FaceCount() int {
	return len(d.faceBoundaryEdge)
}

// EdgeCount returns the number of half-edges (twin pairs count as two).
func (d *VoronoiDiagram) EdgeCount() int {
	return len(d.edges)
}

// VertexCount returns the number of vertices.
func (d *VoronoiDiagram) VertexCount() int {
	return len(d.vertexPos)
}

// FaceBoundaryEdge returns a half-edge incident to face, or NIL if the face
// has no edges at all (e.g. a single-site diagram).
func (d *VoronoiDiagram) FaceBoundaryEdge(face int) int {
	return d.faceBoundaryEdge[face]
}

// Twin returns the other half-edge of edge's pair.
func (d *VoronoiDiagram) Twin(edge int) int {
	return edge ^ 1
}

// IncidentFace returns the face that edge bounds.
func (d *VoronoiDiagram) IncidentFace(edge int) int {
	return d.edges[edge].face
}

// StartVertex returns edge's start vertex (the end vertex of its twin), or
// NIL if not yet known.
func (d *VoronoiDiagram) StartVertex(edge int) int {
	return d.edges[d.Twin(edge)].endVertex
}

// EndVertex returns edge's end vertex, or NIL if not yet known.
func (d *VoronoiDiagram) EndVertex(edge int) int {
	return d.edges[edge].endVertex
}

// NextEdge returns the half-edge following edge around its face, or NIL if
// not yet known.
func (d *VoronoiDiagram) NextEdge(edge int) int {
	return d.edges[edge].nextEdge
}

// PreviousEdge returns the half-edge preceding edge around its face, or NIL
// if not yet known.
func (d *VoronoiDiagram) PreviousEdge(edge int) int {
	return d.edges[edge].prevEdge
}

// VertexPosition returns the position of vertex.
func (d *VoronoiDiagram) VertexPosition(vertex int) point.Point {
	return d.vertexPos[vertex]
}

// AddEdge allocates a new twinned half-edge pair bounding face1 and face2
// respectively, and returns (he12, he21). If either face had no boundary
// edge yet, it is set to its half of this new pair.
func (d *VoronoiDiagram) AddEdge(face1, face2 int) (he12, he21 int) {
	he12 = len(d.edges)
	he21 = he12 + 1

	d.edges = append(d.edges,
		halfEdge{face: face1, endVertex: NIL, nextEdge: NIL, prevEdge: NIL},
		halfEdge{face: face2, endVertex: NIL, nextEdge: NIL, prevEdge: NIL},
	)

	if d.faceBoundaryEdge[face1] == NIL {
		d.faceBoundaryEdge[face1] = he12
	}
	if d.faceBoundaryEdge[face2] == NIL {
		d.faceBoundaryEdge[face2] = he21
	}

	return he12, he21
}

// AddVertex allocates a new vertex at pos and terminates e1, e2, e3 there.
// e1, e2, e3 must be given in CCW order around the new vertex: each is the
// incoming half-edge for one of the three faces meeting at the vertex.
// Consecutive links are set so that, around each face, the incoming
// half-edge is followed by the twin of the next (CCW) incoming half-edge.
func (d *VoronoiDiagram) AddVertex(pos point.Point, e1, e2, e3 int) int {
	vertex := len(d.vertexPos)
	d.vertexPos = append(d.vertexPos, pos)

	d.edges[e1].endVertex = vertex
	d.edges[e2].endVertex = vertex
	d.edges[e3].endVertex = vertex

	d.Consecutive(e1, d.Twin(e3))
	d.Consecutive(e2, d.Twin(e1))
	d.Consecutive(e3, d.Twin(e2))

	return vertex
}

// Consecutive links a immediately before b around a face: sets
// next(a) = b and prev(b) = a.
func (d *VoronoiDiagram) Consecutive(a, b int) {
	d.edges[a].nextEdge = b
	d.edges[b].prevEdge = a
}
