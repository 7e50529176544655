// Package fortune implements the stepwise sweepline driver: Fortune's
// algorithm for planar Voronoi diagrams.
//
// # Overview
//
// [Algorithm] owns a beach line, an indexed priority queue of pending
// events, and a growing [dcel.VoronoiDiagram]. Events come in two flavors,
// multiplexed onto one dense key space: site events (one per input site,
// known up front) and circle events (one potential event per live arc,
// added and cancelled as the beach line changes shape). [Algorithm.Step]
// processes exactly one event; [Algorithm.Finish] drives it to completion.
// Both are safe to interleave with reads of the in-progress diagram.
package fortune

import (
	"github.com/kallsen/voronoi/beachline"
	"github.com/kallsen/voronoi/dcel"
	"github.com/kallsen/voronoi/pqueue"
	"github.com/kallsen/voronoi/point"
	"github.com/kallsen/voronoi/predicate"
)

// maxArcCount returns the classic upper bound on the number of concurrent
// beach-line arcs for n sites.
func maxArcCount(n int) int {
	if 2*n-1 < 1 {
		return 1
	}
	return 2*n - 1
}

// Algorithm is the stepwise Fortune's-algorithm driver.
type Algorithm struct {
	sites []point.Point

	beachLine *beachline.Line
	events    *pqueue.Queue
	diagram   *dcel.VoronoiDiagram

	// breakpointEdge[arcID] is the half-edge (bounding arcID's face) that
	// arcID's right breakpoint, the one shared with the arc to its right, is
	// currently drawing, or dcel.NIL.
	breakpointEdge []int

	sweepY float64
}

// New constructs an Algorithm over sites. sites is borrowed for the
// lifetime of the Algorithm and must not be mutated while it is in use.
// Every site is seeded into the event queue as a site event.
func New(sites []point.Point) *Algorithm {
	n := len(sites)
	maxArcs := maxArcCount(n)

	a := &Algorithm{
		sites:          sites,
		beachLine:      beachline.New(sites, maxArcs),
		events:         pqueue.New(n + maxArcs),
		diagram:        dcel.New(n),
		breakpointEdge: make([]int, maxArcs),
	}
	for i := range a.breakpointEdge {
		a.breakpointEdge[i] = dcel.NIL
	}

	for i, s := range sites {
		a.events.Set(a.siteEventKey(i), pqueue.Priority{Y: s.Y(), X: s.X()})
	}

	return a
}

// siteEventKey and circleEventKey partition the dense key space
// [0, n+maxArcs) into the first n keys (site events) and the remaining
// maxArcs keys (one circle event slot per possible arc-id).
func (a *Algorithm) siteEventKey(site int) int {
	return site
}

func (a *Algorithm) circleEventKey(arcID int) int {
	return len(a.sites) + arcID
}

func (a *Algorithm) decodeEventKey(key int) (isSiteEvent bool, index int) {
	n := len(a.sites)
	if key < n {
		return true, key
	}
	return false, key - n
}

// SweeplineY returns the Y-coordinate the sweepline had reached as of the
// most recently processed event.
func (a *Algorithm) SweeplineY() float64 {
	return a.sweepY
}

// IsFinished reports whether every event has been processed.
func (a *Algorithm) IsFinished() bool {
	return a.events.Empty()
}

// VoronoiVertexCount returns the number of Voronoi vertices produced so
// far.
func (a *Algorithm) VoronoiVertexCount() int {
	return a.diagram.VertexCount()
}

// Diagram returns the in-progress (or, once IsFinished, final)
// VoronoiDiagram. The returned value remains owned by a and is mutated by
// subsequent Step calls.
func (a *Algorithm) Diagram() *dcel.VoronoiDiagram {
	return a.diagram
}

// Step processes a single event: the next site or circle event in priority
// order. It is a no-op if IsFinished. If this call exhausts the queue, it
// also runs the finalization pass that closes the diagram's unbounded
// edges.
func (a *Algorithm) Step() {
	if a.events.Empty() {
		return
	}

	key, priority := a.events.Pop()
	a.sweepY = priority.Y

	isSiteEvent, index := a.decodeEventKey(key)
	if isSiteEvent {
		a.handleSiteEvent(index)
	} else {
		a.handleCircleEvent(index)
	}

	if a.events.Empty() {
		a.finalizeUnboundedEdges()
	}
}

// Finish runs Step until IsFinished.
func (a *Algorithm) Finish() {
	for !a.IsFinished() {
		a.Step()
	}
}

func (a *Algorithm) handleSiteEvent(site int) {
	arcID, err := a.beachLine.InsertArc(site, a.sweepY)
	if err != nil {
		panic(err)
	}

	left := a.beachLine.Left(arcID)
	right := a.beachLine.Right(arcID)

	if right == beachline.NIL {
		return
	}

	// The split arc's pending circle event, if any, no longer reflects
	// reality now that the beach line's shape around it has changed.
	a.events.Clear(a.circleEventKey(right))

	a.tryAddCircleEvent(left)
	a.tryAddCircleEvent(right)

	baseSite := a.beachLine.OriginSite(right)
	heLeft, heRight := a.diagram.AddEdge(baseSite, site)

	a.breakpointEdge[left] = heLeft
	a.breakpointEdge[arcID] = heRight
}

func (a *Algorithm) handleCircleEvent(middle int) {
	left := a.beachLine.Left(middle)
	right := a.beachLine.Right(middle)

	leftSite := a.beachLine.OriginSite(left)
	site := a.beachLine.OriginSite(middle)
	rightSite := a.beachLine.OriginSite(right)

	vertexPos := predicate.Circumcenter(a.sites[leftSite], a.sites[site], a.sites[rightSite])

	leftEdge := a.breakpointEdge[left]
	rightEdge := a.breakpointEdge[middle]

	newOut, newIn := a.diagram.AddEdge(leftSite, rightSite)
	a.diagram.AddVertex(vertexPos, newIn, leftEdge, rightEdge)

	a.breakpointEdge[left] = newOut

	a.events.Clear(a.circleEventKey(left))
	a.events.Clear(a.circleEventKey(right))

	a.beachLine.RemoveArc(middle)

	a.tryAddCircleEvent(left)
	a.tryAddCircleEvent(right)
}

// tryAddCircleEvent schedules, or re-schedules, a potential circle event
// for the triple of arcs centered on arcID. It is a no-op if arcID is the
// leftmost or rightmost arc, or if the three origin sites do not converge
// (form a clockwise or collinear triple).
func (a *Algorithm) tryAddCircleEvent(arcID int) {
	left := a.beachLine.Left(arcID)
	right := a.beachLine.Right(arcID)
	if left == beachline.NIL || right == beachline.NIL {
		return
	}

	leftPoint := a.sites[a.beachLine.OriginSite(left)]
	middlePoint := a.sites[a.beachLine.OriginSite(arcID)]
	rightPoint := a.sites[a.beachLine.OriginSite(right)]

	if !predicate.IsCCW(leftPoint, middlePoint, rightPoint) {
		return
	}

	eventY := predicate.CircumcircleTopY(leftPoint, middlePoint, rightPoint)
	if eventY < a.sweepY {
		eventY = a.sweepY
	}

	a.events.Set(a.circleEventKey(arcID), pqueue.Priority{Y: eventY})
}

// finalizeUnboundedEdges links the next/prev chain around each breakpoint
// still open to infinity once no events remain. If the beach line holds
// zero or one arcs, there are no breakpoints and nothing to do.
func (a *Algorithm) finalizeUnboundedEdges() {
	leftmost := a.beachLine.Leftmost()
	if leftmost == beachline.NIL {
		return
	}
	rightmost := a.beachLine.Rightmost()
	if leftmost == rightmost {
		return
	}

	arc1 := a.beachLine.Left(rightmost)
	for arc2 := leftmost; arc2 != rightmost; arc2 = a.beachLine.Right(arc2) {
		a.diagram.Consecutive(a.breakpointEdge[arc2], a.diagram.Twin(a.breakpointEdge[arc1]))
		arc1 = arc2
	}
}
