package beachline

import (
	"cmp"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/kallsen/voronoi/point"
	"github.com/kallsen/voronoi/predicate"
)

// refEntry is the value stored per arc in a ReferenceLine: a stable
// fractional rank that reflects the arc's current beach-line position
// (assigned at insertion time by halving the gap to its neighbor) and the
// arc's origin site.
type refEntry struct {
	rank float64
	site int
}

// ReferenceLine is an O(n)-per-locate beach line kept as a test double
// behind the same operations as [Line]: it is backed by
// emirpasic/gods' red-black tree, keyed by a fractional rank maintained on
// insertion rather than by a non-stationary comparator over arc geometry
// (arcs, unlike line segments, do not have a single scalar X position
// independent of their neighbors, which is what a keyed comparator would
// need). Locate instead performs the reference-implementation's allowed
// O(n)-per-op scan over the tree's in-order sequence, applying the same
// orderArcX comparison the production Line uses. This is used only to
// differentially test [Line]; it is not the hot path.
type ReferenceLine struct {
	sites []point.Point
	tree  *rbt.Tree
}

// NewReferenceLine constructs an empty ReferenceLine backed by sites.
func NewReferenceLine(sites []point.Point) *ReferenceLine {
	return &ReferenceLine{
		sites: sites,
		tree:  rbt.NewWith(func(a, b interface{}) int { return cmp.Compare(a.(float64), b.(float64)) }),
	}
}

// InsertArc performs the same split as [Line.InsertArc]: the located arc
// gets a left half just before it, and the new arc is placed between the
// two. ReferenceLine has no arc-ids and no capacity limit, so InsertArc
// always returns 0 and a nil error; arcs are addressed by rank instead.
func (r *ReferenceLine) InsertArc(site int, sweepY float64) (int, error) {
	if r.tree.Empty() {
		rank := 0.0
		r.tree.Put(rank, refEntry{rank: rank, site: site})
		return 0, nil
	}

	x := r.sites[site].X()
	baseRank := r.locateRank(x, sweepY)

	predRank, hasPred := r.predecessorRank(baseRank)
	leftRank := baseRank - 1
	if hasPred {
		leftRank = (predRank + baseRank) / 2
	}
	baseEntry, _ := r.tree.Get(baseRank)
	r.tree.Put(leftRank, refEntry{rank: leftRank, site: baseEntry.(refEntry).site})

	newRank := (leftRank + baseRank) / 2
	r.tree.Put(newRank, refEntry{rank: newRank, site: site})

	return 0, nil
}

// RemoveArc mirrors [Line.RemoveArc]. ReferenceLine identifies arcs by
// rank rather than a stable small integer id, so callers pass a rank
// obtained from Ranks, Leftmost, Rightmost, Left or Right rather than a
// value from InsertArc.
func (r *ReferenceLine) RemoveArc(rank float64) {
	r.tree.Remove(rank)
}

// Ranks returns every live arc's rank in beach-line order.
func (r *ReferenceLine) Ranks() []float64 {
	ranks := make([]float64, 0, r.tree.Size())
	it := r.tree.Iterator()
	for it.Next() {
		ranks = append(ranks, it.Key().(float64))
	}
	return ranks
}

// OriginSite returns the origin site of the arc at rank.
func (r *ReferenceLine) OriginSite(rank float64) int {
	v, _ := r.tree.Get(rank)
	return v.(refEntry).site
}

// Left returns the rank of the arc immediately left of rank, or (0, false)
// if rank is leftmost.
func (r *ReferenceLine) Left(rank float64) (float64, bool) {
	return r.predecessorRank(rank)
}

// Right returns the rank of the arc immediately right of rank, or (0,
// false) if rank is rightmost.
func (r *ReferenceLine) Right(rank float64) (float64, bool) {
	node, found := r.tree.GetNode(rank)
	if !found {
		return 0, false
	}
	it := r.tree.IteratorAt(node)
	if it.Next() {
		return it.Key().(float64), true
	}
	return 0, false
}

// Leftmost returns the smallest-rank arc, or (0, false) if empty.
func (r *ReferenceLine) Leftmost() (float64, bool) {
	node := r.tree.Left()
	if node == nil {
		return 0, false
	}
	return node.Key.(float64), true
}

// Rightmost returns the largest-rank arc, or (0, false) if empty.
func (r *ReferenceLine) Rightmost() (float64, bool) {
	node := r.tree.Right()
	if node == nil {
		return 0, false
	}
	return node.Key.(float64), true
}

func (r *ReferenceLine) predecessorRank(rank float64) (float64, bool) {
	node, found := r.tree.GetNode(rank)
	if !found {
		return 0, false
	}
	it := r.tree.IteratorAt(node)
	if it.Prev() {
		return it.Key().(float64), true
	}
	return 0, false
}

// locateRank performs the reference O(n)-per-op locate: scan every live
// arc in beach-line order and apply the same comparator the production
// Line uses, returning the rank of the arc for which the comparator
// yields zero (or, failing that by floating-point happenstance, the last
// arc visited).
func (r *ReferenceLine) locateRank(x, sweepY float64) float64 {
	it := r.tree.Iterator()
	last := 0.0
	for it.Next() {
		rank := it.Key().(float64)
		last = rank
		if r.orderArcX(rank, x, sweepY) == 0 {
			return rank
		}
	}
	return last
}

func (r *ReferenceLine) orderArcX(rank, x, sweepY float64) int {
	site := r.OriginSite(rank)

	if leftRank, ok := r.predecessorRank(rank); ok {
		leftSite := r.OriginSite(leftRank)
		bx := predicate.BreakpointX(r.sites[leftSite], r.sites[site], sweepY, false)
		if x < bx {
			return -1
		}
	}
	if rightRank, ok := r.Right(rank); ok {
		rightSite := r.OriginSite(rightRank)
		bx := predicate.BreakpointX(r.sites[site], r.sites[rightSite], sweepY, true)
		if x > bx {
			return 1
		}
	}
	return 0
}
