// Package beachline implements the ordered set of parabolic arcs that forms
// the sweepline's beach line.
//
// # Overview
//
// The beach line exposes stable arc-id handles and supports insertion (which
// may split an existing arc in two), removal, and left/right neighbor
// queries, all in O(log n). [Line] is the production implementation: a
// balanced (AVL) binary search tree whose node records live in a flat
// arena indexed directly by arc-id, so arc-id lookup never needs a
// separate translation table — the arena index *is* the arc-id. Nodes keep
// no subtree sizes, so the tree answers no rank (order-statistic) queries.
//
// The tree has no stored ordering key: arcs are ordered purely positionally.
// Locating the arc above a given X at the current sweepline Y descends the
// tree using a comparator that recomputes breakpoints from the current
// sweep position on every call (the beach line's ordering is a function of
// time, not a fixed key), so the same arc can compare differently on
// successive calls as the sweep advances.
package beachline

import (
	"errors"
	"fmt"

	"github.com/kallsen/voronoi/point"
	"github.com/kallsen/voronoi/predicate"
)

// NIL is the sentinel value for "no arc".
const NIL = -1

// ErrCapacityExceeded is returned by [Line.InsertArc] when the free arc-id
// pool is exhausted. The beach line is left unchanged.
var ErrCapacityExceeded = errors.New("beachline: capacity exceeded")

type node struct {
	site   int
	left   int
	right  int
	parent int
	height int
}

// Line is an arena-indexed AVL beach line over arc records.
type Line struct {
	sites []point.Point

	nodes   []node
	root    int
	freeIDs []int
}

// New constructs an empty Line backed by sites, with room for maxArcs
// concurrent arcs. sites is borrowed for the lifetime of the Line and must
// not be mutated while the Line is in use.
func New(sites []point.Point, maxArcs int) *Line {
	nodes := make([]node, maxArcs)
	freeIDs := make([]int, maxArcs)
	for i := range nodes {
		nodes[i] = node{left: NIL, right: NIL, parent: NIL, height: 0}
		freeIDs[i] = maxArcs - 1 - i
	}
	return &Line{
		sites:   sites,
		nodes:   nodes,
		root:    NIL,
		freeIDs: freeIDs,
	}
}

// MaxArcCount returns the compile-time capacity this Line was constructed
// with.
func (l *Line) MaxArcCount() int {
	return len(l.nodes)
}

// OriginSite returns the site index that arcID was created from.
func (l *Line) OriginSite(arcID int) int {
	return l.nodes[arcID].site
}

// Left returns the arc immediately to the left of arcID, or NIL if arcID is
// the leftmost arc.
func (l *Line) Left(arcID int) int {
	if l.nodes[arcID].left != NIL {
		return l.maxNode(l.nodes[arcID].left)
	}
	child := arcID
	p := l.nodes[arcID].parent
	for p != NIL && l.nodes[p].left == child {
		child = p
		p = l.nodes[p].parent
	}
	return p
}

// Right returns the arc immediately to the right of arcID, or NIL if arcID
// is the rightmost arc.
func (l *Line) Right(arcID int) int {
	if l.nodes[arcID].right != NIL {
		return l.minNode(l.nodes[arcID].right)
	}
	child := arcID
	p := l.nodes[arcID].parent
	for p != NIL && l.nodes[p].right == child {
		child = p
		p = l.nodes[p].parent
	}
	return p
}

// Leftmost returns the leftmost arc, or NIL if the beach line is empty.
func (l *Line) Leftmost() int {
	if l.root == NIL {
		return NIL
	}
	return l.minNode(l.root)
}

// Rightmost returns the rightmost arc, or NIL if the beach line is empty.
func (l *Line) Rightmost() int {
	if l.root == NIL {
		return NIL
	}
	return l.maxNode(l.root)
}

// InsertArc inserts a new arc for site at the current sweepY.
//
// If the beach line is empty, the new arc is the only arc. Otherwise, the
// existing arc directly above site's X at sweepY is located and split into
// two arcs sharing its origin site: the original arc becomes the right
// half (keeping its arc-id), a freshly allocated left half is inserted
// before it, and the new arc for site is inserted between them. InsertArc
// returns the new arc's id.
//
// If the free-id pool is exhausted, InsertArc returns ErrCapacityExceeded
// and leaves the beach line exactly as it was.
func (l *Line) InsertArc(site int, sweepY float64) (int, error) {
	if l.root == NIL {
		arcID, err := l.allocate()
		if err != nil {
			return NIL, err
		}
		l.attachRoot(arcID, site)
		return arcID, nil
	}

	x := l.sites[site].X()
	base := l.locate(x, sweepY)

	leftArcID, err := l.allocate()
	if err != nil {
		return NIL, fmt.Errorf("beachline.InsertArc: %w", err)
	}
	l.insertBefore(base, leftArcID, l.nodes[base].site)

	newArcID, err := l.allocate()
	if err != nil {
		// Roll back the left half so this call leaves the beach line
		// untouched.
		l.RemoveArc(leftArcID)
		return NIL, fmt.Errorf("beachline.InsertArc: %w", err)
	}
	l.insertBefore(base, newArcID, site)

	return newArcID, nil
}

// RemoveArc erases arcID from the beach line and returns its id to the free
// pool.
func (l *Line) RemoveArc(arcID int) {
	n := arcID
	left, right := l.nodes[n].left, l.nodes[n].right

	switch {
	case left == NIL && right == NIL:
		parent := l.nodes[n].parent
		l.replaceChild(parent, n, NIL)
		l.rebalanceUpward(parent)

	case left == NIL:
		parent := l.nodes[n].parent
		l.replaceChild(parent, n, right)
		l.rebalanceUpward(parent)

	case right == NIL:
		parent := l.nodes[n].parent
		l.replaceChild(parent, n, left)
		l.rebalanceUpward(parent)

	default:
		succ := l.minNode(right)
		succParent := l.nodes[succ].parent
		succRight := l.nodes[succ].right

		var rebalanceFrom int
		if succParent != n {
			l.replaceChild(succParent, succ, succRight)
			l.nodes[succ].right = right
			l.nodes[right].parent = succ
			rebalanceFrom = succParent
		} else {
			rebalanceFrom = succ
		}

		nParent := l.nodes[n].parent
		l.nodes[succ].left = left
		l.nodes[left].parent = succ
		l.replaceChild(nParent, n, succ)
		l.rebalanceUpward(rebalanceFrom)
	}

	l.nodes[n] = node{left: NIL, right: NIL, parent: NIL, height: 0}
	l.freeIDs = append(l.freeIDs, arcID)
}

func (l *Line) allocate() (int, error) {
	if len(l.freeIDs) == 0 {
		return NIL, ErrCapacityExceeded
	}
	last := len(l.freeIDs) - 1
	id := l.freeIDs[last]
	l.freeIDs = l.freeIDs[:last]
	return id, nil
}

func (l *Line) attachRoot(arcID, site int) {
	l.nodes[arcID] = node{site: site, left: NIL, right: NIL, parent: NIL, height: 1}
	l.root = arcID
}

// insertBefore inserts a new node for newArcID, positioned immediately
// before cursorArcID in beach-line order, and rebalances the tree.
func (l *Line) insertBefore(cursorArcID, newArcID, site int) {
	l.nodes[newArcID] = node{site: site, left: NIL, right: NIL, parent: NIL, height: 1}

	cursor := l.nodes[cursorArcID]
	if cursor.left == NIL {
		l.nodes[newArcID].parent = cursorArcID
		l.nodes[cursorArcID].left = newArcID
		l.rebalanceUpward(cursorArcID)
		return
	}

	pred := l.maxNode(cursor.left)
	l.nodes[newArcID].parent = pred
	l.nodes[pred].right = newArcID
	l.rebalanceUpward(pred)
}

// locate returns the arc whose parabolic projection contains x at sweepY,
// by descending the tree with a comparator that recomputes breakpoints
// against the current sweepY at every step.
func (l *Line) locate(x, sweepY float64) int {
	n := l.root
	last := NIL
	for n != NIL {
		last = n
		switch l.orderArcX(x, n, sweepY) {
		case -1:
			n = l.nodes[n].left
		case 1:
			n = l.nodes[n].right
		default:
			return n
		}
	}
	return last
}

func (l *Line) orderArcX(x float64, arcID int, sweepY float64) int {
	left := l.Left(arcID)
	right := l.Right(arcID)
	site := l.nodes[arcID].site

	if left != NIL {
		leftSite := l.nodes[left].site
		bx := predicate.BreakpointX(l.sites[leftSite], l.sites[site], sweepY, false)
		if x < bx {
			return -1
		}
	}
	if right != NIL {
		rightSite := l.nodes[right].site
		bx := predicate.BreakpointX(l.sites[site], l.sites[rightSite], sweepY, true)
		if x > bx {
			return 1
		}
	}
	return 0
}

func (l *Line) minNode(n int) int {
	for l.nodes[n].left != NIL {
		n = l.nodes[n].left
	}
	return n
}

func (l *Line) maxNode(n int) int {
	for l.nodes[n].right != NIL {
		n = l.nodes[n].right
	}
	return n
}

func (l *Line) height(n int) int {
	if n == NIL {
		return 0
	}
	return l.nodes[n].height
}

func (l *Line) updateHeight(n int) {
	lh, rh := l.height(l.nodes[n].left), l.height(l.nodes[n].right)
	if lh > rh {
		l.nodes[n].height = lh + 1
	} else {
		l.nodes[n].height = rh + 1
	}
}

func (l *Line) balanceFactor(n int) int {
	return l.height(l.nodes[n].left) - l.height(l.nodes[n].right)
}

// replaceChild repoints parent's child pointer that used to hold oldChild
// so that it holds newChild instead (or sets the tree root, when parent is
// NIL), and fixes newChild's parent pointer.
func (l *Line) replaceChild(parent, oldChild, newChild int) {
	if parent == NIL {
		l.root = newChild
	} else if l.nodes[parent].left == oldChild {
		l.nodes[parent].left = newChild
	} else {
		l.nodes[parent].right = newChild
	}
	if newChild != NIL {
		l.nodes[newChild].parent = parent
	}
}

func (l *Line) rotateLeft(x int) int {
	parent := l.nodes[x].parent
	y := l.nodes[x].right
	b := l.nodes[y].left

	l.nodes[x].right = b
	if b != NIL {
		l.nodes[b].parent = x
	}
	l.nodes[y].left = x
	l.nodes[x].parent = y

	l.replaceChild(parent, x, y)
	l.updateHeight(x)
	l.updateHeight(y)
	return y
}

func (l *Line) rotateRight(x int) int {
	parent := l.nodes[x].parent
	y := l.nodes[x].left
	b := l.nodes[y].right

	l.nodes[x].left = b
	if b != NIL {
		l.nodes[b].parent = x
	}
	l.nodes[y].right = x
	l.nodes[x].parent = y

	l.replaceChild(parent, x, y)
	l.updateHeight(x)
	l.updateHeight(y)
	return y
}

// rebalanceUpward walks from n to the root, updating heights and applying
// AVL rotations wherever the balance factor has gone out of range.
func (l *Line) rebalanceUpward(n int) {
	for n != NIL {
		l.updateHeight(n)
		switch balance := l.balanceFactor(n); {
		case balance > 1:
			if l.balanceFactor(l.nodes[n].left) < 0 {
				l.rotateLeft(l.nodes[n].left)
			}
			n = l.rotateRight(n)
		case balance < -1:
			if l.balanceFactor(l.nodes[n].right) > 0 {
				l.rotateRight(l.nodes[n].right)
			}
			n = l.rotateLeft(n)
		}
		n = l.nodes[n].parent
	}
}
