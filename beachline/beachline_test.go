package beachline_test

import (
	"testing"

	"github.com/kallsen/voronoi/beachline"
	"github.com/kallsen/voronoi/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_FirstInsertIsOnlyArc(t *testing.T) {
	sites := []point.Point{point.New(0, 0)}
	l := beachline.New(sites, 1)

	arcID, err := l.InsertArc(0, 0)
	require.NoError(t, err)
	assert.Equal(t, arcID, l.Leftmost())
	assert.Equal(t, arcID, l.Rightmost())
	assert.Equal(t, beachline.NIL, l.Left(arcID))
	assert.Equal(t, beachline.NIL, l.Right(arcID))
	assert.Equal(t, 0, l.OriginSite(arcID))
}

func TestLine_SecondInsertSplits(t *testing.T) {
	sites := []point.Point{point.New(0, 0), point.New(5, -1)}
	l := beachline.New(sites, 3)

	first, err := l.InsertArc(0, 0)
	require.NoError(t, err)

	second, err := l.InsertArc(1, 0)
	require.NoError(t, err)

	// Beach line order should be: left-half(site 0), second(site 1),
	// first(site 0, reused id, rightmost).
	leftHalf := l.Leftmost()
	assert.Equal(t, 0, l.OriginSite(leftHalf))
	assert.Equal(t, second, l.Right(leftHalf))
	assert.Equal(t, first, l.Right(second))
	assert.Equal(t, beachline.NIL, l.Right(first))
	assert.Equal(t, first, l.Rightmost())
}

func TestLine_RemoveArc(t *testing.T) {
	sites := []point.Point{point.New(0, 0), point.New(5, -1), point.New(10, -1)}
	l := beachline.New(sites, 5)

	a, err := l.InsertArc(0, 0)
	require.NoError(t, err)
	b, err := l.InsertArc(1, 0)
	require.NoError(t, err)
	_, err = l.InsertArc(2, 0)
	require.NoError(t, err)

	l.RemoveArc(b)

	left := l.Leftmost()
	assert.NotEqual(t, b, left)
	// After removing the middle, walking right from leftmost should never
	// encounter b again.
	for n := l.Leftmost(); n != beachline.NIL; n = l.Right(n) {
		assert.NotEqual(t, b, n)
	}
	_ = a
}

func TestLine_CapacityExceededLeavesUnchanged(t *testing.T) {
	sites := []point.Point{point.New(0, 0), point.New(5, -1)}
	l := beachline.New(sites, 1)

	first, err := l.InsertArc(0, 0)
	require.NoError(t, err)

	_, err = l.InsertArc(1, 0)
	require.ErrorIs(t, err, beachline.ErrCapacityExceeded)

	// Beach line must be exactly as before the failed call.
	assert.Equal(t, first, l.Leftmost())
	assert.Equal(t, first, l.Rightmost())
}

// orderedSites walks l left to right and returns the sequence of origin
// sites, for comparing against a ReferenceLine's induced order.
func orderedSites(l *beachline.Line) []int {
	var out []int
	for n := l.Leftmost(); n != beachline.NIL; n = l.Right(n) {
		out = append(out, l.OriginSite(n))
	}
	return out
}

func orderedReferenceSites(r *beachline.ReferenceLine) []int {
	var out []int
	rank, ok := r.Leftmost()
	for ok {
		out = append(out, r.OriginSite(rank))
		rank, ok = r.Right(rank)
	}
	return out
}

func TestLine_MatchesReferenceLineOrder(t *testing.T) {
	sites := []point.Point{
		point.New(0, 0),
		point.New(5, -1),
		point.New(-3, -2),
		point.New(2, -3),
		point.New(8, -4),
	}

	l := beachline.New(sites, 2*len(sites)-1)
	r := beachline.NewReferenceLine(sites)

	sweepY := 0.0
	for i := range sites {
		sweepY -= 1
		_, err := l.InsertArc(i, sweepY)
		require.NoError(t, err)
		_, err = r.InsertArc(i, sweepY)
		require.NoError(t, err)
	}

	assert.Equal(t, orderedSites(l), orderedReferenceSites(r))
}

func TestLine_InsertManyKeepsEveryArc(t *testing.T) {
	n := 50
	sites := make([]point.Point, n)
	for i := 0; i < n; i++ {
		sites[i] = point.New(float64(i)*3-float64(n), -float64(i))
	}

	l := beachline.New(sites, 2*n-1)
	for i := 0; i < n; i++ {
		_, err := l.InsertArc(i, -float64(i))
		require.NoError(t, err)
	}

	count := 0
	for arc := l.Leftmost(); arc != beachline.NIL; arc = l.Right(arc) {
		count++
	}
	assert.Equal(t, 2*len(sites)-1, count)
}
