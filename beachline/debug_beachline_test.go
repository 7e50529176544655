//go:build debug

package beachline

import (
	"testing"

	"github.com/kallsen/voronoi/point"
)

func TestLineDebugDump(t *testing.T) {
	sites := []point.Point{point.New(0, 0), point.New(1, 0)}
	l := New(sites, 3)
	_, _ = l.InsertArc(0, 0)
	_, _ = l.InsertArc(1, 0)
	l.debugDump()
}
