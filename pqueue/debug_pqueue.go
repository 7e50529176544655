//go:build debug

package pqueue

import (
	"log"
	"os"

	"github.com/google/btree"
)

var logger = log.New(os.Stderr, "[pqueue DEBUG] ", log.LstdFlags)

type dumpItem struct {
	key      int
	priority Priority
}

func dumpLess(a, b dumpItem) bool {
	return a.priority.Less(b.priority)
}

// debugDump logs every live (key, priority) pair in priority order. It
// builds a scratch btree.BTreeG purely for the ordered walk; the queue's
// own heap is left untouched.
func (q *Queue) debugDump() {
	tree := btree.NewG[dumpItem](2, dumpLess)
	for key, slot := range q.heapIndex {
		if slot == nilIndex {
			continue
		}
		tree.ReplaceOrInsert(dumpItem{key: key, priority: q.priority[key]})
	}

	logger.Println("priority queue:")
	tree.Ascend(func(item dumpItem) bool {
		logger.Printf("  - key=%d y=%g x=%g\n", item.key, item.priority.Y, item.priority.X)
		return true
	})
}
