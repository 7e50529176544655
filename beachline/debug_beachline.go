//go:build debug

package beachline

import (
	"log"
	"os"

	"github.com/google/btree"
)

var logger = log.New(os.Stderr, "[beachline DEBUG] ", log.LstdFlags)

type dumpItem struct {
	order int
	arcID int
	site  int
}

func dumpLess(a, b dumpItem) bool {
	return a.order < b.order
}

// debugDump logs every live arc, left to right, by walking Line's own
// Leftmost/Right chain into a scratch btree.BTreeG purely to exercise an
// ordered walk consistent with this module's other debug dumps; the
// walk order it produces is identical to a direct Right() traversal.
func (l *Line) debugDump() {
	tree := btree.NewG[dumpItem](2, dumpLess)
	order := 0
	for arcID := l.Leftmost(); arcID != NIL; arcID = l.Right(arcID) {
		tree.ReplaceOrInsert(dumpItem{order: order, arcID: arcID, site: l.nodes[arcID].site})
		order++
	}

	logger.Println("beach line:")
	tree.Ascend(func(item dumpItem) bool {
		logger.Printf("  - arc=%d site=%d\n", item.arcID, item.site)
		return true
	})
}
