package btree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// validateTree walks every node of tr and asserts the B-tree invariants of
// SPEC_FULL.md §3 hold: strictly increasing keys within bounds, correct
// child counts, correct parent/index back-references, minimum occupancy,
// and uniform leaf depth.
func validateTree[K any](t *testing.T, tr *Tree[K]) {
	t.Helper()

	leafDepths := map[int]bool{}

	var walk func(n *node[K], depth int, lo, hi *K)
	walk = func(n *node[K], depth int, lo, hi *K) {
		for i := 0; i < n.numKeys; i++ {
			if i > 0 {
				require.True(t, tr.compare(n.keys[i-1], n.keys[i]) < 0, "keys must be strictly increasing")
			}
			if lo != nil {
				require.True(t, tr.compare(n.keys[i], *lo) > 0, "key must exceed lower bound")
			}
			if hi != nil {
				require.True(t, tr.compare(n.keys[i], *hi) < 0, "key must be under upper bound")
			}
		}

		if n.isLeaf() {
			require.Equal(t, 0, n.numChildren)
			leafDepths[depth] = true
		} else {
			require.Equal(t, n.numKeys+1, n.numChildren, "internal node child count")
			for i := 0; i < n.numChildren; i++ {
				child := n.children[i]
				require.Same(t, n, child.parent, "child parent back-reference")
				require.Equal(t, i, child.index, "child index-in-parent")

				var childLo, childHi *K
				if i > 0 {
					childLo = &n.keys[i-1]
				}
				if i < n.numKeys {
					childHi = &n.keys[i]
				}
				walk(child, depth+1, childLo, childHi)
			}
		}

		if !n.isRoot() {
			require.GreaterOrEqual(t, n.numKeys, tr.degree, "non-root minimum occupancy")
			require.LessOrEqual(t, n.numKeys, 2*tr.degree, "node maximum occupancy")
		} else {
			minRoot := 1
			if n.isLeaf() {
				minRoot = 0
			}
			require.GreaterOrEqual(t, n.numKeys, minRoot, "root minimum occupancy")
			require.LessOrEqual(t, n.numKeys, 2*tr.degree, "root maximum occupancy")
		}
	}

	walk(tr.root, 0, nil, nil)
	require.LessOrEqual(t, len(leafDepths), 1, "all leaves must sit at the same depth")
}
