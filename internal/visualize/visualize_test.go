package visualize

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bset/internal/btree"
)

func TestRenderListsEveryKey(t *testing.T) {
	color.NoColor = true
	tr := btree.NewTree[int](2)
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tr.Insert(v)
	}

	out := Render(tr)
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		assert.Contains(t, out, string(rune('0'+v)))
	}
	require.NotEmpty(t, out)
}

func TestRenderEmptyTreeShowsEmptyLeaf(t *testing.T) {
	color.NoColor = true
	tr := btree.NewTree[int](2)
	out := Render(tr)
	assert.Equal(t, "[]\n", out)
}

func TestBoxWrapsRenderWithHeader(t *testing.T) {
	color.NoColor = true
	tr := btree.NewTree[string](3)
	tr.Insert("alpha")

	out := Box(tr, "tree")
	assert.True(t, strings.Contains(out, "tree"))
	assert.True(t, strings.Contains(out, "degree 3"))
	assert.True(t, strings.Contains(out, "1 keys") || strings.Contains(out, "1 key"))
}
