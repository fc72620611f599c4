package visualize

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"bset/internal/btree"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4589ff"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#525252")).
			Padding(0, 2)
)

// Box wraps Render's output in a bordered panel titled title, with a small
// header summarizing the tree's degree and size. Used by the REPL's SHOW
// command.
func Box[K any](t *btree.Tree[K], title string) string {
	header := fmt.Sprintf("%s  (degree %d, %d keys)", title, t.Degree(), t.Len())
	body := titleStyle.Render(header) + "\n" + Render(t)
	return boxStyle.Render(body)
}
