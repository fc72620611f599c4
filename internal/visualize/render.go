// Package visualize renders a Tree for a human reading a terminal: a
// depth-colorized indented dump of keys, and a bordered summary panel.
package visualize

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"bset/internal/btree"
)

// palette cycles by depth so siblings at the same level read as one color
// and a reader can follow a root-to-leaf path by eye.
var palette = []*color.Color{
	color.New(color.FgHiCyan),
	color.New(color.FgHiYellow),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiGreen),
	color.New(color.FgHiBlue),
	color.New(color.FgHiRed),
}

// Render walks t's root depth-first and returns one indented line per node,
// colorized by depth. Color is suppressed when stdout is not a terminal.
func Render[K any](t *btree.Tree[K]) string {
	var b strings.Builder
	dump(&b, t.Root(), 0, shouldColor(os.Stdout))
	return b.String()
}

func shouldColor(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func dump[K any](b *strings.Builder, n btree.NodeHandle[K], depth int, useColor bool) {
	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s%s", indent, renderKeys(n))
	if useColor {
		c := palette[depth%len(palette)]
		line = c.Sprint(line)
	}
	b.WriteString(line)
	b.WriteByte('\n')

	if n.IsLeaf() {
		return
	}
	for i := 0; i < n.ChildrenCount(); i++ {
		dump(b, n.Child(i), depth+1, useColor)
	}
}

func renderKeys[K any](n btree.NodeHandle[K]) string {
	keys := make([]string, n.KeyCount())
	for i := range keys {
		keys[i] = fmt.Sprint(n.Key(i))
	}
	if n.IsLeaf() {
		return "[" + strings.Join(keys, " ") + "]"
	}
	return "(" + strings.Join(keys, " ") + ")"
}
