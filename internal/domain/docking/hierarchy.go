package docking

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var hierarchyRootStyle = lipgloss.NewStyle().Bold(true)

// Hierarchy renders the docked tree and the floating panels as text.
func (c *Canvas) Hierarchy() string {
	root := tree.Root(fmt.Sprintf("canvas %s %.0fx%.0f", c.id, c.size.X, c.size.Y)).
		RootStyle(hierarchyRootStyle).
		Enumerator(tree.RoundedEnumerator)

	root.Child(hierarchyOf(c.root))

	floating := tree.Root(c.floating.String())
	for _, e := range c.floating.Children() {
		if p, ok := e.(*Panel); ok && !p.dummy {
			floating.Child(describe(p))
		}
	}
	root.Child(floating)

	return root.String()
}

func hierarchyOf(g *Group) *tree.Tree {
	t := tree.Root(describe(g))
	for _, e := range g.Children() {
		switch e := e.(type) {
		case *Group:
			t.Child(hierarchyOf(e))
		case *Panel:
			t.Child(describe(e))
		}
	}
	return t
}

func describe(e Element) string {
	pos, size := e.Position(), e.Size()
	return fmt.Sprintf("%v @(%.0f,%.0f) %.0fx%.0f", e, pos.X, pos.Y, size.X, size.Y)
}
