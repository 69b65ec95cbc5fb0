package styles

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/dynpanels/internal/application/usecase"
	"github.com/bnema/dynpanels/internal/domain/entity"
)

// LayoutRenderer renders stored layouts.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a renderer using theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// LayoutTableColumns returns the columns of the stored layout table.
func LayoutTableColumns() []table.Column {
	return []table.Column{
		{Title: "Canvas", Width: 24},
		{Title: "Size", Width: 10},
		{Title: "Updated", Width: 20},
	}
}

// RenderList renders stored layouts as a table.
func (r *LayoutRenderer) RenderList(layouts []usecase.StoredLayout) string {
	if len(layouts) == 0 {
		return r.theme.Subtle.Render("No stored layouts")
	}

	rows := make([]table.Row, 0, len(layouts))
	for _, l := range layouts {
		updated := "-"
		if !l.UpdatedAt.IsZero() {
			updated = l.UpdatedAt.Local().Format(time.DateTime)
		}
		rows = append(rows, table.Row{l.CanvasID, formatBytes(l.Size), updated})
	}

	t := table.New(
		table.WithColumns(LayoutTableColumns()),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(r.theme.Border).
		BorderBottom(true).
		Foreground(r.theme.Accent).
		Bold(true)
	s.Selected = s.Cell.Foreground(r.theme.Text)
	s.Cell = s.Cell.Foreground(r.theme.Text)
	t.SetStyles(s)

	return t.View()
}

// RenderState renders a decoded layout as a tree of its records.
func (r *LayoutRenderer) RenderState(state *entity.LayoutState) string {
	root := tree.Root(r.theme.Title.Render(fmt.Sprintf("canvas %s", state.CanvasID))).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(r.theme.Subtle)

	if len(state.Elements) > 0 {
		root.Child(r.recordTree(state, 0))
	}

	if len(state.Floating) > 0 {
		floating := tree.Root(r.theme.Highlight.Render("floating"))
		for _, rec := range state.Floating {
			floating.Child(r.describe(rec))
		}
		root.Child(floating)
	}

	header := r.theme.Subtle.Render(fmt.Sprintf("version %d, free space %t, saved %s",
		state.Version, state.LeaveFreeSpace, state.SavedAt.Local().Format(time.DateTime)))
	return header + "\n" + root.String()
}

func (r *LayoutRenderer) recordTree(state *entity.LayoutState, i int) *tree.Tree {
	rec := state.Elements[i]
	t := tree.Root(r.describe(rec))
	first, end := rec.Children()
	for c := first; c < end && rec.ChildCount > 0; c++ {
		if state.Elements[c].IsGroup() {
			t.Child(r.recordTree(state, c))
		} else {
			t.Child(r.describe(state.Elements[c]))
		}
	}
	return t
}

func (r *LayoutRenderer) describe(rec entity.ElementRecord) string {
	size := fmt.Sprintf("%.0fx%.0f", rec.Size.X, rec.Size.Y)
	switch rec.Kind {
	case entity.RecordGroup:
		axis := "vertical"
		if rec.Horizontal {
			axis = "horizontal"
		}
		return r.theme.Highlight.Render("group") + " " + axis + " " + r.theme.Subtle.Render(size)
	case entity.RecordDummy:
		return r.theme.Subtle.Render("free space " + size)
	case entity.RecordFloating:
		return fmt.Sprintf("%s %s @(%.0f,%.0f)", r.theme.Normal.Render("panel"),
			r.tabs(rec), rec.Position.X, rec.Position.Y) + " " + r.theme.Subtle.Render(size)
	default:
		return r.theme.Normal.Render("panel") + " " + r.tabs(rec) + " " + r.theme.Subtle.Render(size)
	}
}

func (r *LayoutRenderer) tabs(rec entity.ElementRecord) string {
	names := make([]string, len(rec.Tabs))
	for i, id := range rec.Tabs {
		if i == rec.ActiveTab {
			names[i] = r.theme.Badge.Render(id)
		} else {
			names[i] = id
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

func formatBytes(n int) string {
	const kib = 1024
	if n < kib {
		return strconv.Itoa(n) + " B"
	}
	return fmt.Sprintf("%.1f KiB", float64(n)/kib)
}
