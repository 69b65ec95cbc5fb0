package dragdrop_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
	"github.com/bnema/dynpanels/internal/ui/dragdrop"
)

// newTestCanvas returns an 800x600 canvas without free space, a 20 unit
// header and 200x100 tabs.
func newTestCanvas(t *testing.T) (*docking.Manager, *docking.Canvas) {
	t.Helper()

	settings := docking.DefaultSettings()
	settings.LeaveFreeSpace = false
	settings.HeaderHeight = 20
	settings.DefaultTabMinSize = entity.Vec(200, 100)

	m := docking.NewManager(settings, zerolog.Nop())
	c, err := m.NewCanvas("main", entity.Vec(800, 600))
	require.NoError(t, err)
	return m, c
}

// newTestPanel creates a floating 400x300 panel centred on the canvas.
func newTestPanel(t *testing.T, m *docking.Manager, c *docking.Canvas, labels ...string) *docking.Panel {
	t.Helper()

	tabs := make([]*docking.Tab, 0, len(labels))
	for _, label := range labels {
		tab, err := m.CreateTab(nil, docking.TabOptions{ID: label, Label: label})
		require.NoError(t, err)
		tabs = append(tabs, tab)
	}
	p, err := m.CreatePanel(c, tabs...)
	require.NoError(t, err)
	return p
}

func TestCanvasAnchorZone_Rects(t *testing.T) {
	_, c := newTestCanvas(t)

	tests := []struct {
		dir     entity.Direction
		inside  entity.Vector2
		outside entity.Vector2
		preview entity.Rect
	}{
		{entity.DirectionLeft, entity.Vec(10, 300), entity.Vec(30, 300), entity.NewRect(0, 0, 160, 600)},
		{entity.DirectionTop, entity.Vec(400, 590), entity.Vec(400, 570), entity.NewRect(0, 480, 800, 120)},
		{entity.DirectionRight, entity.Vec(790, 300), entity.Vec(770, 300), entity.NewRect(640, 0, 160, 600)},
		{entity.DirectionBottom, entity.Vec(400, 10), entity.Vec(400, 30), entity.NewRect(0, 0, 800, 120)},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			zone := dragdrop.NewCanvasAnchorZone(c, tt.dir)

			assert.Nil(t, zone.Panel())
			assert.Equal(t, tt.dir, zone.Direction())
			assert.True(t, zone.Contains(tt.inside))
			assert.False(t, zone.Contains(tt.outside))

			preview, ok := zone.TryGetPreviewRect(tt.inside)
			require.True(t, ok)
			assert.InDelta(t, tt.preview.Position.X, preview.Position.X, 1e-9)
			assert.InDelta(t, tt.preview.Position.Y, preview.Position.Y, 1e-9)
			assert.InDelta(t, tt.preview.Size.X, preview.Size.X, 1e-9)
			assert.InDelta(t, tt.preview.Size.Y, preview.Size.Y, 1e-9)
		})
	}
}

func TestPanelAnchorZone_DirectionAt(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a")
	// Content area spans (200,150) to (600,430).
	zone := dragdrop.NewPanelAnchorZone(p)

	tests := []struct {
		name    string
		pointer entity.Vector2
		want    entity.Direction
	}{
		{"bottom band", entity.Vec(400, 160), entity.DirectionBottom},
		{"top band", entity.Vec(400, 420), entity.DirectionTop},
		{"left band", entity.Vec(210, 300), entity.DirectionLeft},
		{"right band", entity.Vec(590, 300), entity.DirectionRight},
		{"bottom wins over left", entity.Vec(210, 160), entity.DirectionBottom},
		{"centre", entity.Vec(400, 290), entity.DirectionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, zone.DirectionAt(tt.pointer))
		})
	}
}

func TestPanelAnchorZone_ContainsExcludesHeader(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a")
	zone := dragdrop.NewPanelAnchorZone(p)

	assert.True(t, zone.Contains(entity.Vec(400, 300)))
	assert.False(t, zone.Contains(entity.Vec(400, 440)))
	assert.False(t, zone.Contains(entity.Vec(100, 300)))
}

func TestPanelAnchorZone_TryGetPreviewRect(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a")
	zone := dragdrop.NewPanelAnchorZone(p)

	preview, ok := zone.TryGetPreviewRect(entity.Vec(210, 300))
	require.True(t, ok)
	assert.Equal(t, entity.NewRect(200, 150, 100, 280), preview)

	_, ok = zone.TryGetPreviewRect(entity.Vec(400, 290))
	assert.False(t, ok)
}

func TestPanelAnchorZone_ExecuteInCentreDeclines(t *testing.T) {
	m, c := newTestCanvas(t)
	target := newTestPanel(t, m, c, "a")
	source := newTestPanel(t, m, c, "b")

	zone := dragdrop.NewPanelAnchorZone(target)

	assert.False(t, zone.Execute(source.Tab(0), entity.Vec(400, 290)))
	assert.Same(t, source, source.Tab(0).Panel())
}

func TestHeaderAnchorZone_TabIndexAt(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a", "b")
	// Header spans x 200..600 at y 430; tabs are 150 wide.
	zone := dragdrop.NewHeaderAnchorZone(p, nil)

	tests := []struct {
		name      string
		x         float64
		wantIndex int
		wantSpan  dragdrop.Span
	}{
		{"over first tab", 250, 0, dragdrop.Span{Start: 0, Width: 154}},
		{"start of last tab", 400, 1, dragdrop.Span{Start: 150, Width: 154}},
		{"end of last tab appends", 480, 2, dragdrop.Span{Start: 300, Width: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, span := zone.TabIndexAt(entity.Vec(tt.x, 440))
			assert.Equal(t, tt.wantIndex, index)
			assert.InDelta(t, tt.wantSpan.Start, span.Start, 1e-9)
			assert.InDelta(t, tt.wantSpan.Width, span.Width, 1e-9)
		})
	}
}

func TestHeaderAnchorZone_DraggedLastTabDoesNotAppend(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a", "b")
	zone := dragdrop.NewHeaderAnchorZone(p, nil)
	zone.SetDragged(p.Tab(1))

	index, span := zone.TabIndexAt(entity.Vec(480, 440))

	assert.Equal(t, 1, index)
	assert.InDelta(t, 150, span.Start, 1e-9)
}

func TestHeaderAnchorZone_PreviewAndExecute(t *testing.T) {
	m, c := newTestCanvas(t)
	target := newTestPanel(t, m, c, "a", "b")
	source := newTestPanel(t, m, c, "c", "d")
	zone := dragdrop.NewHeaderAnchorZone(target, nil)
	pointer := entity.Vec(250, 440)

	preview, ok := zone.TryGetPreviewRect(pointer)
	require.True(t, ok)
	assert.Equal(t, entity.NewRect(200, 430, 154, 20), preview)

	moved := source.Tab(1)
	require.True(t, zone.Execute(moved, pointer))

	assert.Same(t, target, moved.Panel())
	assert.Equal(t, 0, moved.Index())
	assert.Equal(t, 3, target.TabCount())
	assert.Equal(t, 1, source.TabCount())
}

func TestHeaderAnchorZone_EmptyStripCoversHeader(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a")
	zone := dragdrop.NewHeaderAnchorZone(p, emptyStrip{})

	index, span := zone.TabIndexAt(entity.Vec(300, 440))

	assert.Equal(t, 0, index)
	assert.Equal(t, dragdrop.Span{Start: 0, Width: 400}, span)
}

type emptyStrip struct{}

func (emptyStrip) TabSpans(*docking.Panel) []dragdrop.Span { return nil }

func TestUniformTabStrip_NarrowPanelSharesWidth(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a", "b", "c", "d")

	spans := dragdrop.UniformTabStrip{MaxTabWidth: 150}.TabSpans(p)

	require.Len(t, spans, 4)
	assert.Equal(t, dragdrop.Span{Start: 300, Width: 100}, spans[3])
}

func TestZones_Order(t *testing.T) {
	m, c := newTestCanvas(t)
	docked := newTestPanel(t, m, c, "a")
	require.NoError(t, docked.DockToRoot(entity.DirectionLeft))
	floating := newTestPanel(t, m, c, "b")
	c.Update()

	zones := dragdrop.Zones(c, nil)

	require.Len(t, zones, 7)
	for i, dir := range entity.Directions {
		cz, ok := zones[i].(*dragdrop.CanvasAnchorZone)
		require.True(t, ok)
		assert.Equal(t, dir, cz.Direction())
	}
	assert.IsType(t, &dragdrop.HeaderAnchorZone{}, zones[4])
	assert.Same(t, floating, zones[4].Panel())
	assert.IsType(t, &dragdrop.HeaderAnchorZone{}, zones[5])
	assert.Same(t, docked, zones[5].Panel())
	assert.IsType(t, &dragdrop.PanelAnchorZone{}, zones[6])
	assert.Same(t, docked, zones[6].Panel())
	for _, z := range zones {
		assert.False(t, z.IsActive())
	}
}

func TestZones_SkipsInactivePanels(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a")
	p.SetActive(false)

	zones := dragdrop.Zones(c, nil)

	assert.Len(t, zones, 4)
}
