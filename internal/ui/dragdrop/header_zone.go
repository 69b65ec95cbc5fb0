package dragdrop

import (
	"math"

	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
)

const (
	// tabPreviewPadding widens an insert preview over an existing tab.
	tabPreviewPadding = 4
	// appendThreshold is how far into the last tab the pointer must be
	// before the drop appends instead of inserting before it.
	appendThreshold = 0.66
	// minAppendSlot is the narrowest gap after the last tab shown as a slot.
	minAppendSlot = 30
)

// Span is a horizontal extent relative to the header's left edge.
type Span struct {
	Start float64
	Width float64
}

// TabStrip reports where a panel's tabs sit in its header. Rendering owns
// the real geometry; the layout engine only needs the spans.
type TabStrip interface {
	TabSpans(p *docking.Panel) []Span
}

// UniformTabStrip lays tabs out left to right with equal widths of at
// most MaxTabWidth.
type UniformTabStrip struct {
	MaxTabWidth float64
}

func (s UniformTabStrip) TabSpans(p *docking.Panel) []Span {
	count := p.TabCount()
	if count == 0 {
		return nil
	}

	width := p.Size().X / float64(count)
	if s.MaxTabWidth > 0 {
		width = math.Min(width, s.MaxTabWidth)
	}

	spans := make([]Span, count)
	for i := range spans {
		spans[i] = Span{Start: float64(i) * width, Width: width}
	}
	return spans
}

// HeaderAnchorZone covers a panel's header. Dropping a tab there inserts
// it into the panel at the slot under the pointer.
type HeaderAnchorZone struct {
	zoneState
	panel *docking.Panel
	strip TabStrip
	// dragged is the tab in flight, which cannot be dropped after itself.
	dragged *docking.Tab
}

func NewHeaderAnchorZone(p *docking.Panel, strip TabStrip) *HeaderAnchorZone {
	if strip == nil {
		strip = UniformTabStrip{MaxTabWidth: p.Canvas().Settings().MaxTabWidth}
	}
	return &HeaderAnchorZone{panel: p, strip: strip}
}

func (z *HeaderAnchorZone) Panel() *docking.Panel { return z.panel }

// SetDragged tells the zone which tab is being dragged.
func (z *HeaderAnchorZone) SetDragged(t *docking.Tab) { z.dragged = t }

func (z *HeaderAnchorZone) Contains(pointer entity.Vector2) bool {
	return !z.panel.IsDestroyed() && z.panel.HeaderRect().Contains(pointer)
}

// TabIndexAt returns the insert index for a drop at pointer and the span
// to highlight.
func (z *HeaderAnchorZone) TabIndexAt(pointer entity.Vector2) (int, Span) {
	spans := z.strip.TabSpans(z.panel)
	if len(spans) == 0 {
		return 0, Span{Start: 0, Width: z.panel.Size().X}
	}

	x := z.panel.HeaderRect().Local(pointer).X

	position := 0.0
	for i, span := range spans {
		if x < span.Start {
			if i > 0 {
				i--
			}
			return i, Span{Start: position, Width: spans[i].Width + tabPreviewPadding}
		}
		position = span.Start
	}

	last := len(spans) - 1
	lastIsDragged := z.dragged != nil && z.panel.TabIndex(z.dragged) == last
	width := spans[last].Width

	if !lastIsDragged && x > position+width*appendThreshold {
		remaining := z.panel.Size().X - position - width
		switch {
		case remaining < minAppendSlot:
			return len(spans), Span{Start: position + width*0.5, Width: remaining + width*0.5}
		case remaining > width:
			return len(spans), Span{Start: position + width, Width: width}
		default:
			return len(spans), Span{Start: position + width, Width: remaining}
		}
	}

	return last, Span{Start: position, Width: width + tabPreviewPadding}
}

func (z *HeaderAnchorZone) TryGetPreviewRect(pointer entity.Vector2) (entity.Rect, bool) {
	_, span := z.TabIndexAt(pointer)
	header := z.panel.HeaderRect()
	return entity.NewRect(header.Position.X+span.Start, header.Position.Y, span.Width, header.Size.Y), true
}

func (z *HeaderAnchorZone) Execute(tab *docking.Tab, pointer entity.Vector2) bool {
	index, _ := z.TabIndexAt(pointer)
	_, err := z.panel.AddTab(tab, index)
	return err == nil
}
