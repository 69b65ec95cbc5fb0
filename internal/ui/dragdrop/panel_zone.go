package dragdrop

import (
	"math"

	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
)

// PanelAnchorZone covers a docked panel's content area. Dropping near one
// of its edges docks the tab against that edge of the panel.
type PanelAnchorZone struct {
	zoneState
	panel *docking.Panel
}

func NewPanelAnchorZone(p *docking.Panel) *PanelAnchorZone {
	return &PanelAnchorZone{panel: p}
}

func (z *PanelAnchorZone) Panel() *docking.Panel { return z.panel }

func (z *PanelAnchorZone) Contains(pointer entity.Vector2) bool {
	return !z.panel.IsDestroyed() && z.panel.ContentRect().Contains(pointer)
}

// anchorExtent is the depth of the edge bands of the content area.
func (z *PanelAnchorZone) anchorExtent(size entity.Vector2) (width, height float64) {
	settings := z.panel.Canvas().Settings()
	width = math.Min(settings.PanelAnchorZoneLength, size.X*settings.PanelAnchorZoneLengthRatio)
	height = math.Min(settings.PanelAnchorZoneLength, size.Y*settings.PanelAnchorZoneLengthRatio)
	return width, height
}

// DirectionAt returns the edge band under pointer, bottom and top bands
// taking precedence over the side ones.
func (z *PanelAnchorZone) DirectionAt(pointer entity.Vector2) entity.Direction {
	content := z.panel.ContentRect()
	local := content.Local(pointer)
	width, height := z.anchorExtent(content.Size)

	switch {
	case local.Y < height:
		return entity.DirectionBottom
	case local.Y > content.Size.Y-height:
		return entity.DirectionTop
	case local.X < width:
		return entity.DirectionLeft
	case local.X > content.Size.X-width:
		return entity.DirectionRight
	default:
		return entity.DirectionNone
	}
}

func (z *PanelAnchorZone) TryGetPreviewRect(pointer entity.Vector2) (entity.Rect, bool) {
	dir := z.DirectionAt(pointer)
	if dir == entity.DirectionNone {
		return entity.Rect{}, false
	}

	content := z.panel.ContentRect()
	size := content.Size
	width, height := z.anchorExtent(size)

	var r entity.Rect
	switch dir {
	case entity.DirectionLeft:
		r = entity.NewRect(0, 0, width, size.Y)
	case entity.DirectionTop:
		r = entity.NewRect(0, size.Y-height, size.X, height)
	case entity.DirectionRight:
		r = entity.NewRect(size.X-width, 0, width, size.Y)
	default:
		r = entity.NewRect(0, 0, size.X, height)
	}
	r.Position = r.Position.Add(content.Position)
	return r, true
}

func (z *PanelAnchorZone) Execute(tab *docking.Tab, pointer entity.Vector2) bool {
	dir := z.DirectionAt(pointer)
	if dir == entity.DirectionNone {
		return false
	}

	detached, err := tab.Detach()
	if err != nil {
		return false
	}
	return z.panel.Canvas().Manager().AnchorPanel(detached, z.panel, dir) == nil
}
