package dragdrop

import (
	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
)

// canvasPreviewRatio is the share of the canvas a canvas edge preview covers.
const canvasPreviewRatio = 0.2

// CanvasAnchorZone is a strip along one canvas edge. Dropping a tab there
// docks it along that edge of the whole layout.
type CanvasAnchorZone struct {
	zoneState
	canvas    *docking.Canvas
	direction entity.Direction
}

func NewCanvasAnchorZone(c *docking.Canvas, dir entity.Direction) *CanvasAnchorZone {
	return &CanvasAnchorZone{canvas: c, direction: dir}
}

func (z *CanvasAnchorZone) Panel() *docking.Panel        { return nil }
func (z *CanvasAnchorZone) Direction() entity.Direction { return z.direction }

// Rect returns the hit area along the edge.
func (z *CanvasAnchorZone) Rect() entity.Rect {
	size := z.canvas.Size()
	length := z.canvas.Settings().CanvasAnchorZoneLength

	switch z.direction {
	case entity.DirectionLeft:
		return entity.NewRect(0, 0, length, size.Y)
	case entity.DirectionTop:
		return entity.NewRect(0, size.Y-length, size.X, length)
	case entity.DirectionRight:
		return entity.NewRect(size.X-length, 0, length, size.Y)
	default:
		return entity.NewRect(0, 0, size.X, length)
	}
}

func (z *CanvasAnchorZone) Contains(pointer entity.Vector2) bool {
	return z.Rect().Contains(pointer)
}

func (z *CanvasAnchorZone) TryGetPreviewRect(entity.Vector2) (entity.Rect, bool) {
	size := z.canvas.Size()
	w, h := size.X*canvasPreviewRatio, size.Y*canvasPreviewRatio

	switch z.direction {
	case entity.DirectionLeft:
		return entity.NewRect(0, 0, w, size.Y), true
	case entity.DirectionTop:
		return entity.NewRect(0, size.Y-h, size.X, h), true
	case entity.DirectionRight:
		return entity.NewRect(size.X-w, 0, w, size.Y), true
	default:
		return entity.NewRect(0, 0, size.X, h), true
	}
}

func (z *CanvasAnchorZone) Execute(tab *docking.Tab, _ entity.Vector2) bool {
	detached, err := tab.Detach()
	if err != nil {
		return false
	}
	return z.canvas.Manager().AnchorPanelToCanvas(detached, z.canvas, z.direction) == nil
}
