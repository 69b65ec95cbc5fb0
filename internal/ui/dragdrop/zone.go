// Package dragdrop turns pointer gestures into docking operations. A
// Controller tracks the single in-flight drag, and anchor zones decide
// where a dragged tab would land.
package dragdrop

import (
	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
)

// AnchorZone is a hit-testing surface that can receive a dragged tab.
// Positions are canvas coordinates.
type AnchorZone interface {
	// Panel returns the panel the zone belongs to, or nil for canvas edges.
	Panel() *docking.Panel
	Contains(pointer entity.Vector2) bool
	// TryGetPreviewRect returns where the tab would land if dropped at pointer.
	TryGetPreviewRect(pointer entity.Vector2) (entity.Rect, bool)
	// Execute drops tab at pointer. It reports false when the zone
	// declines and the caller should fall back to floating the tab.
	Execute(tab *docking.Tab, pointer entity.Vector2) bool
	SetActive(active bool)
	IsActive() bool
}

// zoneState carries the activation flag shared by every zone kind.
type zoneState struct {
	active bool
}

func (z *zoneState) SetActive(active bool) { z.active = active }
func (z *zoneState) IsActive() bool        { return z.active }

// Zones builds the anchor zones of c in hit-testing order: canvas edges
// first, then floating panels from the top down, then docked panels.
// Body zones exist for docked panels only.
func Zones(c *docking.Canvas, strip TabStrip) []AnchorZone {
	zones := make([]AnchorZone, 0, 4+2*len(c.Panels()))
	for _, dir := range entity.Directions {
		zones = append(zones, NewCanvasAnchorZone(c, dir))
	}

	panels := c.Panels()
	var floating, docked []*docking.Panel
	for _, p := range panels {
		if !p.IsActive() {
			continue
		}
		if p.IsDocked() {
			docked = append(docked, p)
		} else {
			floating = append(floating, p)
		}
	}

	for i := len(floating) - 1; i >= 0; i-- {
		zones = append(zones, NewHeaderAnchorZone(floating[i], strip))
	}
	for _, p := range docked {
		zones = append(zones, NewHeaderAnchorZone(p, strip), NewPanelAnchorZone(p))
	}
	return zones
}
