package config

import (
	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
)

// ToSettings maps the canvas and panel sections onto docking settings.
func (c *Config) ToSettings() docking.Settings {
	return docking.Settings{
		LeaveFreeSpace:                  c.Canvas.LeaveFreeSpace,
		MinimumFreeSpace:                c.Canvas.MinimumFreeSpace.Vector(),
		PreventDetachingLastDockedPanel: c.Canvas.PreventDetachingLastDockedPanel,
		PanelResizableAreaLength:        c.Canvas.PanelResizableAreaLength,
		CanvasAnchorZoneLength:          c.Canvas.CanvasAnchorZoneLength,
		PanelAnchorZoneLength:           c.Canvas.PanelAnchorZoneLength,
		PanelAnchorZoneLengthRatio:      c.Canvas.PanelAnchorZoneLengthRatio,
		FloatingVisibleWidth:            c.Canvas.FloatingVisibleWidth,
		FloatingVisibleHeight:           c.Canvas.FloatingVisibleHeight,
		HeaderHeight:                    c.Panel.HeaderHeight,
		DefaultTabMinSize:               c.Panel.DefaultTabMinSize.Vector(),
		DefaultFloatingSize:             c.Panel.DefaultFloatingSize.Vector(),
		MaxTabWidth:                     c.Panel.MaxTabWidth,
	}
}

// Vector converts s to a canvas vector.
func (s Size) Vector() entity.Vector2 {
	return entity.Vec(s.Width, s.Height)
}
