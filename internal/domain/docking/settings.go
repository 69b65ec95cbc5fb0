package docking

import "github.com/bnema/dynpanels/internal/domain/entity"

// Settings tunes canvas and panel behaviour. Values are in canvas units.
type Settings struct {
	// LeaveFreeSpace keeps the free space placeholder docked in the root group.
	LeaveFreeSpace bool
	// MinimumFreeSpace is the placeholder's minimum size.
	MinimumFreeSpace                entity.Vector2
	PreventDetachingLastDockedPanel bool

	PanelResizableAreaLength   float64
	CanvasAnchorZoneLength     float64
	PanelAnchorZoneLength      float64
	PanelAnchorZoneLengthRatio float64

	// FloatingVisibleWidth and FloatingVisibleHeight bound how far a
	// floating panel may leave the canvas.
	FloatingVisibleWidth  float64
	FloatingVisibleHeight float64

	HeaderHeight        float64
	DefaultTabMinSize   entity.Vector2
	DefaultFloatingSize entity.Vector2
	MaxTabWidth         float64
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		LeaveFreeSpace:             true,
		MinimumFreeSpace:           entity.Vec(50, 50),
		PanelResizableAreaLength:   12,
		CanvasAnchorZoneLength:     20,
		PanelAnchorZoneLength:      100,
		PanelAnchorZoneLengthRatio: 0.31,
		FloatingVisibleWidth:       125,
		FloatingVisibleHeight:      50,
		HeaderHeight:               50,
		DefaultTabMinSize:          entity.Vec(250, 300),
		DefaultFloatingSize:        entity.Vec(400, 300),
		MaxTabWidth:                150,
	}
}
