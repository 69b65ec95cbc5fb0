package config

import "github.com/bnema/dynpanels/internal/domain/entity"

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	// Canvas defaults
	defaultMinimumFreeSpace           = 50.0
	defaultPanelResizableAreaLength   = 12.0
	defaultCanvasAnchorZoneLength     = 20.0
	defaultPanelAnchorZoneLength      = 100.0
	defaultPanelAnchorZoneLengthRatio = 0.31
	defaultFloatingVisibleWidth       = 125.0
	defaultFloatingVisibleHeight      = 50.0

	// Panel defaults
	defaultHeaderHeight         = 50.0
	defaultTabMinWidth          = 250.0
	defaultTabMinHeight         = 300.0
	defaultFloatingWidth        = 400.0
	defaultFloatingHeight       = 300.0
	defaultMaxTabWidth          = 150.0
	defaultLayoutStoreKeyPrefix = "layout/"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Canvas: CanvasConfig{
			LeaveFreeSpace:                  true,
			MinimumFreeSpace:                Size{Width: defaultMinimumFreeSpace, Height: defaultMinimumFreeSpace},
			PreventDetachingLastDockedPanel: false,
			PanelResizableAreaLength:        defaultPanelResizableAreaLength,
			CanvasAnchorZoneLength:          defaultCanvasAnchorZoneLength,
			PanelAnchorZoneLength:           defaultPanelAnchorZoneLength,
			PanelAnchorZoneLengthRatio:      defaultPanelAnchorZoneLengthRatio,
			FloatingVisibleWidth:            defaultFloatingVisibleWidth,
			FloatingVisibleHeight:           defaultFloatingVisibleHeight,
		},
		Panel: PanelConfig{
			HeaderHeight:        defaultHeaderHeight,
			DefaultTabMinSize:   Size{Width: defaultTabMinWidth, Height: defaultTabMinHeight},
			DefaultFloatingSize: Size{Width: defaultFloatingWidth, Height: defaultFloatingHeight},
			MaxTabWidth:         defaultMaxTabWidth,
		},
		Layout: LayoutConfig{
			StoreKeyPrefix: defaultLayoutStoreKeyPrefix,
			Version:        entity.LayoutStateVersion,
			AutoRestore:    true,
		},
		// Database.Path is resolved in Load
	}
}
