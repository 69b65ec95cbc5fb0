package config

// Config represents the complete configuration for dynpanels.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Canvas tunes layout solving and the anchor zones of every canvas.
	Canvas CanvasConfig `mapstructure:"canvas" yaml:"canvas" toml:"canvas" json:"canvas"`
	// Panel holds per-panel geometry defaults.
	Panel PanelConfig `mapstructure:"panel" yaml:"panel" toml:"panel" json:"panel"`
	// Layout controls how serialized layouts are stored and restored.
	Layout   LayoutConfig   `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
}

// Size is a width/height pair in canvas units.
type Size struct {
	Width  float64 `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=0"`
	Height float64 `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// CanvasConfig mirrors the canvas-wide docking settings.
type CanvasConfig struct {
	// LeaveFreeSpace keeps a free space placeholder docked in the root group.
	LeaveFreeSpace   bool `mapstructure:"leave_free_space" yaml:"leave_free_space" toml:"leave_free_space" json:"leave_free_space"`
	MinimumFreeSpace Size `mapstructure:"minimum_free_space" yaml:"minimum_free_space" toml:"minimum_free_space" json:"minimum_free_space"`
	// PreventDetachingLastDockedPanel refuses tab drags that would empty the docked layout.
	PreventDetachingLastDockedPanel bool    `mapstructure:"prevent_detaching_last_docked_panel" yaml:"prevent_detaching_last_docked_panel" toml:"prevent_detaching_last_docked_panel" json:"prevent_detaching_last_docked_panel"`
	PanelResizableAreaLength        float64 `mapstructure:"panel_resizable_area_length" yaml:"panel_resizable_area_length" toml:"panel_resizable_area_length" json:"panel_resizable_area_length" jsonschema:"minimum=0"`
	CanvasAnchorZoneLength          float64 `mapstructure:"canvas_anchor_zone_length" yaml:"canvas_anchor_zone_length" toml:"canvas_anchor_zone_length" json:"canvas_anchor_zone_length" jsonschema:"minimum=0"`
	PanelAnchorZoneLength           float64 `mapstructure:"panel_anchor_zone_length" yaml:"panel_anchor_zone_length" toml:"panel_anchor_zone_length" json:"panel_anchor_zone_length" jsonschema:"minimum=0"`
	// PanelAnchorZoneLengthRatio caps a body zone band to this fraction of the panel size.
	PanelAnchorZoneLengthRatio float64 `mapstructure:"panel_anchor_zone_length_ratio" yaml:"panel_anchor_zone_length_ratio" toml:"panel_anchor_zone_length_ratio" json:"panel_anchor_zone_length_ratio" jsonschema:"exclusiveMinimum=0,maximum=0.5"`
	FloatingVisibleWidth       float64 `mapstructure:"floating_visible_width" yaml:"floating_visible_width" toml:"floating_visible_width" json:"floating_visible_width" jsonschema:"minimum=0"`
	FloatingVisibleHeight      float64 `mapstructure:"floating_visible_height" yaml:"floating_visible_height" toml:"floating_visible_height" json:"floating_visible_height" jsonschema:"minimum=0"`
}

// PanelConfig holds panel and tab geometry defaults.
type PanelConfig struct {
	HeaderHeight        float64 `mapstructure:"header_height" yaml:"header_height" toml:"header_height" json:"header_height" jsonschema:"minimum=0"`
	DefaultTabMinSize   Size    `mapstructure:"default_tab_min_size" yaml:"default_tab_min_size" toml:"default_tab_min_size" json:"default_tab_min_size"`
	DefaultFloatingSize Size    `mapstructure:"default_floating_size" yaml:"default_floating_size" toml:"default_floating_size" json:"default_floating_size"`
	MaxTabWidth         float64 `mapstructure:"max_tab_width" yaml:"max_tab_width" toml:"max_tab_width" json:"max_tab_width" jsonschema:"exclusiveMinimum=0"`
}

// LayoutConfig controls layout persistence.
type LayoutConfig struct {
	// StoreKeyPrefix is prepended to the canvas id to form the store key.
	StoreKeyPrefix string `mapstructure:"store_key_prefix" yaml:"store_key_prefix" toml:"store_key_prefix" json:"store_key_prefix"`
	// Version is the layout record version written by Serialize.
	Version int `mapstructure:"version" yaml:"version" toml:"version" json:"version" jsonschema:"minimum=1"`
	// AutoRestore restores each canvas from the store when it is opened.
	AutoRestore bool `mapstructure:"auto_restore" yaml:"auto_restore" toml:"auto_restore" json:"auto_restore"`
}

// DatabaseConfig locates the layout database.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/dynpanels/layouts.db when empty.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
}
