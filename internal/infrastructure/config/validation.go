package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateCanvas(config)...)
	validationErrors = append(validationErrors, validatePanel(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}

func validateCanvas(config *Config) []string {
	var validationErrors []string
	c := config.Canvas

	validationErrors = append(validationErrors, validateSize("canvas.minimum_free_space", c.MinimumFreeSpace)...)
	nonNegative := map[string]float64{
		"canvas.panel_resizable_area_length": c.PanelResizableAreaLength,
		"canvas.canvas_anchor_zone_length":   c.CanvasAnchorZoneLength,
		"canvas.panel_anchor_zone_length":    c.PanelAnchorZoneLength,
		"canvas.floating_visible_width":      c.FloatingVisibleWidth,
		"canvas.floating_visible_height":     c.FloatingVisibleHeight,
	}
	for _, key := range sortedKeys(nonNegative) {
		if nonNegative[key] < 0 {
			validationErrors = append(validationErrors, key+" must be non-negative")
		}
	}

	// Two opposite bands must never overlap.
	if c.PanelAnchorZoneLengthRatio <= 0 || c.PanelAnchorZoneLengthRatio > 0.5 {
		validationErrors = append(validationErrors, "canvas.panel_anchor_zone_length_ratio must be in (0, 0.5]")
	}
	return validationErrors
}

func validatePanel(config *Config) []string {
	var validationErrors []string
	p := config.Panel

	if p.HeaderHeight < 0 {
		validationErrors = append(validationErrors, "panel.header_height must be non-negative")
	}
	if p.MaxTabWidth <= 0 {
		validationErrors = append(validationErrors, "panel.max_tab_width must be positive")
	}
	validationErrors = append(validationErrors, validateSize("panel.default_tab_min_size", p.DefaultTabMinSize)...)
	validationErrors = append(validationErrors, validateSize("panel.default_floating_size", p.DefaultFloatingSize)...)
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if config.Layout.Version != entity.LayoutStateVersion {
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.version must be %d (got %d)", entity.LayoutStateVersion, config.Layout.Version))
	}
	if strings.ContainsAny(config.Layout.StoreKeyPrefix, " \t\n") {
		validationErrors = append(validationErrors, "layout.store_key_prefix must not contain whitespace")
	}
	return validationErrors
}

func validateSize(key string, s Size) []string {
	if s.Width < 0 || s.Height < 0 {
		return []string{key + " width and height must be non-negative"}
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
