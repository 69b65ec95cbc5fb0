package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dynpanels/internal/domain/docking"
)

func TestToSettings_DefaultsMatchDocking(t *testing.T) {
	assert.Equal(t, docking.DefaultSettings(), DefaultConfig().ToSettings())
}

func TestToSettings_MapsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas.LeaveFreeSpace = false
	cfg.Canvas.PreventDetachingLastDockedPanel = true
	cfg.Canvas.MinimumFreeSpace = Size{Width: 10, Height: 20}
	cfg.Panel.HeaderHeight = 18
	cfg.Panel.DefaultFloatingSize = Size{Width: 640, Height: 480}

	s := cfg.ToSettings()

	assert.False(t, s.LeaveFreeSpace)
	assert.True(t, s.PreventDetachingLastDockedPanel)
	assert.InDelta(t, 10.0, s.MinimumFreeSpace.X, 1e-9)
	assert.InDelta(t, 20.0, s.MinimumFreeSpace.Y, 1e-9)
	assert.InDelta(t, 18.0, s.HeaderHeight, 1e-9)
	assert.InDelta(t, 640.0, s.DefaultFloatingSize.X, 1e-9)
	assert.InDelta(t, 480.0, s.DefaultFloatingSize.Y, 1e-9)
}

func TestGenerateSchemaFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, GenerateSchemaFile(dir))

	data, err := os.ReadFile(filepath.Join(dir, schemaFileName))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "dynpanels configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, section := range []string{"logging", "canvas", "panel", "layout", "database"} {
		assert.Contains(t, props, section)
	}
}
