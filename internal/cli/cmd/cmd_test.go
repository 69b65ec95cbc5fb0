package cmd

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dynpanels/internal/application/port"
	portmocks "github.com/bnema/dynpanels/internal/application/port/mocks"
	"github.com/bnema/dynpanels/internal/cli"
	"github.com/bnema/dynpanels/internal/domain/build"
	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
	"github.com/bnema/dynpanels/internal/infrastructure/config"
	"github.com/bnema/dynpanels/internal/logging"
)

// run executes the root command with args against store.
func run(t *testing.T, store port.LayoutStore, args ...string) (string, error) {
	t.Helper()

	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	SetApp(cli.NewAppWithStore(ctx, config.DefaultConfig(), store, nil))
	t.Cleanup(func() { SetApp(nil) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func storedLayout(t *testing.T) []byte {
	t.Helper()
	m := docking.NewManager(docking.DefaultSettings(), zerolog.Nop())
	c, err := m.NewCanvas("main", entity.Vec(1000, 800))
	require.NoError(t, err)
	require.NoError(t, c.Start(DemoLayout()))

	data, err := docking.Serialize(c)
	require.NoError(t, err)
	return data
}

func TestLayoutList(t *testing.T) {
	store := portmocks.NewMockLayoutStore(t)
	store.EXPECT().List(mock.Anything, "layout/").Return([]port.LayoutInfo{
		{Key: "layout/main", Size: 300},
	}, nil).Once()

	out, err := run(t, store, "layout", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "300 B")
}

func TestLayoutShow(t *testing.T) {
	store := portmocks.NewMockLayoutStore(t)
	store.EXPECT().Load(mock.Anything, "layout/main").Return(storedLayout(t), nil).Once()

	out, err := run(t, store, "layout", "show", "main")

	require.NoError(t, err)
	assert.Contains(t, out, "canvas main")
	assert.Contains(t, out, "explorer")
	assert.Contains(t, out, "console")
	assert.Contains(t, out, "inspector")
}

func TestLayoutShow_Missing(t *testing.T) {
	store := portmocks.NewMockLayoutStore(t)
	store.EXPECT().Load(mock.Anything, "layout/nope").
		Return(nil, fmt.Errorf("%w: layout/nope", port.ErrLayoutNotFound)).
		Once()

	_, err := run(t, store, "layout", "show", "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `no layout stored for canvas "nope"`)
}

func TestLayoutShow_RequiresCanvas(t *testing.T) {
	_, err := run(t, portmocks.NewMockLayoutStore(t), "layout", "show")

	assert.Error(t, err)
}

func TestLayoutDelete(t *testing.T) {
	store := portmocks.NewMockLayoutStore(t)
	store.EXPECT().Delete(mock.Anything, "layout/main").Return(nil).Once()

	out, err := run(t, store, "layout", "rm", "main")

	require.NoError(t, err)
	assert.Contains(t, out, "deleted")
}

func TestDemo(t *testing.T) {
	out, err := run(t, portmocks.NewMockLayoutStore(t), "demo", "--width", "1000", "--height", "700")

	require.NoError(t, err)
	assert.Contains(t, out, "canvas demo 1000x700")
}

func TestDemo_Save(t *testing.T) {
	t.Cleanup(func() { demoSave = false })

	store := portmocks.NewMockLayoutStore(t)
	store.EXPECT().Save(mock.Anything, "layout/demo", mock.Anything).Return(nil).Once()

	out, err := run(t, store, "demo", "--save")

	require.NoError(t, err)
	assert.Contains(t, out, "under layout/demo")
}

func TestDemo_RejectsEmptyCanvas(t *testing.T) {
	t.Cleanup(func() { demoWidth = 1280 })

	_, err := run(t, portmocks.NewMockLayoutStore(t), "demo", "--width", "0")

	assert.Error(t, err)
}

func TestConfigSchema(t *testing.T) {
	out, err := run(t, portmocks.NewMockLayoutStore(t), "config", "schema")

	require.NoError(t, err)
	assert.Contains(t, out, `"canvas"`)
	assert.Contains(t, out, "panel_anchor_zone_length_ratio")
}

func TestVersion(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc", BuildDate: "today", GoVersion: "go1.25"})

	out, err := run(t, portmocks.NewMockLayoutStore(t), "version")

	require.NoError(t, err)
	assert.Contains(t, out, "dynpanels 1.2.3 (abc")
}

func TestNeedsApp(t *testing.T) {
	assert.True(t, needsApp(layoutListCmd))
	assert.True(t, needsApp(demoCmd))
	assert.False(t, needsApp(configSchemaCmd))
	assert.False(t, needsApp(versionCmd))
}
