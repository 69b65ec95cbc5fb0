package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/application/usecase"
	"github.com/bnema/dynpanels/internal/cli/styles"
	"github.com/bnema/dynpanels/internal/domain/entity"
)

func TestLayoutRenderer_RenderList(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme())

	out := r.RenderList([]usecase.StoredLayout{
		{CanvasID: "main", LayoutInfo: port.LayoutInfo{Key: "layout/main", Size: 512, UpdatedAt: time.Now()}},
		{CanvasID: "side", LayoutInfo: port.LayoutInfo{Key: "layout/side", Size: 4096}},
	})

	assert.Contains(t, out, "Canvas")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "512 B")
	assert.Contains(t, out, "side")
	assert.Contains(t, out, "4.0 KiB")
}

func TestLayoutRenderer_RenderListEmpty(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderList(nil), "No stored layouts")
}

func TestLayoutRenderer_RenderState(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme())
	state := &entity.LayoutState{
		Version:        entity.LayoutStateVersion,
		CanvasID:       "main",
		LeaveFreeSpace: true,
		Elements: []entity.ElementRecord{
			{Kind: entity.RecordGroup, Horizontal: true, FirstChild: 1, ChildCount: 2, Size: entity.Vec(800, 600)},
			{Kind: entity.RecordPanel, Tabs: []string{"files", "search"}, ActiveTab: 1, Size: entity.Vec(250, 600)},
			{Kind: entity.RecordDummy, Size: entity.Vec(550, 600)},
		},
		Floating: []entity.ElementRecord{
			{Kind: entity.RecordFloating, Tabs: []string{"console"}, Position: entity.Vec(100, 50), Size: entity.Vec(400, 300)},
		},
	}

	out := r.RenderState(state)

	assert.Contains(t, out, "canvas main")
	assert.Contains(t, out, "horizontal")
	assert.Contains(t, out, "files")
	assert.Contains(t, out, "search")
	assert.Contains(t, out, "free space 550x600")
	assert.Contains(t, out, "floating")
	assert.Contains(t, out, "@(100,50)")
}
