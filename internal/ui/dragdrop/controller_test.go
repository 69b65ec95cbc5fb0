package dragdrop_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
	"github.com/bnema/dynpanels/internal/ui/dragdrop"
	"github.com/bnema/dynpanels/internal/ui/dragdrop/mocks"
)

func withZones(zones ...dragdrop.AnchorZone) dragdrop.ControllerOption {
	return dragdrop.WithZoneProvider(func(*docking.Canvas) []dragdrop.AnchorZone { return zones })
}

func countEvents(m *docking.Manager, kind docking.EventKind) int {
	n := 0
	for _, e := range m.PendingEvents() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestController_TabDropOnZoneExecutesIt(t *testing.T) {
	// Arrange
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a", "b")
	tab := p.Tab(1)
	pointer := entity.Vec(400, 300)
	preview := entity.NewRect(0, 0, 160, 600)

	zone := mocks.NewMockAnchorZone(t)
	zone.EXPECT().SetActive(true).Once()
	zone.EXPECT().IsActive().Return(true)
	zone.EXPECT().Contains(pointer).Return(true)
	zone.EXPECT().TryGetPreviewRect(pointer).Return(preview, true).Once()
	zone.EXPECT().SetActive(false).Once()
	zone.EXPECT().Execute(tab, pointer).Return(true).Once()

	ctrl := dragdrop.NewController(m, zerolog.Nop(), withZones(zone))

	// Act
	require.NoError(t, ctrl.BeginTabDrag(tab, 1, pointer))

	// Assert
	assert.True(t, ctrl.Dragging())
	assert.Same(t, zone, ctrl.Hovered())
	got, visible := ctrl.Preview()
	assert.True(t, visible)
	assert.Equal(t, preview, got)

	ctrl.OnEnd(1, pointer)

	assert.False(t, ctrl.Dragging())
	_, visible = ctrl.Preview()
	assert.False(t, visible)
	assert.Same(t, p, tab.Panel())
	assert.Equal(t, 1, countEvents(m, docking.EventTabDragStarted))
	assert.Equal(t, 1, countEvents(m, docking.EventTabDragStopped))
}

func TestController_DeclinedDropFloatsTabAtPointer(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a", "b")
	tab := p.Tab(1)
	start := entity.Vec(400, 440)
	drop := entity.Vec(420, 320)

	zone := mocks.NewMockAnchorZone(t)
	zone.EXPECT().SetActive(true).Once()
	zone.EXPECT().IsActive().Return(true)
	zone.EXPECT().Contains(mock.Anything).Return(true)
	zone.EXPECT().TryGetPreviewRect(mock.Anything).Return(entity.Rect{}, false)
	zone.EXPECT().SetActive(false).Once()
	zone.EXPECT().Execute(tab, drop).Return(false).Once()

	ctrl := dragdrop.NewController(m, zerolog.Nop(), withZones(zone))
	require.NoError(t, ctrl.BeginTabDrag(tab, 1, start))
	ctrl.OnMove(1, drop)

	ctrl.OnEnd(1, drop)

	floated := tab.Panel()
	require.NotNil(t, floated)
	assert.NotSame(t, p, floated)
	assert.False(t, floated.IsDocked())
	assert.Equal(t, drop, floated.Rect().Center())
	assert.Equal(t, 1, p.TabCount())
}

func TestController_PreviewFallsBackToFloatingRect(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a", "b")
	pointer := entity.Vec(400, 300)

	zone := mocks.NewMockAnchorZone(t)
	zone.EXPECT().SetActive(true).Once()
	zone.EXPECT().IsActive().Return(true)
	zone.EXPECT().Contains(pointer).Return(false)

	ctrl := dragdrop.NewController(m, zerolog.Nop(), withZones(zone))
	require.NoError(t, ctrl.BeginTabDrag(p.Tab(0), 1, pointer))

	got, visible := ctrl.Preview()
	assert.True(t, visible)
	assert.Equal(t, entity.NewRect(200, 150, 400, 300), got)
	assert.Nil(t, ctrl.Hovered())
}

func TestController_OnMoveIgnoresOtherPointers(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a", "b")
	pointer := entity.Vec(400, 300)

	zone := mocks.NewMockAnchorZone(t)
	zone.EXPECT().SetActive(true).Once()
	zone.EXPECT().IsActive().Return(true)
	zone.EXPECT().Contains(pointer).Return(false).Once()

	ctrl := dragdrop.NewController(m, zerolog.Nop(), withZones(zone))
	require.NoError(t, ctrl.BeginTabDrag(p.Tab(0), 1, pointer))

	ctrl.OnMove(2, entity.Vec(10, 10))
	ctrl.OnEnd(2, entity.Vec(10, 10))

	assert.True(t, ctrl.Dragging())
}

func TestController_CancelRestoresZones(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a", "b")
	pointer := entity.Vec(400, 300)

	zone := mocks.NewMockAnchorZone(t)
	zone.EXPECT().SetActive(true).Once()
	zone.EXPECT().IsActive().Return(true)
	zone.EXPECT().Contains(pointer).Return(false)
	zone.EXPECT().SetActive(false).Once()

	ctrl := dragdrop.NewController(m, zerolog.Nop(), withZones(zone))
	require.NoError(t, ctrl.BeginTabDrag(p.Tab(0), 1, pointer))

	ctrl.Cancel()
	ctrl.Cancel()

	assert.False(t, ctrl.Dragging())
	_, visible := ctrl.Preview()
	assert.False(t, visible)
	assert.Equal(t, 2, p.TabCount())
	assert.Equal(t, 1, countEvents(m, docking.EventTabDragStopped))
}

func TestController_PressDuringDragCancelsIt(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a", "b")
	pointer := entity.Vec(400, 300)

	zone := mocks.NewMockAnchorZone(t)
	zone.EXPECT().SetActive(true).Once()
	zone.EXPECT().IsActive().Return(true)
	zone.EXPECT().Contains(pointer).Return(false)
	zone.EXPECT().SetActive(false).Once()

	ctrl := dragdrop.NewController(m, zerolog.Nop(), withZones(zone))
	require.NoError(t, ctrl.BeginTabDrag(p.Tab(0), 1, pointer))

	ctrl.OnBegin(c, 2, pointer)

	assert.False(t, ctrl.Dragging())
}

func TestController_PressRaisesFloatingPanel(t *testing.T) {
	m, c := newTestCanvas(t)
	below := newTestPanel(t, m, c, "a")
	above := newTestPanel(t, m, c, "b")
	above.Translate(entity.Vec(150, 0))
	require.Same(t, above, c.PanelAt(entity.Vec(400, 300)))

	ctrl := dragdrop.NewController(m, zerolog.Nop())
	ctrl.OnBegin(c, 1, entity.Vec(250, 300))

	assert.Same(t, below, c.PanelAt(entity.Vec(400, 300)))
	assert.False(t, ctrl.Dragging())
}

func TestController_PanelDragMovesFloatingPanel(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a")
	require.Equal(t, entity.Vec(200, 150), p.Position())

	ctrl := dragdrop.NewController(m, zerolog.Nop())
	require.NoError(t, ctrl.BeginPanelDrag(p, 1, entity.Vec(250, 440)))
	assert.Same(t, p, ctrl.DraggedPanel())

	ctrl.OnMove(1, entity.Vec(300, 400))
	ctrl.OnEnd(1, entity.Vec(300, 400))

	assert.Equal(t, entity.Vec(250, 110), p.Position())
	assert.False(t, ctrl.Dragging())
}

func TestController_PanelDragClampsOnRelease(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a")

	ctrl := dragdrop.NewController(m, zerolog.Nop())
	require.NoError(t, ctrl.BeginPanelDrag(p, 1, entity.Vec(250, 440)))

	ctrl.OnMove(1, entity.Vec(-500, 440))
	assert.Equal(t, -550.0, p.Position().X)

	ctrl.OnEnd(1, entity.Vec(-500, 440))
	assert.Equal(t, 0.0, p.Position().X)
}

func TestController_PanelDragRejectsDockedPanel(t *testing.T) {
	m, c := newTestCanvas(t)
	p := newTestPanel(t, m, c, "a")
	require.NoError(t, p.DockToRoot(entity.DirectionLeft))
	c.Update()

	ctrl := dragdrop.NewController(m, zerolog.Nop())
	err := ctrl.BeginPanelDrag(p, 1, entity.Vec(10, 10))

	assert.ErrorIs(t, err, dragdrop.ErrPanelDocked)
	assert.False(t, ctrl.Dragging())
}

func TestController_TabDragRejectsLastDockedPanel(t *testing.T) {
	m, c := newTestCanvas(t)
	settings := m.Settings()
	settings.PreventDetachingLastDockedPanel = true
	m.SetSettings(settings)

	p := newTestPanel(t, m, c, "a")
	require.NoError(t, p.DockToRoot(entity.DirectionLeft))
	c.Update()

	ctrl := dragdrop.NewController(m, zerolog.Nop(), withZones())
	err := ctrl.BeginTabDrag(p.Tab(0), 1, entity.Vec(400, 300))

	assert.ErrorIs(t, err, docking.ErrLastDockedPanel)
	assert.False(t, ctrl.Dragging())
	assert.Zero(t, countEvents(m, docking.EventTabDragStarted))
}

func TestController_TabDragRejectsLooseTab(t *testing.T) {
	m, _ := newTestCanvas(t)
	tab, err := m.CreateTab(nil, docking.TabOptions{ID: "loose"})
	require.NoError(t, err)

	ctrl := dragdrop.NewController(m, zerolog.Nop())

	assert.ErrorIs(t, ctrl.BeginTabDrag(tab, 1, entity.Vec(0, 0)), dragdrop.ErrTabWithoutPanel)
	assert.ErrorIs(t, ctrl.BeginTabDrag(nil, 1, entity.Vec(0, 0)), docking.ErrNilTab)
}

func TestController_DropOnCanvasEdgeDocksTab(t *testing.T) {
	m, c := newTestCanvas(t)
	docked := newTestPanel(t, m, c, "a")
	require.NoError(t, docked.DockToRoot(entity.DirectionLeft))
	floating := newTestPanel(t, m, c, "b", "c")
	c.Update()

	tab := floating.Tab(1)
	pointer := entity.Vec(790, 300)

	ctrl := dragdrop.NewController(m, zerolog.Nop())
	require.NoError(t, ctrl.BeginTabDrag(tab, 1, pointer))

	hovered, ok := ctrl.Hovered().(*dragdrop.CanvasAnchorZone)
	require.True(t, ok)
	assert.Equal(t, entity.DirectionRight, hovered.Direction())

	ctrl.OnEnd(1, pointer)
	m.Update()

	require.NotNil(t, tab.Panel())
	assert.True(t, tab.Panel().IsDocked())
	assert.True(t, docked.IsDocked())
	assert.Equal(t, 1, floating.TabCount())
	assert.Greater(t, tab.Panel().Position().X, docked.Position().X)
}

func TestController_OwnBodyZoneSkippedForSingleTabPanel(t *testing.T) {
	m, c := newTestCanvas(t)
	left := newTestPanel(t, m, c, "a")
	require.NoError(t, left.DockToRoot(entity.DirectionLeft))
	right := newTestPanel(t, m, c, "b")
	require.NoError(t, right.DockToPanel(left, entity.DirectionRight))
	c.Update()
	require.Equal(t, entity.Vec(400, 600), left.Size())

	// Inside the left band of the dragged panel's own body.
	pointer := entity.Vec(50, 300)

	ctrl := dragdrop.NewController(m, zerolog.Nop())
	require.NoError(t, ctrl.BeginTabDrag(left.Tab(0), 1, pointer))
	assert.Nil(t, ctrl.Hovered())

	ctrl.OnEnd(1, pointer)

	assert.False(t, left.IsDocked())
	assert.True(t, right.IsDocked())
}
