package dragdrop

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
)

var (
	// ErrPanelDocked is returned when a docked panel is dragged by its header.
	ErrPanelDocked = errors.New("docked panels cannot be translated")
	// ErrTabWithoutPanel is returned when a tab that is not hosted is dragged.
	ErrTabWithoutPanel = errors.New("tab is not hosted by a panel")
)

type dragKind int

const (
	dragNone dragKind = iota
	dragPanel
	dragTab
)

// ZoneProvider builds the anchor zones offered during a tab drag on c.
type ZoneProvider func(c *docking.Canvas) []AnchorZone

// session is the state of the in-flight drag.
type session struct {
	kind      dragKind
	pointerID int
	canvas    *docking.Canvas
	panel     *docking.Panel
	tab       *docking.Tab
	grab      entity.Vector2
	zones     []AnchorZone
	hovered   AnchorZone
}

// Controller runs the drag state machine. At most one drag is in flight;
// starting another one cancels it.
type Controller struct {
	manager *docking.Manager
	logger  zerolog.Logger
	zones   ZoneProvider

	drag           session
	preview        entity.Rect
	previewVisible bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithZoneProvider replaces how anchor zones are built.
func WithZoneProvider(p ZoneProvider) ControllerOption {
	return func(c *Controller) {
		if p != nil {
			c.zones = p
		}
	}
}

// WithTabStrip sets the header geometry used by the default zones.
func WithTabStrip(strip TabStrip) ControllerOption {
	return func(c *Controller) {
		c.zones = func(canvas *docking.Canvas) []AnchorZone { return Zones(canvas, strip) }
	}
}

func NewController(m *docking.Manager, logger zerolog.Logger, opts ...ControllerOption) *Controller {
	c := &Controller{
		manager: m,
		logger:  logger.With().Str("component", "drag-controller").Logger(),
		zones:   func(canvas *docking.Canvas) []AnchorZone { return Zones(canvas, nil) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dragging reports whether a drag is in flight.
func (c *Controller) Dragging() bool { return c.drag.kind != dragNone }

// DraggedPanel returns the panel being dragged, or nil.
func (c *Controller) DraggedPanel() *docking.Panel { return c.drag.panel }

// Hovered returns the anchor zone under the pointer during a tab drag.
func (c *Controller) Hovered() AnchorZone { return c.drag.hovered }

// Preview returns the drop preview rectangle while it is shown.
func (c *Controller) Preview() (entity.Rect, bool) {
	return c.preview, c.previewVisible
}

// OnBegin handles a press on canvas. A press while a drag is in flight
// cancels it; otherwise the floating panel under the press is raised.
func (c *Controller) OnBegin(canvas *docking.Canvas, pointerID int, position entity.Vector2) {
	if c.Dragging() {
		c.Cancel()
		return
	}
	if p := c.manager.BringToFrontAt(canvas, position); p != nil {
		c.logger.Trace().Int("pointer_id", pointerID).Uint64("panel_id", uint64(p.ID())).Msg("panel raised")
	}
}

// BeginPanelDrag starts moving a floating panel by its header.
func (c *Controller) BeginPanelDrag(p *docking.Panel, pointerID int, position entity.Vector2) error {
	if p == nil || p.IsDestroyed() {
		return docking.ErrPanelDestroyed
	}
	if p.IsDocked() {
		return ErrPanelDocked
	}

	c.Cancel()
	c.drag = session{
		kind:      dragPanel,
		pointerID: pointerID,
		canvas:    p.Canvas(),
		panel:     p,
		grab:      position.Sub(p.Position()),
	}
	p.BringForward()
	return nil
}

// BeginTabDrag starts dragging t out of its panel. Anchor zones light up
// and the drop preview is shown.
func (c *Controller) BeginTabDrag(t *docking.Tab, pointerID int, position entity.Vector2) error {
	c.Cancel()

	if t == nil {
		return docking.ErrNilTab
	}
	p := t.Panel()
	if p == nil {
		return ErrTabWithoutPanel
	}

	canvas := p.Canvas()
	if p.TabCount() == 1 && canvas.Settings().PreventDetachingLastDockedPanel && c.manager.IsLastDockedPanel(p) {
		c.logger.Debug().Uint64("panel_id", uint64(p.ID())).Msg("refusing to drag the last docked panel")
		return docking.ErrLastDockedPanel
	}

	if !p.IsDocked() {
		p.SetFloatingSize(p.Size())
	}

	zones := c.zones(canvas)
	for _, z := range zones {
		z.SetActive(true)
		if hz, ok := z.(*HeaderAnchorZone); ok {
			hz.SetDragged(t)
		}
		if _, ok := z.(*PanelAnchorZone); ok && z.Panel() == p && p.TabCount() <= 1 {
			z.SetActive(false)
		}
	}

	c.drag = session{
		kind:      dragTab,
		pointerID: pointerID,
		canvas:    canvas,
		panel:     p,
		tab:       t,
		zones:     zones,
	}
	c.previewVisible = true
	c.updatePreview(position)

	c.manager.Emit(docking.Event{Kind: docking.EventTabDragStarted, Panel: p, Tab: t})
	c.logger.Debug().Str("tab_id", t.ID()).Int("zones", len(zones)).Msg("tab drag started")
	return nil
}

// OnMove follows the pointer of the drag in flight.
func (c *Controller) OnMove(pointerID int, position entity.Vector2) {
	if !c.Dragging() || pointerID != c.drag.pointerID {
		return
	}

	switch c.drag.kind {
	case dragPanel:
		p := c.drag.panel
		p.Translate(position.Sub(c.drag.grab).Sub(p.Position()))
	case dragTab:
		c.updatePreview(position)
	}
}

// OnEnd drops whatever is being dragged at position. A tab dropped
// outside every zone, or on a zone that declines it, floats at position.
func (c *Controller) OnEnd(pointerID int, position entity.Vector2) {
	if !c.Dragging() || pointerID != c.drag.pointerID {
		return
	}

	drag := c.drag
	c.drag = session{}
	c.previewVisible = false

	if drag.kind == dragPanel {
		drag.panel.ClampToCanvas()
		return
	}

	target := c.zoneAt(drag.zones, position)
	for _, z := range drag.zones {
		z.SetActive(false)
	}

	t := drag.tab
	if target == nil || !target.Execute(t, position) {
		if p := t.Panel(); p != nil {
			if detached, err := c.manager.DetachPanelTab(p, t.Index()); err == nil {
				detached.MoveTo(position)
			} else {
				c.logger.Warn().Err(err).Str("tab_id", t.ID()).Msg("floating dropped tab")
			}
		}
	}

	c.manager.Emit(docking.Event{Kind: docking.EventTabDragStopped, Panel: t.Panel(), Tab: t})
	c.logger.Debug().Str("tab_id", t.ID()).Bool("anchored", target != nil).Msg("tab drag ended")
}

// Cancel abandons the drag in flight, restoring zones and the preview.
// It is a no-op when nothing is being dragged.
func (c *Controller) Cancel() {
	if !c.Dragging() {
		return
	}

	drag := c.drag
	c.drag = session{}
	c.previewVisible = false
	c.preview = entity.Rect{}

	for _, z := range drag.zones {
		z.SetActive(false)
	}

	switch drag.kind {
	case dragPanel:
		if !drag.panel.IsDestroyed() {
			drag.panel.ClampToCanvas()
		}
	case dragTab:
		c.manager.Emit(docking.Event{Kind: docking.EventTabDragStopped, Panel: drag.panel, Tab: drag.tab})
	}

	c.logger.Debug().Msg("drag cancelled")
}

func (c *Controller) updatePreview(position entity.Vector2) {
	c.drag.hovered = c.zoneAt(c.drag.zones, position)
	if c.drag.hovered != nil {
		if r, ok := c.drag.hovered.TryGetPreviewRect(position); ok {
			c.preview = r
			return
		}
	}

	size := c.drag.panel.FloatingSize()
	c.preview = entity.Rect{Position: position.Sub(size.Scale(0.5)), Size: size}
}

func (c *Controller) zoneAt(zones []AnchorZone, position entity.Vector2) AnchorZone {
	for _, z := range zones {
		if z.IsActive() && z.Contains(position) {
			return z
		}
	}
	return nil
}
