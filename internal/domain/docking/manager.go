package docking

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

// ErrDuplicateCanvasID is returned when a canvas id is already taken.
var ErrDuplicateCanvasID = errors.New("canvas id already registered")

// Manager orchestrates every topology change across its canvases: panel
// creation, anchoring, detaching and tab transfer. It also owns the tab
// registry and the event queue.
type Manager struct {
	settings Settings
	logger   zerolog.Logger
	newID    entity.IDGenerator

	canvases []*Canvas
	tabs     *TabRegistry

	events      []Event
	subscribers []EventHandler
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator replaces the uuid generator used for tab and canvas ids.
func WithIDGenerator(gen entity.IDGenerator) Option {
	return func(m *Manager) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// NewManager creates an orchestrator with no canvases.
func NewManager(settings Settings, logger zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		settings: settings,
		logger:   logger.With().Str("component", "docking-manager").Logger(),
		newID:    uuid.NewString,
		tabs:     newTabRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Tabs returns the registry resolving tab ids.
func (m *Manager) Tabs() *TabRegistry { return m.tabs }

// Settings returns the tuning applied to new canvases.
func (m *Manager) Settings() Settings { return m.settings }

// SetSettings replaces the tuning of the manager and of every canvas.
func (m *Manager) SetSettings(s Settings) {
	m.settings = s
	for _, c := range m.canvases {
		c.applySettings(s)
	}
	m.logger.Debug().Int("canvases", len(m.canvases)).Msg("settings applied")
}

// NewCanvas registers a layout surface. An empty id is generated.
func (m *Manager) NewCanvas(id string, size entity.Vector2) (*Canvas, error) {
	if id == "" {
		id = m.newID()
	}
	if m.Canvas(id) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCanvasID, id)
	}

	c := newCanvas(m, id, size)
	m.canvases = append(m.canvases, c)

	m.logger.Debug().Str("canvas_id", id).Float64("width", size.X).Float64("height", size.Y).Msg("canvas created")
	return c, nil
}

// Canvas returns the canvas registered under id, or nil.
func (m *Manager) Canvas(id string) *Canvas {
	for _, c := range m.canvases {
		if c.id == id {
			return c
		}
	}
	return nil
}

// Canvases returns the canvases in registration order.
func (m *Manager) Canvases() []*Canvas {
	return slices.Clone(m.canvases)
}

// RemoveCanvas destroys every panel of the canvas and forgets it.
func (m *Manager) RemoveCanvas(id string) error {
	idx := slices.IndexFunc(m.canvases, func(c *Canvas) bool { return c.id == id })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCanvasNotFound, id)
	}

	c := m.canvases[idx]
	for _, p := range c.Panels() {
		_ = m.DestroyPanel(p)
	}
	m.canvases = slices.Delete(m.canvases, idx, idx+1)

	m.logger.Debug().Str("canvas_id", id).Msg("canvas removed")
	return nil
}

// CreateTab registers content under a new tab. A zero MinSize falls back
// to the default tab minimum size.
func (m *Manager) CreateTab(content any, opts TabOptions) (*Tab, error) {
	t := &Tab{
		id:      opts.ID,
		content: content,
		label:   opts.Label,
		icon:    opts.Icon,
		minSize: opts.MinSize,
		manager: m,
	}
	if t.id == "" {
		t.id = m.newID()
	}
	if t.minSize.IsZero() {
		t.minSize = m.settings.DefaultTabMinSize
	}

	if err := m.tabs.register(t); err != nil {
		return nil, fmt.Errorf("create tab %q: %w", t.id, err)
	}

	m.emit(Event{Kind: EventTabCreated, Tab: t})
	return t, nil
}

// CreatePanel creates a floating panel on c hosting tabs, taking each one
// from its current panel.
func (m *Manager) CreatePanel(c *Canvas, tabs ...*Tab) (*Panel, error) {
	if c == nil {
		return nil, ErrCanvasNotFound
	}
	if c.manager != m {
		return nil, ErrCanvasMismatch
	}
	if slices.Contains(tabs, nil) {
		return nil, ErrNilTab
	}

	p := c.newPanel()
	m.emit(Event{Kind: EventPanelCreated, Panel: p})
	m.emit(Event{Kind: EventPanelBecameActive, Panel: p})

	for _, t := range tabs {
		if _, err := p.AddTab(t, -1); err != nil {
			return nil, err
		}
	}
	if len(tabs) > 0 {
		p.setActiveTab(0)
	}

	c.logger.Debug().Uint64("panel_id", uint64(p.id)).Int("tabs", len(tabs)).Msg("panel created")
	return p, nil
}

// DestroyPanel destroys p together with its tabs.
func (m *Manager) DestroyPanel(p *Panel) error {
	if p == nil || p.destroyed {
		return ErrPanelDestroyed
	}
	if p.dummy {
		return ErrDummyPanel
	}

	if len(p.tabs) == 0 {
		p.canvas.destroyPanel(p)
		return nil
	}
	for len(p.tabs) > 0 && !p.destroyed {
		p.removeTab(len(p.tabs)-1, true)
	}
	return nil
}

// DestroyTab removes t from its panel and the registry.
func (m *Manager) DestroyTab(t *Tab) error {
	if t == nil {
		return ErrNilTab
	}
	if t.panel != nil {
		t.panel.removeTab(t.Index(), true)
		return nil
	}
	if m.tabs.resolves(t) {
		m.destroyTab(t)
	}
	return nil
}

func (m *Manager) destroyTab(t *Tab) {
	if m.tabs.resolves(t) {
		m.tabs.Unregister(t.id)
	}
	m.emit(Event{Kind: EventTabDestroyed, Tab: t})
}

// AnchorPanel docks source next to anchor on its dir side. Anchoring to a
// canvas root group docks at the outer edge of the whole layout.
//
// The anchored element takes its floating size along the anchor axis
// (current size for groups and floating panels) and the anchor's extent
// across it. The along-axis size is enforced on the next Update once the
// layout pass has settled.
func (m *Manager) AnchorPanel(source, anchor Element, dir entity.Direction) error {
	if err := m.validateAnchor(source, anchor, dir); err != nil {
		m.logger.Warn().Err(err).Str("direction", dir.String()).Msg("anchor rejected")
		return err
	}

	c := source.Canvas()
	if anchor.ID() == c.root.id {
		return m.AnchorPanelToCanvas(source, c, dir)
	}

	group := anchor.Group()
	if group == nil || group.floating {
		m.logger.Warn().Str("direction", dir.String()).Msg("anchor rejected: target is floating")
		return ErrAnchorUnanchored
	}

	var size entity.Vector2
	switch s := source.(type) {
	case *Panel:
		if s.IsDocked() {
			size = s.floatingSize
		} else {
			size = s.size
		}
	case *Group:
		s.updateLayout()
		size = s.size
	}

	anchorSize := anchor.Size()
	if dir.IsHorizontal() {
		if anchorSize.Y > 0 {
			size.Y = anchorSize.Y
		}
	} else if anchorSize.X > 0 {
		size.X = anchorSize.X
	}
	source.setBounds(source.Position(), size)

	after := dir == entity.DirectionRight || dir == entity.DirectionTop
	if group.IsInSameDirection(dir) {
		var err error
		if after {
			err = group.AddElementAfter(anchor, source)
		} else {
			err = group.AddElementBefore(anchor, source)
		}
		if err != nil {
			return fmt.Errorf("anchor: %w", err)
		}
	} else {
		split := c.newGroup(dir)
		if err := group.replaceElement(anchor, split); err != nil {
			c.release(split)
			return fmt.Errorf("anchor: %w", err)
		}

		first, second := source, anchor
		if after {
			first, second = anchor, source
		}
		for _, e := range []Element{first, second} {
			if err := split.AddElement(e); err != nil {
				c.logger.Warn().Err(err).Uint64("element_id", uint64(e.ID())).Msg("split lost an element")
			}
		}
	}

	c.dropPending(source.ID())
	c.pending = append(c.pending, pendingResize{id: source.ID(), size: size.Axis(dir), dir: dir})

	c.logger.Debug().
		Uint64("source_id", uint64(source.ID())).
		Uint64("anchor_id", uint64(anchor.ID())).
		Str("direction", dir.String()).
		Msg("element anchored")
	return nil
}

func (m *Manager) validateAnchor(source, anchor Element, dir entity.Direction) error {
	if !alive(source) || !alive(anchor) {
		return ErrNilElement
	}
	if !dir.Valid() {
		return ErrInvalidDirection
	}
	if source.Canvas() != anchor.Canvas() {
		return ErrCanvasMismatch
	}
	if source.Canvas().manager != m {
		return ErrCanvasMismatch
	}
	if source.ID() == anchor.ID() {
		return ErrSelfAnchor
	}

	c := source.Canvas()
	if source.ID() == c.root.id || source.ID() == c.floating.id {
		return ErrImmovableElement
	}
	if p, ok := source.(*Panel); ok && p.dummy {
		return ErrDummyPanel
	}
	if anchor.ID() == c.floating.id {
		return ErrAnchorUnanchored
	}
	if g, ok := source.(*Group); ok && contains(g, anchor) {
		return ErrAnchorInsideSource
	}
	return nil
}

// AnchorPanelToCanvas docks source along one edge of the whole docked
// layout of c.
func (m *Manager) AnchorPanelToCanvas(source Element, c *Canvas, dir entity.Direction) error {
	if c == nil {
		return ErrCanvasNotFound
	}
	if err := m.validateAnchor(source, c.root, dir); err != nil {
		m.logger.Warn().Err(err).Str("direction", dir.String()).Msg("canvas anchor rejected")
		return err
	}

	root := c.root
	wrapper := c.newGroup(entity.DirectionRight)
	wrapper.position, wrapper.size = root.position, root.size
	for _, e := range root.Children() {
		if err := wrapper.AddElement(e); err != nil {
			c.logger.Warn().Err(err).Uint64("element_id", uint64(e.ID())).Msg("wrapping root lost an element")
		}
	}
	if err := root.AddElement(wrapper); err != nil {
		c.release(wrapper)
		return fmt.Errorf("anchor to canvas: %w", err)
	}

	return m.AnchorPanel(source, wrapper, dir)
}

// DetachPanel moves a docked panel to the floating group at its floating size.
func (m *Manager) DetachPanel(p *Panel) error {
	if !alive(p) {
		return ErrPanelDestroyed
	}
	if p.dummy {
		m.logger.Warn().Msg("detach rejected: free space placeholder")
		return ErrDummyPanel
	}
	if !p.IsDocked() {
		return nil
	}

	c := p.canvas
	if err := c.floating.AddElement(p); err != nil {
		return fmt.Errorf("detach panel: %w", err)
	}
	p.size = p.floatingSize
	p.setSurroundings(0, 0, 0, 0)
	c.dropPending(p.id)
	p.restrictToBounds()

	c.logger.Debug().Uint64("panel_id", uint64(p.id)).Msg("panel detached")
	return nil
}

// DetachPanelTab takes the tab at index out of p. A single tab detaches
// the whole panel, otherwise a new floating panel is created for the tab
// at p's position. The panel now hosting the tab is returned.
func (m *Manager) DetachPanelTab(p *Panel, index int) (*Panel, error) {
	if !alive(p) {
		return nil, ErrPanelDestroyed
	}
	if p.dummy {
		m.logger.Warn().Msg("tab detach rejected: free space placeholder")
		return nil, ErrDummyPanel
	}
	if index < 0 || index >= len(p.tabs) {
		return nil, fmt.Errorf("%w: %d", ErrTabIndexOutOfRange, index)
	}

	if len(p.tabs) == 1 {
		if err := m.DetachPanel(p); err != nil {
			return nil, err
		}
		return p, nil
	}

	detached, err := m.CreatePanel(p.canvas, p.tabs[index])
	if err != nil {
		return nil, err
	}
	detached.SetFloatingSize(p.floatingSize)
	detached.position = p.position
	detached.restrictToBounds()

	return detached, nil
}

// IsLastDockedPanel reports whether p is the only panel docked on its canvas.
func (m *Manager) IsLastDockedPanel(p *Panel) bool {
	if !alive(p) {
		return false
	}
	return p.canvas.IsLastDockedPanel(p)
}

// BringToFrontAt raises the top-most floating panel under point.
func (m *Manager) BringToFrontAt(c *Canvas, point entity.Vector2) *Panel {
	if c == nil || !c.active || !entity.NewRect(0, 0, c.size.X, c.size.Y).Contains(point) {
		return nil
	}
	p := c.floatingPanelAt(point)
	if p != nil {
		p.BringForward()
	}
	return p
}

// RequestClose asks the host to close p. Nothing is removed; subscribers
// receive EventPanelClosed and decide.
func (m *Manager) RequestClose(p *Panel) {
	if !alive(p) || p.dummy {
		return
	}
	m.emit(Event{Kind: EventPanelClosed, Panel: p})
}

// Subscribe registers fn for every event drained by Update.
func (m *Manager) Subscribe(fn EventHandler) {
	if fn != nil {
		m.subscribers = append(m.subscribers, fn)
	}
}

// Update ticks every canvas and then delivers the queued events.
// Events raised by handlers are delivered on the following Update.
func (m *Manager) Update() {
	for _, c := range m.canvases {
		c.Update()
	}

	events := m.events
	m.events = nil
	for _, e := range events {
		for _, fn := range m.subscribers {
			fn(e)
		}
	}
}

// Emit queues an event raised outside the layout core, such as drags.
func (m *Manager) Emit(e Event) { m.emit(e) }

func (m *Manager) emit(e Event) {
	m.events = append(m.events, e)
}

// PendingEvents returns a copy of the queued events.
func (m *Manager) PendingEvents() []Event {
	return slices.Clone(m.events)
}
