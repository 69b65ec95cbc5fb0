package docking

import (
	"github.com/rs/zerolog"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

// pendingResize brings a freshly anchored element to its intended extent
// along the anchor axis once the layout pass has settled.
type pendingResize struct {
	id   ElementID
	size float64
	dir  entity.Direction
}

// Canvas is one layout surface. It owns the docked tree (root), the
// floating group and the free space placeholder, and addresses all of
// them through an arena keyed by ElementID.
//
// A Canvas is not safe for concurrent use; every mutation happens on the
// goroutine that drives Manager.Update.
type Canvas struct {
	id       string
	manager  *Manager
	logger   zerolog.Logger
	settings Settings

	elements map[ElementID]Element
	nextID   ElementID

	root     *Group
	floating *Group
	dummy    *Panel

	size           entity.Vector2
	dirty          bool
	boundsDirty    bool
	leaveFreeSpace bool
	active         bool
	started        bool

	resizer resizer
	pending []pendingResize
}

func newCanvas(m *Manager, id string, size entity.Vector2) *Canvas {
	c := &Canvas{
		id:             id,
		manager:        m,
		logger:         m.logger.With().Str("component", "canvas").Str("canvas_id", id).Logger(),
		settings:       m.settings,
		elements:       make(map[ElementID]Element),
		size:           size,
		leaveFreeSpace: true,
		active:         true,
		dirty:          true,
		boundsDirty:    true,
	}

	c.floating = &Group{direction: entity.DirectionNone, floating: true}
	c.register(c.floating)

	c.dummy = c.newPanel()
	c.dummy.setDummy(c.settings.MinimumFreeSpace)
	c.dummy.size = size

	c.root = c.newGroup(entity.DirectionRight)
	_ = c.root.AddElement(c.dummy)

	c.SetLeaveFreeSpace(c.settings.LeaveFreeSpace)
	return c
}

func (c *Canvas) ID() string            { return c.id }
func (c *Canvas) Manager() *Manager     { return c.manager }
func (c *Canvas) Root() *Group          { return c.root }
func (c *Canvas) Floating() *Group      { return c.floating }
func (c *Canvas) FreeSpace() *Panel     { return c.dummy }
func (c *Canvas) Size() entity.Vector2  { return c.size }
func (c *Canvas) Settings() Settings    { return c.settings }
func (c *Canvas) LeaveFreeSpace() bool  { return c.leaveFreeSpace }
func (c *Canvas) IsActive() bool        { return c.active }
func (c *Canvas) SetActive(active bool) { c.active = active }

// Element resolves id in the canvas arena.
func (c *Canvas) Element(id ElementID) Element { return c.element(id) }

// SetSize resizes the canvas. Bounds are redistributed, and minimum sizes
// enforced again, on the next Update.
func (c *Canvas) SetSize(size entity.Vector2) {
	if c.size == size {
		return
	}
	c.size = size
	c.SetDirty()
}

// SetDirty schedules a full layout pass.
func (c *Canvas) SetDirty() {
	c.dirty = true
	c.boundsDirty = true
}

// ForceRebuildLayout runs the layout pass immediately.
func (c *Canvas) ForceRebuildLayout() {
	c.Update()
}

// Update runs one layout tick: tab validation, tree simplification and
// neighbour threading, bounds propagation, any resizes queued by anchor
// operations, each followed by the minimum size pass.
func (c *Canvas) Update() {
	c.validateTabs()

	if c.dirty {
		c.root.updateLayout()
		c.floating.updateLayout()

		c.root.updateSurroundings(0, 0, 0, 0)
		c.floating.updateSurroundings(0, 0, 0, 0)
	}

	if c.boundsDirty {
		c.root.setBounds(entity.Vector2{}, c.size)
		c.floating.setBounds(entity.Vector2{}, c.size)
		c.boundsDirty = false
	}

	if c.dirty {
		c.ensureMinimumSize()
		c.dirty = false
	}

	// Anchor resizes can push a neighbour subtree against its floor.
	if c.applyPendingResizes() {
		c.ensureMinimumSize()
	}
}

func (c *Canvas) ensureMinimumSize() {
	c.root.ensureMinimumSize()
	c.floating.ensureMinimumSize()
}

func (c *Canvas) applyPendingResizes() bool {
	if len(c.pending) == 0 {
		return false
	}

	pending := c.pending
	c.pending = nil

	for _, r := range pending {
		e := c.element(r.id)
		if e == nil {
			continue
		}
		g := e.Group()
		if g == nil || g.floating {
			continue
		}
		g.resizeAxis(e, r.size, r.dir.Opposite())
	}
	return true
}

func (c *Canvas) dropPending(id ElementID) {
	for i := len(c.pending) - 1; i >= 0; i-- {
		if c.pending[i].id == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
		}
	}
}

func (c *Canvas) validateTabs() {
	for _, p := range c.Panels() {
		p.validateTabs()
	}
}

// SetLeaveFreeSpace docks or removes the free space placeholder. When
// docked again it goes to the middle of the root group.
func (c *Canvas) SetLeaveFreeSpace(leave bool) {
	c.leaveFreeSpace = leave
	if !leave {
		if c.dummy.IsDocked() {
			if err := c.floating.AddElement(c.dummy); err != nil {
				c.logger.Warn().Err(err).Msg("undocking free space")
				return
			}
			c.dummy.size = c.dummy.floatingSize
		}
		return
	}

	if c.dummy.IsDocked() {
		return
	}
	var err error
	if children := c.root.Children(); len(children) <= 1 {
		err = c.root.AddElement(c.dummy)
	} else {
		err = c.root.AddElementBefore(children[len(children)/2], c.dummy)
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("docking free space")
	}
}

// IsLastDockedPanel reports whether p is the only real panel left in the
// docked tree.
func (c *Canvas) IsLastDockedPanel(p *Panel) bool {
	if p == nil || !p.IsDocked() || p.canvas != c {
		return false
	}
	for _, other := range c.dockedPanels(c.root, nil) {
		if other != p {
			return false
		}
	}
	return true
}

// Panels lists the canvas's panels, docked ones in tree order first and
// then floating ones from back to front. The placeholder is excluded.
func (c *Canvas) Panels() []*Panel {
	panels := c.dockedPanels(c.root, nil)
	for _, e := range c.floating.Children() {
		if p, ok := e.(*Panel); ok && !p.dummy {
			panels = append(panels, p)
		}
	}
	return panels
}

func (c *Canvas) dockedPanels(g *Group, out []*Panel) []*Panel {
	for _, e := range g.Children() {
		switch e := e.(type) {
		case *Panel:
			if !e.dummy {
				out = append(out, e)
			}
		case *Group:
			out = c.dockedPanels(e, out)
		}
	}
	return out
}

// PanelAt returns the top-most floating panel containing point, or the
// docked panel under it.
func (c *Canvas) PanelAt(point entity.Vector2) *Panel {
	if p := c.floatingPanelAt(point); p != nil {
		return p
	}
	for _, p := range c.dockedPanels(c.root, nil) {
		if p.Rect().Contains(point) {
			return p
		}
	}
	return nil
}

func (c *Canvas) floatingPanelAt(point entity.Vector2) *Panel {
	children := c.floating.Children()
	for i := len(children) - 1; i >= 0; i-- {
		p, ok := children[i].(*Panel)
		if !ok || p.dummy || !p.active {
			continue
		}
		if p.Rect().Contains(point) {
			return p
		}
	}
	return nil
}

func (c *Canvas) applySettings(s Settings) {
	c.settings = s

	c.dummy.setMinSize(s.MinimumFreeSpace)
	for _, p := range c.Panels() {
		if p.headerHeight != s.HeaderHeight {
			p.headerHeight = s.HeaderHeight
			p.recalculateMinSize()
		}
	}

	if s.LeaveFreeSpace != c.leaveFreeSpace {
		c.SetLeaveFreeSpace(s.LeaveFreeSpace)
	}
	c.SetDirty()
}

func (c *Canvas) register(e Element) {
	c.nextID++
	n := e.base()
	n.id = c.nextID
	n.canvas = c
	c.elements[n.id] = e
}

func (c *Canvas) element(id ElementID) Element {
	if id == 0 {
		return nil
	}
	e, ok := c.elements[id]
	if !ok {
		return nil
	}
	return e
}

func (c *Canvas) release(e Element) {
	delete(c.elements, e.ID())
	c.dropPending(e.ID())
}

func (c *Canvas) newGroup(dir entity.Direction) *Group {
	g := &Group{direction: dir, dirty: true}
	c.register(g)
	return g
}

// newPanel creates an empty panel in the floating group, centred on the canvas.
func (c *Canvas) newPanel() *Panel {
	p := &Panel{
		activeTab:    -1,
		floatingSize: c.settings.DefaultFloatingSize,
		headerHeight: c.settings.HeaderHeight,
		active:       true,
	}
	c.register(p)

	p.size = p.floatingSize
	p.position = c.size.Sub(p.size).Scale(0.5)

	p.group = c.floating.id
	c.floating.children = append(c.floating.children, p.id)
	c.floating.setDirty()
	return p
}

// destroyPanel removes p from the canvas for good.
func (c *Canvas) destroyPanel(p *Panel) {
	if p.destroyed || p.dummy {
		return
	}
	p.destroyed = true

	if g := p.Group(); g != nil {
		g.setDirty()
		g.removeChild(p)
	}
	c.release(p)

	c.logger.Debug().Uint64("panel_id", uint64(p.id)).Msg("panel destroyed")
	c.manager.emit(Event{Kind: EventPanelDestroyed, Panel: p})
}
