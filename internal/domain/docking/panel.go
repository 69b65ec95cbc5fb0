package docking

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

// ErrDummyPanel is returned when tabs are offered to the free space
// placeholder, or when it is destroyed, detached or anchored.
var ErrDummyPanel = errors.New("free space placeholder cannot hold tabs or move")

// Panel is a leaf of the layout tree. It hosts an ordered list of tabs and
// is either docked in the canvas tree or floating.
//
// Every canvas owns exactly one dummy panel: an invisible, tab-less
// placeholder standing for the free space left in the docked layout.
type Panel struct {
	node
	tabs         []*Tab
	activeTab    int
	floatingSize entity.Vector2
	headerHeight float64
	dummy        bool
	active       bool
	destroyed    bool
}

// IsDocked reports whether the panel sits in the docked tree.
func (p *Panel) IsDocked() bool {
	g := p.Group()
	return g != nil && !g.floating
}

func (p *Panel) IsDummy() bool         { return p.dummy }
func (p *Panel) IsActive() bool        { return p.active }
func (p *Panel) IsDestroyed() bool     { return p.destroyed }
func (p *Panel) HeaderHeight() float64 { return p.headerHeight }
func (p *Panel) TabCount() int         { return len(p.tabs) }
func (p *Panel) ActiveTab() int        { return p.activeTab }

// FloatingSize is the size the panel takes whenever it floats.
func (p *Panel) FloatingSize() entity.Vector2 { return p.floatingSize }

// Tabs returns a copy of the tab list.
func (p *Panel) Tabs() []*Tab {
	return slices.Clone(p.tabs)
}

// Tab returns the tab at index, or nil.
func (p *Panel) Tab(index int) *Tab {
	if index < 0 || index >= len(p.tabs) {
		return nil
	}
	return p.tabs[index]
}

// TabIndex returns the position of t in the panel, or -1.
func (p *Panel) TabIndex(t *Tab) int {
	return slices.Index(p.tabs, t)
}

// TabIndexByID resolves id through the registry and returns its position, or -1.
func (p *Panel) TabIndexByID(id string) int {
	t, ok := p.canvas.manager.tabs.Lookup(id)
	if !ok {
		return -1
	}
	return p.TabIndex(t)
}

// HeaderRect is the strip along the top edge that hosts the tab bar.
func (p *Panel) HeaderRect() entity.Rect {
	return entity.NewRect(p.position.X, p.position.Y+p.size.Y-p.headerHeight, p.size.X, p.headerHeight)
}

// ContentRect is the panel area below the header.
func (p *Panel) ContentRect() entity.Rect {
	return entity.NewRect(p.position.X, p.position.Y, p.size.X, math.Max(0, p.size.Y-p.headerHeight))
}

// SetActiveTab selects the tab at index.
func (p *Panel) SetActiveTab(index int) error {
	if index < 0 || index >= len(p.tabs) {
		return fmt.Errorf("%w: %d", ErrTabIndexOutOfRange, index)
	}
	p.setActiveTab(index)
	return nil
}

func (p *Panel) setActiveTab(index int) {
	if p.activeTab == index || index < 0 || index >= len(p.tabs) {
		return
	}
	p.activeTab = index
	p.canvas.manager.emit(Event{Kind: EventActiveTabChanged, Panel: p, Tab: p.tabs[index]})
}

// SetFloatingSize changes the size used while floating. It never goes
// below the minimum size and applies immediately when the panel floats.
func (p *Panel) SetFloatingSize(size entity.Vector2) {
	if size == p.floatingSize {
		return
	}

	size.X = math.Max(size.X, p.minSize.X)
	size.Y = math.Max(size.Y, p.minSize.Y)
	p.floatingSize = size

	if !p.IsDocked() && p.size != size {
		p.size = size
		p.restrictToBounds()
	}
}

// AddTab inserts t at index, taking it from whichever panel held it.
// Adding a tab the panel already holds moves it to index. Out of range
// indices append.
func (p *Panel) AddTab(t *Tab, index int) (*Tab, error) {
	if t == nil {
		return nil, ErrNilTab
	}
	if p.destroyed {
		return nil, ErrPanelDestroyed
	}
	if p.dummy {
		return nil, ErrDummyPanel
	}

	p.activeTab = -1

	if index < 0 || index > len(p.tabs) {
		index = len(p.tabs)
	}

	current := p.TabIndex(t)
	switch {
	case current < 0:
		p.tabs = slices.Insert(p.tabs, index, t)
		if previous := t.panel; previous != nil {
			previous.removeTab(previous.TabIndex(t), false)
		}
		t.panel = p
		p.recalculateMinSize()
	case current != index:
		if index == len(p.tabs) {
			index = len(p.tabs) - 1
		}
		p.tabs = slices.Delete(p.tabs, current, current+1)
		p.tabs = slices.Insert(p.tabs, index, t)
	}

	p.setActiveTab(index)
	return t, nil
}

// RemoveTab destroys the tab at index. A panel left without tabs is destroyed.
func (p *Panel) RemoveTab(index int) error {
	if index < 0 || index >= len(p.tabs) {
		return fmt.Errorf("%w: %d", ErrTabIndexOutOfRange, index)
	}
	p.removeTab(index, true)
	return nil
}

func (p *Panel) removeTab(index int, destroy bool) {
	if index < 0 || index >= len(p.tabs) {
		return
	}

	t := p.tabs[index]
	p.tabs = slices.Delete(p.tabs, index, index+1)
	if t.panel == p {
		t.panel = nil
	}
	if destroy {
		p.canvas.manager.destroyTab(t)
	}

	p.recalculateMinSize()

	if p.dummy {
		return
	}

	switch {
	case len(p.tabs) == 0:
		p.canvas.destroyPanel(p)
	case p.activeTab == index:
		p.activeTab = -1
		p.setActiveTab(0)
	case p.activeTab > index:
		p.activeTab--
	}
}

// validateTabs drops tabs whose id no longer resolves to them.
func (p *Panel) validateTabs() {
	if p.dummy || p.destroyed {
		return
	}
	registry := p.canvas.manager.tabs
	for i := len(p.tabs) - 1; i >= 0 && !p.destroyed; i-- {
		if !registry.resolves(p.tabs[i]) {
			p.removeTab(i, true)
		}
	}
}

// recalculateMinSize derives the minimum size from the tabs plus the header.
func (p *Panel) recalculateMinSize() {
	if p.dummy {
		return
	}

	var minSize entity.Vector2
	for _, t := range p.tabs {
		minSize.X = math.Max(minSize.X, t.minSize.X)
		minSize.Y = math.Max(minSize.Y, t.minSize.Y)
	}
	minSize.Y += p.headerHeight

	p.setMinSize(minSize)
}

func (p *Panel) setMinSize(minSize entity.Vector2) {
	if p.minSize == minSize {
		return
	}
	p.minSize = minSize
	if g := p.Group(); g != nil {
		g.setDirty()
	}
}

// setDummy turns p into the free space placeholder.
func (p *Panel) setDummy(minSize entity.Vector2) {
	p.dummy = true
	p.headerHeight = 0
	p.minSize = minSize
}

func (p *Panel) setBounds(position, size entity.Vector2) {
	p.position = position
	p.size = size
}

// ResizeTo resizes a docked panel through its group, the horizontal and
// vertical directions naming the sides that absorb the change first. A
// floating panel takes size as its floating size.
func (p *Panel) ResizeTo(size entity.Vector2, horizontal, vertical entity.Direction) {
	if g := p.Group(); g != nil && !g.floating {
		g.resizeElementTo(p, size, horizontal, vertical)
		return
	}
	p.SetFloatingSize(size)
}

// ResizeEdge drags one edge of the panel outwards by delta (inwards when
// negative). Docked panels trade space with their neighbours, floating
// panels resize in place and never shrink below their minimum size.
func (p *Panel) ResizeEdge(dir entity.Direction, delta float64) {
	if !dir.Valid() || p.destroyed {
		return
	}

	if p.IsDocked() {
		if delta >= 0 {
			p.canvas.tryChangeSizeOf(p, dir, delta)
		} else if s := p.Surrounding(dir); s != nil {
			p.canvas.tryChangeSizeOf(s, dir.Opposite(), -delta)
		}
		return
	}

	position, size := p.position, p.size
	switch dir {
	case entity.DirectionLeft:
		width := math.Max(size.X+delta, p.minSize.X)
		position.X += size.X - width
		size.X = width
	case entity.DirectionTop:
		size.Y = math.Max(size.Y+delta, p.minSize.Y)
	case entity.DirectionRight:
		size.X = math.Max(size.X+delta, p.minSize.X)
	case entity.DirectionBottom:
		height := math.Max(size.Y+delta, p.minSize.Y)
		position.Y += size.Y - height
		size.Y = height
	}
	p.setBounds(position, size)
}

// CanResizeInDirection reports whether dragging the dir edge can have an effect.
func (p *Panel) CanResizeInDirection(dir entity.Direction) bool {
	if !dir.Valid() {
		return false
	}
	if !p.IsDocked() {
		return true
	}
	return p.Surrounding(dir) != nil
}

// Translate moves a floating panel by delta.
func (p *Panel) Translate(delta entity.Vector2) {
	if p.IsDocked() {
		return
	}
	p.position = p.position.Add(delta)
}

// MoveTo centres a floating panel on point and keeps it on the canvas.
func (p *Panel) MoveTo(point entity.Vector2) {
	if p.IsDocked() {
		return
	}
	p.position = point.Sub(p.size.Scale(0.5))
	p.restrictToBounds()
}

// BringForward puts a floating panel on top of the others.
func (p *Panel) BringForward() {
	g := p.Group()
	if g == nil || !g.floating {
		return
	}
	if idx := g.IndexOf(p); idx >= 0 && idx < len(g.children)-1 {
		_ = g.addElementAt(len(g.children), p)
	}
}

// SetActive shows or hides the panel. Hiding a docked panel moves it out
// of the docked tree.
func (p *Panel) SetActive(active bool) {
	if p.active == active || p.destroyed {
		return
	}
	p.active = active

	if !active {
		if p.IsDocked() {
			_ = p.canvas.floating.AddElement(p)
		}
		if !p.dummy {
			p.canvas.manager.emit(Event{Kind: EventPanelBecameInactive, Panel: p})
		}
		return
	}

	p.restrictToBounds()
	p.BringForward()
	if !p.dummy {
		p.canvas.manager.emit(Event{Kind: EventPanelBecameActive, Panel: p})
	}
}

func (p *Panel) Detach() error {
	return p.canvas.manager.DetachPanel(p)
}

func (p *Panel) DetachTab(index int) (*Panel, error) {
	return p.canvas.manager.DetachPanelTab(p, index)
}

func (p *Panel) DockToRoot(dir entity.Direction) error {
	return p.canvas.manager.AnchorPanelToCanvas(p, p.canvas, dir)
}

func (p *Panel) DockToPanel(anchor Element, dir entity.Direction) error {
	return p.canvas.manager.AnchorPanel(p, anchor, dir)
}

// ClampToCanvas pulls a floating panel back far enough onto the canvas to
// be grabbed again.
func (p *Panel) ClampToCanvas() { p.restrictToBounds() }

func (p *Panel) restrictToBounds() {
	if g := p.Group(); g != nil && g.floating {
		g.restrictPanelToBounds(p, p.canvas.size)
	}
}

func (p *Panel) String() string {
	if p.dummy {
		return "free space"
	}
	labels := make([]string, 0, len(p.tabs))
	for _, t := range p.tabs {
		label := t.label
		if label == "" {
			label = t.id
		}
		labels = append(labels, label)
	}
	return fmt.Sprintf("panel %d [%s]", p.id, strings.Join(labels, ", "))
}
