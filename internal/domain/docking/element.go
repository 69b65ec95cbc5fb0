// Package docking implements the docked panel layout engine: a tree of
// horizontal and vertical groups holding panels and free space, the bounds
// and resize solvers that run over it, and the operations that anchor and
// detach panels at runtime.
package docking

import (
	"errors"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

// minSizeTolerance absorbs float noise when comparing sizes.
const minSizeTolerance = 1e-4

// ElementID addresses an element inside its canvas arena. Zero means none.
type ElementID uint64

var (
	ErrNilElement         = errors.New("element is nil")
	ErrElementNotFound    = errors.New("element not found in group")
	ErrIndexOutOfRange    = errors.New("insert index out of range")
	ErrInvalidDirection   = errors.New("invalid anchor direction")
	ErrSelfAnchor         = errors.New("cannot anchor an element to itself")
	ErrAnchorUnanchored   = errors.New("cannot anchor to a floating element")
	ErrAnchorInsideSource = errors.New("anchor lies inside the anchored element")
	ErrImmovableElement   = errors.New("canvas root groups cannot be moved")
	ErrCanvasMismatch     = errors.New("elements belong to different canvases")
	ErrTabIndexOutOfRange = errors.New("tab index out of range")
	ErrNilTab             = errors.New("tab is nil")
	ErrDuplicateTabID     = errors.New("tab id already registered")
	ErrLastDockedPanel    = errors.New("cannot detach the last docked panel")
	ErrPanelDestroyed     = errors.New("panel has been destroyed")
	ErrCanvasNotFound     = errors.New("canvas not found")
)

// Element is anything that can sit inside a Group: a *Panel or a *Group.
type Element interface {
	ID() ElementID
	Canvas() *Canvas
	// Group returns the owning group, or nil for canvas roots and
	// elements that have been pruned from the tree.
	Group() *Group
	Position() entity.Vector2
	Size() entity.Vector2
	MinSize() entity.Vector2
	Rect() entity.Rect
	// Surrounding returns what lies immediately beyond the given edge
	// as of the last layout pass, or nil at the canvas border.
	Surrounding(dir entity.Direction) Element
	ResizeTo(size entity.Vector2, horizontal, vertical entity.Direction)
	DockToRoot(dir entity.Direction) error
	DockToPanel(anchor Element, dir entity.Direction) error

	base() *node
	setBounds(position, size entity.Vector2)
}

// node holds what panels and groups have in common. Links to other
// elements are ids resolved through the canvas arena.
type node struct {
	id           ElementID
	canvas       *Canvas
	group        ElementID
	position     entity.Vector2
	size         entity.Vector2
	minSize      entity.Vector2
	surroundings [4]ElementID
}

func (n *node) ID() ElementID            { return n.id }
func (n *node) Canvas() *Canvas          { return n.canvas }
func (n *node) Position() entity.Vector2 { return n.position }
func (n *node) Size() entity.Vector2     { return n.size }
func (n *node) MinSize() entity.Vector2  { return n.minSize }
func (n *node) base() *node              { return n }

func (n *node) Rect() entity.Rect {
	return entity.Rect{Position: n.position, Size: n.size}
}

func (n *node) Group() *Group {
	if n.group == 0 {
		return nil
	}
	g, _ := n.canvas.element(n.group).(*Group)
	return g
}

func (n *node) Surrounding(dir entity.Direction) Element {
	if !dir.Valid() {
		return nil
	}
	return n.canvas.element(n.surroundings[dir])
}

func (n *node) setSurroundings(left, top, right, bottom ElementID) {
	n.surroundings[entity.DirectionLeft] = left
	n.surroundings[entity.DirectionTop] = top
	n.surroundings[entity.DirectionRight] = right
	n.surroundings[entity.DirectionBottom] = bottom
}

// alive reports whether e still exists in its canvas.
func alive(e Element) bool {
	if e == nil {
		return false
	}
	return e.Canvas().element(e.ID()) != nil
}

// idOf returns e's id, or zero for nil.
func idOf(e Element) ElementID {
	if e == nil {
		return 0
	}
	return e.ID()
}

// contains reports whether e is, or is nested inside, g.
func contains(g *Group, e Element) bool {
	for cur := e; cur != nil; {
		if cur.ID() == g.ID() {
			return true
		}
		parent := cur.Group()
		if parent == nil {
			return false
		}
		cur = parent
	}
	return false
}
