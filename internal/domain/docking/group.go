package docking

import (
	"math"
	"slices"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

// Group is an internal tree node: an ordered run of elements along one axis.
// Index 0 is the left-most (horizontal) or bottom-most (vertical) child.
//
// The floating group of a canvas is also a Group, with direction None. Its
// children are not partitioned; each one keeps its own rectangle.
type Group struct {
	node
	direction entity.Direction
	children  []ElementID
	dirty     bool
	floating  bool
}

// Direction returns the orientation the group was created with.
func (g *Group) Direction() entity.Direction { return g.direction }

// IsHorizontal reports whether children are laid out left to right.
func (g *Group) IsHorizontal() bool { return g.direction.IsHorizontal() }

// IsFloating reports whether g is its canvas's floating group.
func (g *Group) IsFloating() bool { return g.floating }

// IsInSameDirection reports whether dir lies on the group's axis.
func (g *Group) IsInSameDirection(dir entity.Direction) bool {
	return g.direction.SameAxis(dir)
}

// Count returns the number of children, including ones not yet cleaned up
// by a layout pass.
func (g *Group) Count() int { return len(g.children) }

// Child returns the element at index i, or nil.
func (g *Group) Child(i int) Element {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	return g.canvas.element(g.children[i])
}

// Children returns the live children in order.
func (g *Group) Children() []Element {
	out := make([]Element, 0, len(g.children))
	for _, id := range g.children {
		if e := g.canvas.element(id); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// IndexOf returns the position of e among the children, or -1.
func (g *Group) IndexOf(e Element) int {
	if e == nil {
		return -1
	}
	return slices.Index(g.children, e.ID())
}

// ResizeTo asks the parent group to bring g to size. Root groups follow the canvas.
func (g *Group) ResizeTo(size entity.Vector2, horizontal, vertical entity.Direction) {
	if parent := g.Group(); parent != nil {
		parent.resizeElementTo(g, size, horizontal, vertical)
	}
}

func (g *Group) DockToRoot(dir entity.Direction) error {
	return g.canvas.manager.AnchorPanelToCanvas(g, g.canvas, dir)
}

func (g *Group) DockToPanel(anchor Element, dir entity.Direction) error {
	return g.canvas.manager.AnchorPanel(g, anchor, dir)
}

func (g *Group) String() string {
	switch {
	case g.floating:
		return "floating group"
	case g.IsHorizontal():
		return "horizontal group"
	default:
		return "vertical group"
	}
}

// setDirty flags g and every ancestor for the next layout pass.
func (g *Group) setDirty() {
	g.dirty = true
	for parent := g.Group(); parent != nil; parent = parent.Group() {
		parent.dirty = true
	}
	g.canvas.SetDirty()
}

// AddElement appends e, moving it out of its previous group.
func (g *Group) AddElement(e Element) error {
	return g.addElementAt(len(g.children), e)
}

// AddElementBefore inserts e just before pivot.
func (g *Group) AddElementBefore(pivot, e Element) error {
	idx := g.IndexOf(pivot)
	if idx < 0 {
		return ErrElementNotFound
	}
	return g.addElementAt(idx, e)
}

// AddElementAfter inserts e just after pivot.
func (g *Group) AddElementAfter(pivot, e Element) error {
	idx := g.IndexOf(pivot)
	if idx < 0 {
		return ErrElementNotFound
	}
	return g.addElementAt(idx+1, e)
}

func (g *Group) addElementAt(index int, e Element) error {
	if e == nil || !alive(e) {
		return ErrNilElement
	}
	if e.Canvas() != g.canvas {
		return ErrCanvasMismatch
	}
	if index < 0 || index > len(g.children) {
		return ErrIndexOutOfRange
	}
	if sub, ok := e.(*Group); ok {
		if sub.floating || sub == g.canvas.root {
			return ErrImmovableElement
		}
		if contains(sub, g) {
			return ErrAnchorInsideSource
		}
	}

	elementIndex := g.IndexOf(e)
	if elementIndex >= 0 && e.base().group != g.id {
		// Stale slot left behind by an earlier move.
		if index > elementIndex {
			index--
		}
		g.children = slices.Delete(g.children, elementIndex, elementIndex+1)
		elementIndex = -1
	}

	if elementIndex == index {
		return nil
	}

	if old := e.Group(); old != nil {
		old.setDirty()
		if old != g {
			old.removeChild(e)
		}
	}

	if elementIndex < 0 {
		g.children = slices.Insert(g.children, index, e.ID())
		e.base().group = g.id
	} else {
		if elementIndex > index {
			elementIndex++
		}
		g.children = slices.Insert(g.children, index, e.ID())
		g.children = slices.Delete(g.children, elementIndex, elementIndex+1)
	}

	g.setDirty()
	return nil
}

func (g *Group) removeChild(e Element) {
	if idx := g.IndexOf(e); idx >= 0 {
		g.children = slices.Delete(g.children, idx, idx+1)
	}
	if e.base().group == g.id {
		e.base().group = 0
	}
}

// replaceElement puts after into before's slot. before is parked in the
// floating group until the caller places it again.
func (g *Group) replaceElement(before, after Element) error {
	if before == nil || after == nil {
		return ErrNilElement
	}
	if before.ID() == after.ID() {
		return nil
	}

	index := g.IndexOf(before)
	if index < 0 {
		return ErrElementNotFound
	}

	if before.base().group == g.id {
		g.children = slices.Delete(g.children, index, index+1)
		g.canvas.floating.children = append(g.canvas.floating.children, before.ID())
		before.base().group = g.canvas.floating.id
		g.canvas.floating.setDirty()
	}

	return g.addElementAt(index, after)
}

// setBounds fits the children into a new rectangle. Along the group's axis
// the extents scale in proportion to their current value, except that no
// child is taken below its minimum size while the group can still hold
// every minimum. Across the axis every child gets the full extent.
func (g *Group) setBounds(position, size entity.Vector2) {
	if g.floating {
		for _, e := range g.Children() {
			if p, ok := e.(*Panel); ok {
				g.restrictPanelToBounds(p, size)
			}
		}
		return
	}

	g.position = position
	children := g.Children()

	if len(children) == 1 {
		children[0].setBounds(position, size)
	} else if len(children) > 1 {
		axis := entity.DirectionTop
		if g.IsHorizontal() {
			axis = entity.DirectionRight
		}

		extents := make([]float64, len(children))
		mins := make([]float64, len(children))
		for i, child := range children {
			extents[i] = child.Size().Axis(axis)
			mins[i] = child.MinSize().Axis(axis)
		}
		extents = fitExtents(extents, mins, size.Axis(axis))

		for i, child := range children {
			childSize := size.WithAxis(axis, extents[i])
			child.setBounds(position, childSize)
			position = position.WithAxis(axis, position.Axis(axis)+extents[i])
		}
	}

	g.size = size
}

// fitExtents scales extents so they add up to total. Extents that would
// drop under their minimum are pinned to it and the rest share what is
// left. When total cannot cover the minimums they shrink together.
func fitExtents(extents, mins []float64, total float64) []float64 {
	out := make([]float64, len(extents))

	var minSum float64
	for _, m := range mins {
		minSum += m
	}
	if minSum > 0 && total < minSum-minSizeTolerance {
		for i, m := range mins {
			out[i] = m * total / minSum
		}
		return out
	}

	pinned := make([]bool, len(extents))
	remaining := total
	for {
		var free float64
		freeCount := 0
		for i, e := range extents {
			if !pinned[i] {
				free += e
				freeCount++
			}
		}
		if freeCount == 0 {
			out[len(out)-1] += remaining
			return out
		}

		for i, e := range extents {
			if pinned[i] {
				continue
			}
			if free > 0 {
				out[i] = e * remaining / free
			} else {
				out[i] = remaining / float64(freeCount)
			}
		}

		clamped := false
		for i := range extents {
			if !pinned[i] && out[i] < mins[i] {
				out[i] = mins[i]
				pinned[i] = true
				remaining -= mins[i]
				clamped = true
			}
		}
		if !clamped {
			return out
		}
	}
}

// updateLayout simplifies the subtree and recomputes aggregate sizes.
//
// Subgroups are visited from the last index down so splicing never shifts
// slots still to be visited. When a single-child subgroup is replaced by its
// child the same slot is examined again, as the new occupant may itself
// need collapsing.
func (g *Group) updateLayout() {
	if !g.dirty {
		return
	}

	c := g.canvas
	g.children = slices.DeleteFunc(g.children, func(id ElementID) bool {
		e := c.element(id)
		return e == nil || e.base().group != g.id
	})

	for i := len(g.children) - 1; i >= 0; i-- {
		sub, ok := c.element(g.children[i]).(*Group)
		if !ok {
			continue
		}

		sub.updateLayout()

		switch count := len(sub.children); {
		case count == 0:
			g.children = slices.Delete(g.children, i, i+1)
			c.release(sub)
		case count == 1:
			only := sub.children[0]
			g.children[i] = only
			c.element(only).base().group = g.id
			sub.children = nil
			c.release(sub)
			i++
		case g.floating || sub.IsInSameDirection(g.direction):
			spliced := sub.children
			g.children = slices.Replace(g.children, i, i+1, spliced...)
			for _, id := range spliced {
				c.element(id).base().group = g.id
			}
			sub.children = nil
			c.release(sub)
		}
	}

	if g.floating {
		g.dirty = false
		return
	}

	var size, minSize entity.Vector2
	horizontal := g.IsHorizontal()
	var dummy *Panel

	for i, id := range g.children {
		e := c.element(id)
		elementSize := e.Size()
		elementMinSize := e.MinSize()

		// A zero-sized element could never be grabbed again.
		rescue := false
		if elementSize.X == 0 && elementMinSize.X > 0 {
			elementSize.X = math.Min(1, elementMinSize.X)
			rescue = true
		}
		if elementSize.Y == 0 && elementMinSize.Y > 0 {
			elementSize.Y = math.Min(1, elementMinSize.Y)
			rescue = true
		}
		if rescue {
			e.setBounds(e.Position(), elementSize)
		}

		switch {
		case i == 0:
			size = elementSize
			minSize = elementMinSize
		case horizontal:
			size.X += elementSize.X
			minSize.X += elementMinSize.X
			size.Y = math.Min(size.Y, elementSize.Y)
			minSize.Y = math.Max(minSize.Y, elementMinSize.Y)
		default:
			size.Y += elementSize.Y
			minSize.Y += elementMinSize.Y
			size.X = math.Min(size.X, elementSize.X)
			minSize.X = math.Max(minSize.X, elementMinSize.X)
		}

		if p, ok := e.(*Panel); ok && p.dummy {
			dummy = p
		}
	}

	if dummy != nil {
		var flexible entity.Vector2
		if size.X < g.size.X {
			flexible.X = g.size.X - size.X
			size.X = g.size.X
		}
		if size.Y < g.size.Y {
			flexible.Y = g.size.Y - size.Y
			size.Y = g.size.Y
		}
		dummy.size = dummy.size.Add(flexible)
	}

	g.size = size
	g.minSize = minSize
	g.dirty = false
}

// updateSurroundings threads the neighbour set through the children. Along
// the group's axis each child sees its siblings, across it the group's own
// neighbours pass through unchanged.
func (g *Group) updateSurroundings(left, top, right, bottom ElementID) {
	g.setSurroundings(left, top, right, bottom)

	if g.floating {
		for _, e := range g.Children() {
			e.base().setSurroundings(0, 0, 0, 0)
		}
		return
	}

	horizontal := g.IsHorizontal()
	last := len(g.children) - 1

	for i, id := range g.children {
		if horizontal {
			left = g.surroundings[entity.DirectionLeft]
			if i > 0 {
				left = g.children[i-1]
			}
			right = g.surroundings[entity.DirectionRight]
			if i < last {
				right = g.children[i+1]
			}
		} else {
			bottom = g.surroundings[entity.DirectionBottom]
			if i > 0 {
				bottom = g.children[i-1]
			}
			top = g.surroundings[entity.DirectionTop]
			if i < last {
				top = g.children[i+1]
			}
		}

		switch e := g.canvas.element(id).(type) {
		case *Group:
			e.updateSurroundings(left, top, right, bottom)
		case *Panel:
			e.setSurroundings(left, top, right, bottom)
		}
	}
}

// resizeElementTo grows or shrinks e towards size. Growth is taken from
// the neighbour in the requested direction first and then from the
// opposite one. Shrinking hands the freed space to those neighbours.
func (g *Group) resizeElementTo(e Element, size entity.Vector2, horizontal, vertical entity.Direction) {
	if !horizontal.IsHorizontal() {
		horizontal = entity.DirectionRight
	}
	if !vertical.IsVertical() {
		vertical = entity.DirectionBottom
	}

	g.resizeAxis(e, size.X, horizontal)
	g.resizeAxis(e, size.Y, vertical)
}

func (g *Group) resizeAxis(e Element, target float64, dir entity.Direction) {
	c := g.canvas
	opposite := dir.Opposite()

	flexible := target - e.Size().Axis(dir)
	if flexible > minSizeTolerance {
		c.tryChangeSizeOf(e, dir, flexible)

		flexible = target - e.Size().Axis(dir)
		if flexible > minSizeTolerance {
			c.tryChangeSizeOf(e, opposite, flexible)
		}
	} else if flexible < -minSizeTolerance {
		c.tryChangeSizeOf(e.Surrounding(dir), opposite, -flexible)

		flexible = target - e.Size().Axis(dir)
		if flexible < -minSizeTolerance {
			c.tryChangeSizeOf(e.Surrounding(opposite), dir, -flexible)
		}
	}
}

func (g *Group) ensureMinimumSize() {
	for _, e := range g.Children() {
		g.ensureMinimumSizeOf(e)
	}
}

func (g *Group) ensureMinimumSizeOf(e Element) {
	if g.floating {
		if p, ok := e.(*Panel); ok {
			g.growFloatingPanel(p)
		}
		return
	}

	c := g.canvas
	flexibleWidth := e.Size().X - e.MinSize().X
	if flexibleWidth < -minSizeTolerance {
		c.tryChangeSizeOf(e, entity.DirectionRight, -flexibleWidth)

		flexibleWidth = e.Size().X - e.MinSize().X
		if flexibleWidth < -minSizeTolerance {
			c.tryChangeSizeOf(e, entity.DirectionLeft, -flexibleWidth)
		}
	}

	flexibleHeight := e.Size().Y - e.MinSize().Y
	if flexibleHeight < -minSizeTolerance {
		c.tryChangeSizeOf(e, entity.DirectionBottom, -flexibleHeight)

		flexibleHeight = e.Size().Y - e.MinSize().Y
		if flexibleHeight < -minSizeTolerance {
			c.tryChangeSizeOf(e, entity.DirectionTop, -flexibleHeight)
		}
	}

	if sub, ok := e.(*Group); ok {
		sub.ensureMinimumSize()
	}
}

// growFloatingPanel enlarges an undersized floating panel around its centre.
func (g *Group) growFloatingPanel(p *Panel) {
	position, size, minSize := p.position, p.size, p.minSize
	changed := false

	if flexible := size.X - minSize.X; flexible < -minSizeTolerance {
		size.X -= flexible
		position.X += flexible * 0.5
		changed = true
	}
	if flexible := size.Y - minSize.Y; flexible < -minSizeTolerance {
		size.Y -= flexible
		position.Y += flexible * 0.5
		changed = true
	}

	if changed {
		p.setBounds(position, size)
		g.restrictPanelToBounds(p, g.canvas.size)
	}
}

// restrictPanelToBounds keeps enough of a floating panel on the canvas to
// grab it again: the top edge stays within the canvas and at least
// FloatingVisibleHeight above its bottom, and FloatingVisibleWidth of the
// panel stays left of the right border.
func (g *Group) restrictPanelToBounds(p *Panel, canvasSize entity.Vector2) {
	settings := g.canvas.settings
	position, size := p.position, p.size

	if top := position.Y + size.Y; top < settings.FloatingVisibleHeight {
		position.Y = settings.FloatingVisibleHeight - size.Y
	} else if top > canvasSize.Y {
		position.Y = canvasSize.Y - size.Y
	}

	if position.X < 0 {
		position.X = 0
	} else if canvasSize.X-position.X < settings.FloatingVisibleWidth {
		position.X = canvasSize.X - settings.FloatingVisibleWidth
	}

	p.position = position
}
