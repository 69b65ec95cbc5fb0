package docking

import "github.com/bnema/dynpanels/internal/domain/entity"

// resizeDelta is the pending change for one element of a resize chain.
type resizeDelta struct {
	element      Element
	posX, posY   float64
	sizeX, sizeY float64
}

// resizer is scratch space for tryChangeSizeOf, reused across calls.
// Only entries below index belong to the chain being built.
type resizer struct {
	deltas []resizeDelta
	index  int
}

func (r *resizer) push(e Element) {
	if r.index == len(r.deltas) {
		r.deltas = append(r.deltas, resizeDelta{element: e})
	} else {
		r.deltas[r.index] = resizeDelta{element: e}
	}
	r.index++
}

// grow extends entry i by delta on its dir side.
func (r *resizer) grow(i int, dir entity.Direction, delta float64) {
	d := &r.deltas[i]
	switch dir {
	case entity.DirectionLeft:
		d.posX -= delta
		d.sizeX += delta
	case entity.DirectionTop:
		d.sizeY += delta
	case entity.DirectionRight:
		d.sizeX += delta
	default:
		d.posY -= delta
		d.sizeY += delta
	}
}

func (r *resizer) reset() {
	for i := range r.index {
		r.deltas[i].element = nil
	}
	r.index = 0
}

// tryChangeSizeOf grows e by up to delta on its dir side, taking the space
// from whatever lies beyond that edge. Slack is consumed outwards: each
// element gives what it has above its minimum size and the remainder is
// requested from the next element further out, crossing group boundaries
// as needed. It returns the amount e grew by, which is less than delta
// when the chain runs out of slack.
func (c *Canvas) tryChangeSizeOf(e Element, dir entity.Direction, delta float64) float64 {
	if !alive(e) || !dir.Valid() || delta <= minSizeTolerance {
		return 0
	}

	surrounding := e.Surrounding(dir)
	if surrounding == nil {
		return 0
	}

	// The element sharing a boundary with surrounding may be an ancestor of e.
	near := surrounding.Surrounding(dir.Opposite())
	if near == nil {
		return 0
	}

	r := &c.resizer
	r.index = 0
	defer r.reset()

	r.push(near)
	moved := c.tryChangeSizeOfInternal(surrounding, dir, delta)
	if r.index <= 1 {
		return 0
	}

	r.grow(0, dir, moved)
	for i := range r.index {
		d := r.deltas[i]
		position := d.element.Position().Add(entity.Vec(d.posX, d.posY))
		size := d.element.Size().Add(entity.Vec(d.sizeX, d.sizeY))
		d.element.setBounds(position, size)
	}

	return moved
}

// tryChangeSizeOfInternal shrinks e from its far side (opposite dir) by up
// to delta and returns how much it yielded. Elements in the same group as
// their outer neighbour only shift when that neighbour yields; across a
// group boundary the neighbouring subtree is resized instead.
func (c *Canvas) tryChangeSizeOfInternal(e Element, dir entity.Direction, delta float64) float64 {
	r := &c.resizer
	curr := r.index
	r.push(e)

	flexible := e.Size().Axis(dir) - e.MinSize().Axis(dir)
	if flexible > minSizeTolerance {
		if flexible >= delta {
			flexible = delta
			delta = 0
		} else {
			delta -= flexible
		}
		r.grow(curr, dir.Opposite(), -flexible)
	} else {
		flexible = 0
	}

	if delta <= minSizeTolerance {
		return flexible
	}

	surrounding := e.Surrounding(dir)
	if surrounding == nil {
		if flexible == 0 {
			r.index = curr
		}
		return flexible
	}

	sameGroup := surrounding.base().group == e.base().group
	if !sameGroup {
		outer := surrounding.Surrounding(dir.Opposite())
		if outer == nil {
			if flexible == 0 {
				r.index = curr
			}
			return flexible
		}
		r.push(outer)
	}

	moved := c.tryChangeSizeOfInternal(surrounding, dir, delta)
	if moved > minSizeTolerance {
		if sameGroup {
			d := &r.deltas[curr]
			switch dir {
			case entity.DirectionLeft:
				d.posX -= moved
			case entity.DirectionTop:
				d.posY += moved
			case entity.DirectionRight:
				d.posX += moved
			default:
				d.posY -= moved
			}
			flexible += moved
		} else {
			r.grow(curr+1, dir, moved)
		}
	} else if flexible == 0 {
		r.index = curr
	} else {
		r.index = curr + 1
	}

	return flexible
}
