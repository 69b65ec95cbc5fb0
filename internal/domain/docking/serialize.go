package docking

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

var (
	ErrEmptyLayout        = errors.New("empty layout buffer")
	ErrUnsupportedVersion = entity.ErrUnsupportedLayoutVersion
	ErrMalformedLayout    = entity.ErrMalformedLayout
)

// Serialize encodes the canvas layout into an opaque buffer.
func Serialize(c *Canvas) ([]byte, error) {
	if c == nil {
		return nil, ErrCanvasNotFound
	}
	state := c.Snapshot()
	data, err := bson.Marshal(&state)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}

// Deserialize rebuilds a layout produced by Serialize onto c. The buffer
// is fully decoded and validated before the canvas is touched.
func Deserialize(data []byte, c *Canvas) error {
	if c == nil {
		return ErrCanvasNotFound
	}
	state, err := DecodeLayout(data)
	if err != nil {
		return err
	}
	return c.Restore(state)
}

// DecodeLayout decodes and validates a buffer produced by Serialize
// without applying it.
func DecodeLayout(data []byte) (*entity.LayoutState, error) {
	if len(data) == 0 {
		return nil, ErrEmptyLayout
	}

	var state entity.LayoutState
	if err := bson.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLayout, err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return &state, nil
}

// Snapshot settles the layout and captures it as flat records. Panels
// without tabs are left out.
func (c *Canvas) Snapshot() entity.LayoutState {
	c.Update()

	state := entity.LayoutState{
		Version:        entity.LayoutStateVersion,
		CanvasID:       c.id,
		Active:         c.active,
		LeaveFreeSpace: c.leaveFreeSpace,
		SavedAt:        time.Now().UTC(),
	}

	type pending struct {
		index int
		group *Group
	}

	state.Elements = append(state.Elements, groupRecord(c.root))
	queue := []pending{{index: 0, group: c.root}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		first := len(state.Elements)
		for _, e := range item.group.Children() {
			switch e := e.(type) {
			case *Group:
				queue = append(queue, pending{index: len(state.Elements), group: e})
				state.Elements = append(state.Elements, groupRecord(e))
			case *Panel:
				if rec, ok := panelRecord(e); ok {
					state.Elements = append(state.Elements, rec)
				}
			}
		}

		if count := len(state.Elements) - first; count > 0 {
			state.Elements[item.index].FirstChild = first
			state.Elements[item.index].ChildCount = count
		}
	}

	for _, e := range c.floating.Children() {
		p, ok := e.(*Panel)
		if !ok || p.dummy {
			continue
		}
		if rec, ok := panelRecord(p); ok {
			state.Floating = append(state.Floating, rec)
		}
	}

	return state
}

func groupRecord(g *Group) entity.ElementRecord {
	return entity.ElementRecord{
		Kind:       entity.RecordGroup,
		Size:       g.size,
		Horizontal: g.IsHorizontal(),
	}
}

func panelRecord(p *Panel) (entity.ElementRecord, bool) {
	if p.dummy {
		return entity.ElementRecord{Kind: entity.RecordDummy, Size: p.size}, true
	}
	if len(p.tabs) == 0 {
		return entity.ElementRecord{}, false
	}

	rec := entity.ElementRecord{
		Kind:         entity.RecordPanel,
		Size:         p.size,
		ActiveTab:    p.activeTab,
		FloatingSize: p.floatingSize,
		Tabs:         make([]string, 0, len(p.tabs)),
	}
	for _, t := range p.tabs {
		rec.Tabs = append(rec.Tabs, t.id)
	}

	if !p.IsDocked() {
		rec.Kind = entity.RecordFloating
		rec.Position = p.position
		rec.Active = p.active
		rec.FloatingSize = p.size
	}
	return rec, true
}

// sizeHolder remembers the saved size of a rebuilt element.
type sizeHolder struct {
	id   ElementID
	size entity.Vector2
}

type restorer struct {
	c      *Canvas
	state  *entity.LayoutState
	nested []sizeHolder
	// skipped counts tab ids that no longer resolve.
	skipped int
}

// Restore rebuilds state onto c. Restored docked elements go in front of
// whatever the root group already holds; tabs are looked up by id and
// taken from the panels currently hosting them. Ids that no longer resolve
// are skipped, and groups left without children are dropped.
func (c *Canvas) Restore(state *entity.LayoutState) error {
	if state == nil {
		return ErrEmptyLayout
	}
	if err := state.Validate(); err != nil {
		return err
	}

	r := &restorer{c: c, state: state}
	c.SetLeaveFreeSpace(state.LeaveFreeSpace)

	var holders []sizeHolder
	if len(state.Elements) > 0 {
		root := state.Elements[0]
		first, end := root.Children()
		for i := end - 1; i >= first && root.ChildCount > 0; i-- {
			e := r.build(i)
			if e == nil {
				continue
			}
			var err error
			if children := c.root.Children(); len(children) == 0 {
				err = c.root.AddElement(e)
			} else {
				err = c.root.AddElementBefore(children[0], e)
			}
			if err != nil {
				c.logger.Warn().Err(err).Uint64("element_id", uint64(e.ID())).Msg("dropping restored element")
				continue
			}
			holders = append([]sizeHolder{{id: e.ID(), size: state.Elements[i].Size}}, holders...)
		}
	}
	holders = append(holders, r.nested...)

	// The first pass settles the topology. Saved extents are then written
	// back as they were and laid out from the root down.
	if len(holders) > 0 {
		c.Update()
		for _, h := range holders {
			e := c.element(h.id)
			if e == nil {
				continue
			}
			if g := e.Group(); g == nil || g.floating {
				continue
			}
			e.base().size = h.size
		}
		c.root.setBounds(entity.Vector2{}, c.size)
		c.ensureMinimumSize()
	}

	for _, rec := range state.Floating {
		p := r.buildPanel(rec)
		if p == nil {
			continue
		}
		if err := c.manager.DetachPanel(p); err != nil {
			c.logger.Warn().Err(err).Uint64("panel_id", uint64(p.ID())).Msg("restoring floating panel")
		}
		p.restrictToBounds()
		p.BringForward()
	}

	c.active = state.Active

	c.logger.Info().
		Int("elements", len(state.Elements)).
		Int("floating", len(state.Floating)).
		Int("skipped_tabs", r.skipped).
		Msg("layout restored")
	return nil
}

func (r *restorer) build(i int) Element {
	c := r.c
	rec := r.state.Elements[i]

	switch rec.Kind {
	case entity.RecordDummy:
		if !c.leaveFreeSpace {
			return nil
		}
		return c.dummy
	case entity.RecordPanel:
		if p := r.buildPanel(rec); p != nil {
			return p
		}
		return nil
	case entity.RecordGroup:
		if rec.ChildCount == 0 {
			return nil
		}

		dir := entity.DirectionTop
		if rec.Horizontal {
			dir = entity.DirectionRight
		}
		g := c.newGroup(dir)

		first, end := rec.Children()
		for j := first; j < end; j++ {
			child := r.build(j)
			if child == nil {
				continue
			}
			if err := g.AddElement(child); err != nil {
				c.logger.Warn().Err(err).Uint64("element_id", uint64(child.ID())).Msg("dropping restored element")
				continue
			}
			r.nested = append(r.nested, sizeHolder{id: child.ID(), size: r.state.Elements[j].Size})
		}

		if len(g.children) == 0 {
			c.release(g)
			return nil
		}
		return g
	}
	return nil
}

func (r *restorer) buildPanel(rec entity.ElementRecord) *Panel {
	c := r.c
	m := c.manager

	var p *Panel
	for _, id := range rec.Tabs {
		t, ok := m.tabs.Lookup(id)
		if !ok {
			r.skipped++
			c.logger.Debug().Str("tab_id", id).Msg("skipping unresolved tab")
			continue
		}

		if p != nil {
			if _, err := p.AddTab(t, -1); err != nil {
				c.logger.Warn().Err(err).Str("tab_id", id).Msg("skipping restored tab")
			}
			continue
		}

		var err error
		if t.panel == nil || t.panel.canvas != c {
			p, err = m.CreatePanel(c, t)
		} else {
			p, err = t.Detach()
		}
		if err != nil {
			p = nil
		}
	}

	if p == nil {
		return nil
	}

	if rec.ActiveTab >= 0 && rec.ActiveTab < len(rec.Tabs) {
		if idx := p.TabIndexByID(rec.Tabs[rec.ActiveTab]); idx >= 0 {
			p.setActiveTab(idx)
		}
	}
	if rec.Kind == entity.RecordFloating {
		p.position = rec.Position
		p.SetActive(rec.Active)
	}
	p.SetFloatingSize(rec.FloatingSize)

	return p
}
