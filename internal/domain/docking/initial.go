package docking

import (
	"errors"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

// ErrCanvasStarted is returned when an initial layout is applied twice.
var ErrCanvasStarted = errors.New("canvas already started")

// freeSpaceGrowth is large enough to squeeze every docked panel down to
// its minimum size when handed to the free space placeholder.
const freeSpaceGrowth = 99999

// TabSpec declares one tab of an initial panel.
type TabSpec struct {
	Content any
	Options TabOptions
}

// PanelSpec declares a panel by its tabs. The first tab is active.
type PanelSpec struct {
	Tabs []TabSpec
}

// AnchoredPanelSpec declares a docked panel, the side of its parent it
// docks to, and the panels docked to it in turn. Top-level entries dock
// to the free space.
type AnchoredPanelSpec struct {
	Panel       PanelSpec
	Direction   entity.Direction
	InitialSize entity.Vector2
	Children    []AnchoredPanelSpec
}

// InitialLayout is the layout a canvas starts with.
type InitialLayout struct {
	Anchored []AnchoredPanelSpec
	Floating []PanelSpec
}

// Start builds the initial layout. Docked panels start at their minimum
// size when free space is kept, then declared initial sizes are applied.
func (c *Canvas) Start(layout InitialLayout) error {
	if c.started {
		return ErrCanvasStarted
	}
	c.started = true

	sizes := make(map[ElementID]entity.Vector2)
	c.createAnchored(layout.Anchored, c.dummy, sizes)

	for _, spec := range layout.Floating {
		c.createInitialPanel(spec, nil, entity.DirectionNone)
	}

	c.Update()

	if c.leaveFreeSpace {
		c.dummy.ResizeTo(entity.Vec(freeSpaceGrowth, freeSpaceGrowth), entity.DirectionRight, entity.DirectionBottom)
	}

	if len(sizes) > 0 {
		c.resizeInitial(c.root, sizes)
	}

	c.logger.Debug().
		Int("anchored", len(layout.Anchored)).
		Int("floating", len(layout.Floating)).
		Msg("canvas started")
	return nil
}

func (c *Canvas) createAnchored(specs []AnchoredPanelSpec, anchor *Panel, sizes map[ElementID]entity.Vector2) {
	for _, spec := range specs {
		p := c.createInitialPanel(spec.Panel, anchor, spec.Direction)
		if p == nil {
			p = anchor
		} else if !spec.InitialSize.IsZero() {
			sizes[p.id] = spec.InitialSize
		}
		c.createAnchored(spec.Children, p, sizes)
	}
}

func (c *Canvas) createInitialPanel(spec PanelSpec, anchor *Panel, dir entity.Direction) *Panel {
	m := c.manager

	var p *Panel
	for _, ts := range spec.Tabs {
		t, err := m.CreateTab(ts.Content, ts.Options)
		if err != nil {
			c.logger.Warn().Err(err).Str("tab_id", ts.Options.ID).Msg("skipping initial tab")
			continue
		}

		if p == nil {
			if p, err = m.CreatePanel(c, t); err != nil {
				c.logger.Warn().Err(err).Msg("creating initial panel")
				return nil
			}
			continue
		}
		_, _ = p.AddTab(t, -1)
	}

	if p == nil {
		return nil
	}
	p.setActiveTab(0)

	if anchor == nil || !dir.Valid() {
		return p
	}

	var err error
	if anchor.dummy && !anchor.IsDocked() {
		err = p.DockToRoot(dir)
	} else {
		err = p.DockToPanel(anchor, dir)
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("direction", dir.String()).Msg("docking initial panel")
	}
	return p
}

func (c *Canvas) resizeInitial(g *Group, sizes map[ElementID]entity.Vector2) {
	for _, e := range g.Children() {
		switch e := e.(type) {
		case *Panel:
			if size, ok := sizes[e.id]; ok {
				e.ResizeTo(size, entity.DirectionRight, entity.DirectionTop)
			}
		case *Group:
			c.resizeInitial(e, sizes)
		}
	}
}
