package docking

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

const (
	sequenceSeeds = 64
	sequenceSteps = 16
	// Eight panels of 100x120 fit the canvas along either axis, so every
	// minimum can be honoured whatever the arrangement.
	sequenceMaxDocked = 8
)

var sequenceCanvasSize = entity.Vec(1600, 1200)

type layoutSequence struct {
	t    *testing.T
	rng  *rand.Rand
	c    *Canvas
	tabs []string
}

func (s *layoutSequence) direction() entity.Direction {
	return entity.Direction(s.rng.IntN(4))
}

func (s *layoutSequence) pick(panels []*Panel) *Panel {
	if len(panels) == 0 {
		return nil
	}
	return panels[s.rng.IntN(len(panels))]
}

func (s *layoutSequence) panels(docked bool) []*Panel {
	var out []*Panel
	for _, p := range s.c.Panels() {
		if p.IsDocked() == docked {
			out = append(out, p)
		}
	}
	return out
}

// dock anchors p to the canvas edge, to a docked panel or to the free space.
func (s *layoutSequence) dock(p *Panel) string {
	dir := s.direction()
	anchors := s.panels(true)
	if s.c.dummy.IsDocked() {
		anchors = append(anchors, s.c.dummy)
	}

	if len(anchors) == 0 || s.rng.IntN(3) == 0 {
		require.NoError(s.t, p.DockToRoot(dir))
		return fmt.Sprintf("dock %s to canvas %s", p, dir)
	}
	anchor := s.pick(anchors)
	require.NoError(s.t, p.DockToPanel(anchor, dir))
	return fmt.Sprintf("dock %s %s of %s", p, dir, anchor)
}

func (s *layoutSequence) step() string {
	docked := s.panels(true)

	switch op := s.rng.IntN(5); {
	case op <= 1 && len(docked) < sequenceMaxDocked:
		id := fmt.Sprintf("t%d", len(s.tabs))
		s.tabs = append(s.tabs, id)
		return s.dock(newPanel(s.t, s.c, id))
	case op == 2 && len(docked) > 0:
		p := s.pick(docked)
		require.NoError(s.t, p.Detach())
		return fmt.Sprintf("detach %s", p)
	case op == 3 && len(docked) < sequenceMaxDocked && len(s.panels(false)) > 0:
		return s.dock(s.pick(s.panels(false)))
	default:
		if s.c.dummy.IsDocked() {
			docked = append(docked, s.c.dummy)
		}
		p := s.pick(docked)
		if p == nil {
			return "nothing to resize"
		}
		dir := s.direction()
		delta := s.rng.Float64()*600 - 300
		p.ResizeEdge(dir, delta)
		return fmt.Sprintf("drag %s edge of %s by %.1f", dir, p, delta)
	}
}

func dockedRects(c *Canvas) map[ElementID]entity.Rect {
	rects := make(map[ElementID]entity.Rect)
	forEachElement(c.root, func(_ *Group, e Element) { rects[e.ID()] = e.Rect() })
	return rects
}

func TestLayoutSequences(t *testing.T) {
	const settle = 1e-4
	cmpOpts := []cmp.Option{
		cmpopts.IgnoreFields(entity.LayoutState{}, "SavedAt"),
		cmpopts.EquateApprox(0, settle),
		cmpopts.EquateEmpty(),
	}

	for seed := range uint64(sequenceSeeds) {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			c := newTestCanvas(t, sequenceCanvasSize)
			s := &layoutSequence{t: t, rng: rand.New(rand.NewPCG(seed, 0x5eed)), c: c}

			var history []string
			for range sequenceSteps {
				history = append(history, s.step())
				c.Update()
				assertLayoutInvariants(t, c)
				if t.Failed() {
					t.Fatalf("layout broke after:\n%s", strings.Join(history, "\n"))
				}
			}

			before := dockedRects(c)
			hierarchy := c.Hierarchy()
			markDirty(c.root)
			c.Update()
			assert.Equal(t, hierarchy, c.Hierarchy(), "a settled layout keeps its shape")
			after := dockedRects(c)
			require.Len(t, after, len(before))
			for id, want := range before {
				got := after[id]
				assert.True(t, want.Position.ApproxEqual(got.Position, settle), "element %d moved: %v -> %v", id, want, got)
				assert.True(t, want.Size.ApproxEqual(got.Size, settle), "element %d resized: %v -> %v", id, want, got)
			}

			data, err := Serialize(c)
			require.NoError(t, err)
			dst := restoreTargetSized(t, sequenceCanvasSize, s.tabs...)
			require.NoError(t, Deserialize(data, dst))

			if diff := cmp.Diff(c.Snapshot(), dst.Snapshot(), cmpOpts...); diff != "" {
				t.Errorf("restored layout mismatch (-want +got):\n%s\nafter:\n%s", diff, strings.Join(history, "\n"))
			}
			assertSameRects(t, panelRects(c), panelRects(dst), settle)
			assertLayoutInvariants(t, dst)
		})
	}
}
