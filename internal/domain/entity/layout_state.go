package entity

import (
	"errors"
	"fmt"
	"time"
)

// LayoutStateVersion is the current schema version for serialized layouts.
// Increment when making breaking changes to the record format.
const LayoutStateVersion = 1

var (
	// ErrUnsupportedLayoutVersion is returned for buffers written by another schema version.
	ErrUnsupportedLayoutVersion = errors.New("unsupported layout version")
	// ErrMalformedLayout is returned when the record table does not describe a tree.
	ErrMalformedLayout = errors.New("malformed layout")
)

// RecordKind tags an ElementRecord.
type RecordKind string

const (
	RecordGroup    RecordKind = "group"
	RecordPanel    RecordKind = "panel"
	RecordFloating RecordKind = "floating"
	RecordDummy    RecordKind = "dummy"
)

// LayoutState is the flat, pointer-free form of one canvas layout.
//
// Elements holds the docked tree. Elements[0] is the root group and the
// children of every group occupy the contiguous range
// [FirstChild, FirstChild+ChildCount). Children always come after their parent.
// Floating holds the free-floating panels in back-to-front order.
type LayoutState struct {
	Version        int             `json:"version" bson:"version"`
	CanvasID       string          `json:"canvas_id" bson:"canvas_id"`
	Active         bool            `json:"active" bson:"active"`
	LeaveFreeSpace bool            `json:"leave_free_space" bson:"leave_free_space"`
	Elements       []ElementRecord `json:"elements" bson:"elements"`
	Floating       []ElementRecord `json:"floating,omitempty" bson:"floating,omitempty"`
	SavedAt        time.Time       `json:"saved_at" bson:"saved_at"`
}

// ElementRecord captures one group or panel.
type ElementRecord struct {
	Kind RecordKind `json:"kind" bson:"kind"`
	Size Vector2    `json:"size" bson:"size"`

	// Groups
	Horizontal bool `json:"horizontal,omitempty" bson:"horizontal,omitempty"`
	ChildCount int  `json:"child_count,omitempty" bson:"child_count,omitempty"`
	FirstChild int  `json:"first_child,omitempty" bson:"first_child,omitempty"`

	// Panels
	Tabs         []string `json:"tabs,omitempty" bson:"tabs,omitempty"`
	ActiveTab    int      `json:"active_tab,omitempty" bson:"active_tab,omitempty"`
	FloatingSize Vector2  `json:"floating_size" bson:"floating_size"`

	// Floating panels
	Position Vector2 `json:"position" bson:"position"`
	Active   bool    `json:"active,omitempty" bson:"active,omitempty"`
}

// IsGroup reports whether the record describes a group.
func (r ElementRecord) IsGroup() bool {
	return r.Kind == RecordGroup
}

// Children returns the index range of a group's children.
func (r ElementRecord) Children() (first, end int) {
	return r.FirstChild, r.FirstChild + r.ChildCount
}

// Validate checks the record table describes a single tree rooted at
// Elements[0] and that every record kind sits where it may.
func (s *LayoutState) Validate() error {
	if s.Version != LayoutStateVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedLayoutVersion, s.Version)
	}

	if len(s.Elements) > 0 {
		if !s.Elements[0].IsGroup() {
			return fmt.Errorf("%w: root record is %q", ErrMalformedLayout, s.Elements[0].Kind)
		}

		referenced := make([]int, len(s.Elements))
		referenced[0] = 1
		dummies := 0

		for i, rec := range s.Elements {
			switch rec.Kind {
			case RecordGroup:
				if rec.ChildCount < 0 {
					return fmt.Errorf("%w: record %d has negative child count", ErrMalformedLayout, i)
				}
				if rec.ChildCount == 0 {
					continue
				}
				first := rec.FirstChild
				if first <= i || first >= len(s.Elements) || rec.ChildCount > len(s.Elements)-first {
					return fmt.Errorf("%w: record %d children [%d,+%d) out of range", ErrMalformedLayout, i, first, rec.ChildCount)
				}
				for c := first; c < first+rec.ChildCount; c++ {
					referenced[c]++
				}
			case RecordDummy:
				dummies++
				if dummies > 1 {
					return fmt.Errorf("%w: more than one dummy record", ErrMalformedLayout)
				}
			case RecordPanel:
			default:
				return fmt.Errorf("%w: record %d has kind %q in docked tree", ErrMalformedLayout, i, rec.Kind)
			}

			if !rec.IsGroup() && rec.ChildCount != 0 {
				return fmt.Errorf("%w: leaf record %d declares children", ErrMalformedLayout, i)
			}
		}

		for i, n := range referenced {
			if n != 1 {
				return fmt.Errorf("%w: record %d referenced %d times", ErrMalformedLayout, i, n)
			}
		}
	}

	for i, rec := range s.Floating {
		if rec.Kind != RecordFloating {
			return fmt.Errorf("%w: floating record %d has kind %q", ErrMalformedLayout, i, rec.Kind)
		}
	}

	return nil
}

// CountPanels returns the number of tab-holding panels in the layout.
func (s *LayoutState) CountPanels() int {
	count := len(s.Floating)
	for _, rec := range s.Elements {
		if rec.Kind == RecordPanel {
			count++
		}
	}
	return count
}

// TabIDs returns every tab id referenced by the layout, docked first.
func (s *LayoutState) TabIDs() []string {
	var ids []string
	for _, rec := range s.Elements {
		ids = append(ids, rec.Tabs...)
	}
	for _, rec := range s.Floating {
		ids = append(ids, rec.Tabs...)
	}
	return ids
}

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string
