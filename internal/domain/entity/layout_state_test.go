package entity_test

import (
	"math"
	"testing"

	"github.com/bnema/dynpanels/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validState() *entity.LayoutState {
	return &entity.LayoutState{
		Version:        entity.LayoutStateVersion,
		CanvasID:       "main",
		Active:         true,
		LeaveFreeSpace: true,
		Elements: []entity.ElementRecord{
			{Kind: entity.RecordGroup, Horizontal: true, ChildCount: 2, FirstChild: 1, Size: entity.Vec(800, 600)},
			{Kind: entity.RecordPanel, Tabs: []string{"a"}, Size: entity.Vec(200, 600)},
			{Kind: entity.RecordGroup, ChildCount: 2, FirstChild: 3, Size: entity.Vec(600, 600)},
			{Kind: entity.RecordPanel, Tabs: []string{"b", "c"}, ActiveTab: 1, Size: entity.Vec(600, 300)},
			{Kind: entity.RecordDummy, Size: entity.Vec(600, 300)},
		},
		Floating: []entity.ElementRecord{
			{Kind: entity.RecordFloating, Tabs: []string{"d"}, Position: entity.Vec(10, 10), Active: true},
		},
	}
}

func TestLayoutState_Validate_Accepts(t *testing.T) {
	state := validState()

	require.NoError(t, state.Validate())
	assert.Equal(t, 3, state.CountPanels())
	assert.Equal(t, []string{"a", "b", "c", "d"}, state.TabIDs())
}

func TestLayoutState_Validate_EmptyTree(t *testing.T) {
	state := &entity.LayoutState{Version: entity.LayoutStateVersion}

	assert.NoError(t, state.Validate())
	assert.Zero(t, state.CountPanels())
}

func TestLayoutState_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *entity.LayoutState)
		wantErr error
	}{
		{
			name:    "wrong version",
			mutate:  func(s *entity.LayoutState) { s.Version = 99 },
			wantErr: entity.ErrUnsupportedLayoutVersion,
		},
		{
			name:    "root is a panel",
			mutate:  func(s *entity.LayoutState) { s.Elements[0].Kind = entity.RecordPanel },
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name:    "children past the end",
			mutate:  func(s *entity.LayoutState) { s.Elements[2].ChildCount = 5 },
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name: "child range overflows",
			mutate: func(s *entity.LayoutState) {
				s.Elements[2].FirstChild = math.MaxInt
				s.Elements[2].ChildCount = 1
			},
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name: "huge child count",
			mutate: func(s *entity.LayoutState) {
				s.Elements[2].ChildCount = math.MaxInt
			},
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name:    "child points backwards",
			mutate:  func(s *entity.LayoutState) { s.Elements[2].FirstChild = 1 },
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name:    "orphan record",
			mutate:  func(s *entity.LayoutState) { s.Elements[2].ChildCount = 1 },
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name:    "negative child count",
			mutate:  func(s *entity.LayoutState) { s.Elements[2].ChildCount = -1 },
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name: "two dummies",
			mutate: func(s *entity.LayoutState) {
				s.Elements[1] = entity.ElementRecord{Kind: entity.RecordDummy}
			},
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name:    "floating record in docked tree",
			mutate:  func(s *entity.LayoutState) { s.Elements[1].Kind = entity.RecordFloating },
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name:    "docked record in floating list",
			mutate:  func(s *entity.LayoutState) { s.Floating[0].Kind = entity.RecordPanel },
			wantErr: entity.ErrMalformedLayout,
		},
		{
			name:    "leaf with children",
			mutate:  func(s *entity.LayoutState) { s.Elements[4].ChildCount = 1 },
			wantErr: entity.ErrMalformedLayout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := validState()
			tt.mutate(state)

			err := state.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
