package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
	"github.com/bnema/dynpanels/internal/logging"
)

// StoredLayout is one entry of the layout store seen from a canvas.
type StoredLayout struct {
	CanvasID string
	port.LayoutInfo
}

// ListLayoutsUseCase enumerates stored layouts under the key prefix.
type ListLayoutsUseCase struct {
	store     port.LayoutStore
	keyPrefix string
}

// NewListLayoutsUseCase creates a new ListLayoutsUseCase.
func NewListLayoutsUseCase(store port.LayoutStore, keyPrefix string) *ListLayoutsUseCase {
	return &ListLayoutsUseCase{store: store, keyPrefix: keyPrefix}
}

// Execute returns the stored layouts sorted by canvas id.
func (uc *ListLayoutsUseCase) Execute(ctx context.Context) ([]StoredLayout, error) {
	infos, err := uc.store.List(ctx, uc.keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}

	layouts := make([]StoredLayout, 0, len(infos))
	for _, info := range infos {
		layouts = append(layouts, StoredLayout{
			CanvasID:   strings.TrimPrefix(info.Key, uc.keyPrefix),
			LayoutInfo: info,
		})
	}

	logging.FromContext(ctx).Debug().Int("count", len(layouts)).Msg("stored layouts listed")
	return layouts, nil
}

// InspectLayoutUseCase decodes a stored layout without a canvas to apply it to.
type InspectLayoutUseCase struct {
	store     port.LayoutStore
	keyPrefix string
}

// NewInspectLayoutUseCase creates a new InspectLayoutUseCase.
func NewInspectLayoutUseCase(store port.LayoutStore, keyPrefix string) *InspectLayoutUseCase {
	return &InspectLayoutUseCase{store: store, keyPrefix: keyPrefix}
}

// Execute loads and decodes the layout stored for canvasID.
func (uc *InspectLayoutUseCase) Execute(ctx context.Context, canvasID string) (*entity.LayoutState, error) {
	if canvasID == "" {
		return nil, fmt.Errorf("canvas id required")
	}

	data, err := uc.store.Load(ctx, LayoutKey(uc.keyPrefix, canvasID))
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}

	state, err := docking.DecodeLayout(data)
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return state, nil
}
