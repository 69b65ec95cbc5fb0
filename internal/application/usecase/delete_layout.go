package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/logging"
)

// DeleteLayoutUseCase forgets the stored layout of a canvas.
type DeleteLayoutUseCase struct {
	store     port.LayoutStore
	keyPrefix string
}

// NewDeleteLayoutUseCase creates a new DeleteLayoutUseCase.
func NewDeleteLayoutUseCase(store port.LayoutStore, keyPrefix string) *DeleteLayoutUseCase {
	return &DeleteLayoutUseCase{store: store, keyPrefix: keyPrefix}
}

// Execute deletes the layout stored for canvasID.
func (uc *DeleteLayoutUseCase) Execute(ctx context.Context, canvasID string) error {
	if canvasID == "" {
		return fmt.Errorf("canvas id required")
	}

	key := LayoutKey(uc.keyPrefix, canvasID)
	logging.FromContext(ctx).Debug().Str("key", key).Msg("deleting stored layout")

	if err := uc.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	return nil
}
