package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/logging"
)

// ErrCanvasRequired is returned when a layout use case is given no canvas.
var ErrCanvasRequired = errors.New("canvas required")

// SaveLayoutUseCase serializes a canvas and hands the buffer to a LayoutStore.
type SaveLayoutUseCase struct {
	store     port.LayoutStore
	keyPrefix string
}

// NewSaveLayoutUseCase creates a new SaveLayoutUseCase.
func NewSaveLayoutUseCase(store port.LayoutStore, keyPrefix string) *SaveLayoutUseCase {
	return &SaveLayoutUseCase{store: store, keyPrefix: keyPrefix}
}

// SaveLayoutInput contains the canvas to persist.
type SaveLayoutInput struct {
	Canvas *docking.Canvas
}

// SaveLayoutOutput describes what was written.
type SaveLayoutOutput struct {
	Key   string
	Bytes int
}

// Execute snapshots the canvas and stores it under the canvas key.
func (uc *SaveLayoutUseCase) Execute(ctx context.Context, input SaveLayoutInput) (*SaveLayoutOutput, error) {
	if input.Canvas == nil {
		return nil, ErrCanvasRequired
	}

	ctx = logging.WithCanvasID(ctx, input.Canvas.ID())
	log := logging.FromContext(ctx)

	data, err := docking.Serialize(input.Canvas)
	if err != nil {
		return nil, fmt.Errorf("serialize layout: %w", err)
	}

	key := LayoutKey(uc.keyPrefix, input.Canvas.ID())
	if err := uc.store.Save(ctx, key, data); err != nil {
		return nil, fmt.Errorf("save layout: %w", err)
	}

	log.Debug().
		Str("key", key).
		Int("bytes", len(data)).
		Int("panels", len(input.Canvas.Panels())).
		Msg("layout saved")

	return &SaveLayoutOutput{Key: key, Bytes: len(data)}, nil
}
