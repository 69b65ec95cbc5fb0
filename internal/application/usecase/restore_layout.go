package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/logging"
)

// RestoreLayoutUseCase loads a stored buffer and rebuilds it onto a canvas.
type RestoreLayoutUseCase struct {
	store     port.LayoutStore
	keyPrefix string
}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase(store port.LayoutStore, keyPrefix string) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{store: store, keyPrefix: keyPrefix}
}

// RestoreLayoutInput contains the canvas to restore onto. Key overrides
// the canvas key when set, which restores another canvas's layout.
type RestoreLayoutInput struct {
	Canvas *docking.Canvas
	Key    string
}

// RestoreLayoutOutput reports whether a layout was found and applied.
type RestoreLayoutOutput struct {
	Key      string
	Restored bool
}

// Execute restores the stored layout. A missing key is not an error: the
// canvas is left untouched and Restored is false.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context, input RestoreLayoutInput) (*RestoreLayoutOutput, error) {
	if input.Canvas == nil {
		return nil, ErrCanvasRequired
	}

	ctx = logging.WithCanvasID(ctx, input.Canvas.ID())
	log := logging.FromContext(ctx)

	key := input.Key
	if key == "" {
		key = LayoutKey(uc.keyPrefix, input.Canvas.ID())
	}
	out := &RestoreLayoutOutput{Key: key}

	data, err := uc.store.Load(ctx, key)
	if errors.Is(err, port.ErrLayoutNotFound) {
		log.Debug().Str("key", key).Msg("no stored layout")
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}

	if err := docking.Deserialize(data, input.Canvas); err != nil {
		return nil, fmt.Errorf("restore layout: %w", err)
	}

	log.Info().Str("key", key).Int("panels", len(input.Canvas.Panels())).Msg("layout restored")
	out.Restored = true
	return out, nil
}
