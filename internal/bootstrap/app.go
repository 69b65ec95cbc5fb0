// Package bootstrap wires the docking manager, drag controller and layout
// persistence together from a loaded configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/application/usecase"
	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
	"github.com/bnema/dynpanels/internal/infrastructure/config"
	"github.com/bnema/dynpanels/internal/logging"
	"github.com/bnema/dynpanels/internal/ui/dragdrop"
)

// App is the assembled layout runtime. Everything except ApplyConfig must
// be called from the thread that drives Update.
type App struct {
	Docking *docking.Manager
	Drag    *dragdrop.Controller

	SaveLayout    *usecase.SaveLayoutUseCase
	RestoreLayout *usecase.RestoreLayoutUseCase
	DeleteLayout  *usecase.DeleteLayoutUseCase

	config  *config.Config
	store   port.LayoutStore
	cleanup func()
	base    zerolog.Logger
	logger  zerolog.Logger

	mu      sync.Mutex
	pending *config.Config
}

// Option customises New.
type Option func(*options)

type options struct {
	store  port.LayoutStore
	logger *zerolog.Logger
}

// WithLayoutStore replaces the SQLite store opened from the config.
func WithLayoutStore(store port.LayoutStore) Option {
	return func(o *options) { o.store = store }
}

// WithLogger replaces the logger built from the logging section.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = &logger }
}

// New builds an App from cfg.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	timer := NewStartupTimer()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	if o.logger != nil {
		logger = *o.logger
	}
	ctx = logging.WithComponent(logging.WithContext(ctx, logger), "bootstrap")
	timer.Mark("logger")

	app := &App{
		config: cfg,
		store:  o.store,
		base:   logger,
		logger: logger.With().Str("component", "bootstrap").Logger(),
	}

	if app.store == nil {
		store, cleanup, err := OpenLayoutStore(ctx, cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		app.store = store
		app.cleanup = cleanup
		timer.Mark("database")
	}

	app.Docking = docking.NewManager(cfg.ToSettings(), logger)
	app.Drag = dragdrop.NewController(app.Docking, logger)
	app.SaveLayout = usecase.NewSaveLayoutUseCase(app.store, cfg.Layout.StoreKeyPrefix)
	app.RestoreLayout = usecase.NewRestoreLayoutUseCase(app.store, cfg.Layout.StoreKeyPrefix)
	app.DeleteLayout = usecase.NewDeleteLayoutUseCase(app.store, cfg.Layout.StoreKeyPrefix)
	timer.Mark("docking")

	timer.LogDebug(ctx)
	return app, nil
}

// Config returns the configuration currently applied.
func (a *App) Config() *config.Config {
	c := *a.config
	return &c
}

// OpenCanvas registers a canvas. When auto restore is enabled the stored
// layout is restored onto it; otherwise, or when nothing was stored,
// initial is built if given. Tabs referenced by a stored layout must be
// created before the canvas is opened.
func (a *App) OpenCanvas(ctx context.Context, id string, size entity.Vector2, initial *docking.InitialLayout) (*docking.Canvas, error) {
	ctx = logging.WithContext(ctx, a.logger)

	c, err := a.Docking.NewCanvas(id, size)
	if err != nil {
		return nil, err
	}

	if a.config.Layout.AutoRestore {
		out, err := a.RestoreLayout.Execute(ctx, usecase.RestoreLayoutInput{Canvas: c})
		if err != nil {
			// A bad stored layout must not keep the canvas from opening.
			a.logger.Warn().Err(err).Str("canvas_id", c.ID()).Msg("stored layout ignored")
		} else if out.Restored {
			return c, nil
		}
	}

	if initial != nil {
		if err := c.Start(*initial); err != nil {
			return nil, fmt.Errorf("start canvas %s: %w", c.ID(), err)
		}
	}
	return c, nil
}

// SaveAll stores the layout of every canvas. It keeps going after a
// failure and returns the joined errors.
func (a *App) SaveAll(ctx context.Context) error {
	ctx = logging.WithContext(ctx, a.logger)

	var errs []error
	for _, c := range a.Docking.Canvases() {
		if _, err := a.SaveLayout.Execute(ctx, usecase.SaveLayoutInput{Canvas: c}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ApplyConfig queues cfg for the next Update. Safe to call from any
// goroutine, typically a config watcher callback.
func (a *App) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.mu.Lock()
	a.pending = cfg
	a.mu.Unlock()
}

// WatchConfig subscribes the app to mgr reloads and starts watching.
func (a *App) WatchConfig(mgr *config.Manager) error {
	mgr.SetLogger(a.base)
	mgr.OnConfigChange(a.ApplyConfig)
	return mgr.Watch()
}

// Update applies a queued configuration, then ticks every canvas and
// drains the event queue.
func (a *App) Update() {
	a.applyPending()
	a.Docking.Update()
}

func (a *App) applyPending() {
	a.mu.Lock()
	cfg := a.pending
	a.pending = nil
	a.mu.Unlock()

	if cfg == nil {
		return
	}

	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	a.Docking.SetSettings(cfg.ToSettings())

	// Use cases are cheap; rebuild them when the key prefix moves.
	if cfg.Layout.StoreKeyPrefix != a.config.Layout.StoreKeyPrefix {
		a.SaveLayout = usecase.NewSaveLayoutUseCase(a.store, cfg.Layout.StoreKeyPrefix)
		a.RestoreLayout = usecase.NewRestoreLayoutUseCase(a.store, cfg.Layout.StoreKeyPrefix)
		a.DeleteLayout = usecase.NewDeleteLayoutUseCase(a.store, cfg.Layout.StoreKeyPrefix)
	}
	a.config = cfg
	a.logger.Info().Msg("configuration applied")
}

// Close cancels any drag and closes the database. Layouts are not saved;
// call SaveAll first.
func (a *App) Close() {
	a.Drag.Cancel()
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}
