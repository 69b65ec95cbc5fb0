// Package cli holds the dependencies shared by the dynpanels commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/application/usecase"
	"github.com/bnema/dynpanels/internal/bootstrap"
	"github.com/bnema/dynpanels/internal/cli/styles"
	"github.com/bnema/dynpanels/internal/domain/build"
	"github.com/bnema/dynpanels/internal/infrastructure/config"
	"github.com/bnema/dynpanels/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Store     port.LayoutStore

	ListLayoutsUC   *usecase.ListLayoutsUseCase
	InspectLayoutUC *usecase.InspectLayoutUseCase
	DeleteLayoutUC  *usecase.DeleteLayoutUseCase

	ctx     context.Context
	cleanup func()
}

// NewApp loads the configuration and opens the layout store.
func NewApp() (*App, error) {
	cfg := LoadConfig()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")

	store, cleanup, err := bootstrap.OpenLayoutStore(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open layout store: %w", err)
	}

	return NewAppWithStore(ctx, cfg, store, cleanup), nil
}

// NewAppWithStore builds an App over an already opened store.
func NewAppWithStore(ctx context.Context, cfg *config.Config, store port.LayoutStore, cleanup func()) *App {
	prefix := cfg.Layout.StoreKeyPrefix
	return &App{
		Config:          cfg,
		Theme:           styles.NewTheme(),
		Store:           store,
		ListLayoutsUC:   usecase.NewListLayoutsUseCase(store, prefix),
		InspectLayoutUC: usecase.NewInspectLayoutUseCase(store, prefix),
		DeleteLayoutUC:  usecase.NewDeleteLayoutUseCase(store, prefix),
		ctx:             ctx,
		cleanup:         cleanup,
	}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LoadConfig loads configuration from standard locations, falling back
// to the defaults when the file cannot be used.
func LoadConfig() *config.Config {
	// The config cannot configure its own load failures; the env does.
	log := logging.NewFromEnv()

	mgr, err := config.NewManager()
	if err != nil {
		log.Warn().Err(err).Msg("using default configuration")
		return withDatabasePath(config.DefaultConfig())
	}

	if err := mgr.Load(); err != nil {
		log.Warn().Err(err).Msg("using default configuration")
		return withDatabasePath(config.DefaultConfig())
	}

	return mgr.Get()
}

func withDatabasePath(cfg *config.Config) *config.Config {
	if path, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = path
	}
	return cfg
}
