package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/infrastructure/persistence/sqlite"
)

// OpenLayoutStore opens the layout database at dbPath and returns a store
// over it together with its cleanup function.
func OpenLayoutStore(ctx context.Context, dbPath string) (port.LayoutStore, func(), error) {
	db, err := openDatabase(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = sqlite.Close(db)
	}
	return sqlite.NewLayoutStore(db), cleanup, nil
}

func openDatabase(ctx context.Context, dbPath string) (*sql.DB, error) {
	db, err := sqlite.NewConnection(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("initialize database at %s: %w", dbPath, err)
	}
	return db, nil
}
