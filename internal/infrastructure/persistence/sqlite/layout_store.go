package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/logging"
)

type layoutStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutStore returns a port.LayoutStore backed by the layouts table.
func NewLayoutStore(db *sql.DB) port.LayoutStore {
	return &layoutStore{db: db, now: time.Now}
}

// Save inserts or replaces the buffer stored under key.
func (s *layoutStore) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return errors.New("layout key cannot be empty")
	}

	logging.FromContext(ctx).Debug().
		Str("key", key).
		Int("bytes", len(data)).
		Msg("saving layout")

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO layouts (key, data, size, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			size = excluded.size,
			updated_at = excluded.updated_at`,
		key, data, len(data), s.now().UTC())
	if err != nil {
		return fmt.Errorf("upsert layout %q: %w", key, err)
	}
	return nil
}

// Load returns the buffer stored under key, or port.ErrLayoutNotFound.
func (s *layoutStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM layouts WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", port.ErrLayoutNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("query layout %q: %w", key, err)
	}
	return data, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *layoutStore) Delete(ctx context.Context, key string) error {
	logging.FromContext(ctx).Debug().Str("key", key).Msg("deleting layout")

	if _, err := s.db.ExecContext(ctx, "DELETE FROM layouts WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete layout %q: %w", key, err)
	}
	return nil
}

// List returns stored layouts whose key starts with prefix.
func (s *layoutStore) List(ctx context.Context, prefix string) ([]port.LayoutInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, size, updated_at FROM layouts
		WHERE substr(key, 1, length(?1)) = ?1
		ORDER BY key`, prefix)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []port.LayoutInfo
	for rows.Next() {
		var (
			info    port.LayoutInfo
			updated any
		)
		if err := rows.Scan(&info.Key, &info.Size, &updated); err != nil {
			return nil, fmt.Errorf("scan layout row: %w", err)
		}
		info.UpdatedAt = parseTimestamp(updated)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// parseTimestamp accepts the driver's native time or its text encoding.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(time.RFC3339Nano, string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var _ port.LayoutStore = (*layoutStore)(nil)
