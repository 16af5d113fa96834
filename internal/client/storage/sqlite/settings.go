package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/iudanet/omnicard/internal/client/storage"
)

const keyMultiDisplay = "multi_display"

// SaveMultiDisplay saves whether several cards may be revealed at once
func (s *Storage) SaveMultiDisplay(ctx context.Context, enabled bool) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, keyMultiDisplay, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("failed to save multi display setting: %w", err)
	}

	return nil
}

// GetMultiDisplay retrieves the multi-display setting
// Returns false if the setting has never been saved
func (s *Storage) GetMultiDisplay(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, keyMultiDisplay).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get multi display setting: %w", err)
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid multi display setting %q: %w", value, err)
	}

	return enabled, nil
}
