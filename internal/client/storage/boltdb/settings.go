package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/omnicard/internal/client/storage"
)

const (
	keyMultiDisplay = "multi_display"
)

// SaveMultiDisplay saves whether several cards may be revealed at once
func (s *Storage) SaveMultiDisplay(ctx context.Context, enabled bool) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		// Храним флаг одним байтом
		value := []byte{0}
		if enabled {
			value[0] = 1
		}

		if err := bucket.Put([]byte(keyMultiDisplay), value); err != nil {
			return fmt.Errorf("failed to save multi display setting: %w", err)
		}

		return nil
	})
}

// GetMultiDisplay retrieves the multi-display setting
// Returns false if the setting has never been saved
func (s *Storage) GetMultiDisplay(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	var enabled bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		value := bucket.Get([]byte(keyMultiDisplay))
		if len(value) == 0 {
			// Настройка еще не сохранялась
			enabled = false
			return nil
		}

		enabled = value[0] == 1
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("failed to get multi display setting: %w", err)
	}

	return enabled, nil
}
