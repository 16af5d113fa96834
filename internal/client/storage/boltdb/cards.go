package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/omnicard/internal/client/storage"
	"github.com/iudanet/omnicard/internal/models"
)

// InsertCard stores a new card
func (s *Storage) InsertCard(ctx context.Context, card *models.Card) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Храним время в UTC, как и SQLite
	stored := card.Clone()
	stored.DateAdded = stored.DateAdded.UTC()

	// Сериализуем карту в JSON
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal card: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCards)
		if bucket == nil {
			return fmt.Errorf("cards bucket not found")
		}

		key := []byte(card.ID)
		if bucket.Get(key) != nil {
			return storage.ErrCardExists
		}

		// Сохраняем по ID
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save card: %w", err)
		}

		return nil
	})
}

// GetCard retrieves a card by ID
func (s *Storage) GetCard(ctx context.Context, id string) (*models.Card, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var card *models.Card

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCards)
		if bucket == nil {
			return fmt.Errorf("cards bucket not found")
		}

		// Получаем данные по ID
		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrCardNotFound
		}

		// Десериализуем
		card = &models.Card{}
		if err := json.Unmarshal(data, card); err != nil {
			return fmt.Errorf("failed to unmarshal card: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return card, nil
}

// ListCards returns all cards ordered by DateAdded ascending
func (s *Storage) ListCards(ctx context.Context) ([]*models.Card, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	cards := []*models.Card{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCards)
		if bucket == nil {
			return fmt.Errorf("cards bucket not found")
		}

		// Итерируемся по всем картам; bbolt отдает их в порядке ключей (ID)
		return bucket.ForEach(func(k, v []byte) error {
			card := &models.Card{}
			if err := json.Unmarshal(v, card); err != nil {
				return fmt.Errorf("failed to unmarshal card %s: %w", k, err)
			}
			cards = append(cards, card)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	storage.SortCards(cards)
	return cards, nil
}

// DeleteCard removes a card permanently
func (s *Storage) DeleteCard(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCards)
		if bucket == nil {
			return fmt.Errorf("cards bucket not found")
		}

		key := []byte(id)
		if bucket.Get(key) == nil {
			return storage.ErrCardNotFound
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}

		return nil
	})
}
