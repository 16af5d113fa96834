package storage

import (
	"context"

	"github.com/iudanet/omnicard/internal/models"
)

//go:generate moq -out cardstorage_mock.go . CardStorage

// CardStorage defines interface for storing cards on the device.
// Cards are immutable, so there is no update operation.
type CardStorage interface {
	// InsertCard stores a new card
	// Returns ErrCardExists if a card with the same ID already exists
	InsertCard(ctx context.Context, card *models.Card) error

	// GetCard retrieves a card by ID
	// Returns ErrCardNotFound if card doesn't exist
	GetCard(ctx context.Context, id string) (*models.Card, error)

	// ListCards returns all cards ordered by DateAdded ascending (ties by ID)
	ListCards(ctx context.Context) ([]*models.Card, error)

	// DeleteCard removes a card permanently
	// Returns ErrCardNotFound if card doesn't exist
	DeleteCard(ctx context.Context, id string) error
}
