package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/omnicard/internal/client/storage"
	"github.com/iudanet/omnicard/internal/models"
)

// InsertCard stores a new card
func (s *Storage) InsertCard(ctx context.Context, card *models.Card) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO cards (id, nickname, name, number, expiration_month, expiration_year, security_code, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		card.ID,
		card.Nickname,
		card.Name,
		card.Number,
		card.ExpirationMonth,
		card.ExpirationYear,
		card.SecurityCode,
		card.DateAdded.UnixNano(),
	)

	if err != nil {
		// Проверяем на duplicate id
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrCardExists
		}
		return fmt.Errorf("failed to insert card: %w", err)
	}

	return nil
}

// GetCard retrieves a card by ID
func (s *Storage) GetCard(ctx context.Context, id string) (*models.Card, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `
		SELECT id, nickname, name, number, expiration_month, expiration_year, security_code, date_added
		FROM cards
		WHERE id = ?
	`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return card, nil
}

// ListCards returns all cards ordered by DateAdded ascending
func (s *Storage) ListCards(ctx context.Context) ([]*models.Card, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `
		SELECT id, nickname, name, number, expiration_month, expiration_year, security_code, date_added
		FROM cards
		ORDER BY date_added ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	cards := []*models.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}

	return cards, nil
}

// DeleteCard removes a card permanently
func (s *Storage) DeleteCard(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrCardNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*models.Card, error) {
	card := &models.Card{}
	var dateAdded int64

	err := row.Scan(
		&card.ID,
		&card.Nickname,
		&card.Name,
		&card.Number,
		&card.ExpirationMonth,
		&card.ExpirationYear,
		&card.SecurityCode,
		&dateAdded,
	)
	if err != nil {
		return nil, err
	}

	card.DateAdded = time.Unix(0, dateAdded).UTC()
	return card, nil
}
