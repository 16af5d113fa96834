package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/omnicard/internal/client/storage"
	"github.com/iudanet/omnicard/internal/models"
	"github.com/iudanet/omnicard/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// ErrInvalidInput wraps every validation failure of AddCard.
// The UI shows it as a single "Invalid input" notice.
var ErrInvalidInput = errors.New("invalid input")

// Listener receives the full ordered card list after every change.
type Listener func(cards []*models.Card)

// Service определяет интерфейс для клиентского wallet сервиса
type Service interface {
	AddCard(ctx context.Context, in models.CardInput) (*models.Card, error)
	GetCard(ctx context.Context, id string) (*models.Card, error)
	ListCards(ctx context.Context) ([]*models.Card, error)
	DeleteCard(ctx context.Context, id string) error
	Subscribe(fn Listener) (unsubscribe func())

	MultiDisplay(ctx context.Context) (bool, error)
	SetMultiDisplay(ctx context.Context, enabled bool) error
}

// service validates input and keeps the card store in sync with subscribers
type service struct {
	cards     storage.CardStorage
	settings  storage.SettingsStorage
	validator *validation.Validator
	logger    *slog.Logger

	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
}

// NewService creates a new wallet service
func NewService(cards storage.CardStorage, settings storage.SettingsStorage, validator *validation.Validator, logger *slog.Logger) Service {
	return &service{
		cards:     cards,
		settings:  settings,
		validator: validator,
		logger:    logger,
		listeners: make(map[int]Listener),
	}
}

// AddCard validates raw input and stores the resulting card.
// Nothing is stored when validation fails.
func (s *service) AddCard(ctx context.Context, in models.CardInput) (*models.Card, error) {
	card, err := s.validator.Validate(in)
	if err != nil {
		s.logger.DebugContext(ctx, "card rejected", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.cards.InsertCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.logger.InfoContext(ctx, "card added", "id", card.ID)
	s.notify(ctx)

	return card.Clone(), nil
}

// GetCard retrieves a card by ID
func (s *service) GetCard(ctx context.Context, id string) (*models.Card, error) {
	card, err := s.cards.GetCard(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

// ListCards returns all cards, oldest first
func (s *service) ListCards(ctx context.Context) ([]*models.Card, error) {
	cards, err := s.cards.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// DeleteCard removes a card permanently
func (s *service) DeleteCard(ctx context.Context, id string) error {
	if err := s.cards.DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	s.logger.InfoContext(ctx, "card deleted", "id", id)
	s.notify(ctx)

	return nil
}

// Subscribe registers fn to be called with the re-fetched list after every
// successful insert or delete. The returned func removes the subscription.
func (s *service) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// MultiDisplay returns the persisted "allow multi-display" setting
func (s *service) MultiDisplay(ctx context.Context) (bool, error) {
	enabled, err := s.settings.GetMultiDisplay(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get display mode: %w", err)
	}
	return enabled, nil
}

// SetMultiDisplay persists the "allow multi-display" setting
func (s *service) SetMultiDisplay(ctx context.Context, enabled bool) error {
	if err := s.settings.SaveMultiDisplay(ctx, enabled); err != nil {
		return fmt.Errorf("failed to save display mode: %w", err)
	}
	s.logger.DebugContext(ctx, "display mode changed", "multi", enabled)
	return nil
}

// notify перечитывает список и рассылает его подписчикам вне блокировки
func (s *service) notify(ctx context.Context) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	if len(listeners) == 0 {
		return
	}

	cards, err := s.cards.ListCards(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to refresh cards for subscribers", "error", err)
		return
	}

	for _, fn := range listeners {
		fn(cards)
	}
}
