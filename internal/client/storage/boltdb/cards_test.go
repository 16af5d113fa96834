package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/omnicard/internal/client/storage"
	"github.com/iudanet/omnicard/internal/models"
)

var baseTime = time.Date(2025, time.July, 27, 10, 0, 0, 0, time.UTC)

// createTestCard формирует тестовую карту
func createTestCard(id string, added time.Time) *models.Card {
	return &models.Card{
		ID:              id,
		Nickname:        "nick-" + id,
		Name:            "Kevin Chen",
		Number:          "4111111111111111",
		ExpirationMonth: "07",
		ExpirationYear:  "2029",
		SecurityCode:    "123",
		DateAdded:       added,
	}
}

func TestInsertGetDeleteCard(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	card := createTestCard("card-1", baseTime)

	require.NoError(t, store.InsertCard(ctx, card))

	got, err := store.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, got.ID)
	assert.Equal(t, card.Nickname, got.Nickname)
	assert.Equal(t, card.Number, got.Number)
	assert.Equal(t, card.SecurityCode, got.SecurityCode)
	assert.True(t, card.DateAdded.Equal(got.DateAdded))

	// Удаляем карту
	require.NoError(t, store.DeleteCard(ctx, card.ID))

	_, err = store.GetCard(ctx, card.ID)
	assert.ErrorIs(t, err, storage.ErrCardNotFound)
}

func TestInsertCard_Duplicate(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	card := createTestCard("card-1", baseTime)
	require.NoError(t, store.InsertCard(ctx, card))

	err := store.InsertCard(ctx, card)
	assert.ErrorIs(t, err, storage.ErrCardExists)
}

func TestGetCard_NotFound(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetCard(ctx, "non-existing")
	assert.ErrorIs(t, err, storage.ErrCardNotFound)

	err = store.DeleteCard(ctx, "non-existing")
	assert.ErrorIs(t, err, storage.ErrCardNotFound)
}

// ListCards возвращает карты в порядке добавления, а не в порядке ключей
func TestListCards_OrderedByDateAdded(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	empty, err := store.ListCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, store.InsertCard(ctx, createTestCard("a", baseTime.Add(2*time.Hour))))
	require.NoError(t, store.InsertCard(ctx, createTestCard("c", baseTime)))
	require.NoError(t, store.InsertCard(ctx, createTestCard("b", baseTime.Add(time.Hour))))
	require.NoError(t, store.InsertCard(ctx, createTestCard("d", baseTime)))

	cards, err := store.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 4)

	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c", "d", "b", "a"}, ids)
}

// Данные переживают переоткрытие файла
func TestCards_PersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.InsertCard(ctx, createTestCard("card-1", baseTime)))
	require.NoError(t, store.SaveMultiDisplay(ctx, true))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	cards, err := reopened.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "card-1", cards[0].ID)

	enabled, err := reopened.GetMultiDisplay(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestCards_Closed(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.InsertCard(ctx, createTestCard("x", baseTime)), storage.ErrStorageClosed)
	_, err := store.GetCard(ctx, "x")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, err = store.ListCards(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.DeleteCard(ctx, "x"), storage.ErrStorageClosed)
}

func TestInsertCard_StoresDateAddedInUTC(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	local := baseTime.In(time.FixedZone("UTC+3", 3*60*60))
	card := createTestCard("card-1", local)
	require.NoError(t, store.InsertCard(ctx, card))

	got, err := store.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.DateAdded.Location())
	assert.True(t, baseTime.Equal(got.DateAdded))

	// Исходная карта не меняется
	assert.Equal(t, local.Location(), card.DateAdded.Location())
}
