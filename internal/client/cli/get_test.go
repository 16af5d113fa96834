package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/omnicard/internal/client/storage"
	"github.com/iudanet/omnicard/internal/client/wallet"
	"github.com/iudanet/omnicard/internal/models"
)

func getWallet(cards ...*models.Card) *wallet.ServiceMock {
	return &wallet.ServiceMock{
		GetCardFunc: func(ctx context.Context, id string) (*models.Card, error) {
			for _, card := range cards {
				if card.ID == id {
					return card, nil
				}
			}
			return nil, fmt.Errorf("failed to get card: %w", storage.ErrCardNotFound)
		},
	}
}

func TestCli_runGet(t *testing.T) {
	card := testCard("card-1", "Travel", "6011000000000004")
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, getWallet(card))

	err := c.runGet(context.Background(), card.ID)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "=== Card Details ===")
	assert.Contains(t, output, "Nickname:      Travel")
	assert.Contains(t, output, "Name:          Kevin Chen")
	assert.Contains(t, output, "Number:        6011 0000 0000 0004\n")
	assert.Contains(t, output, "Expiration:    07/2029")
	assert.Contains(t, output, "Security Code: 123")
	assert.Contains(t, output, "Network:       Discover")
}

func TestCli_runGet_NotFound(t *testing.T) {
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, getWallet())

	err := c.runGet(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card not found with ID: missing")
	assert.Empty(t, out.String())
}
