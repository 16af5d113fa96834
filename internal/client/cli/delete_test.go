package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/omnicard/internal/client/wallet"
	"github.com/iudanet/omnicard/internal/models"
)

func deleteWallet(card *models.Card) *wallet.ServiceMock {
	mockWallet := getWallet(card)
	mockWallet.DeleteCardFunc = func(ctx context.Context, id string) error {
		return nil
	}
	return mockWallet
}

func TestCli_runDelete_Confirmed(t *testing.T) {
	card := testCard("card-1", "Travel", "4111111111111111")
	mockIO, out := newCaptureIO("yes")
	mockWallet := deleteWallet(card)
	c := newTestCli(mockIO, mockWallet)

	err := c.runDelete(context.Background(), card.ID, false)
	require.NoError(t, err)

	require.Len(t, mockWallet.DeleteCardCalls(), 1)
	assert.Equal(t, card.ID, mockWallet.DeleteCardCalls()[0].ID)

	output := out.String()
	assert.Contains(t, output, "About to delete")
	assert.Contains(t, output, "**** **** **** 1111")
	assert.NotContains(t, output, "4111 1111 1111 1111")
	assert.Contains(t, output, "Card deleted successfully")
}

func TestCli_runDelete_Cancelled(t *testing.T) {
	card := testCard("card-1", "Travel", "4111111111111111")
	mockIO, out := newCaptureIO("no")
	mockWallet := deleteWallet(card)
	c := newTestCli(mockIO, mockWallet)

	err := c.runDelete(context.Background(), card.ID, false)
	require.NoError(t, err)

	assert.Empty(t, mockWallet.DeleteCardCalls())
	assert.Contains(t, out.String(), "Deletion cancelled.")
}

func TestCli_runDelete_SkipConfirmation(t *testing.T) {
	card := testCard("card-1", "Travel", "4111111111111111")
	mockIO, _ := newCaptureIO()
	mockWallet := deleteWallet(card)
	c := newTestCli(mockIO, mockWallet)

	err := c.runDelete(context.Background(), card.ID, true)
	require.NoError(t, err)

	assert.Empty(t, mockIO.ReadInputCalls())
	assert.Len(t, mockWallet.DeleteCardCalls(), 1)
}

func TestCli_runDelete_NotFound(t *testing.T) {
	mockIO, _ := newCaptureIO()
	mockWallet := deleteWallet(testCard("card-1", "Travel", "4111111111111111"))
	c := newTestCli(mockIO, mockWallet)

	err := c.runDelete(context.Background(), "missing", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card not found with ID: missing")
	assert.Empty(t, mockWallet.DeleteCardCalls())
}
