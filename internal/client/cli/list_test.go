package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/omnicard/internal/client/wallet"
	"github.com/iudanet/omnicard/internal/models"
)

func listWallet(cards []*models.Card, multi bool) *wallet.ServiceMock {
	return &wallet.ServiceMock{
		ListCardsFunc: func(ctx context.Context) ([]*models.Card, error) {
			return cards, nil
		},
		MultiDisplayFunc: func(ctx context.Context) (bool, error) {
			return multi, nil
		},
	}
}

func TestCli_runList_Empty(t *testing.T) {
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, listWallet(nil, false))

	err := c.runList(context.Background(), listOptions{})
	require.NoError(t, err)
	assert.Equal(t, emptyWalletNotice+"\n", out.String())
}

func TestCli_runList_Masked(t *testing.T) {
	cards := []*models.Card{
		testCard("a", "Travel", "4111111111111111"),
		testCard("b", "", "340000000000000"),
	}
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, listWallet(cards, false))

	err := c.runList(context.Background(), listOptions{})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Found 2 card(s)")
	assert.Contains(t, output, "- Travel")
	assert.Contains(t, output, "- (no nickname)")
	assert.Contains(t, output, "**** **** **** 1111")
	assert.Contains(t, output, "**** **** **** 0000")
	assert.Contains(t, output, "***** ****")
	assert.Contains(t, output, "MM/YY")
	assert.Contains(t, output, "CVV")
	assert.Contains(t, output, "American Express")
	assert.NotContains(t, output, "[revealed]")
	assert.NotContains(t, output, "Kevin Chen")

	// Карты выводятся в порядке, полученном от wallet
	assert.Less(t, strings.Index(output, "ID:         a"), strings.Index(output, "ID:         b"))
}

func TestCli_runList_RevealSingleMode(t *testing.T) {
	cards := []*models.Card{
		testCard("a", "One", "4111111111111111"),
		testCard("b", "Two", "5500000000000004"),
	}
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, listWallet(cards, false))

	err := c.runList(context.Background(), listOptions{reveal: []string{"a", "b"}})
	require.NoError(t, err)

	output := out.String()
	assert.NotContains(t, output, "4111 1111 1111 1111")
	assert.Contains(t, output, "5500 0000 0000 0004")
	assert.Contains(t, output, "Two [revealed]")
	assert.Contains(t, output, "07/2029")
}

func TestCli_runList_RevealMultiMode(t *testing.T) {
	cards := []*models.Card{
		testCard("a", "One", "4111111111111111"),
		testCard("b", "Two", "5500000000000004"),
	}

	tests := []struct {
		name  string
		opts  listOptions
		saved bool
	}{
		{name: "saved setting", opts: listOptions{reveal: []string{"a", "b"}}, saved: true},
		{name: "flag", opts: listOptions{reveal: []string{"a", "b"}, multi: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, out := newCaptureIO()
			c := newTestCli(mockIO, listWallet(cards, tt.saved))

			err := c.runList(context.Background(), tt.opts)
			require.NoError(t, err)

			output := out.String()
			assert.Contains(t, output, "4111 1111 1111 1111")
			assert.Contains(t, output, "5500 0000 0000 0004")
		})
	}
}

func TestCli_runList_RevealToggleOff(t *testing.T) {
	cards := []*models.Card{testCard("a", "One", "4111111111111111")}
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, listWallet(cards, true))

	err := c.runList(context.Background(), listOptions{reveal: []string{"a", "a"}})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "4111 1111 1111 1111")
}

func TestCli_runList_UnknownRevealID(t *testing.T) {
	cards := []*models.Card{testCard("a", "One", "4111111111111111")}
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, listWallet(cards, false))

	err := c.runList(context.Background(), listOptions{reveal: []string{"a", "missing"}})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "4111 1111 1111 1111")
}

func TestCli_runList_Errors(t *testing.T) {
	listErr := errors.New("list failed")
	mockIO, _ := newCaptureIO()
	c := newTestCli(mockIO, &wallet.ServiceMock{
		ListCardsFunc: func(ctx context.Context) ([]*models.Card, error) {
			return nil, listErr
		},
	})

	err := c.runList(context.Background(), listOptions{})
	assert.ErrorIs(t, err, listErr)

	modeErr := errors.New("settings failed")
	c = newTestCli(mockIO, &wallet.ServiceMock{
		ListCardsFunc: func(ctx context.Context) ([]*models.Card, error) {
			return []*models.Card{testCard("a", "One", "4111")}, nil
		},
		MultiDisplayFunc: func(ctx context.Context) (bool, error) {
			return false, modeErr
		},
	})

	err = c.runList(context.Background(), listOptions{})
	assert.ErrorIs(t, err, modeErr)
}
