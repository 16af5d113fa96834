package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/omnicard/internal/client/wallet"
)

func modeWallet(saved *bool) *wallet.ServiceMock {
	return &wallet.ServiceMock{
		MultiDisplayFunc: func(ctx context.Context) (bool, error) {
			return *saved, nil
		},
		SetMultiDisplayFunc: func(ctx context.Context, enabled bool) error {
			*saved = enabled
			return nil
		},
	}
}

func TestCli_Mode(t *testing.T) {
	ctx := context.Background()
	saved := false
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, modeWallet(&saved))

	require.NoError(t, c.runShowMode(ctx))
	assert.Contains(t, out.String(), "Display mode: single")

	require.NoError(t, c.runSetMode(ctx, "multi"))
	assert.True(t, saved)
	assert.Contains(t, out.String(), "Display mode set to multi")

	out.Reset()
	require.NoError(t, c.runShowMode(ctx))
	assert.Contains(t, out.String(), "Display mode: multi")

	require.NoError(t, c.runSetMode(ctx, "Single"))
	assert.False(t, saved)
}

func TestCli_runSetMode_Unknown(t *testing.T) {
	saved := false
	mockIO, _ := newCaptureIO()
	mockWallet := modeWallet(&saved)
	c := newTestCli(mockIO, mockWallet)

	err := c.runSetMode(context.Background(), "all")
	require.Error(t, err)
	assert.Empty(t, mockWallet.SetMultiDisplayCalls())
}
