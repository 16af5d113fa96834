package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runNetwork(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"4111 1111 1111 1111", "Visa"},
		{"3400 000000 00000", "American Express"},
		{"5500000000000004", "Mastercard"},
		{"6011 0000 0000 0004", "Discover"},
		{"1234", "Unknown"},
		{"", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.number, func(t *testing.T) {
			mockIO, out := newCaptureIO()
			c := newTestCli(mockIO, nil)

			err := c.runNetwork(tt.number)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out.String())
		})
	}
}

func TestCli_runNetwork_InvalidInput(t *testing.T) {
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, nil)

	err := c.runNetwork("4111-1111")
	require.ErrorIs(t, err, ErrReported)
	assert.Equal(t, invalidInputNotice+"\n", out.String())
}
