package cli

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/omnicard/internal/client/iocli"
	"github.com/iudanet/omnicard/internal/client/wallet"
	"github.com/iudanet/omnicard/internal/logging"
	"github.com/iudanet/omnicard/internal/models"
	"github.com/iudanet/omnicard/internal/reveal"
)

// newCaptureIO возвращает мок терминала: вывод собирается в буфер,
// ответы на запросы берутся по очереди из inputs
func newCaptureIO(inputs ...string) (*iocli.IOMock, *bytes.Buffer) {
	out := &bytes.Buffer{}
	next := func(prompt string) (string, error) {
		out.WriteString(prompt)
		if len(inputs) == 0 {
			return "", fmt.Errorf("unexpected prompt %q", prompt)
		}
		value := inputs[0]
		inputs = inputs[1:]
		return value, nil
	}

	mockIO := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(out, format, a...)
		},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
	}
	return mockIO, out
}

func newTestCli(io iocli.IO, svc wallet.Service) *Cli {
	return &Cli{
		io:        io,
		wallet:    svc,
		logger:    logging.Discard(),
		formatter: reveal.Formatter{MaskName: true},
	}
}

func testCard(id, nickname, number string) *models.Card {
	return &models.Card{
		ID:              id,
		Nickname:        nickname,
		Name:            "Kevin Chen",
		Number:          number,
		ExpirationMonth: "07",
		ExpirationYear:  "2029",
		SecurityCode:    "123",
		DateAdded:       time.Date(2025, time.July, 27, 12, 0, 0, 0, time.UTC),
	}
}

func TestConfirmed(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", " YES "} {
		assert.True(t, confirmed(answer), answer)
	}
	for _, answer := range []string{"", "n", "no", "yep"} {
		assert.False(t, confirmed(answer), answer)
	}
}

func TestCli_Close_WithoutStore(t *testing.T) {
	c := New(&iocli.IOMock{})
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestCli_render(t *testing.T) {
	mockIO, out := newCaptureIO()
	c := newTestCli(mockIO, nil)

	err := c.render("greeting", "Hello, {{ . }}!", "world")
	assert.NoError(t, err)
	assert.Equal(t, "Hello, world!", out.String())

	err = c.render("broken", "{{ .Missing", nil)
	assert.Error(t, err)
}

