package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/iudanet/omnicard/internal/client/iocli"
	"github.com/iudanet/omnicard/internal/client/storage"
	"github.com/iudanet/omnicard/internal/client/wallet"
	"github.com/iudanet/omnicard/internal/config"
	"github.com/iudanet/omnicard/internal/reveal"
)

// ErrReported means the command already told the user what went wrong.
// The caller should exit non-zero without printing anything else.
var ErrReported = errors.New("error already reported")

// invalidInputNotice is the only message shown for rejected card input
const invalidInputNotice = "Invalid input"

// emptyWalletNotice is shown instead of an empty card list
const emptyWalletNotice = "Create a card to get started."

type Cli struct {
	io        iocli.IO
	wallet    wallet.Service
	logger    *slog.Logger
	cfg       *config.Config
	store     storage.Store
	formatter reveal.Formatter
}

// New creates a Cli bound to io. Services are wired when a command runs.
func New(io iocli.IO) *Cli {
	return &Cli{io: io}
}

// Close releases the card store if a command opened it
func (c *Cli) Close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// render выполняет шаблон и пишет результат в вывод CLI
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// confirmed reports whether the answer means "yes"
func confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
