package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/omnicard/internal/client/wallet"
	"github.com/iudanet/omnicard/internal/reveal"
)

// Run shows the interactive card list until the user quits or ctx is done.
func Run(ctx context.Context, svc wallet.Service, formatter reveal.Formatter, logger *slog.Logger) error {
	m, err := newModel(ctx, svc, formatter, logger)
	if err != nil {
		return fmt.Errorf("failed to load cards: %w", err)
	}
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	logger.DebugContext(ctx, "tui closed")
	return nil
}
