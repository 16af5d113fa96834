package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/omnicard/internal/client/storage"
)

func (c *Cli) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show full card details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGet(cmd.Context(), args[0])
		},
	}
}

func (c *Cli) runGet(ctx context.Context, id string) error {
	card, err := c.wallet.GetCard(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCardNotFound) {
			return fmt.Errorf("card not found with ID: %s", id)
		}
		return err
	}

	return c.render("card", cardTemplate, c.formatter.Card(card, true))
}
