package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/omnicard/internal/client/storage"
)

func (c *Cli) newDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDelete(cmd.Context(), args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")

	return cmd
}

func (c *Cli) runDelete(ctx context.Context, id string, yes bool) error {
	// Сначала получаем карту для показа информации
	card, err := c.wallet.GetCard(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCardNotFound) {
			return fmt.Errorf("card not found with ID: %s", id)
		}
		return err
	}

	view := c.formatter.Card(card, false)

	c.io.Println("About to delete:")
	c.io.Printf("  Nickname: %s\n", view.Nickname)
	c.io.Printf("  Number:   %s\n", view.Number)
	c.io.Println()

	if !yes {
		answer, err := c.io.ReadInput("Are you sure you want to delete this card? (yes/no): ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed(answer) {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := c.wallet.DeleteCard(ctx, id); err != nil {
		return err
	}

	c.io.Println("✓ Card deleted successfully!")

	return nil
}
