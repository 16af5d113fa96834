package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/omnicard/internal/client/wallet"
	"github.com/iudanet/omnicard/internal/models"
)

func (c *Cli) newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a new card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAdd(cmd.Context())
		},
	}
}

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== Add Card ===")
	c.io.Println()

	var in models.CardInput
	prompts := []struct {
		target *string
		prompt string
	}{
		{&in.Nickname, "Nickname (e.g., 'Travel Visa'): "},
		{&in.Name, "Name on card: "},
		{&in.Number, "Card Number: "},
		{&in.ExpirationMonth, "Expiration Month (MM): "},
		{&in.ExpirationYear, "Expiration Year (YY or YYYY): "},
	}

	for _, p := range prompts {
		value, err := c.io.ReadInput(p.prompt)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		*p.target = value
	}

	code, err := c.io.ReadPassword("Security Code: ")
	if err != nil {
		return fmt.Errorf("failed to read security code: %w", err)
	}
	in.SecurityCode = code

	card, err := c.wallet.AddCard(ctx, in)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidInput) {
			c.io.Println()
			c.io.Println(invalidInputNotice)
			return ErrReported
		}
		return fmt.Errorf("failed to add card: %w", err)
	}

	view := c.formatter.Card(card, false)

	c.io.Println()
	c.io.Println("✓ Card added successfully!")
	c.io.Printf("ID:      %s\n", view.ID)
	c.io.Printf("Number:  %s\n", view.Number)
	c.io.Printf("Network: %s\n", view.Network.DisplayName())

	return nil
}
