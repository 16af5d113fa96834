package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iudanet/omnicard/internal/reveal"
)

func (c *Cli) newModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "mode [single|multi]",
		Short:     "Show or change how many cards may be revealed at once",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{reveal.Single.String(), reveal.Multi.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.runShowMode(cmd.Context())
			}
			return c.runSetMode(cmd.Context(), args[0])
		},
	}
}

func (c *Cli) runShowMode(ctx context.Context) error {
	mode, err := c.displayMode(ctx)
	if err != nil {
		return err
	}
	c.io.Printf("Display mode: %s\n", mode)
	return nil
}

func (c *Cli) runSetMode(ctx context.Context, value string) error {
	mode, err := reveal.ParseMode(value)
	if err != nil {
		return err
	}

	if err := c.wallet.SetMultiDisplay(ctx, mode == reveal.Multi); err != nil {
		return err
	}

	c.io.Printf("✓ Display mode set to %s\n", mode)
	return nil
}
