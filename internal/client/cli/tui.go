package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/omnicard/internal/client/tui"
)

func (c *Cli) newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and manage cards interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), c.wallet, c.formatter, c.logger)
		},
	}
}
