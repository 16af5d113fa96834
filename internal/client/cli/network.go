package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/omnicard/internal/network"
	"github.com/iudanet/omnicard/internal/validation"
)

func (c *Cli) newNetworkCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "network <number>",
		Short:       "Show the payment network of a card number",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{noStoreAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNetwork(args[0])
		},
	}
}

func (c *Cli) runNetwork(raw string) error {
	number, err := validation.CompactNumeric(validation.FieldNumber, raw)
	if err != nil {
		c.logger.Debug("number rejected", "error", err)
		c.io.Println(invalidInputNotice)
		return ErrReported
	}

	c.io.Println(network.Classify(number).DisplayName())

	return nil
}
