package cli

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/iudanet/omnicard/internal/models"
	"github.com/iudanet/omnicard/internal/reveal"
)

type listOptions struct {
	reveal []string
	multi  bool
}

func (c *Cli) newListCommand() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved cards, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.reveal, "reveal", nil, "card IDs to reveal, applied in order")
	cmd.Flags().BoolVar(&opts.multi, "multi", false, "allow several revealed cards regardless of the saved mode")

	return cmd
}

func (c *Cli) runList(ctx context.Context, opts listOptions) error {
	cards, err := c.wallet.ListCards(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	if len(cards) == 0 {
		c.io.Println(emptyWalletNotice)
		return nil
	}

	mode := reveal.Multi
	if !opts.multi {
		mode, err = c.displayMode(ctx)
		if err != nil {
			return err
		}
	}

	known := lo.Associate(cards, func(card *models.Card) (string, struct{}) {
		return card.ID, struct{}{}
	})

	selection := reveal.NewSelection(mode)
	for _, id := range opts.reveal {
		if _, ok := known[id]; !ok {
			c.logger.WarnContext(ctx, "ignoring unknown card id", "id", id)
			continue
		}
		selection.Toggle(id)
	}

	views := lo.Map(cards, func(card *models.Card, _ int) reveal.CardView {
		return c.formatter.Card(card, selection.IsRevealed(card.ID))
	})

	return c.render("card list", cardListTemplate, views)
}

// displayMode возвращает сохраненный режим отображения
func (c *Cli) displayMode(ctx context.Context) (reveal.Mode, error) {
	multi, err := c.wallet.MultiDisplay(ctx)
	if err != nil {
		return reveal.Single, err
	}
	if multi {
		return reveal.Multi, nil
	}
	return reveal.Single, nil
}
