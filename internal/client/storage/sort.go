package storage

import (
	"slices"
	"strings"

	"github.com/iudanet/omnicard/internal/models"
)

// SortCards orders cards by DateAdded ascending, breaking ties by ID.
// Backends without an ordered index use it before returning a list.
func SortCards(cards []*models.Card) {
	slices.SortStableFunc(cards, func(a, b *models.Card) int {
		if c := a.DateAdded.Compare(b.DateAdded); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
