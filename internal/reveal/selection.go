// Package reveal tracks which cards show their details in plaintext and
// renders card fields in masked or revealed form.
package reveal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Mode controls how many cards may be revealed at once.
type Mode int

const (
	// Single allows at most one revealed card.
	Single Mode = iota
	// Multi lets every card toggle independently.
	Multi
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "multi":
		return Multi, nil
	default:
		return Single, fmt.Errorf("unknown display mode %q (expected single or multi)", s)
	}
}

// Selection is the set of revealed card IDs. Cards not in the set are masked.
// The zero value is an empty selection in Single mode.
type Selection struct {
	revealed map[string]struct{}
	mode     Mode
}

// NewSelection creates an empty selection in the given mode.
func NewSelection(mode Mode) *Selection {
	return &Selection{
		revealed: make(map[string]struct{}),
		mode:     mode,
	}
}

// Mode returns the current mode
func (s *Selection) Mode() Mode {
	return s.mode
}

// SetMode switches the mode and masks every card.
func (s *Selection) SetMode(mode Mode) {
	s.mode = mode
	s.Clear()
}

// ToggleMode flips between Single and Multi and masks every card.
func (s *Selection) ToggleMode() Mode {
	if s.mode == Multi {
		s.SetMode(Single)
	} else {
		s.SetMode(Multi)
	}
	return s.mode
}

// Toggle handles a tap on the card with the given ID.
//
// In Single mode tapping the revealed card masks it and tapping any other card
// masks the previous one and reveals the new one. In Multi mode only the
// tapped card changes state.
func (s *Selection) Toggle(id string) {
	if s.revealed == nil {
		s.revealed = make(map[string]struct{})
	}

	_, wasRevealed := s.revealed[id]

	if s.mode == Single {
		clear(s.revealed)
		if !wasRevealed {
			s.revealed[id] = struct{}{}
		}
		return
	}

	if wasRevealed {
		delete(s.revealed, id)
	} else {
		s.revealed[id] = struct{}{}
	}
}

// IsRevealed reports whether the card with the given ID is shown in plaintext.
func (s *Selection) IsRevealed(id string) bool {
	_, ok := s.revealed[id]
	return ok
}

// Clear masks every card. Called on mode changes and after any deletion,
// so the set never holds IDs of cards that are gone.
func (s *Selection) Clear() {
	clear(s.revealed)
}

// Revealed returns the revealed IDs in sorted order.
func (s *Selection) Revealed() []string {
	ids := lo.Keys(s.revealed)
	slices.Sort(ids)
	return ids
}

// Len returns the number of revealed cards
func (s *Selection) Len() int {
	return len(s.revealed)
}
