package reveal

import (
	"strings"
	"unicode"

	"github.com/iudanet/omnicard/internal/models"
	"github.com/iudanet/omnicard/internal/network"
)

// Плейсхолдеры для скрытых полей
const (
	MaskChar                = '*'
	MaskedNumberPrefix      = "**** **** **** "
	ExpirationPlaceholder   = "MM/YY"
	SecurityCodePlaceholder = "CVV"
	numberGroupSize         = 4
)

// CardView holds the display strings of a single card.
type CardView struct {
	ID           string
	Nickname     string
	Name         string
	Number       string
	Expiration   string
	SecurityCode string
	Network      network.PaymentNetwork
	Revealed     bool
}

// Formatter renders cards for display.
type Formatter struct {
	// MaskName hides letters and digits of the cardholder name while masked.
	// When false the name is always shown as-is.
	MaskName bool
}

// Card renders every field of card. The network is classified on each call.
func (f Formatter) Card(card *models.Card, revealed bool) CardView {
	return CardView{
		ID:           card.ID,
		Nickname:     card.Nickname,
		Name:         f.Name(card.Name, revealed),
		Number:       Number(card.Number, revealed),
		Expiration:   Expiration(card.ExpirationMonth, card.ExpirationYear, revealed),
		SecurityCode: SecurityCode(card.SecurityCode, revealed),
		Network:      network.Classify(card.Number),
		Revealed:     revealed,
	}
}

// Name renders the cardholder name.
func (f Formatter) Name(name string, revealed bool) string {
	if revealed || !f.MaskName {
		return name
	}
	return MaskName(name)
}

// MaskName replaces every letter and digit with MaskChar and keeps
// spaces and punctuation.
func MaskName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return MaskChar
		}
		return r
	}, name)
}

// Number renders the card number: grouped digits when revealed, otherwise
// three masked groups and the last four digits.
func Number(number string, revealed bool) string {
	if revealed {
		return GroupNumber(number)
	}
	return MaskedNumberPrefix + LastN(number, numberGroupSize)
}

// GroupNumber splits number into 4-digit clusters separated by single spaces.
func GroupNumber(number string) string {
	if len(number) <= numberGroupSize {
		return number
	}

	var sb strings.Builder
	sb.Grow(len(number) + len(number)/numberGroupSize)
	for i := 0; i < len(number); i++ {
		if i > 0 && i%numberGroupSize == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(number[i])
	}
	return sb.String()
}

// LastN returns the last n bytes of s, or all of s when it is shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Expiration renders "MM/YY" while masked and month/year when revealed.
func Expiration(month, year string, revealed bool) string {
	if !revealed {
		return ExpirationPlaceholder
	}
	return month + "/" + year
}

// SecurityCode renders "CVV" while masked.
func SecurityCode(code string, revealed bool) string {
	if !revealed {
		return SecurityCodePlaceholder
	}
	return code
}
