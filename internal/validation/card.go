package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/iudanet/omnicard/internal/models"
)

// Имена полей, которые попадают в ошибки валидации
const (
	FieldNumber          = "number"
	FieldExpirationMonth = "expiration month"
	FieldExpirationYear  = "expiration year"
	FieldSecurityCode    = "security code"
)

const (
	// SecurityCodeLen точная длина CVV
	SecurityCodeLen = 3
	// MaxMonthLen максимальная длина месяца
	MaxMonthLen = 2
	// MaxYearLen максимальная длина года
	MaxYearLen = 4
	// FixedNumberLen длина номера для правила NumberRuleExact16
	FixedNumberLen = 16
)

// NumberRule selects how the card number length is checked.
// Only one rule is active for a Validator.
type NumberRule string

const (
	// NumberRuleNonEmpty accepts any number with at least one digit.
	NumberRuleNonEmpty NumberRule = "nonempty"
	// NumberRuleExact16 accepts only 16-digit numbers.
	NumberRuleExact16 NumberRule = "exact16"
)

// ParseNumberRule converts a configuration value into a NumberRule.
// An empty value selects NumberRuleNonEmpty.
func ParseNumberRule(s string) (NumberRule, error) {
	switch NumberRule(strings.ToLower(strings.TrimSpace(s))) {
	case "", NumberRuleNonEmpty:
		return NumberRuleNonEmpty, nil
	case NumberRuleExact16:
		return NumberRuleExact16, nil
	default:
		return "", fmt.Errorf("unknown number rule %q (expected %q or %q)", s, NumberRuleNonEmpty, NumberRuleExact16)
	}
}

// Validator builds card records from raw user input.
type Validator struct {
	now   func() time.Time
	newID func() string
	rule  NumberRule
}

// Option configures a Validator
type Option func(*Validator)

// WithClock overrides the time source used for DateAdded
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// WithIDGenerator overrides the card ID generator
func WithIDGenerator(newID func() string) Option {
	return func(v *Validator) {
		v.newID = newID
	}
}

// NewValidator creates a Validator with the given number rule.
func NewValidator(rule NumberRule, opts ...Option) *Validator {
	v := &Validator{
		rule:  rule,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Rule returns the active number rule
func (v *Validator) Rule() NumberRule {
	return v.rule
}

// Validate normalizes the numeric fields of in and returns a new card.
// DateAdded is always in UTC.
// On failure it returns nil and an *InvalidCharacterError or *InvalidLengthError.
func (v *Validator) Validate(in models.CardInput) (*models.Card, error) {
	number, err := v.ValidateNumber(in.Number)
	if err != nil {
		return nil, err
	}

	month, year, err := ValidateExpiration(in.ExpirationMonth, in.ExpirationYear)
	if err != nil {
		return nil, err
	}

	code, err := ValidateSecurityCode(in.SecurityCode)
	if err != nil {
		return nil, err
	}

	return &models.Card{
		ID:              v.newID(),
		Nickname:        strings.TrimSpace(in.Nickname),
		Name:            strings.TrimSpace(in.Name),
		Number:          number,
		ExpirationMonth: month,
		ExpirationYear:  year,
		SecurityCode:    code,
		DateAdded:       v.now().UTC(),
	}, nil
}

// ValidateNumber strips whitespace from the card number and applies the number rule.
func (v *Validator) ValidateNumber(raw string) (string, error) {
	number, err := CompactNumeric(FieldNumber, raw)
	if err != nil {
		return "", err
	}

	switch v.rule {
	case NumberRuleExact16:
		if err := enforceLength(FieldNumber, number, BoundExactly, FixedNumberLen); err != nil {
			return "", err
		}
	default:
		if err := enforceLength(FieldNumber, number, BoundAtLeast, 1); err != nil {
			return "", err
		}
	}

	return number, nil
}

// ValidateExpiration strips whitespace from month and year and checks their lengths.
func ValidateExpiration(rawMonth, rawYear string) (month, year string, err error) {
	month, err = CompactNumeric(FieldExpirationMonth, rawMonth)
	if err != nil {
		return "", "", err
	}
	year, err = CompactNumeric(FieldExpirationYear, rawYear)
	if err != nil {
		return "", "", err
	}

	if err := enforceLength(FieldExpirationMonth, month, BoundAtMost, MaxMonthLen); err != nil {
		return "", "", err
	}
	if err := enforceLength(FieldExpirationYear, year, BoundAtMost, MaxYearLen); err != nil {
		return "", "", err
	}

	return month, year, nil
}

// ValidateSecurityCode strips whitespace and requires exactly three digits.
func ValidateSecurityCode(raw string) (string, error) {
	code, err := CompactNumeric(FieldSecurityCode, raw)
	if err != nil {
		return "", err
	}
	if err := enforceLength(FieldSecurityCode, code, BoundExactly, SecurityCodeLen); err != nil {
		return "", err
	}
	return code, nil
}

// CompactNumeric removes all whitespace from s and fails on the first
// character that is not an ASCII digit.
func CompactNumeric(field, s string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", &InvalidCharacterError{Field: field, Char: r}
		}
	}

	return cleaned, nil
}

// enforceLength работает только с уже проверенными строками из цифр,
// поэтому len совпадает с количеством символов
func enforceLength(field, s string, bound LengthBound, expected int) error {
	actual := len(s)

	var ok bool
	switch bound {
	case BoundExactly:
		ok = actual == expected
	case BoundAtMost:
		ok = actual <= expected
	case BoundAtLeast:
		ok = actual >= expected
	}

	if !ok {
		return &InvalidLengthError{Field: field, Bound: bound, Expected: expected, Actual: actual}
	}
	return nil
}
