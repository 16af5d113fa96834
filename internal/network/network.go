// Package network infers the payment network of a card from its number.
package network

import (
	"fmt"
	"strconv"
	"strings"
)

// PaymentNetwork is the card scheme derived from a card number.
type PaymentNetwork int

const (
	Unknown PaymentNetwork = iota
	Visa
	Mastercard
	Amex
	Discover
)

var networkNames = map[PaymentNetwork]string{
	Unknown:    "unknown",
	Visa:       "visa",
	Mastercard: "mastercard",
	Amex:       "amex",
	Discover:   "discover",
}

var displayNames = map[PaymentNetwork]string{
	Unknown:    "Unknown",
	Visa:       "Visa",
	Mastercard: "Mastercard",
	Amex:       "American Express",
	Discover:   "Discover",
}

// String returns the lowercase identifier ("visa", "amex", ...).
func (n PaymentNetwork) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return fmt.Sprintf("PaymentNetwork(%d)", int(n))
}

// DisplayName returns the brand name shown to the user.
func (n PaymentNetwork) DisplayName() string {
	if name, ok := displayNames[n]; ok {
		return name
	}
	return displayNames[Unknown]
}

// ParsePaymentNetwork is the inverse of String.
func ParsePaymentNetwork(s string) (PaymentNetwork, error) {
	for n, name := range networkNames {
		if strings.EqualFold(name, s) {
			return n, nil
		}
	}
	return Unknown, fmt.Errorf("unknown payment network %q", s)
}

// Classify returns the payment network for a digit-only card number.
// Rules are checked in order and the first match wins:
//
//	amex:       34/37, 15 digits
//	visa:       4, 13/16/19 digits
//	mastercard: 51-55 or 2221-2720, 16 digits
//	discover:   6011, 65, 644-649 or 622126-622925, 16-19 digits
//
// Anything else, including an empty or non-numeric string, is Unknown.
func Classify(number string) PaymentNetwork {
	length := len(number)

	if (strings.HasPrefix(number, "34") || strings.HasPrefix(number, "37")) && length == 15 {
		return Amex
	}

	if strings.HasPrefix(number, "4") && (length == 13 || length == 16 || length == 19) {
		return Visa
	}

	if length == 16 {
		if prefixIn(number, 2, 51, 55) || prefixIn(number, 4, 2221, 2720) {
			return Mastercard
		}
	}

	if length >= 16 && length <= 19 {
		if strings.HasPrefix(number, "6011") || strings.HasPrefix(number, "65") {
			return Discover
		}
		if prefixIn(number, 3, 644, 649) || prefixIn(number, 6, 622126, 622925) {
			return Discover
		}
	}

	return Unknown
}

// prefixIn reports whether the first n characters of number parse as an
// integer within [lo, hi].
func prefixIn(number string, n, lo, hi int) bool {
	if len(number) < n {
		return false
	}
	prefix := number[:n]
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return false
		}
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return false
	}
	return v >= lo && v <= hi
}
