package validation

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching.
var (
	// ErrInvalidCharacter indicates a non-digit character in a numeric field
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidLength indicates a numeric field of unexpected length
	ErrInvalidLength = errors.New("invalid length")
)

// InvalidCharacterError reports the first offending character of a field.
type InvalidCharacterError struct {
	Field string
	Char  rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s: invalid character %q", e.Field, e.Char)
}

// Is makes errors.Is(err, ErrInvalidCharacter) work.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// LengthBound описывает, как сравнивается длина поля с ожидаемой
type LengthBound int

const (
	BoundExactly LengthBound = iota // длина должна совпадать
	BoundAtMost                     // длина не больше ожидаемой
	BoundAtLeast                    // длина не меньше ожидаемой
)

func (b LengthBound) String() string {
	switch b {
	case BoundExactly:
		return "exactly"
	case BoundAtMost:
		return "at most"
	case BoundAtLeast:
		return "at least"
	default:
		return fmt.Sprintf("LengthBound(%d)", int(b))
	}
}

// InvalidLengthError reports expected versus actual length of a field.
type InvalidLengthError struct {
	Field    string
	Bound    LengthBound
	Expected int
	Actual   int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s: length must be %s %d digits, got %d", e.Field, e.Bound, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrInvalidLength) work.
func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}
