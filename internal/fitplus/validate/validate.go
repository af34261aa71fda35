// Package validate checks the shape and range of raw user input before it
// reaches the store. Every function is pure.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

type Reason string

const (
	TooShort     Reason = "too_short"
	InvalidChars Reason = "invalid_chars"
	Empty        Reason = "empty"
	NotANumber   Reason = "not_a_number"
	OutOfRange   Reason = "out_of_range"
	NotAnOption  Reason = "not_an_option"
)

// Error is a rejected input. Message is safe to show to the user.
type Error struct {
	Reason  Reason
	Message string
}

func (e *Error) Error() string { return e.Message }

func reject(reason Reason, format string, args ...any) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Username trims s and requires at least three characters drawn from
// letters, digits, hyphen and underscore.
func Username(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < MinUsernameLength {
		return "", reject(TooShort, "Username must be at least %d characters", MinUsernameLength)
	}
	for _, r := range s {
		if !isUsernameRune(r) {
			return "", reject(InvalidChars, "Username can only contain letters, numbers, hyphens, and underscores")
		}
	}
	return s, nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

func Password(s string) (string, error) {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return "", reject(TooShort, "Password must be at least %d characters", MinPasswordLength)
	}
	return s, nil
}

// NonEmpty returns s trimmed, or an Empty rejection when nothing is left.
func NonEmpty(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", reject(Empty, "Input cannot be empty")
	}
	return s, nil
}

// Numeric parses raw as a float and checks it against the inclusive range
// [minVal, maxVal].
func Numeric(raw string, minVal, maxVal float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, reject(NotANumber, "Please enter a valid number")
	}
	return Range(v, minVal, maxVal)
}

// Range checks an already-parsed value against [minVal, maxVal].
func Range(v, minVal, maxVal float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, reject(NotANumber, "Please enter a valid number")
	}
	if v < minVal {
		return 0, reject(OutOfRange, "Value must be at least %g", minVal)
	}
	if v > maxVal {
		return 0, reject(OutOfRange, "Value must be at most %g", maxVal)
	}
	return v, nil
}

// OneOf matches s against options ignoring case and returns the option's
// canonical spelling.
func OneOf(s string, options []string) (string, error) {
	s = strings.TrimSpace(s)
	for _, o := range options {
		if strings.EqualFold(o, s) {
			return o, nil
		}
	}
	return "", reject(NotAnOption, "Choose one of %s", strings.Join(options, ", "))
}

// ReasonOf extracts the rejection reason from err, if it is one.
func ReasonOf(err error) (Reason, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}
