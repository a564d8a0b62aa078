// Package phone validates and canonicalizes raw phone input.
//
// The accepted grammar is whatever libphonenumber parses and validates for
// the configured default region: an optional leading "+" with a country code,
// otherwise a national number resolved against config.DefaultRegion, with
// spaces, dots, dashes and parentheses tolerated as separators. The canonical
// form is E.164 ("+380501234567"), so every spelling of the same number
// reduces to one comparable value.
package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/tartampluch/go-phonebook/internal/config"
)

// Value is a phone number in canonical E.164 form.
type Value string

// ErrInvalidPhone is returned when raw input does not parse or validate
// as a real phone number.
var ErrInvalidPhone = errors.New("invalid phone number")

// Normalize converts raw input to its canonical Value.
// It is deterministic and idempotent: an E.164 output is valid input and
// normalizes to itself.
func Normalize(raw string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidPhone)
	}

	num, err := phonenumbers.Parse(trimmed, config.DefaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}

	// Parse is lenient about length and numbering plan; validation is not.
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}

	return Value(phonenumbers.Format(num, phonenumbers.E164)), nil
}

// String returns the canonical text of the value.
func (v Value) String() string {
	return string(v)
}
