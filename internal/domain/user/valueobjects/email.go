// Package valueobjects validates user identity fields.
package valueobjects

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const MaxEmailLength = 255

var (
	ErrEmptyEmail = errors.New("email cannot be empty")

	emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	foldCase     = cases.Lower(language.Und)
)

// NormalizeEmail trims and lower-cases an address without validating it.
// Users are keyed by the normalized form.
func NormalizeEmail(value string) string {
	return foldCase.String(strings.TrimSpace(value))
}

// Email is an address that has been normalized and checked.
type Email struct {
	value string
}

func NewEmail(value string) (*Email, error) {
	addr := NormalizeEmail(value)
	switch {
	case addr == "":
		return nil, ErrEmptyEmail
	case len(addr) > MaxEmailLength:
		return nil, fmt.Errorf("email longer than %d characters", MaxEmailLength)
	case !emailPattern.MatchString(addr):
		return nil, fmt.Errorf("invalid email %q", value)
	}
	return &Email{value: addr}, nil
}

func (e *Email) String() string {
	return e.value
}
