// Package validator checks a batch document before it reaches the engine.
package validator

import (
	"errors"
	"fmt"
	"regexp"

	"bankreplay/internal/fileio"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrInvalidRate     = errors.New("exchange rate must be positive")
)

var (
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

func ValidateCurrency(code string) error {
	if !currencyRegex.MatchString(code) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return nil
}

// ValidateDocument rejects documents the engine could not replay coherently:
// malformed user emails and unusable exchange rates. Command parameters are
// not validated here; bad references are engine-level resolution failures.
func ValidateDocument(doc fileio.Document) error {
	for _, user := range doc.Users {
		if err := ValidateEmail(user.Email); err != nil {
			return err
		}
	}
	for _, rate := range doc.ExchangeRates {
		if err := ValidateCurrency(rate.From); err != nil {
			return err
		}
		if err := ValidateCurrency(rate.To); err != nil {
			return err
		}
		if rate.Rate <= 0 {
			return fmt.Errorf("%w: %s->%s %v", ErrInvalidRate, rate.From, rate.To, rate.Rate)
		}
	}
	return nil
}
