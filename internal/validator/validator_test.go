package validator

import (
	"errors"
	"testing"

	"bankreplay/internal/fileio"
)

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("ada@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	for _, bad := range []string{"", "ada", "ada@", "a b@example.com"} {
		if err := ValidateEmail(bad); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail for %q, got %v", bad, err)
		}
	}
}

func TestValidateCurrency(t *testing.T) {
	if err := ValidateCurrency("RON"); err != nil {
		t.Fatalf("valid code rejected: %v", err)
	}
	for _, bad := range []string{"", "ron", "RONN", "R1N"} {
		if err := ValidateCurrency(bad); !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("expected ErrInvalidCurrency for %q, got %v", bad, err)
		}
	}
}

func TestValidateDocument(t *testing.T) {
	doc := fileio.Document{
		Users:         []fileio.UserInput{{Email: "ada@example.com"}},
		ExchangeRates: []fileio.RateInput{{From: "EUR", To: "RON", Rate: 4.97}},
	}
	if err := ValidateDocument(doc); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	doc.ExchangeRates[0].Rate = 0
	if err := ValidateDocument(doc); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}
}
