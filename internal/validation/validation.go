// Package validation holds the field validators behind the data-entry
// forms. Each validator takes the raw user input and returns the
// normalized value, or an error whose message is the user-facing reason.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxAmount is the largest accepted monetary amount, inclusive.
	MaxAmount = 999999.99
	// MaxQuantity is the per-line-item quantity ceiling.
	MaxQuantity = 1000
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Cambodian mobile numbers: operator prefix followed by 6-7 digits,
	// dialled either with the trunk zero or the +855 country code.
	phoneLocal    = regexp.MustCompile(`^0(1[0-9]|6[1-9]|7[0-9]|8[1-9]|9[0-9])\d{6,7}$`)
	phoneIntl     = regexp.MustCompile(`^\+855(1[0-9]|6[1-9]|7[0-9]|8[1-9]|9[0-9])\d{6,7}$`)
	phoneIntlBare = regexp.MustCompile(`^855(1[0-9]|6[1-9]|7[0-9]|8[1-9]|9[0-9])\d{6,7}$`)

	phoneSeparators = regexp.MustCompile(`[\s\-()]`)

	postalPattern = regexp.MustCompile(`^\d{5,6}$`)
)

// Email checks the local@domain shape. Uniqueness against stored
// customers is the repository's job, not the validator's.
func Email(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if !emailPattern.MatchString(email) {
		return "", errors.New("invalid email format")
	}
	return email, nil
}

// Phone validates a Cambodian phone number and normalizes it to the
// canonical +855 form with the trunk zero removed.
func Phone(raw string) (string, error) {
	cleaned := phoneSeparators.ReplaceAllString(strings.TrimSpace(raw), "")

	switch {
	case phoneLocal.MatchString(cleaned):
		return "+855" + cleaned[1:], nil
	case phoneIntl.MatchString(cleaned):
		return cleaned, nil
	case phoneIntlBare.MatchString(cleaned):
		return "+" + cleaned, nil
	}
	return "", errors.New("invalid Cambodian phone number, expected 0XX XXX XXX or +855 XX XXX XXX")
}

// Name accepts Latin and Khmer letters plus spaces and -'. between 2 and
// 50 characters. field names the form field in the rejection reason.
func Name(raw, field string) (string, error) {
	name := strings.TrimSpace(raw)

	if utf8.RuneCountInString(name) < 2 {
		return "", fmt.Errorf("%s must be at least 2 characters", field)
	}
	if utf8.RuneCountInString(name) > 50 {
		return "", fmt.Errorf("%s cannot exceed 50 characters", field)
	}

	for _, r := range name {
		if unicode.IsDigit(r) {
			return "", fmt.Errorf("%s cannot contain numbers", field)
		}
		if unicode.Is(unicode.Latin, r) || unicode.Is(unicode.Khmer, r) {
			continue
		}
		if unicode.IsSpace(r) || strings.ContainsRune("-'.", r) {
			continue
		}
		return "", fmt.Errorf("%s contains unsupported characters", field)
	}

	return name, nil
}

// PostalCode checks the Cambodian 5-6 digit format.
func PostalCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if !postalPattern.MatchString(code) {
		return "", errors.New("postal code must be 5-6 digits")
	}
	return code, nil
}

// PostalCodeForCity validates a postal code against the selected city.
// Known cities must carry their table value; unknown cities fall back to
// the plain format check.
func PostalCodeForCity(city, raw string) (string, error) {
	code, err := PostalCode(raw)
	if err != nil {
		return "", err
	}
	if expected, ok := PostalCodeOf(city); ok && code != expected {
		return "", fmt.Errorf("postal code for %s must be %s", city, expected)
	}
	return code, nil
}

// Amount parses a monetary amount, rejecting negatives and anything above
// MaxAmount. The boundary itself is accepted.
func Amount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.New("invalid amount format")
	}
	if err := CheckAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// CheckAmount applies the amount bounds to an already-parsed value.
func CheckAmount(amount float64) error {
	if amount < 0 {
		return errors.New("amount cannot be negative")
	}
	if amount > MaxAmount {
		return errors.New("amount exceeds maximum limit")
	}
	return nil
}

// Quantity parses a line-item quantity.
func Quantity(raw string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("quantity must be a number")
	}
	if err := CheckQuantity(qty); err != nil {
		return 0, err
	}
	return qty, nil
}

// CheckQuantity applies the quantity bounds to an already-parsed value.
// The stock bound is applied by order insertion, where current stock is
// known.
func CheckQuantity(qty int) error {
	if qty <= 0 {
		return errors.New("quantity must be greater than 0")
	}
	if qty > MaxQuantity {
		return fmt.Errorf("quantity cannot exceed %d", MaxQuantity)
	}
	return nil
}

// ShipDate rejects ship dates earlier than the order date.
func ShipDate(orderDate, shipDate time.Time) error {
	if shipDate.Before(orderDate) {
		return errors.New("ship date cannot be before order date")
	}
	return nil
}
