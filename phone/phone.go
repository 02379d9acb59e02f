// Package phone validates and normalizes phone numbers into the
// digit-only international form the SMS API expects, e.g. 255742892731.
package phone

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidNumber is returned when a phone number cannot be normalized
// into a country-code prefixed digit string.
var ErrInvalidNumber = errors.New("invalid phone number")

const (
	// DefaultCountryCode replaces the leading zero on local numbers
	// such as 0742892731.
	DefaultCountryCode = "255"

	defaultMinLength = 9
	defaultMaxLength = 15
)

// Validator checks phone numbers against a configurable length window
// and country code. The zero value is not usable; call New.
type Validator struct {
	MinLength          int
	MaxLength          int
	DefaultCountryCode string
}

// New returns a Validator with the default Tanzanian rules.
func New() *Validator {
	return &Validator{
		MinLength:          defaultMinLength,
		MaxLength:          defaultMaxLength,
		DefaultCountryCode: DefaultCountryCode,
	}
}

// Validate normalizes number and returns it as a country-code prefixed
// digit string without the leading "+". A local number starting with
// "0" gets the validator's default country code. It fails with an error
// wrapping ErrInvalidNumber when the number contains non-digit
// characters or its normalized length falls outside the configured
// window.
func (v *Validator) Validate(number string) (string, error) {
	cleaned := clean(number)
	cleaned = strings.TrimPrefix(cleaned, "+")

	if cleaned == "" {
		return "", errors.Wrap(ErrInvalidNumber, "number is empty")
	}

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", errors.Wrapf(ErrInvalidNumber, "unexpected character %q in %q", r, number)
		}
	}

	if strings.HasPrefix(cleaned, "0") {
		cleaned = v.DefaultCountryCode + cleaned[1:]
	}

	if len(cleaned) < v.MinLength || len(cleaned) > v.MaxLength {
		return "", errors.Wrapf(ErrInvalidNumber, "%q normalizes to %d digits, want %d to %d", number, len(cleaned), v.MinLength, v.MaxLength)
	}

	// A leading zero can only survive here with an empty country code.
	if cleaned[0] == '0' {
		return "", errors.Wrapf(ErrInvalidNumber, "%q is missing a country code", number)
	}

	return cleaned, nil
}

// ValidateBatch normalizes every number, failing on the first invalid
// one. Either all numbers are returned normalized or none are.
func (v *Validator) ValidateBatch(numbers []string) ([]string, error) {
	normalized := make([]string, len(numbers))
	for i, number := range numbers {
		n, err := v.Validate(number)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}
	return normalized, nil
}

var defaultValidator = New()

// Validate normalizes number using the default Tanzanian rules.
func Validate(number string) (string, error) {
	return defaultValidator.Validate(number)
}

// ValidateBatch normalizes numbers using the default Tanzanian rules.
func ValidateBatch(numbers []string) ([]string, error) {
	return defaultValidator.ValidateBatch(numbers)
}

func clean(number string) string {
	number = strings.TrimSpace(number)
	number = strings.ReplaceAll(number, " ", "")
	number = strings.ReplaceAll(number, "-", "")
	number = strings.ReplaceAll(number, "(", "")
	number = strings.ReplaceAll(number, ")", "")
	return number
}
