package utils

import (
	"errors"
	"regexp"
	"strings"

	"flatfundpro/internal/pkg/consts"
)

// MobileIdentity is a canonicalized phone number split into its dial code and
// local number.
type MobileIdentity struct {
	CountryCode   string
	LocalNumber   string
	FullNumber    string
	WasNormalized bool
}

const defaultCountryCode = consts.DefaultCountryDialCode

// dialCodeRegistry maps known country dial codes (without "+") to the
// expected local-number length for that country.
var dialCodeRegistry = map[string]int{
	"1":   10, // US/Canada
	"44":  10, // UK
	"61":  9,  // Australia
	"65":  8,  // Singapore
	"971": 9,  // UAE
	"974": 8,  // Qatar
	"966": 9,  // Saudi Arabia
	"60":  9,  // Malaysia
	"977": 10, // Nepal
}

var separatorChars = regexp.MustCompile(`[\s\-().]`)
var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// NormalizeMobile canonicalizes a free-form phone string into a
// (countryCode, localNumber) pair. A bare 10-digit number defaults to +91.
// Longer unrecognized numbers keep their last 10 digits and default to +91;
// that fallback is lossy but accepted, not an error.
func NormalizeMobile(raw string) MobileIdentity {
	cleaned := separatorChars.ReplaceAllString(raw, "")
	hasPlus := strings.HasPrefix(cleaned, "+")
	digits := strings.TrimPrefix(cleaned, "+")

	identity := MobileIdentity{CountryCode: defaultCountryCode}

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "91") && isDigits(digits):
		identity.LocalNumber = digits[2:]

	// A bare 10-digit number is a local Indian number. With an explicit "+"
	// the dial code registry gets first claim.
	case !hasPlus && len(digits) == 10 && isDigits(digits):
		identity.LocalNumber = digits

	case matchesRegistry(digits) != "":
		code := matchesRegistry(digits)
		identity.CountryCode = "+" + code
		identity.LocalNumber = digits[len(code):]

	case len(digits) == 10 && isDigits(digits):
		identity.LocalNumber = digits

	case len(digits) > 10 && isDigits(digits):
		// Lossy fallback: keep the last 10 digits.
		identity.LocalNumber = digits[len(digits)-10:]

	default:
		identity.LocalNumber = digits
	}

	identity.FullNumber = identity.CountryCode + identity.LocalNumber
	identity.WasNormalized = identity.FullNumber != raw
	return identity
}

// matchesRegistry returns the dial code whose expected local length exactly
// matches the remainder of the digit string, or "" when none does.
func matchesRegistry(digits string) string {
	if !isDigits(digits) {
		return ""
	}
	for code, localLen := range dialCodeRegistry {
		if strings.HasPrefix(digits, code) && len(digits)-len(code) == localLen {
			return code
		}
	}
	return ""
}

func isDigits(s string) bool {
	return s != "" && digitsOnly.MatchString(s)
}

// ValidateMobile checks the normalized identity: +91 numbers must be exactly
// 10 digits starting 6-9; other country codes accept 8-15 digit local numbers.
func ValidateMobile(m MobileIdentity) error {
	if !isDigits(m.LocalNumber) {
		return errors.New("local number must contain only digits")
	}
	if m.CountryCode == defaultCountryCode {
		if len(m.LocalNumber) != 10 {
			return errors.New("+91 numbers must have exactly 10 digits")
		}
		if m.LocalNumber[0] < '6' || m.LocalNumber[0] > '9' {
			return errors.New("+91 numbers must start with 6-9")
		}
		return nil
	}
	if len(m.LocalNumber) < 8 || len(m.LocalNumber) > 15 {
		return errors.New("local number must be 8-15 digits")
	}
	return nil
}

// MaskMobile reveals only the last 4 digits of the local number.
func MaskMobile(m MobileIdentity) string {
	local := m.LocalNumber
	if len(local) <= 4 {
		return "******" + local
	}
	return "******" + local[len(local)-4:]
}
