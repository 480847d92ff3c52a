// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var tenDigits = regexp.MustCompile(`^[1-9]\d{9}$`)

// CleanMobile strips the separators people type into phone fields.
func CleanMobile(mobile string) string {
	cleaned := strings.ReplaceAll(mobile, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return cleaned
}

// ValidateMobile checks for a 10-digit mobile number, with or without a
// separator or two in the middle.
func ValidateMobile(mobile string) bool {
	return tenDigits.MatchString(CleanMobile(mobile))
}

// WhatsAppNumber converts a stored mobile number into the E.164 form the
// messaging provider expects. Numbers already carrying a country code are
// passed through unchanged.
func WhatsAppNumber(mobile, countryCode string) string {
	cleaned := CleanMobile(mobile)
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	return countryCode + cleaned
}
