package helper

import (
	"regexp"
	"strings"
)

// NotAvailable is shown in place of a missing phone.
const NotAvailable = "N/A"

var reElevenDigits = regexp.MustCompile(`^(\d{2})(\d{5})(\d{4})$`)

// FormatPhone renders an 11-digit mobile as "(11) 99999-8888".
// Any other string is returned unchanged.
func FormatPhone(phone string) string {
	if !reElevenDigits.MatchString(phone) {
		return phone
	}
	return reElevenDigits.ReplaceAllString(phone, "($1) $2-$3")
}

// DisplayPhone is FormatPhone with the N/A placeholder for absent values.
func DisplayPhone(phone *string) string {
	if phone == nil || strings.TrimSpace(*phone) == "" {
		return NotAvailable
	}
	return FormatPhone(*phone)
}

// DialLink builds the tel: target from the raw stored value.
// Empty when there is nothing to dial.
func DialLink(phone *string) string {
	if phone == nil || strings.TrimSpace(*phone) == "" {
		return ""
	}
	return "tel:" + *phone
}
