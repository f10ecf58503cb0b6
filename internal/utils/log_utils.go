// Package utils holds helpers for keeping user-supplied values safe in logs
package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLogStringLength defines the maximum number of characters kept from user-provided strings
const MaxLogStringLength = 120

// unprintable matches anything that is not a letter, number, punctuation, symbol or space
var unprintable = regexp.MustCompile(`[^\p{L}\p{N}\p{P}\p{S}\p{Z}]`)

// SanitizeLogString prepares a user-controlled string such as a lecturer name or room
// number for logging. Control characters become spaces, the result is cut to
// MaxLogStringLength characters and percent signs are doubled.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	input = strings.ReplaceAll(input, "\r\n", "\n")
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)
	sanitized = unprintable.ReplaceAllString(sanitized, "")

	if utf8.RuneCountInString(sanitized) > MaxLogStringLength {
		sanitized = string([]rune(sanitized)[:MaxLogStringLength]) + "... (truncated)"
	}

	return strings.ReplaceAll(sanitized, "%", "%%")
}

// MaskEmail keeps the first character of the local part and the domain,
// e.g. "lee@uni.test" becomes "l***@uni.test". Values without an @ are fully masked.
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	first, _ := utf8.DecodeRuneInString(email)
	return string(first) + "***" + SanitizeLogString(email[at:])
}
