package parse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var nonTokenRe = regexp.MustCompile(`[^A-Z0-9]+`)

// FormatAmenityName turns an amenity token into a display label,
// e.g. "COFFEE_MACHINE" -> "Coffee Machine".
func FormatAmenityName(token string) string {
	words := strings.Split(strings.ToLower(token), "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// FormatAmenityNames formats every token in order.
func FormatAmenityNames(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = FormatAmenityName(t)
	}
	return out
}

// AmenityToken normalises free-form input into an amenity token,
// e.g. "Coffee machine" -> "COFFEE_MACHINE".
func AmenityToken(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.Trim(nonTokenRe.ReplaceAllString(s, "_"), "_")
	if s == "" {
		return "", fmt.Errorf("amenity name %q has no letters or digits", raw)
	}
	return s, nil
}
