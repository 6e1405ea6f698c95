package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Digits returns only the decimal digits of s, preserving their order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Trim removes leading and trailing Unicode whitespace, including newlines.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveChars returns s with every rune present in cutset removed.
func RemoveChars(s, cutset string) string {
	if cutset == "" {
		return s
	}

	drop := make(map[rune]struct{}, utf8.RuneCountInString(cutset))
	for _, r := range cutset {
		drop[r] = struct{}{}
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, skip := drop[r]; !skip {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Camelize collapses a separator-delimited string into a single camelCase
// token. Segments are maximal runs of letters and digits; everything else
// separates. The first segment's first letter is lowercased, each later
// segment's first letter is uppercased, and segments join with no separator.
// Empty input yields empty output.
func Camelize(s string) string {
	segments := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(segments) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(LowerFirst(segments[0]))
	for _, seg := range segments[1:] {
		b.WriteString(UpperFirst(seg))
	}
	return b.String()
}

// LowerFirst lowercases only the first rune of s.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// UpperFirst uppercases only the first rune of s.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, f func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return s
	}
	mapped := f(r)
	if mapped == r {
		return s
	}
	return string(mapped) + s[size:]
}

// ASCIIFold strips combining diacritical marks after canonical decomposition,
// mapping characters like "é" to "e". Runes without a decomposition pass
// through unchanged.
func ASCIIFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
