// Package textnorm normalizes Spanish utterances before matching:
// lowercase, accents stripped, whitespace collapsed. The letter ñ is a
// base letter in Spanish and survives normalization.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// tilde is the combining mark that NFD splits off an ñ.
const tilde = '̃'

// Normalize lowercases the input, strips combining diacritical marks
// (á→a, ü→u) while keeping ñ intact, and collapses whitespace runs to a
// single space. Idempotent; empty input yields empty output.
func Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	decomposed := norm.NFD.String(strings.ToLower(text))
	var b strings.Builder
	b.Grow(len(decomposed))
	var prev rune
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			if r == tilde && prev == 'n' {
				b.WriteRune(r)
			}
			continue
		}
		prev = r
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(norm.NFC.String(b.String())), " ")
}
