//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// to avoid rebuilding these in hot code
	deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	titler     = cases.Title(language.English)
)

// StripAccents - émigré --> emigre; the Gale scans sprinkle diacritics unpredictably
func StripAccents(s string) string {
	out, _, e := transform.String(deaccenter, s)
	if e != nil {
		return s
	}
	return out
}

// TitleCase - "NEW YORK HERALD" --> "New York Herald"
func TitleCase(s string) string {
	return titler.String(strings.ToLower(strings.TrimSpace(s)))
}

// HasControlChars - true if any rune is a control character (tab/newline included)
func HasControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// PurgeControlChars - swap control characters for spaces
func PurgeControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// HasVowel - OCR rubble tends not to have any
func HasVowel(s string) bool {
	return strings.ContainsAny(strings.ToLower(s), "aeiouy")
}
