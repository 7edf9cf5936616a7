//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cln

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/x-meng/AestheticaGoMiner/internal/gen"
)

//
// OCR NOISE SCORING
//

// a token is noise if it is (a) not a known english word AND (b) shaped like
// scanner rubble; a real dictionary would be better, but a frequency list of
// this size already separates "mJk3x" from "chiaroscuro" well enough

var (
	oddsymbol = regexp.MustCompile(`[^a-zA-ZÀ-ÖØ-öø-ÿ0-9\-'.]`)
	alldigits = regexp.MustCompile(`^[0-9]+$`)
)

// NoiseRatio - share of tokens that look like OCR rubble; 0.0 for empty text
func NoiseRatio(text string) float64 {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0.0
	}
	noisy := 0
	for _, t := range tokens {
		if IsNoisyToken(t) {
			noisy += 1
		}
	}
	return float64(noisy) / float64(len(tokens))
}

// IsNoisyToken - dictionary first, shape second
func IsNoisyToken(token string) bool {
	t := trimpunct(token)
	if t == "" {
		return false
	}

	if knownword(strings.ToLower(t)) {
		return false
	}

	return noisybypattern(t)
}

// noisybypattern - morphological rules for a token the dictionary does not know
func noisybypattern(t string) bool {
	// [a] strange symbols survive the whitelist only inside tokens; they are rubble
	if oddsymbol.MatchString(t) {
		return true
	}

	// [b] digits inside a word are rubble; a bare 2-4 digit number might be a year or a page
	hasdigit := strings.ContainsFunc(t, unicode.IsDigit)
	if hasdigit {
		if alldigits.MatchString(t) && len(t) >= 2 && len(t) <= 4 {
			return false
		}
		return true
	}

	// [c] five or more letters and not a vowel among them
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, t)
	if len([]rune(letters)) >= 5 && !gen.HasVowel(letters) {
		return true
	}

	// [d] a stray single character that is not "a" or "i"
	if len([]rune(t)) == 1 {
		l := strings.ToLower(t)
		if l != "a" && l != "i" {
			return true
		}
	}

	return false
}

func trimpunct(t string) string {
	return strings.Trim(t, ".,;:!?()\"'“”’ \t")
}

func knownword(w string) bool {
	w = strings.Trim(w, "-'.")
	if w == "" {
		return false
	}
	if _, ok := commonwords[w]; ok {
		return true
	}
	// plural/possessive fallback
	if strings.HasSuffix(w, "s") {
		if _, ok := commonwords[strings.TrimSuffix(w, "s")]; ok {
			return true
		}
	}
	return false
}
