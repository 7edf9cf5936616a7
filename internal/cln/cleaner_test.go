//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cln

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

func TestFixOCRErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ligatures", "the ﬁnal ﬂourish", "the final flourish"},
		{"zero for o", "the w0rd was g0od", "the word was good"},
		{"doubled zero", "fine w00l cloth", "fine wool cloth"},
		{"one for l", "a sti11ed voice", "a stilled voice"},
		{"lone one is I", "and 1 heard the aria", "and I heard the aria"},
		{"broken word", "a mis- \n read line", "a misread line"},
		{"debris", "soprano ¬ sang", "soprano sang"},
		{"bare years survive", "in 1850 the house", "in 1850 the house"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FixOCRErrors(tt.in))
		})
	}
}

func TestCleanFullText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"html", "a <b>brilliant</b> night", "a brilliant night"},
		{"urls", "see https://example.org/x for more", "see for more"},
		{"strange symbols", "the © overture ❧ began", "the overture began"},
		{"lowercased", "The Daily Review", "the daily review"},
		{"keeps punctuation", "well, well; indeed!", "well, well; indeed!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CleanFullText(tt.in))
		})
	}
}

// whatever goes in, cleaning may never grow the text or leave control chars behind
func TestCleanTextProperties(t *testing.T) {
	samples := []string{
		"The new soprano sang with exquisite taste.\x0c\x0c",
		"a\ttabbed\tline\nwith\rbreaks",
		"<div>html soup</div> and https://example.org/ and ¬ debris",
		"ﬁﬂﬀ ligatures and w00l and sti11",
		strings.Repeat("beautiful sublime ", 200),
		"",
	}

	for _, s := range samples {
		out := CleanFullText(FixOCRErrors(s))
		require.LessOrEqual(t, len(out), len(s))
		for _, r := range out {
			require.False(t, r < ' ' && r != ' ', "control char %q survived in %q", r, out)
		}
	}
}

// text that is already clean passes through untouched, and a second pass
// over repaired text changes nothing
func TestCleanIsIdempotent(t *testing.T) {
	clean := []string{
		"the evening performance was a triumph of taste.",
		"a quiet air; the house half empty, the critics unmoved.",
		"in 1850 the chorus sang well enough, but the tenor faltered.",
	}
	for _, s := range clean {
		require.Equal(t, s, CleanFullText(FixOCRErrors(s)))
	}

	dirty := "The <i>Barber</i> was mis- \n read; see https://example.org ﬁnely d0ne"
	once := CleanFullText(FixOCRErrors(dirty))
	require.Equal(t, once, CleanFullText(FixOCRErrors(once)))
}

func TestCleanRecordFlagsButKeeps(t *testing.T) {
	long := strings.Repeat("the beautiful music played on and on ", 10)

	tests := []struct {
		name    string
		raw     string
		flagged bool
	}{
		{"clean record", long, false},
		{"too short", "xyz", true},
		{"too noisy", "jkwq3x mJk9 zzkrw bcdfgh qqqxz7 wkj2l vbnmkl 9x8z7", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := str.ReviewRecord{RawText: tt.raw, RawDate: "1875"}
			CleanRecord(&rec, vv.MINCLEANCHARS, vv.MAXNOISERATIO)
			require.Equal(t, tt.flagged, rec.Flagged, "reason: %s", rec.FlagReason)
			require.True(t, rec.HasDate)
			require.Equal(t, 1875, rec.Year)
			require.Equal(t, 1870, rec.Decade)
		})
	}
}

func TestCleanRecordStandardizesMetadata(t *testing.T) {
	long := strings.Repeat("the beautiful music played on and on ", 10)

	rec := str.ReviewRecord{
		RawText: long,
		RawDate: "1875",
		Author:  "m. le critique",
		Title:   "La Traviata, au Théâtre Français!",
	}
	CleanRecord(&rec, vv.MINCLEANCHARS, vv.MAXNOISERATIO)

	require.Equal(t, "M. Le Critique", rec.Author)
	// accents folded rather than eaten by the junk filter
	require.Equal(t, "La Traviata au Theatre Francais", rec.Title)
}

func TestParseReviewDate(t *testing.T) {
	tests := []struct {
		in   string
		year int
		ok   bool
	}{
		{"1873-06-02", 1873, true},
		{"January 5, 1873", 1873, true},
		{"Jan. 5, 1873", 1873, true},
		{"5 January 1873", 1873, true},
		{"01/02/1873", 1873, true},
		{"1873", 1873, true},
		{"Saturday, the 5th, 1873", 1873, true},
		{"not a date", 0, false},
		{"", 0, false},
		{"1492", 0, false},
		{"3021", 0, false},
	}

	for _, tt := range tests {
		d, ok := ParseReviewDate(tt.in)
		require.Equal(t, tt.ok, ok, "input %q", tt.in)
		if ok {
			require.Equal(t, tt.year, d.Year(), "input %q", tt.in)
		}
	}
}

func TestNoiseRatio(t *testing.T) {
	require.Equal(t, 0.0, NoiseRatio(""))
	require.Equal(t, 0.0, NoiseRatio("the beautiful music played"))
	require.Equal(t, 1.0, NoiseRatio("jkwq3x bcdfgh"))
	require.InDelta(t, 0.5, NoiseRatio("the music jkwq3x bcdfgh"), 1e-9)
}

func TestIsNoisyToken(t *testing.T) {
	tests := []struct {
		tok   string
		noisy bool
	}{
		{"the", false},
		{"beautiful", false},
		{"chiaroscuro", false}, // unknown but well formed
		{"1850", false},        // a year
		{"w3rd", true},         // digit inside a word
		{"bcdfg", true},        // no vowel
		{"x", true},            // stray char
		{"a", false},
		{"I", false},
		{"m@ngle", true},
		{"critics,", false}, // punctuation trimmed, plural matched
	}

	for _, tt := range tests {
		require.Equal(t, tt.noisy, IsNoisyToken(tt.tok), "token %q", tt.tok)
	}
}
