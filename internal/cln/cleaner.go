//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cln

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/x-meng/AestheticaGoMiner/internal/gen"
	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

var Msg = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)

//
// OCR CLEANUP
//

// order matters: ocr repair first, then the general scrub, or the html/url
// patterns will no longer match what the scanner actually produced

var (
	// to avoid recompiling these in hot code
	htmltags   = regexp.MustCompile(`<.*?>`)
	urls       = regexp.MustCompile(`https?://\S+|www\.\S+`)
	badchars   = regexp.MustCompile(`[^a-zA-ZÀ-ÖØ-öø-ÿ0-9'\-.,;:!?()\s]`)
	manyspaces = regexp.MustCompile(`\s+`)
	brokenword = regexp.MustCompile(`-\s*\n\s*`)
	zeroinword = regexp.MustCompile(`(\w)0(\w)`)
	oneinword  = regexp.MustCompile(`(\w)1(\w)`)
	lonedigit  = regexp.MustCompile(`\b1\b`)
	ocrdebris  = regexp.MustCompile(`[¬\x0c\xad]`)

	ligatures = strings.NewReplacer("ﬁ", "fi", "ﬂ", "fl", "ﬀ", "ff", "ﬃ", "ffi", "ﬄ", "ffl")
)

// FixOCRErrors - repair the scanner's most common misreadings
func FixOCRErrors(text string) string {
	text = ligatures.Replace(text)

	// no lookbehind in go's regexp: consume the flanking chars instead and
	// run the swaps twice so back-to-back misreads ("w00l", "sti11") get caught
	text = zeroinword.ReplaceAllString(text, "${1}o${2}")
	text = zeroinword.ReplaceAllString(text, "${1}o${2}")
	text = oneinword.ReplaceAllString(text, "${1}l${2}")
	text = oneinword.ReplaceAllString(text, "${1}l${2}")

	text = lonedigit.ReplaceAllString(text, "I")
	text = brokenword.ReplaceAllString(text, "")
	text = ocrdebris.ReplaceAllString(text, " ")
	text = manyspaces.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// CleanFullText - drop html, urls and stray symbols; keep punctuation; lowercase
func CleanFullText(text string) string {
	text = gen.PurgeControlChars(text)
	text = htmltags.ReplaceAllString(text, " ")
	text = urls.ReplaceAllString(text, " ")
	text = badchars.ReplaceAllString(text, " ")
	text = manyspaces.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

// CleanRecord - rewrite one record in place: text, metadata, flags
func CleanRecord(rec *str.ReviewRecord, minchars int, maxnoise float64) {
	const (
		SHORT = "cleaned text shorter than %d chars"
		NOISY = "ocr noise ratio %.2f exceeds %.2f"
	)

	t := FixOCRErrors(rec.RawText)
	t = CleanFullText(t)
	rec.CleanText = t
	rec.NoiseRatio = NoiseRatio(t)

	// metadata standardization, as far as the scans allow
	rec.Author = gen.TitleCase(rec.Author)
	rec.Publication = gen.TitleCase(rec.Publication)
	rec.Place = gen.TitleCase(rec.Place)
	rec.Title = cleantitle(rec.Title)

	rec.Date, rec.HasDate = ParseReviewDate(rec.RawDate)
	if rec.HasDate {
		rec.Year = rec.Date.Year()
		rec.Decade = (rec.Year / 10) * 10
	}

	// flag, never drop: the merger keeps flagged rows and reports on them
	if len(rec.CleanText) < minchars {
		rec.Flagged = true
		rec.FlagReason = fmt.Sprintf(SHORT, minchars)
	} else if rec.NoiseRatio > maxnoise {
		rec.Flagged = true
		rec.FlagReason = fmt.Sprintf(NOISY, rec.NoiseRatio, maxnoise)
	}
}

// CleanAll - run the cleaner over every table; per-record work fans out over the workers
func CleanAll(tables []str.RawTable, workers int, minchars int, maxnoise float64) {
	const (
		MSG1 = "CleanAll() cleaned %d records in '%s'; %d flagged"
	)

	if workers < 1 {
		workers = 1
	}

	for ti := range tables {
		recs := tables[ti].Records

		var wg sync.WaitGroup
		sem := make(chan struct{}, workers)
		for i := range recs {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				CleanRecord(&recs[i], minchars, maxnoise)
				<-sem
			}(i)
		}
		wg.Wait()

		fl := 0
		for i := range recs {
			if recs[i].Flagged {
				fl += 1
			}
		}
		Msg.NOTE(fmt.Sprintf(MSG1, len(recs), tables[ti].File, fl))
	}
}

var titlejunk = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

func cleantitle(t string) string {
	// fold the accents first or the junk pattern eats the accented letters whole
	t = gen.StripAccents(t)
	t = titlejunk.ReplaceAllString(t, "")
	return strings.TrimSpace(manyspaces.ReplaceAllString(t, " "))
}
