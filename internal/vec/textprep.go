//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"strings"
	"sync"
	"unicode"

	"github.com/kljensen/snowball"

	"github.com/x-meng/AestheticaGoMiner/internal/str"
)

//
// TEXT PREPARATION
//

// the modeler wants bags of stems, not sentences; punctuation and the
// stoplist go, what survives gets run through the porter2 stemmer

// Tokenize - lowercased letter-runs; digits and punctuation are separators
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

// BagOfStems - tokenize, drop stopwords and short tokens, stem the rest
func BagOfStems(text string) []string {
	tokens := Tokenize(text)
	bag := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.Trim(t, "'")
		if len(t) < 3 {
			continue
		}
		if IsStopWord(t) {
			continue
		}
		s, e := snowball.Stem(t, "english", true)
		if e != nil {
			// the stemmer only balks at the unstemable; keep the raw token
			s = t
		}
		if len(s) < 3 || IsStopWord(s) {
			continue
		}
		bag = append(bag, s)
	}
	return bag
}

// PrepareText - the stem bag re-joined; this is what lands in Processed_text
func PrepareText(text string) string {
	return strings.Join(BagOfStems(text), " ")
}

// PrepareAll - fill ProcessedText for every record; fans out over the workers
func PrepareAll(tables []str.RawTable, workers int) {
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
				recs[i].ProcessedText = PrepareText(recs[i].CleanText)
				<-sem
			}(i)
		}
		wg.Wait()
	}
}
