//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/x-meng/AestheticaGoMiner/internal/lnch"
)

// end-to-end smoke test: fabricate a tiny two-genre corpus in a scratch
// directory and push it through the whole pipeline

// selftest - run the pipeline against synthetic data
func selftest() {
	const (
		MSG1 = "selftest: running the pipeline against a synthetic corpus in '%s'"
		MSG2 = "selftest: complete; outputs are in '%s'"
		ERR1 = "selftest could not build its scratch directory"
	)

	scratch := filepath.Join(os.TempDir(), "agm-selftest-"+uuid.New().String()[0:8])
	rawdir := filepath.Join(scratch, "raw")
	if e := os.MkdirAll(rawdir, 0755); e != nil {
		Msg.MAND(ERR1)
		Msg.EC(e)
	}

	Msg.MAND(fmt.Sprintf(MSG1, scratch))

	writefakegale(filepath.Join(rawdir, "Operas_gale.csv"), true)
	writefakegale(filepath.Join(rawdir, "Theater_gale.csv"), false)

	// a shrunken configuration so the test finishes in seconds
	cfg := lnch.Config
	cfg.RawDir = rawdir
	cfg.ProcessedDir = filepath.Join(scratch, "processed")
	cfg.OutDir = scratch
	cfg.Overwrite = true
	cfg.Topics = 3
	cfg.LDAIterations = 25
	cfg.UseDB = true
	cfg.FindNeighbors = false
	cfg.DrawCharts = false

	runpipeline(nil)

	Msg.MAND(fmt.Sprintf(MSG2, scratch))
}

// writefakegale - a plausible Gale export; swapcols mimics the Operas/Poetry column damage
func writefakegale(path string, swapcols bool) {
	fulltexts := []string{
		"The new soprano sang with such exquisite taste that the audience rose in sublime applause before the ﬁnal curtain.",
		"A wretched performance: the tenor was dull, the chorus ragged, and the c0nductor seemed lost in the third act.",
		"Genius is a word too freely given, but the young painter's exhibition shows a beautiful and reﬁned sentiment throughout.",
		"The orchestra played with remarkable spirit; the melody of the second movement was of striking beauty and charm.",
		"Last evening's tragedy was tedious beyond endurance; the principal actor mis- \n read half his lines.",
		"The matinee drew a brilliant house; the ballet was graceful and the scenery splendid beyond anything this season.",
		"Critics of taste will find the new symphony powerful, tender, and full of genuine passion and expression.",
		"The debut was a triumph; rarely has a singer of such tender feeling and pure tone appeared on our stage.",
	}

	headers := []string{"Author", "Title", "Publication", "Date", "Place", "Full_text", "URL"}

	f, e := os.Create(path)
	Msg.EC(e)
	defer f.Close()

	w := csv.NewWriter(f)
	Msg.EC(w.Write(headers))

	years := []string{"1851", "1862-03-04", "January 5, 1873", "1884", "1895", "1906", "not a date", "1917"}

	for i, ft := range fulltexts {
		pub := "The Daily Review"
		date := years[i]
		r := []string{
			fmt.Sprintf("Critic %d", i),
			fmt.Sprintf("On Performance No. %d", i),
			pub, date,
			"London", ft, "https://example.org/review",
		}
		if swapcols {
			// the real Operas/Poetry exports carry the date under the
			// Publication header and vice versa; the ingestor undoes this
			r[2], r[3] = r[3], r[2]
		}
		Msg.EC(w.Write(r))
	}

	w.Flush()
	Msg.EC(w.Error())
}
