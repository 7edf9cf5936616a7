//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mrg

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

//
// CSV OUTPUT
//

var csvheader = []string{
	"author", "title", "publication", "date", "place", "url",
	"genre", "year", "decade", "noise_ratio", "flagged", "flag_reason",
	"clean_text", "processed_text",
}

func recordtorow(r *str.ReviewRecord) []string {
	d := ""
	y := ""
	dec := ""
	if r.HasDate {
		d = r.Date.Format("2006-01-02")
		y = strconv.Itoa(r.Year)
		dec = strconv.Itoa(r.Decade)
	}
	return []string{
		r.Author, r.Title, r.Publication, d, r.Place, r.URL,
		r.Genre, y, dec,
		strconv.FormatFloat(r.NoiseRatio, 'f', 4, 64),
		strconv.FormatBool(r.Flagged), r.FlagReason,
		r.CleanText, r.ProcessedText,
	}
}

// WriteProcessedCSV - one cleaned per-genre file, e.g. "processed_operas.csv"
func WriteProcessedCSV(table str.RawTable, dir string) error {
	fn := filepath.Join(dir, vv.PROCESSEDPREFIX+table.Genre+".csv")
	recs := make([]str.ReviewRecord, len(table.Records))
	copy(recs, table.Records)
	for i := range recs {
		if recs[i].Genre == "" {
			recs[i].Genre = table.Genre
		}
	}
	return writerows(fn, recs)
}

// WriteMergedCSV - the one corpus file; refuses to clobber an existing one unless told to
func WriteMergedCSV(merged []str.ReviewRecord, path string, overwrite bool) error {
	const (
		EXISTS = "'%s' already exists; rerun with the overwrite flag to replace it"
	)

	if !overwrite {
		if _, e := os.Stat(path); e == nil {
			return fmt.Errorf(EXISTS, path)
		}
	}
	return writerows(path, merged)
}

func writerows(path string, recs []str.ReviewRecord) error {
	const (
		MSG1 = "wrote %d records to '%s'"
	)

	if e := os.MkdirAll(filepath.Dir(path), 0755); e != nil {
		return e
	}

	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if e := w.Write(csvheader); e != nil {
		return e
	}
	for i := range recs {
		if e := w.Write(recordtorow(&recs[i])); e != nil {
			return e
		}
	}
	w.Flush()
	if e := w.Error(); e != nil {
		return e
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(recs), path))
	return nil
}
