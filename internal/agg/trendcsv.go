//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package agg

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/x-meng/AestheticaGoMiner/internal/str"
)

// WriteTrendsCSV - one row per bucket: label, span, count, then a column per topic
func WriteTrendsCSV(buckets []str.TemporalBucket, topics int, path string) error {
	const (
		MSG1 = "wrote %d buckets to '%s'"
	)

	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	header := []string{"bucket", "start", "end", "documents"}
	for t := 0; t < topics; t++ {
		header = append(header, fmt.Sprintf("topic_%02d", t))
	}

	w := csv.NewWriter(f)
	if e := w.Write(header); e != nil {
		return e
	}

	for _, b := range buckets {
		row := []string{
			b.Label(),
			strconv.Itoa(b.Start),
			strconv.Itoa(b.End),
			strconv.Itoa(b.Count),
		}
		for t := 0; t < topics; t++ {
			v := 0.0
			if t < len(b.Prevalence) {
				v = b.Prevalence[t]
			}
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if e := w.Write(row); e != nil {
			return e
		}
	}

	w.Flush()
	if e := w.Error(); e != nil {
		return e
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(buckets), path))
	return nil
}
