//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mrg

import (
	"fmt"
	"sort"

	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

var Msg = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)

//
// THE MERGER
//

// one corpus out of N genre tables; every row that went in comes out,
// however mangled its metadata, so the downstream counts stay honest

// MergeTables - concatenate the tables and sort by year; undated rows sink to the bottom
func MergeTables(tables []str.RawTable) []str.ReviewRecord {
	const (
		MSG1 = "MergeTables() merged %d tables into %d records"
		MSG2 = "MergeTables() %d records carry no usable date"
		MSG3 = "MergeTables() %d records are flagged as suspect"
	)

	total := 0
	for i := range tables {
		total += len(tables[i].Records)
	}

	merged := make([]str.ReviewRecord, 0, total)
	for i := range tables {
		for j := range tables[i].Records {
			r := tables[i].Records[j]
			if r.Genre == "" {
				r.Genre = tables[i].Genre
			}
			merged = append(merged, r)
		}
	}

	// a stable sort keeps the within-genre file order for ties
	sort.SliceStable(merged, func(a, b int) bool {
		ra, rb := merged[a], merged[b]
		if ra.HasDate != rb.HasDate {
			return ra.HasDate
		}
		if ra.Year != rb.Year {
			return ra.Year < rb.Year
		}
		return ra.Genre < rb.Genre
	})

	nodate := 0
	flagged := 0
	for i := range merged {
		if !merged[i].HasDate {
			nodate += 1
		}
		if merged[i].Flagged {
			flagged += 1
		}
	}

	Msg.NOTE(fmt.Sprintf(MSG1, len(tables), len(merged)))
	if nodate > 0 {
		Msg.WARN(fmt.Sprintf(MSG2, nodate))
	}
	if flagged > 0 {
		Msg.FYI(fmt.Sprintf(MSG3, flagged))
	}

	return merged
}
