//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package agg

import (
	"fmt"

	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

var Msg = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)

//
// TEMPORAL AGGREGATION
//

// the buckets tile the corpus' date range edge to edge: every dated document
// lands in exactly one bucket and a decade with no reviews still shows up,
// flat at zero, rather than being smoothed over

// BucketByWidth - mean topic prevalence per time bucket; undated documents are set aside and counted
func BucketByWidth(merged []str.ReviewRecord, asn []str.TopicAssignment, width int, topics int) ([]str.TemporalBucket, int) {
	const (
		MSG1 = "BucketByWidth() aggregated %d documents into %d buckets of %d years"
		MSG2 = "BucketByWidth() left %d undated documents out of the trend"
	)

	if width < 1 {
		width = vv.DEFAULTBUCKETWIDTH
	}

	weights := make(map[string][]float64, len(asn))
	for i := range asn {
		weights[asn[i].DocID] = asn[i].Weights
	}

	// [a] find the span of the dated documents
	minyr, maxyr := 0, 0
	undated := 0
	dated := 0
	for i := range merged {
		if !merged[i].HasDate {
			undated += 1
			continue
		}
		y := merged[i].Year
		if dated == 0 || y < minyr {
			minyr = y
		}
		if dated == 0 || y > maxyr {
			maxyr = y
		}
		dated += 1
	}

	if dated == 0 {
		Msg.WARN(fmt.Sprintf(MSG2, undated))
		return []str.TemporalBucket{}, undated
	}

	// [b] lay out contiguous buckets over the whole span
	first := floorto(minyr, width)
	last := floorto(maxyr, width)

	var buckets []str.TemporalBucket
	for s := first; s <= last; s += width {
		buckets = append(buckets, str.TemporalBucket{
			Start:      s,
			End:        s + width,
			Prevalence: make([]float64, topics),
		})
	}

	// [c] drop each dated document into its bucket and accumulate
	for i := range merged {
		if !merged[i].HasDate {
			continue
		}
		bi := (floorto(merged[i].Year, width) - first) / width
		buckets[bi].Count += 1
		if ww, ok := weights[merged[i].ID]; ok {
			for t := 0; t < topics && t < len(ww); t++ {
				buckets[bi].Prevalence[t] += ww[t]
			}
		}
	}

	// [d] sums into means; empty buckets stay flat at zero
	for b := range buckets {
		if buckets[b].Count == 0 {
			continue
		}
		for t := range buckets[b].Prevalence {
			buckets[b].Prevalence[t] /= float64(buckets[b].Count)
		}
	}

	Msg.NOTE(fmt.Sprintf(MSG1, dated, len(buckets), width))
	if undated > 0 {
		Msg.FYI(fmt.Sprintf(MSG2, undated))
	}

	return buckets, undated
}

// floorto - the largest multiple of width that is <= y; safe for negative years
func floorto(y int, width int) int {
	f := (y / width) * width
	if y < 0 && y%width != 0 {
		f -= width
	}
	return f
}
