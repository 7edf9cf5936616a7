//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package agg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-meng/AestheticaGoMiner/internal/str"
)

func makecorpus() ([]str.ReviewRecord, []str.TopicAssignment) {
	recs := []str.ReviewRecord{
		{ID: "a", Year: 1861, HasDate: true},
		{ID: "b", Year: 1868, HasDate: true},
		{ID: "c", Year: 1885, HasDate: true}, // note: nothing in the 1870s
		{ID: "d", Year: 1893, HasDate: true},
		{ID: "e"}, // undated
	}
	asn := []str.TopicAssignment{
		{DocID: "a", Weights: []float64{1.0, 0.0}},
		{DocID: "b", Weights: []float64{0.0, 1.0}},
		{DocID: "c", Weights: []float64{0.5, 0.5}},
		{DocID: "d", Weights: []float64{0.25, 0.75}},
		{DocID: "e", Weights: []float64{1.0, 0.0}},
	}
	return recs, asn
}

func TestBucketByWidthPartitionsTheRange(t *testing.T) {
	recs, asn := makecorpus()

	buckets, undated := BucketByWidth(recs, asn, 10, 2)
	require.Equal(t, 1, undated)

	// 1860s through 1890s, contiguous and non-overlapping
	require.Len(t, buckets, 4)
	require.Equal(t, 1860, buckets[0].Start)
	require.Equal(t, 1900, buckets[len(buckets)-1].End)
	for i := 1; i < len(buckets); i++ {
		require.Equal(t, buckets[i-1].End, buckets[i].Start, "gap or overlap at bucket %d", i)
	}

	// every dated document landed in exactly one bucket
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	require.Equal(t, 4, total)
}

func TestBucketByWidthEmptyBucketsReported(t *testing.T) {
	recs, asn := makecorpus()

	buckets, _ := BucketByWidth(recs, asn, 10, 2)

	// the 1870s had no reviews: present, empty, flat at zero
	b := buckets[1]
	require.Equal(t, 1870, b.Start)
	require.Equal(t, 0, b.Count)
	for _, p := range b.Prevalence {
		require.Equal(t, 0.0, p)
	}
}

func TestBucketByWidthMeansPrevalence(t *testing.T) {
	recs, asn := makecorpus()

	buckets, _ := BucketByWidth(recs, asn, 10, 2)

	// 1860s holds docs a and b: mean of (1,0) and (0,1) is (0.5,0.5)
	require.Equal(t, 2, buckets[0].Count)
	require.InDelta(t, 0.5, buckets[0].Prevalence[0], 1e-9)
	require.InDelta(t, 0.5, buckets[0].Prevalence[1], 1e-9)

	// 1890s holds only doc d
	last := buckets[len(buckets)-1]
	require.Equal(t, 1, last.Count)
	require.InDelta(t, 0.25, last.Prevalence[0], 1e-9)
	require.InDelta(t, 0.75, last.Prevalence[1], 1e-9)
}

func TestBucketByWidthNonDecadeWidths(t *testing.T) {
	recs, asn := makecorpus()

	buckets, _ := BucketByWidth(recs, asn, 25, 2)

	// 1850-1875 and 1875-1900
	require.Len(t, buckets, 2)
	require.Equal(t, 1850, buckets[0].Start)
	require.Equal(t, 1875, buckets[0].End)
	require.Equal(t, 2, buckets[0].Count)
	require.Equal(t, 2, buckets[1].Count)
}

func TestBucketByWidthAllUndated(t *testing.T) {
	recs := []str.ReviewRecord{{ID: "x"}, {ID: "y"}}

	buckets, undated := BucketByWidth(recs, nil, 10, 2)
	require.Empty(t, buckets)
	require.Equal(t, 2, undated)
}

func TestFloorTo(t *testing.T) {
	require.Equal(t, 1860, floorto(1868, 10))
	require.Equal(t, 1860, floorto(1860, 10))
	require.Equal(t, 1850, floorto(1868, 25))
	require.Equal(t, -10, floorto(-3, 10))
}
