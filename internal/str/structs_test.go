//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDominant(t *testing.T) {
	ta := TopicAssignment{DocID: "x", Weights: []float64{0.1, 0.6, 0.3}}
	require.Equal(t, 1, ta.Dominant())

	empty := TopicAssignment{DocID: "y"}
	require.Equal(t, 0, empty.Dominant())
}

func TestBucketLabel(t *testing.T) {
	decade := TemporalBucket{Start: 1870, End: 1880}
	require.Equal(t, "1870s", decade.Label())

	quarter := TemporalBucket{Start: 1850, End: 1875}
	require.Equal(t, "1850-1874", quarter.Label())
}
