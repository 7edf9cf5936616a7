//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package agg

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-meng/AestheticaGoMiner/internal/str"
)

func TestWriteTrendsCSV(t *testing.T) {
	buckets := []str.TemporalBucket{
		{Start: 1860, End: 1870, Count: 2, Prevalence: []float64{0.5, 0.5}},
		{Start: 1870, End: 1880, Count: 0, Prevalence: []float64{0, 0}},
	}

	fn := filepath.Join(t.TempDir(), "trends.csv")
	require.NoError(t, WriteTrendsCSV(buckets, 2, fn))

	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	require.Equal(t, []string{"bucket", "start", "end", "documents", "topic_00", "topic_01"}, rows[0])
	require.Equal(t, "1860s", rows[1][0])

	// the empty decade is in the file, not silently skipped
	require.Equal(t, "1870s", rows[2][0])
	require.Equal(t, "0", rows[2][3])
}
