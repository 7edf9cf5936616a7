//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mrg

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-meng/AestheticaGoMiner/internal/lnch"
	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
)

func maketables() []str.RawTable {
	return []str.RawTable{
		{
			File:  "Operas_gale.csv",
			Genre: "operas",
			Records: []str.ReviewRecord{
				{ID: "o1", Year: 1880, HasDate: true},
				{ID: "o2", Year: 1860, HasDate: true},
				{ID: "o3"}, // no recoverable date
			},
		},
		{
			File:  "Theater_gale.csv",
			Genre: "theater",
			Records: []str.ReviewRecord{
				{ID: "t1", Year: 1870, HasDate: true, Flagged: true, FlagReason: "short"},
				{ID: "t2", Year: 1860, HasDate: true},
			},
		},
	}
}

func TestMergeTablesPreservesEveryRow(t *testing.T) {
	tables := maketables()
	merged := MergeTables(tables)

	require.Len(t, merged, 5)

	seen := make(map[string]bool)
	for _, r := range merged {
		seen[r.ID] = true
	}
	for _, id := range []string{"o1", "o2", "o3", "t1", "t2"} {
		require.True(t, seen[id], "row %s went missing", id)
	}

	// flagged rows are kept, not dropped
	for _, r := range merged {
		if r.ID == "t1" {
			require.True(t, r.Flagged)
		}
	}
}

func TestMergeTablesSortsByYear(t *testing.T) {
	merged := MergeTables(maketables())

	var years []int
	for _, r := range merged {
		if r.HasDate {
			years = append(years, r.Year)
		} else {
			// undated rows sink to the bottom
			require.Equal(t, "o3", r.ID)
		}
	}
	require.Equal(t, []int{1860, 1860, 1870, 1880}, years)

	// ties broken by genre, stable within a genre
	require.Equal(t, "o2", merged[0].ID)
	require.Equal(t, "t2", merged[1].ID)
	require.Equal(t, "o3", merged[len(merged)-1].ID)
}

// the undated-row report must actually reach the terminal once the
// configured log level has been pushed into this package's messenger
func TestMergeTablesReportsUndatedRows(t *testing.T) {
	lnch.Config = lnch.BuildDefaultConfig()
	lnch.Config.LogLevel = mm.TMI
	lnch.UpdateMessageMakerWithConfig(Msg)
	t.Cleanup(func() { Msg.LogLevel = 0 })

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	MergeTables(maketables())

	require.NoError(t, w.Close())
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Contains(t, string(out), "1 records carry no usable date")
}

func TestMergeTablesAttachesGenre(t *testing.T) {
	merged := MergeTables(maketables())
	for _, r := range merged {
		require.NotEmpty(t, r.Genre)
	}
}

func TestWriteMergedCSVRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "merged_data.csv")

	merged := MergeTables(maketables())
	require.NoError(t, WriteMergedCSV(merged, fn, false))

	// second write without permission must fail and leave the file alone
	before, err := os.ReadFile(fn)
	require.NoError(t, err)

	require.Error(t, WriteMergedCSV(merged, fn, false))

	after, err := os.ReadFile(fn)
	require.NoError(t, err)
	require.Equal(t, before, after)

	// and with permission it must succeed
	require.NoError(t, WriteMergedCSV(merged, fn, true))
}

func TestWriteProcessedCSV(t *testing.T) {
	dir := t.TempDir()
	tables := maketables()

	require.NoError(t, WriteProcessedCSV(tables[0], dir))

	b, err := os.ReadFile(filepath.Join(dir, "processed_operas.csv"))
	require.NoError(t, err)
	require.Contains(t, string(b), "author,title,publication")
}
