//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/x-meng/AestheticaGoMiner/internal/gen"
	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

var Msg = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)

//
// INGESTION: Gale CSV exports --> []ReviewRecord
//

// the exports are not entirely uniform; headers observed in the wild
var wantedcolumns = []string{"author", "title", "publication", "date", "place", "full_text", "url"}

// ReadRawTable - load one Gale export; every row survives, even the hopeless ones
func ReadRawTable(path string) (str.RawTable, error) {
	const (
		MSG1  = "ReadRawTable() ingested %d records from '%s'"
		WARN1 = "ReadRawTable() skipped a malformed row in '%s': %v"
		ERR1  = "ReadRawTable() could not find a header row in '%s'"
	)

	rt := str.RawTable{
		File:  filepath.Base(path),
		Genre: GenreFromFilename(path),
	}

	f, e := os.Open(path)
	if e != nil {
		return rt, e
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, e := r.Read()
	if e != nil {
		return rt, fmt.Errorf(ERR1, path)
	}

	cols := make(map[string]int)
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	pick := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	// the Operas and Poetry exports have Publication and Date interchanged
	swapped := colswapneeded(rt.File)

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// a mangled row is a data-quality note, not a reason to bail on the file
			Msg.WARN(fmt.Sprintf(WARN1, rt.File, err))
			continue
		}

		rec := str.ReviewRecord{
			ID:          uuid.New().String(),
			Author:      pick(row, "author"),
			Title:       pick(row, "title"),
			Publication: pick(row, "publication"),
			Place:       pick(row, "place"),
			URL:         pick(row, "url"),
			RawText:     pick(row, "full_text"),
			Genre:       rt.Genre,
		}

		rec.RawDate = pick(row, "date")
		if swapped {
			rec.Publication, rec.RawDate = rec.RawDate, rec.Publication
		}

		rt.Records = append(rt.Records, rec)
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(rt.Records), rt.File))
	return rt, nil
}

// IngestDirectory - read every raw export in a directory; "only" restricts to named files
func IngestDirectory(dir string, only []string) ([]str.RawTable, error) {
	const (
		ERR1 = "IngestDirectory() found no '*%s' files in '%s'"
	)

	entries, e := os.ReadDir(dir)
	if e != nil {
		return nil, e
	}

	var wanted []string
	for _, o := range only {
		wanted = append(wanted, filepath.Base(o))
	}

	var names []string
	for _, ent := range entries {
		n := ent.Name()
		if ent.IsDir() || strings.HasPrefix(n, ".") || !strings.HasSuffix(n, ".csv") {
			continue
		}
		if len(wanted) > 0 && gen.ContainsN(wanted, n) == 0 {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf(ERR1, vv.RAWFILESUFFIX, dir)
	}

	var tables []str.RawTable
	for _, n := range names {
		rt, err := ReadRawTable(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		tables = append(tables, rt)
	}
	return tables, nil
}

// GenreFromFilename - "Theater_gale.csv" --> "theater"
func GenreFromFilename(path string) string {
	n := filepath.Base(path)
	n = strings.TrimPrefix(n, vv.PROCESSEDPREFIX)
	n = strings.TrimSuffix(n, vv.RAWFILESUFFIX)
	n = strings.TrimSuffix(n, ".csv")
	return strings.ToLower(n)
}

func colswapneeded(file string) bool {
	l := strings.ToLower(file)
	return strings.Contains(l, "opera") || strings.Contains(l, "poetry")
}
