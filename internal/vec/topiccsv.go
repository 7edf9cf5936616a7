//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//
// TOPIC MODEL OUTPUT
//

// WriteTopicTermsCSV - one row per topic: rank-ordered top terms and their weights
func WriteTopicTermsCSV(m *LDAModel, topn int, path string) error {
	const (
		MSG1 = "wrote %d topics to '%s'"
	)

	summaries := m.TopTerms(topn)

	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if e := w.Write([]string{"topic", "top_terms", "term_weights"}); e != nil {
		return e
	}

	for _, s := range summaries {
		ww := make([]string, len(s.Weights))
		for i, v := range s.Weights {
			ww[i] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		row := []string{
			strconv.Itoa(s.Topic),
			strings.Join(s.TopWords, " "),
			strings.Join(ww, " "),
		}
		if e := w.Write(row); e != nil {
			return e
		}
	}

	w.Flush()
	if e := w.Error(); e != nil {
		return e
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(summaries), path))
	return nil
}

// WriteAssignmentsCSV - one row per document: its id, dominant topic and full weight vector
func WriteAssignmentsCSV(m *LDAModel, docids []string, path string) error {
	const (
		MSG1 = "wrote %d assignments to '%s'"
	)

	asn := m.Assignments(docids)

	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	header := []string{"doc_id", "dominant_topic"}
	for t := 0; t < m.Topics; t++ {
		header = append(header, fmt.Sprintf("topic_%02d", t))
	}

	w := csv.NewWriter(f)
	if e := w.Write(header); e != nil {
		return e
	}

	for _, a := range asn {
		row := []string{a.DocID, strconv.Itoa(a.Dominant())}
		for _, v := range a.Weights {
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

	Msg.FYI(fmt.Sprintf(MSG1, len(asn), path))
	return nil
}
