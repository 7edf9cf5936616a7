//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"fmt"
	"time"
)

// ReviewRecord - one OCR-scanned review article plus its metadata
// built by the ingestor; the cleaner rewrites CleanText and NoiseRatio; the
// merger attaches Genre, Year, Decade and ProcessedText; read-only after that
type ReviewRecord struct {
	ID          string
	Author      string
	Title       string
	Publication string
	Place       string
	URL         string
	RawDate     string
	Date        time.Time
	HasDate     bool
	Year        int
	Decade      int
	Genre       string
	RawText     string
	CleanText   string
	// ProcessedText is the stopped + stemmed bag of words the modeler consumes
	ProcessedText string
	NoiseRatio    float64
	Flagged       bool
	FlagReason    string
}

// RawTable - the records from a single Gale export file
type RawTable struct {
	File    string
	Genre   string
	Records []ReviewRecord
}

// TopicAssignment - per-document distribution over the modeled topics
type TopicAssignment struct {
	DocID   string
	Weights []float64
}

// Dominant - index of the highest-weighted topic
func (ta *TopicAssignment) Dominant() int {
	win := 0
	max := float64(0)
	for i, w := range ta.Weights {
		if w > max {
			win = i
			max = w
		}
	}
	return win
}

// TopicSummary - human-readable report on one topic
type TopicSummary struct {
	Topic    int
	TopWords []string
	// Weights are the scores behind TopWords, same order
	Weights []float64
}

// TemporalBucket - a [Start, End) year interval with its mean topic prevalence
type TemporalBucket struct {
	Start      int
	End        int
	Count      int
	Prevalence []float64
}

// Label - e.g. "1870s" for a decade-wide bucket
func (tb *TemporalBucket) Label() string {
	if tb.End-tb.Start == 10 {
		return fmt.Sprintf("%ds", tb.Start)
	}
	return fmt.Sprintf("%d-%d", tb.Start, tb.End-1)
}
