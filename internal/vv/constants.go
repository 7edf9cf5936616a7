//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "AestheticaGoMiner"
	SHORTNAME = "AGM"
	VERSION   = "0.3.1"
	PROJURL   = "https://github.com/x-meng/AestheticaGoMiner"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "agm-conf.json"

	DEFAULTRAWDIR       = "data/raw"
	DEFAULTPROCESSEDDIR = "data/processed"
	DEFAULTOUTDIR       = "data"
	DEFAULTCORPUSDB     = "aesthetica.db"
	MERGEDFILENAME      = "merged_data.csv"
	PROCESSEDPREFIX     = "processed_"
	TOPICTERMSFILE      = "topic_terms.csv"
	TOPICASSIGNFILE     = "topic_assignments.csv"
	TOPICTRENDSFILE     = "topic_trends.csv"
	TRENDCHARTFILE      = "topic_trends.html"
	TERMCHARTFILE       = "topic_terms.html"
	SCATTERCHARTFILE    = "document_map.html"
	NEIGHBORCHARTFILE   = "term_neighbors.html"

	// the Gale exports label their files "<Genre>_gale.csv"
	RAWFILESUFFIX = "_gale.csv"

	DEFAULTGOLOGLEVEL = 0
	BLACKANDWHITE     = false
	JSONINDENT        = "  "
	WRITEPERMS        = 0644

	// the corpus is eighteenth- to early twentieth-century reviews; dates
	// outside this window are OCR misreads and the record is kept but undated
	MINSANEYEAR = 1650
	MAXSANEYEAR = 2010

	DEFAULTBUCKETWIDTH = 10 // a decade

	// cleaner thresholds
	MINCLEANCHARS     = 40
	MAXNOISERATIO     = 0.5
	AVGCHARSPERRECORD = 4000 // preallocation hint: a Gale full_text runs 3-6k chars
)
