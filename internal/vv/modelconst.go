//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	LDATOPICS       = 8
	LDAMAXTOPICS    = 30
	LDAITER         = 200
	LDAXFORMPASSES  = 100
	LDABURNINPASSES = 2
	LDACHGEVALFRQ   = 10
	LDAPERPEVALFRQ  = 10
	LDAPERPTOL      = 1e-2
	LDASEED         = 42
	LDATOPNWORDS    = 8

	// the per-document weight vector has to behave like a distribution
	TOPICWEIGHTTOL = 1e-6

	TSNEPERPLEXITY = 150
	TSNELEARNRT    = 100
	TSNEMAXITER    = 150

	VECTORNEIGHBORS    = 12
	VECTORNEIGHBORSMAX = 40
	VECTORNEIGHBORSMIN = 4
	W2VDIM             = 75
	W2VITER            = 15
	W2VWINDOW          = 8
	W2VMINCOUNT        = 5

	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "1200px"

	// the critical vocabulary whose drift we want to watch by default
	DEFAULTSEEDTERMS = "beautiful,sublime,taste,genius,sentiment"
)
