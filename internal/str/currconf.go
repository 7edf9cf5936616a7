//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// CurrentConfiguration - the runtime settings; built from defaults, then the
// JSON config file, then the command line (in that order)
type CurrentConfiguration struct {
	RawDir        string
	ProcessedDir  string
	OutDir        string
	CorpusDB      string
	UseDB         bool
	Overwrite     bool
	Topics        int
	LDAIterations int
	Seed          int64
	BucketWidth   int
	WorkerCount   int
	LogLevel      int
	BlackAndWhite bool
	MinCleanChars int
	MaxNoiseRatio float64
	FindNeighbors bool
	SeedTerms     []string
	NeighborCount int
	DrawCharts    bool
	ProfileRun    bool
	SelfTest      bool
}
