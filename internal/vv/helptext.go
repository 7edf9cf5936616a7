//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	HELPTEXTTEMPLATE = `command line options:
   C1-bw C0: disable color output in the terminal
   C1-cf C0: use a custom config file instead of 'C3{{.conffile}}C0'
   C1-db C0: also persist the merged corpus into 'C3{{.dbfile}}C0'
   C1-gl C0: log level (C3{{.loglevel}}C0 is the current setting; 0-5 valid)
   C1-h  C0: print this help information
   C1-it C0: LDA iterations (currently C3{{.ldaiter}}C0)
   C1-nc C0: disable the HTML chart output
   C1-nn C0: also train word embeddings and chart the neighbors of the seed terms
   C1-od C0: output directory (currently 'C3{{.outdir}}C0')
   C1-ow C0: overwrite an existing '{{.mergedfile}}'
   C1-pr C0: run with the profiler attached
   C1-rd C0: raw data directory (currently 'C3{{.rawdir}}C0')
   C1-sd C0: random seed for the topic model (currently C3{{.seed}}C0)
   C1-st C0: run the self-test: build and mine a small synthetic corpus
   C1-tm C0: comma-separated seed terms for C1-nnC0 (currently 'C3{{.seedterms}}C0')
   C1-tp C0: number of topics to model (currently C3{{.topics}}C0; max {{.maxtopics}})
   C1-v  C0: print version and exit
   C1-wc C0: worker count (currently C3{{.workers}}C0 of C3{{.cpus}}C0 cpus);
         note that a deterministic model needs 'C1-wc 1C0' plus a fixed seed
   C1-yw C0: width of a temporal bucket in years (currently C3{{.bucketwidth}}C0)
   after the flags, optional positional arguments name specific raw files to mine
   (default: every '*{{.rawsuffix}}' in the raw data directory)
   project: C3{{.projurl}}C0
`
)
