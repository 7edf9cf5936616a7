//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/x-meng/AestheticaGoMiner/internal/agg"
	"github.com/x-meng/AestheticaGoMiner/internal/cln"
	"github.com/x-meng/AestheticaGoMiner/internal/db"
	"github.com/x-meng/AestheticaGoMiner/internal/ing"
	"github.com/x-meng/AestheticaGoMiner/internal/lnch"
	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/mrg"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vec"
	"github.com/x-meng/AestheticaGoMiner/internal/viz"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

var Msg = lnch.Msg

func main() {
	const (
		LAUNCH = "[loglevel=%d] topics=%d, seed=%d, workers=%d"
	)

	lnch.LookForConfigFile()
	only := lnch.ConfigAtLaunch()
	cfg := lnch.Config

	// every package's messenger was built before the flags were read
	for _, m := range []*mm.MessageMaker{agg.Msg, cln.Msg, db.Msg, ing.Msg, mrg.Msg, vec.Msg, viz.Msg} {
		lnch.UpdateMessageMakerWithConfig(m)
	}

	lnch.PrintVersion(*cfg)
	Msg.NOTE(fmt.Sprintf(LAUNCH, cfg.LogLevel, cfg.Topics, cfg.Seed, cfg.WorkerCount))

	if cfg.ProfileRun {
		// go tool pprof --pdf ./AestheticaGoMiner .../cpu.pprof > profile.pdf
		defer profile.Start().Stop()
	}

	if cfg.SelfTest {
		selftest()
		return
	}

	runpipeline(only)
}

// runpipeline - ingest, clean, merge, model, aggregate, chart; in that order
func runpipeline(only []string) {
	const (
		MSGA = "%d records ingested from %d files"
		MSGB = "cleaning finished"
		MSGC = "merged corpus written"
		MSGD = "topic model finished"
		MSGE = "temporal aggregation finished"
		MSGF = "charts drawn"
		MSGG = "nearest neighbor report finished"
		DONE = "pipeline complete in %.2fs"
	)

	cfg := lnch.Config
	p := message.NewPrinter(language.English)

	start := time.Now()
	previous := time.Now()

	// [a] ingest the raw Gale exports
	tables, err := ing.IngestDirectory(cfg.RawDir, only)
	Msg.EF(err, "IngestDirectory()")

	total := 0
	for i := range tables {
		total += len(tables[i].Records)
	}
	Msg.Timer("A", p.Sprintf(MSGA, total, len(tables)), start, previous)
	previous = time.Now()

	// [b] repair the ocr and standardize the metadata
	cln.CleanAll(tables, cfg.WorkerCount, cfg.MinCleanChars, cfg.MaxNoiseRatio)
	vec.PrepareAll(tables, cfg.WorkerCount)
	for i := range tables {
		Msg.EF(mrg.WriteProcessedCSV(tables[i], cfg.ProcessedDir), "WriteProcessedCSV()")
	}
	Msg.Timer("B", MSGB, start, previous)
	previous = time.Now()

	// [c] one corpus out of the genre tables
	merged := mrg.MergeTables(tables)
	mp := filepath.Join(cfg.OutDir, vv.MERGEDFILENAME)
	Msg.EF(mrg.WriteMergedCSV(merged, mp, cfg.Overwrite), "WriteMergedCSV()")

	var store *db.CorpusDB
	if cfg.UseDB {
		store, err = db.NewCorpusDB(filepath.Join(cfg.OutDir, cfg.CorpusDB))
		Msg.EF(err, "NewCorpusDB()")
		defer store.Close()
		Msg.EF(store.StoreRecords(merged), "StoreRecords()")
	}
	Msg.Timer("C", MSGC, start, previous)
	previous = time.Now()

	// [d] lda over the processed text
	corpus := make([]string, len(merged))
	docids := make([]string, len(merged))
	for i := range merged {
		corpus[i] = merged[i].ProcessedText
		docids[i] = merged[i].ID
	}

	model, err := vec.RunLDA(corpus, cfg.Topics, cfg.LDAIterations, cfg.Seed, cfg.WorkerCount)
	Msg.EF(err, "RunLDA()")

	Msg.EF(vec.WriteTopicTermsCSV(model, vv.LDATOPNWORDS, filepath.Join(cfg.OutDir, vv.TOPICTERMSFILE)), "WriteTopicTermsCSV()")
	Msg.EF(vec.WriteAssignmentsCSV(model, docids, filepath.Join(cfg.OutDir, vv.TOPICASSIGNFILE)), "WriteAssignmentsCSV()")

	asn := model.Assignments(docids)
	if cfg.UseDB {
		Msg.EF(store.StoreAssignments(asn), "StoreAssignments()")
		Msg.EF(store.SetMetadata("seed", fmt.Sprintf("%d", cfg.Seed)), "SetMetadata()")
		Msg.EF(store.SetMetadata("topics", fmt.Sprintf("%d", cfg.Topics)), "SetMetadata()")
	}
	Msg.Timer("D", MSGD, start, previous)
	previous = time.Now()

	// [e] the trend over time
	buckets, _ := agg.BucketByWidth(merged, asn, cfg.BucketWidth, cfg.Topics)
	Msg.EF(agg.WriteTrendsCSV(buckets, cfg.Topics, filepath.Join(cfg.OutDir, vv.TOPICTRENDSFILE)), "WriteTrendsCSV()")
	Msg.Timer("E", MSGE, start, previous)
	previous = time.Now()

	// [f] pictures
	if cfg.DrawCharts {
		summaries := model.TopTerms(vv.LDATOPNWORDS)
		Msg.EF(viz.RenderTrendChart(buckets, summaries, filepath.Join(cfg.OutDir, vv.TRENDCHARTFILE)), "RenderTrendChart()")
		Msg.EF(viz.RenderTermChart(summaries, filepath.Join(cfg.OutDir, vv.TERMCHARTFILE)), "RenderTermChart()")
		Msg.EF(viz.RenderDocumentMap(asn, cfg.Topics, filepath.Join(cfg.OutDir, vv.SCATTERCHARTFILE)), "RenderDocumentMap()")
		Msg.Timer("F", MSGF, start, previous)
		previous = time.Now()
	}

	// [g] semantic drift of the critical vocabulary
	if cfg.FindNeighbors {
		neighborreport(merged)
		Msg.Timer("G", MSGG, start, previous)
	}

	Msg.MAND(fmt.Sprintf(DONE, time.Since(start).Seconds()))
}

// neighborreport - train word2vec and report the neighbors of the seed terms
func neighborreport(merged []str.ReviewRecord) {
	const (
		HEAD = "nearest neighbors of '%s':"
		ROW  = "  %-18s %.4f"
	)

	cfg := lnch.Config

	embs, err := vec.GenerateEmbeddings(merged)
	Msg.EF(err, "GenerateEmbeddings()")

	nn := vec.FindNeighbors(embs, cfg.SeedTerms, cfg.NeighborCount)

	for _, seed := range cfg.SeedTerms {
		if len(nn[seed]) == 0 {
			continue
		}
		Msg.MAND(fmt.Sprintf(HEAD, seed))
		for _, n := range nn[seed] {
			Msg.MAND(fmt.Sprintf(ROW, n.Word, n.Similarity))
		}
	}

	if cfg.DrawCharts {
		cp := filepath.Join(cfg.OutDir, vv.NEIGHBORCHARTFILE)
		if e := viz.RenderNeighborChart(nn, cfg.SeedTerms, cp); e != nil {
			Msg.WARN(e.Error())
		}
	}
}
