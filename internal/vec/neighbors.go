//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"

	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

//
// WORD EMBEDDINGS
//

// skipgram over the stemmed corpus; the reviews are small by word2vec
// standards, so the defaults are turned down accordingly

var defaultw2voptions = word2vec.Options{
	BatchSize:          1024,
	Dim:                vv.W2VDIM,
	DocInMemory:        true,
	Goroutines:         20,
	Initlr:             0.025,
	Iter:               vv.W2VITER,
	LogBatch:           100000,
	MaxCount:           -1,
	MaxDepth:           150,
	MinCount:           vv.W2VMINCOUNT,
	MinLR:              0.0000025,
	ModelType:          "skipgram",
	NegativeSampleSize: 5,
	OptimizerType:      "hs",
	SubsampleThreshold: 0.001,
	ToLower:            false,
	UpdateLRBatch:      100000,
	Verbose:            false,
	Window:             vv.W2VWINDOW,
}

// GenerateEmbeddings - train a word2vec model on the corpus and load it back as embeddings
func GenerateEmbeddings(merged []str.ReviewRecord) (embedding.Embeddings, error) {
	const (
		FAIL1 = "model initialization failed: %w"
		FAIL2 = "failed to train vector embeddings: %w"
		FAIL3 = "failed to save vector embeddings: %w"
		FAIL4 = "failed to load vector embeddings: %w"
		MSG1  = "GenerateEmbeddings() training on %d documents"
	)

	Msg.FYI(fmt.Sprintf(MSG1, len(merged)))

	cfg := defaultw2voptions
	cfg.Goroutines = runtime.NumCPU()

	vmodel, err := word2vec.NewForOptions(cfg)
	if err != nil {
		return embedding.Embeddings{}, fmt.Errorf(FAIL1, err)
	}

	var sb strings.Builder
	sb.Grow(vv.AVGCHARSPERRECORD * len(merged))
	for i := range merged {
		sb.WriteString(merged[i].ProcessedText)
		sb.WriteString(" ")
	}

	// Train() wants an io.ReadSeeker
	b := bytes.NewReader([]byte(sb.String()))
	if err := vmodel.Train(b); err != nil {
		return embedding.Embeddings{}, fmt.Errorf(FAIL2, err)
	}

	// use buffers; skip the disk
	var buf bytes.Buffer
	w := io.Writer(&buf)
	if err := vmodel.Save(w, vector.Agg); err != nil {
		return embedding.Embeddings{}, fmt.Errorf(FAIL3, err)
	}

	r := io.Reader(&buf)
	embs, err := embedding.Load(r)
	if err != nil {
		return embedding.Embeddings{}, fmt.Errorf(FAIL4, err)
	}

	return embs, nil
}

// FindNeighbors - nearest neighbors for each seed term; unknown seeds come back empty
func FindNeighbors(embs embedding.Embeddings, seeds []string, ncount int) map[string]search.Neighbors {
	const (
		FAIL1 = "FindNeighbors() failed to produce a Searcher"
		FAIL2 = "FindNeighbors() found no neighbors for '%s'; is it in the model's vocabulary?"
	)

	if ncount < vv.VECTORNEIGHBORSMIN || ncount > vv.VECTORNEIGHBORSMAX {
		ncount = vv.VECTORNEIGHBORS
	}

	searcher, err := search.New(embs...)
	if err != nil {
		Msg.WARN(FAIL1)
		return make(map[string]search.Neighbors)
	}

	nn := make(map[string]search.Neighbors)
	for _, seed := range seeds {
		// seeds arrive inflected; the model only knows stems
		s, e := stemterm(seed)
		if e != nil {
			s = seed
		}
		neighbors, e := searcher.SearchInternal(s, ncount)
		if e != nil {
			Msg.FYI(fmt.Sprintf(FAIL2, seed))
			continue
		}
		nn[seed] = neighbors
	}
	return nn
}

func stemterm(t string) (string, error) {
	bag := BagOfStems(t)
	if len(bag) != 1 {
		return t, fmt.Errorf("'%s' did not stem to a single token", t)
	}
	return bag[0], nil
}
