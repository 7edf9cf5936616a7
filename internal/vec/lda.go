//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"sort"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/x-meng/AestheticaGoMiner/internal/gen"
	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

var Msg = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)

//
// LDA TOPIC MODELING
//

//see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go
//DefaultLDA = nlp.LatentDirichletAllocation{
//	Iterations:                    1000,
//	PerplexityTolerance:           1e-2,
//	PerplexityEvaluationFrequency: 30,
//	BatchSize:                     100,
//	K:                             k,
//	BurnInPasses:                  1,
//	TransformationPasses:          500,
//	...
//	Rnd:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
//	Processes: runtime.GOMAXPROCS(0),
//}

// LDAModel - an lda model plus everything needed to read it back out
type LDAModel struct {
	DocsOverTopics  mat.Matrix
	TopicsOverWords mat.Matrix
	Vocab           []string
	Topics          int
}

// RunLDA - fit an lda model over the prepared corpus; a fixed seed yields a fixed model
func RunLDA(corpus []string, topics int, iterations int, seed int64, workers int) (*LDAModel, error) {
	const (
		MSG1 = "RunLDA() modeling %d documents into %d topics (seed %d)"
		FAIL = "lda pipeline failed to fit the corpus: %w"
	)

	Msg.NOTE(fmt.Sprintf(MSG1, len(corpus), topics, seed))

	stops := gen.StringMapKeysIntoSlice(GetStopSet())
	vectoriser := nlp.NewCountVectoriser(stops...)

	lda := nlp.NewLatentDirichletAllocation(topics)
	lda.Processes = workers
	lda.Iterations = iterations
	lda.TransformationPasses = vv.LDAXFORMPASSES
	lda.BurnInPasses = vv.LDABURNINPASSES
	lda.PerplexityTolerance = vv.LDAPERPTOL
	lda.PerplexityEvaluationFrequency = vv.LDAPERPEVALFRQ
	lda.ChangeEvaluationFrequency = vv.LDACHGEVALFRQ

	// the model's default randomness is wall-clock seeded; pin it down so two
	// runs over the same corpus produce the same topics
	lda.Rnd = rand.New(rand.NewSource(uint64(seed)))

	pipeline := nlp.NewPipeline(vectoriser, lda)

	docsOverTopics, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf(FAIL, err)
	}

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}

	m := &LDAModel{
		DocsOverTopics:  docsOverTopics,
		TopicsOverWords: lda.Components(),
		Vocab:           vocab,
		Topics:          topics,
	}
	return m, nil
}

// Assignments - per-document topic weights, renormalized to sum to one
func (m *LDAModel) Assignments(docids []string) []str.TopicAssignment {
	rows, columns := m.DocsOverTopics.Dims() // rows = topics; columns = docs

	out := make([]str.TopicAssignment, columns)
	for doc := 0; doc < columns; doc++ {
		ww := make([]float64, rows)
		sum := 0.0
		for topic := 0; topic < rows; topic++ {
			ww[topic] = m.DocsOverTopics.At(topic, doc)
			sum += ww[topic]
		}
		// the fit leaves the columns within a rounding error of one; close the gap
		if sum > 0 {
			for topic := range ww {
				ww[topic] /= sum
			}
		}
		out[doc] = str.TopicAssignment{DocID: docids[doc], Weights: ww}
	}
	return out
}

type topicsorter struct {
	W string
	V float64
}

// TopTerms - the topn most heavily weighted words for each topic, best first
func (m *LDAModel) TopTerms(topn int) []str.TopicSummary {
	tr, tc := m.TopicsOverWords.Dims()

	if topn > tc {
		topn = tc
	}

	out := make([]str.TopicSummary, tr)
	for topic := 0; topic < tr; topic++ {
		tss := make([]topicsorter, tc)
		for word := 0; word < tc; word++ {
			tss[word] = topicsorter{
				W: m.Vocab[word],
				V: m.TopicsOverWords.At(topic, word),
			}
		}
		// ties broken by the word itself so the listing is stable
		sort.Slice(tss, func(i, j int) bool {
			if tss[i].V != tss[j].V {
				return tss[i].V > tss[j].V
			}
			return tss[i].W < tss[j].W
		})

		ts := str.TopicSummary{Topic: topic}
		for i := 0; i < topn; i++ {
			ts.TopWords = append(ts.TopWords, tss[i].W)
			ts.Weights = append(ts.Weights, tss[i].V)
		}
		out[topic] = ts
	}
	return out
}

// DocsPerTopic - N documents have topic X as their dominant topic
func DocsPerTopic(asn []str.TopicAssignment, topics int) []int {
	counter := make([]int, topics)
	for i := range asn {
		counter[asn[i].Dominant()] += 1
	}
	return counter
}
