//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

// a tiny corpus with two obvious themes: music and painting
func testcorpus() ([]string, []string) {
	docs := []string{
		"soprano aria chorus orchestra melodi symphoni",
		"orchestra symphoni conductor melodi soprano",
		"aria tenor chorus soprano melodi",
		"paint canvas color exhibit galleri portrait",
		"portrait canvas paint galleri landscap",
		"color exhibit paint portrait canvas",
		"soprano orchestra aria symphoni",
		"galleri landscap exhibit portrait paint",
	}
	ids := make([]string, len(docs))
	for i := range docs {
		ids[i] = fmt.Sprintf("doc-%02d", i)
	}
	return docs, ids
}

func TestRunLDAWeightsSumToOne(t *testing.T) {
	docs, ids := testcorpus()

	m, err := RunLDA(docs, 2, 50, vv.LDASEED, 1)
	require.NoError(t, err)

	asn := m.Assignments(ids)
	require.Len(t, asn, len(docs))

	for _, a := range asn {
		require.Len(t, a.Weights, 2)
		sum := 0.0
		for _, w := range a.Weights {
			require.GreaterOrEqual(t, w, 0.0)
			sum += w
		}
		require.InDelta(t, 1.0, sum, vv.TOPICWEIGHTTOL, "doc %s", a.DocID)
	}
}

func TestRunLDAIsDeterministic(t *testing.T) {
	docs, ids := testcorpus()

	m1, err := RunLDA(docs, 2, 50, vv.LDASEED, 1)
	require.NoError(t, err)
	m2, err := RunLDA(docs, 2, 50, vv.LDASEED, 1)
	require.NoError(t, err)

	// same seed, same corpus: identical topic-term summaries
	s1 := m1.TopTerms(5)
	s2 := m2.TopTerms(5)
	require.Equal(t, len(s1), len(s2))
	for i := range s1 {
		require.Equal(t, s1[i].TopWords, s2[i].TopWords, "topic %d diverged", i)
		for j := range s1[i].Weights {
			require.InDelta(t, s1[i].Weights[j], s2[i].Weights[j], 1e-12)
		}
	}

	// and identical document assignments
	a1 := m1.Assignments(ids)
	a2 := m2.Assignments(ids)
	for i := range a1 {
		for j := range a1[i].Weights {
			require.InDelta(t, a1[i].Weights[j], a2[i].Weights[j], 1e-12)
		}
	}
}

func TestTopTerms(t *testing.T) {
	docs, _ := testcorpus()

	m, err := RunLDA(docs, 2, 50, vv.LDASEED, 1)
	require.NoError(t, err)

	summaries := m.TopTerms(4)
	require.Len(t, summaries, 2)

	for _, s := range summaries {
		require.Len(t, s.TopWords, 4)
		require.Len(t, s.Weights, 4)
		// rank order: weights never increase down the list
		for i := 1; i < len(s.Weights); i++ {
			require.LessOrEqual(t, s.Weights[i], s.Weights[i-1])
		}
	}
}

func TestDocsPerTopic(t *testing.T) {
	docs, ids := testcorpus()

	m, err := RunLDA(docs, 2, 50, vv.LDASEED, 1)
	require.NoError(t, err)

	counts := DocsPerTopic(m.Assignments(ids), 2)
	require.Len(t, counts, 2)

	total := 0
	for _, c := range counts {
		total += c
	}
	require.Equal(t, len(docs), total)
}
