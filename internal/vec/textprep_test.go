//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-meng/AestheticaGoMiner/internal/str"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"The Beautiful, the Sublime!", []string{"the", "beautiful", "the", "sublime"}},
		{"act 3, scene 2", []string{"act", "scene"}},
		{"don't stop", []string{"don't", "stop"}},
		{"", nil},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Tokenize(tt.in))
	}
}

func TestBagOfStems(t *testing.T) {
	// stopwords and short tokens go; the rest is stemmed
	bag := BagOfStems("the singers were singing beautifully in the opera")
	require.Equal(t, []string{"singer", "sing", "beauti", "opera"}, bag)
}

func TestBagOfStemsDropsStopwords(t *testing.T) {
	require.Empty(t, BagOfStems("the and of was mr mrs"))
}

func TestPrepareText(t *testing.T) {
	require.Equal(t, "beauti sublim", PrepareText("the beautiful and the sublime"))
}

func TestPrepareAll(t *testing.T) {
	tables := []str.RawTable{
		{
			Genre: "operas",
			Records: []str.ReviewRecord{
				{ID: "a", CleanText: "the beautiful aria"},
				{ID: "b", CleanText: "a sublime performance"},
			},
		},
	}

	PrepareAll(tables, 4)

	require.Equal(t, "beauti aria", tables[0].Records[0].ProcessedText)
	require.Equal(t, "sublim perform", tables[0].Records[1].ProcessedText)
}

func TestIsStopWord(t *testing.T) {
	require.True(t, IsStopWord("the"))
	require.True(t, IsStopWord("mr"))
	require.False(t, IsStopWord("sublime"))
}
