//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToSetAndUnique(t *testing.T) {
	in := []string{"a", "b", "a", "c", "b"}

	set := ToSet(in)
	require.Len(t, set, 3)

	u := Unique(in)
	require.ElementsMatch(t, []string{"a", "b", "c"}, u)
}

func TestContainsN(t *testing.T) {
	in := []string{"Operas_gale.csv", "Theater_gale.csv", "Operas_gale.csv"}
	require.Equal(t, 2, ContainsN(in, "Operas_gale.csv"))
	require.Equal(t, 0, ContainsN(in, "Poetry_gale.csv"))
}

func TestSortedStringMapKeys(t *testing.T) {
	m := map[string]int{"theater": 1, "operas": 2, "poetry": 3}
	require.Equal(t, []string{"operas", "poetry", "theater"}, SortedStringMapKeys(m))
}

func TestChunkSlice(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}

	ch := ChunkSlice(in, 2)
	require.Len(t, ch, 3)
	require.Equal(t, []int{1, 2}, ch[0])
	require.Equal(t, []int{5}, ch[2])
}

func TestStripAccents(t *testing.T) {
	require.Equal(t, "Theatre Francais", StripAccents("Théâtre Français"))
	require.Equal(t, "plain", StripAccents("plain"))
}

func TestTitleCase(t *testing.T) {
	require.Equal(t, "The Daily Review", TitleCase("the daily review"))
}

func TestPurgeControlChars(t *testing.T) {
	out := PurgeControlChars("a\x0cb\tc\x00d")
	require.False(t, HasControlChars(out))
	require.Len(t, out, 7)
}

func TestHasVowel(t *testing.T) {
	require.True(t, HasVowel("rhythm")) // the y counts
	require.False(t, HasVowel("bcdfg"))
	require.True(t, HasVowel("aria"))
}
