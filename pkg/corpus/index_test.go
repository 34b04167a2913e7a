package corpus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildIndexPositions(t *testing.T) {
	ix := BuildIndex("a b a c a")
	if diff := cmp.Diff([]int{0, 2, 4}, ix.Positions("a")); diff != "" {
		t.Errorf("positions of a (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ix.Words())
	assert.Equal(t, 3, ix.Count("a"))
	assert.Equal(t, 0, ix.Count("zzz"))
	assert.Equal(t, 5, ix.Len())
}

func TestBuildIndexNormalizesTokens(t *testing.T) {
	ix := BuildIndex("The cat, the DOG! 1984 don't \"cat\"")
	assert.Equal(t, []string{"The", "cat,", "the", "DOG!", "1984", "don't", "\"cat\""}, ix.Tokens())
	assert.Equal(t, []string{"the", "cat", "dog"}, ix.Words())
	if diff := cmp.Diff([]int{1, 6}, ix.Positions("cat")); diff != "" {
		t.Errorf("positions of cat (-want +got):\n%s", diff)
	}
	assert.False(t, ix.Contains("don't"))
	assert.False(t, ix.Contains(""))
}

func TestBuildIndexEmpty(t *testing.T) {
	ix := BuildIndex("   \n\t ")
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Words())
	assert.Empty(t, ix.WithPrefix(""))
}

func TestIndexWithPrefix(t *testing.T) {
	ix := BuildIndex("the then than cat these")
	assert.ElementsMatch(t, []string{"the", "then", "than", "these"}, ix.WithPrefix("th"))
	assert.ElementsMatch(t, []string{"the", "then", "these"}, ix.WithPrefix("the"))
	assert.Empty(t, ix.WithPrefix("dog"))
}
