package lexicon

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesBoundsInclusive(t *testing.T) {
	r := DefaultRules()
	assert.True(t, r.Accept(strings.Repeat("a", r.MinLen), nil))
	assert.True(t, r.Accept(strings.Repeat("a", r.MaxLen), nil))
	assert.False(t, r.Accept(strings.Repeat("a", r.MinLen-1), nil))
	assert.False(t, r.Accept(strings.Repeat("a", r.MaxLen+1), nil))
	assert.True(t, r.Accept("hello", nil))
}

func TestForbiddenSetUnion(t *testing.T) {
	set := NewForbiddenSet([]string{"cat", "dog"}, []string{"dog", "owl"}, nil)
	assert.Equal(t, 3, set.Len())
	for _, w := range []string{"cat", "dog", "owl"} {
		assert.True(t, set.Contains(w), w)
	}
	// exact membership only, not prefixes
	assert.False(t, set.Contains("ca"))
	assert.False(t, set.Contains("cats"))
	assert.False(t, set.Contains(""))

	var empty *ForbiddenSet
	assert.False(t, empty.Contains("cat"))
	assert.Equal(t, 0, empty.Len())
}

func TestRulesAcceptForbidden(t *testing.T) {
	r := DefaultRules()
	set := NewForbiddenSet([]string{"hello"})
	assert.False(t, r.Accept("hello", set))
	assert.True(t, r.Accept("world", set))
	assert.Equal(t, []string{"world", "again"}, r.Filter([]string{"hello", "world", "a", "again"}, set))
}

func TestCheckSuperset(t *testing.T) {
	candidates := []string{"alpha", "beta", "gamma"}
	require.NoError(t, CheckSuperset(candidates, []string{"beta", "alpha"}))
	require.NoError(t, CheckSuperset(candidates, nil))

	err := CheckSuperset(candidates, []string{"beta", "delta"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingExcluded))

	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, []string{"delta"}, integrity.Missing)
	assert.Contains(t, err.Error(), "delta")
}

func TestCheckSupersetCollectsEveryMissingWord(t *testing.T) {
	err := CheckSuperset([]string{"one"}, []string{"two", "one", "three"})
	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, []string{"two", "three"}, integrity.Missing)
}
