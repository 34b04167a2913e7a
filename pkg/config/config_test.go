package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 2, c.Rules.MinLen)
	assert.Equal(t, 25, c.Rules.MaxLen)
	assert.Equal(t, "", c.Classify.MatchPattern)
	assert.True(t, c.Classify.AnchorEnd)
	assert.Equal(t, []string{"match", "simple"}, c.Classify.Order)
	assert.False(t, c.Intake.ReorderByFrequency)
	assert.True(t, c.Intake.RequireSupersetCheck)
	assert.Equal(t, 3, c.Concordance.ContextLeft)
	assert.Equal(t, 9, c.Concordance.ContextRight)
	assert.Equal(t, 50, c.Concordance.RightCharBudget)
	assert.Equal(t, 3, c.Concordance.OccurrencesPerWord)
	require.NoError(t, c.Validate())
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	c, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestLoadConfigOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[rules]
min_len = 3
max_len = 12

[classify]
match_pattern = "tion"
anchor_end = true
order = ["match", "ing", "simple"]

[concordance]
attach = true
rank_mode = "popularity"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Rules.MinLen)
	assert.Equal(t, 12, c.Rules.MaxLen)
	assert.Equal(t, "tion", c.Classify.MatchPattern)
	assert.Equal(t, []string{"match", "ing", "simple"}, c.Classify.Order)
	assert.True(t, c.Concordance.Attach)
	assert.Equal(t, RankPopularity, c.Concordance.RankMode)
	// untouched sections keep their defaults
	assert.Equal(t, 9, c.Concordance.ContextRight)
	assert.True(t, c.Intake.RequireSupersetCheck)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	// wrong type for min_len breaks strict decoding of the whole file
	content := `
[rules]
min_len = "two"
max_len = 10

[intake]
reorder_by_frequency = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Rules.MinLen)
	assert.Equal(t, 10, c.Rules.MaxLen)
	assert.True(t, c.Intake.ReorderByFrequency)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"max below min", func(c *Config) { c.Rules.MaxLen = 1 }},
		{"zero min", func(c *Config) { c.Rules.MinLen = 0 }},
		{"negative window", func(c *Config) { c.Concordance.ContextLeft = -1 }},
		{"no occurrences", func(c *Config) { c.Concordance.OccurrencesPerWord = 0 }},
		{"unknown rank mode", func(c *Config) { c.Concordance.RankMode = "random" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
