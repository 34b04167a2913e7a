/*
Package config manages the TOML config for gamo pipelines.

Every option that used to be a compiled-in constant lives here and is passed
explicitly to the component that needs it.
*/
package config

import (
	"fmt"
	"path/filepath"

	"github.com/bastiangx/gamo/internal/utils"
	"github.com/bastiangx/gamo/pkg/corpus"
	"github.com/charmbracelet/log"
)

// FileName is the config file looked up inside the base directory.
const FileName = "gamo.toml"

// Concordance ranking modes.
const (
	RankInsertion  = corpus.ModeInsertion
	RankCandidates = corpus.ModeCandidates
	RankPopularity = corpus.ModePopularity
)

// Config holds the entire config structure
type Config struct {
	Rules       RulesConfig       `toml:"rules"`
	Classify    ClassifyConfig    `toml:"classify"`
	Intake      IntakeConfig      `toml:"intake"`
	Concordance ConcordanceConfig `toml:"concordance"`
	Corpus      CorpusConfig      `toml:"corpus"`
}

// RulesConfig bounds accepted word lengths, inclusive.
type RulesConfig struct {
	MinLen int `toml:"min_len"`
	MaxLen int `toml:"max_len"`
}

// ClassifyConfig drives category assignment.
type ClassifyConfig struct {
	MatchPattern string `toml:"match_pattern"`
	// AnchorEnd compares the pattern against the word's suffix, otherwise its prefix.
	AnchorEnd bool `toml:"anchor_end"`
	// Order lists classifier names by priority; "simple" always closes the chain.
	Order []string `toml:"order"`
}

// IntakeConfig holds candidate list parsing options.
type IntakeConfig struct {
	ReorderByFrequency   bool `toml:"reorder_by_frequency"`
	RequireSupersetCheck bool `toml:"require_superset_check"`
	PruneExcluded        bool `toml:"prune_excluded"`
}

// ConcordanceConfig holds context window and example options.
type ConcordanceConfig struct {
	Attach             bool   `toml:"attach"`
	ContextLeft        int    `toml:"context_left"`
	ContextRight       int    `toml:"context_right"`
	RightCharBudget    int    `toml:"right_char_budget"`
	OccurrencesPerWord int    `toml:"occurrences_per_word"`
	RankMode           string `toml:"rank_mode"`
	ExportSnapshot     bool   `toml:"export_snapshot"`
}

// CorpusConfig lists source directories, relative to the base dir.
// The first one is required.
type CorpusConfig struct {
	Dirs []string `toml:"dirs"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			MinLen: 2,
			MaxLen: 25,
		},
		Classify: ClassifyConfig{
			MatchPattern: "",
			AnchorEnd:    true,
			Order:        []string{"match", "simple"},
		},
		Intake: IntakeConfig{
			ReorderByFrequency:   false,
			RequireSupersetCheck: true,
			PruneExcluded:        false,
		},
		Concordance: ConcordanceConfig{
			Attach:             false,
			ContextLeft:        3,
			ContextRight:       9,
			RightCharBudget:    50,
			OccurrencesPerWord: 3,
			RankMode:           RankCandidates,
			ExportSnapshot:     false,
		},
		Corpus: CorpusConfig{
			Dirs: []string{"public_domain", "custom_public_domain"},
		},
	}
}

// Validate rejects option combinations no component can work with.
func (c *Config) Validate() error {
	if c.Rules.MinLen < 1 {
		return fmt.Errorf("rules.min_len must be at least 1, got %d", c.Rules.MinLen)
	}
	if c.Rules.MaxLen < c.Rules.MinLen {
		return fmt.Errorf("rules.max_len (%d) is below rules.min_len (%d)", c.Rules.MaxLen, c.Rules.MinLen)
	}
	if c.Concordance.ContextLeft < 0 || c.Concordance.ContextRight < 0 {
		return fmt.Errorf("concordance context windows must not be negative")
	}
	if c.Concordance.RightCharBudget < 0 {
		return fmt.Errorf("concordance.right_char_budget must not be negative")
	}
	if c.Concordance.OccurrencesPerWord < 1 {
		return fmt.Errorf("concordance.occurrences_per_word must be at least 1, got %d", c.Concordance.OccurrencesPerWord)
	}
	switch c.Concordance.RankMode {
	case RankInsertion, RankCandidates, RankPopularity:
	default:
		return fmt.Errorf("unknown concordance.rank_mode %q", c.Concordance.RankMode)
	}
	return nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "rules"); ok {
		extractRulesConfig(section, &config.Rules)
	}
	if section, ok := utils.ExtractSection(tempConfig, "classify"); ok {
		extractClassifyConfig(section, &config.Classify)
	}
	if section, ok := utils.ExtractSection(tempConfig, "intake"); ok {
		extractIntakeConfig(section, &config.Intake)
	}
	if section, ok := utils.ExtractSection(tempConfig, "concordance"); ok {
		extractConcordanceConfig(section, &config.Concordance)
	}
	if section, ok := utils.ExtractSection(tempConfig, "corpus"); ok {
		if val, ok := utils.ExtractStrings(section, "dirs"); ok {
			config.Corpus.Dirs = val
		}
	}
	return config, nil
}

func extractRulesConfig(data map[string]any, rules *RulesConfig) {
	if val, ok := utils.ExtractInt64(data, "min_len"); ok {
		rules.MinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_len"); ok {
		rules.MaxLen = val
	}
}

func extractClassifyConfig(data map[string]any, classify *ClassifyConfig) {
	if val, ok := utils.ExtractString(data, "match_pattern"); ok {
		classify.MatchPattern = val
	}
	if val, ok := utils.ExtractBool(data, "anchor_end"); ok {
		classify.AnchorEnd = val
	}
	if val, ok := utils.ExtractStrings(data, "order"); ok {
		classify.Order = val
	}
}

func extractIntakeConfig(data map[string]any, intake *IntakeConfig) {
	if val, ok := utils.ExtractBool(data, "reorder_by_frequency"); ok {
		intake.ReorderByFrequency = val
	}
	if val, ok := utils.ExtractBool(data, "require_superset_check"); ok {
		intake.RequireSupersetCheck = val
	}
	if val, ok := utils.ExtractBool(data, "prune_excluded"); ok {
		intake.PruneExcluded = val
	}
}

func extractConcordanceConfig(data map[string]any, c *ConcordanceConfig) {
	if val, ok := utils.ExtractBool(data, "attach"); ok {
		c.Attach = val
	}
	if val, ok := utils.ExtractInt64(data, "context_left"); ok {
		c.ContextLeft = val
	}
	if val, ok := utils.ExtractInt64(data, "context_right"); ok {
		c.ContextRight = val
	}
	if val, ok := utils.ExtractInt64(data, "right_char_budget"); ok {
		c.RightCharBudget = val
	}
	if val, ok := utils.ExtractInt64(data, "occurrences_per_word"); ok {
		c.OccurrencesPerWord = val
	}
	if val, ok := utils.ExtractString(data, "rank_mode"); ok {
		c.RankMode = val
	}
	if val, ok := utils.ExtractBool(data, "export_snapshot"); ok {
		c.ExportSnapshot = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
