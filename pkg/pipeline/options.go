package pipeline

import (
	"github.com/bastiangx/gamo/pkg/config"
	"github.com/bastiangx/gamo/pkg/corpus"
	"github.com/bastiangx/gamo/pkg/lexicon"
)

// RulesFrom maps the rules section onto lexicon.Rules.
func RulesFrom(cfg *config.Config) lexicon.Rules {
	return lexicon.Rules{MinLen: cfg.Rules.MinLen, MaxLen: cfg.Rules.MaxLen}
}

// ParseOptionsFrom maps the rules and intake sections onto parse options.
func ParseOptionsFrom(cfg *config.Config) lexicon.ParseOptions {
	return lexicon.ParseOptions{
		Rules:              RulesFrom(cfg),
		ReorderByFrequency: cfg.Intake.ReorderByFrequency,
	}
}

// ClassifierFrom builds the priority chain of the classify section.
func ClassifierFrom(cfg *config.Config) (*lexicon.Classifier, error) {
	m := lexicon.Matcher{Pattern: cfg.Classify.MatchPattern, AnchorEnd: cfg.Classify.AnchorEnd}
	return lexicon.NewClassifier(cfg.Classify.Order, m)
}

// WindowFrom maps the concordance section onto a corpus.Window.
func WindowFrom(cfg *config.Config) corpus.Window {
	return corpus.Window{
		Left:        cfg.Concordance.ContextLeft,
		Right:       cfg.Concordance.ContextRight,
		RightBudget: cfg.Concordance.RightCharBudget,
	}
}
