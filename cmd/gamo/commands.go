package main

import (
	"fmt"
	"os"

	"github.com/bastiangx/gamo/internal/logger"
	"github.com/bastiangx/gamo/internal/utils"
	"github.com/bastiangx/gamo/pkg/config"
	"github.com/bastiangx/gamo/pkg/corpus"
	"github.com/bastiangx/gamo/pkg/pipeline"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs after the root pre-run.
type app struct {
	baseFlag   string
	configFlag string
	debug      bool
	jsonLogs   bool

	paths *utils.PathResolver
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           AppName,
		Short:         "Build a vocabulary corpus from word lists and books",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.baseFlag, "base", "", "Base directory for inputs and outputs (default: working dir)")
	root.PersistentFlags().StringVar(&a.configFlag, "config", "", "Config file (default: <base>/"+config.FileName+")")
	root.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Toggle debug mode")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "Log as JSON")

	root.AddCommand(
		a.sortCmd(),
		a.concordCmd(),
		a.buildCmd(),
		a.lookupCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup() error {
	level := log.InfoLevel
	if a.debug {
		level = log.DebugLevel
	}
	format := log.TextFormatter
	if a.jsonLogs {
		format = log.JSONFormatter
	}
	log.SetDefault(logger.NewWithConfig(os.Stderr, "", level, a.debug, format))

	paths, err := utils.NewPathResolver(a.baseFlag)
	if err != nil {
		return err
	}
	a.paths = paths

	configPath := paths.GetConfigPath(config.FileName)
	if a.configFlag != "" {
		configPath = paths.Resolve(a.configFlag)
	}
	cfg, err := config.InitConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	log.Debug("setup done", "base", paths.BaseDir(), "config", utils.GetAbsolutePath(configPath))
	return nil
}

func (a *app) loadVocabulary(dir string) (pipeline.Vocabulary, error) {
	if dir == "" {
		return nil, nil
	}
	return pipeline.LoadVocabulary(a.paths.Resolve(dir), pipeline.ParseOptionsFrom(a.cfg))
}

func (a *app) sortCmd() *cobra.Command {
	var (
		vocabDir string
		attach   bool
		pattern  string
		prefix   bool
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Filter, classify and bucket word.on into parts/",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("attach") {
				a.cfg.Concordance.Attach = attach
			}
			if cmd.Flags().Changed("pattern") {
				a.cfg.Classify.MatchPattern = pattern
			}
			if cmd.Flags().Changed("prefix") {
				a.cfg.Classify.AnchorEnd = !prefix
			}
			vocab, err := a.loadVocabulary(vocabDir)
			if err != nil {
				return err
			}
			log.Info("SORT Running...")
			res, err := pipeline.NewSorter(a.cfg, a.paths.BaseDir()).Run(vocab.Words())
			if err != nil {
				return err
			}
			log.Debug("sort finished", "files", len(res.Files))
			return nil
		},
	}
	cmd.Flags().StringVar(&vocabDir, "vocab", "", "Directory of *.on lists whose words are disallowed")
	cmd.Flags().BoolVar(&attach, "attach", false, "Attach corpus examples to the length buckets")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Literal affix routed to the match category")
	cmd.Flags().BoolVar(&prefix, "prefix", false, "Match the pattern against the word start instead of its end")
	return cmd
}

func (a *app) concordCmd() *cobra.Command {
	var vocabDir string
	cmd := &cobra.Command{
		Use:   "concord",
		Short: "Rank vocabulary lists by corpus popularity with examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := a.loadVocabulary(vocabDir)
			if err != nil {
				return err
			}
			log.Info("CONCORD Running...")
			_, err = pipeline.NewConcorder(a.cfg, a.paths.BaseDir()).Run(vocab)
			return err
		},
	}
	cmd.Flags().StringVar(&vocabDir, "vocab", "vocabulary", "Directory of *.on lists")
	return cmd
}

func (a *app) buildCmd() *cobra.Command {
	var (
		vocabDir string
		keys     bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write vocabulary lists to build/",
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := a.loadVocabulary(vocabDir)
			if err != nil {
				return err
			}
			log.Info("BUILD Running...")
			_, err = pipeline.Build(a.paths.BaseDir(), vocab, keys)
			return err
		},
	}
	cmd.Flags().StringVar(&vocabDir, "vocab", "vocabulary", "Directory of *.on lists")
	cmd.Flags().BoolVar(&keys, "keys", false, "Write \"rank,word,s\" lines instead of bare words")
	return cmd
}

func (a *app) lookupCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "lookup <prefix>",
		Short: "Print corpus examples for words starting with a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := corpus.LoadCorpus(pipeline.Layout{BaseDir: a.paths.BaseDir()}.CorpusDirs(a.cfg.Corpus.Dirs)...)
			if err != nil {
				return err
			}
			ix := corpus.BuildIndex(text)
			words := corpus.Words(corpus.SortByCount(ix.WithPrefix(args[0]), ix))
			if limit > 0 && len(words) > limit {
				words = words[:limit]
			}
			store := corpus.BuildStore(ix, words, pipeline.WindowFrom(a.cfg), a.cfg.Concordance.OccurrencesPerWord)
			out := cmd.OutOrStdout()
			for _, e := range store.Entries() {
				fmt.Fprintf(out, "%s (%d)\n%s\n", e.Word, e.Count, e.Example)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of words to show (0 for all)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current version",
		Run: func(cmd *cobra.Command, args []string) {
			l := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
				ReportCaller:    false,
				ReportTimestamp: false,
				Prefix:          "",
			})

			styles := log.DefaultStyles()
			styles.Values["version"] = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			l.SetStyles(styles)

			l.Print("[ gamo ] vocabulary corpus builder")
			l.Print("", "version", Version)
		},
	}
}
