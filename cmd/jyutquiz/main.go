// Package main provides the CLI entrypoint for jyutquiz.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/jyutquiz/internal/adaptive"
	"github.com/verte-zerg/jyutquiz/internal/config"
	"github.com/verte-zerg/jyutquiz/internal/corpus"
	"github.com/verte-zerg/jyutquiz/internal/generator"
	"github.com/verte-zerg/jyutquiz/internal/logging"
	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/phonetic"
	"github.com/verte-zerg/jyutquiz/internal/quiz"
	"github.com/verte-zerg/jyutquiz/internal/section"
	"github.com/verte-zerg/jyutquiz/internal/speech"
	"github.com/verte-zerg/jyutquiz/internal/srs"
	"github.com/verte-zerg/jyutquiz/internal/store"
	"github.com/verte-zerg/jyutquiz/internal/tui"
)

const (
	defaultTest          = "test1"
	defaultPriorityRatio = adaptive.DefaultPriorityRatio
	defaultLogLevel      = "info"
)

var (
	quizTest          string
	quizSection       string
	quizAdaptive      bool
	quizPriorityRatio float64
	quizSeed          int64
	quizSpeech        bool
)

func main() {
	loadEnv(".env")
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jyutquiz",
		Short:         "Cantonese vocabulary quiz",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runQuizCmd,
	}

	rootCmd.Flags().StringVar(&quizTest, "test", defaultTest, "test id")
	rootCmd.Flags().StringVar(&quizSection, "section", "", "section id (default: first section of the test)")
	rootCmd.Flags().BoolVar(&quizAdaptive, "adaptive", false, "prioritize words you find difficult")
	rootCmd.Flags().Float64Var(&quizPriorityRatio, "priority-ratio", defaultPriorityRatio, "share of prioritized questions when adaptive (0-1)")
	rootCmd.Flags().Int64Var(&quizSeed, "seed", 0, "random seed (0: random)")
	rootCmd.Flags().BoolVar(&quizSpeech, "speech", false, "enable speaking questions with typed transcripts")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTestsCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newReviewCmd())
	rootCmd.AddCommand(newDifficultCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "test", &quizTest, fileCfg.Quiz.Test)
	applyStringConfig(cmd, "section", &quizSection, fileCfg.Quiz.Section)
	applyBoolConfig(cmd, "adaptive", &quizAdaptive, fileCfg.Quiz.Adaptive)
	applyFloatConfig(cmd, "priority-ratio", &quizPriorityRatio, fileCfg.Quiz.PriorityRatio)
	applyInt64Config(cmd, "seed", &quizSeed, fileCfg.Quiz.Seed)
	applyBoolConfig(cmd, "speech", &quizSpeech, fileCfg.Quiz.Speech)

	logFile, err := openLogFile(config.DefaultLogPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			// Best-effort log file close.
			_ = cerr
		}
	}()
	log := newLogger(logFile, fileCfg)

	vocab, catalog, err := loadData(fileCfg)
	if err != nil {
		return err
	}

	cfg := model.Config{
		TestID:        quizTest,
		SectionID:     quizSection,
		Adaptive:      quizAdaptive,
		PriorityRatio: quizPriorityRatio,
		Seed:          quizSeed,
		Speech:        quizSpeech,
	}
	if cfg.SectionID == "" && cfg.TestID != "" {
		test, err := catalog.Test(cfg.TestID)
		if err != nil {
			return unknownTestError(err)
		}
		cfg.SectionID = test.Sections[0].ID
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	sectionCfg, err := catalog.Section(cfg.TestID, cfg.SectionID)
	if err != nil {
		return unknownTestError(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	log.Info("starting quiz", "test", cfg.TestID, "section", cfg.SectionID, "seed", seed, "adaptive", cfg.Adaptive, "speech", cfg.Speech)

	gen := generator.NewWithRand(rnd, cfg.Speech)
	questions := section.NewBuilder(gen, vocab, log).Build(sectionCfg)
	if len(questions) == 0 {
		return fmt.Errorf("section %s/%s has no questions", cfg.TestID, cfg.SectionID)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	table, err := st.LoadPerformance(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load performance: %w", err)
	}
	if cfg.Adaptive {
		questions = adaptive.NewWithRand(rnd).Rank(questions, table, cfg.PriorityRatio)
	}

	sess := quiz.New(quiz.NewID(), cfg.TestID, cfg.SectionID, questions,
		quiz.WithScheduler(srs.NewScheduler(nil)),
		quiz.WithMatcher(phonetic.NewMatcher(vocab.All())),
	)
	opts := tui.Options{
		Title:    sectionTitle(sectionCfg),
		Session:  sess,
		Table:    table,
		Recorder: st,
		Log:      log,
	}
	if cfg.Speech {
		opts.Typed = speech.NewTypedRecognizer()
		opts.Speech = speech.NewController(opts.Typed, speech.DefaultTimeout, log)
	}

	m := tui.NewModel(opts)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if summary, done := m.Result(); done {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d/%d (%d%%), next: %s\n",
			summary.Emoji, summary.Message, summary.Correct, summary.Total, summary.Percentage, summary.Adjustment)
	}
	return nil
}

func sectionTitle(cfg model.SectionConfig) string {
	parts := []string{cfg.Icon, cfg.Name, cfg.ChineseName}
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func loadData(fileCfg config.FileConfig) (*corpus.Corpus, *corpus.Catalog, error) {
	var (
		vocab   *corpus.Corpus
		catalog *corpus.Catalog
		err     error
	)
	if fileCfg.Data.Vocabulary != nil && *fileCfg.Data.Vocabulary != "" {
		vocab, err = corpus.Load(*fileCfg.Data.Vocabulary)
	} else {
		vocab, err = corpus.Default()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	if fileCfg.Data.Tests != nil && *fileCfg.Data.Tests != "" {
		catalog, err = corpus.LoadCatalog(*fileCfg.Data.Tests)
	} else {
		catalog, err = corpus.DefaultCatalog()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tests: %w", err)
	}
	return vocab, catalog, nil
}

func unknownTestError(err error) error {
	if errors.Is(err, corpus.ErrUnknownTest) || errors.Is(err, corpus.ErrUnknownSection) {
		logErrln("List available tests with: jyutquiz tests")
	}
	return err
}

func logLevel(fileCfg config.FileConfig) string {
	if v := strings.TrimSpace(os.Getenv("JYUTQUIZ_LOG_LEVEL")); v != "" {
		return v
	}
	if fileCfg.Log.Level != nil {
		return *fileCfg.Log.Level
	}
	return defaultLogLevel
}

func newLogger(w io.Writer, fileCfg config.FileConfig) *slog.Logger {
	log := logging.New(w, logLevel(fileCfg))
	slog.SetDefault(log)
	return log
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func loadEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logErrf("failed to load %s: %v\n", path, err)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
