package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/jyutquiz/internal/config"
	"github.com/verte-zerg/jyutquiz/internal/corpus"
	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/srs"
	"github.com/verte-zerg/jyutquiz/internal/stats"
	"github.com/verte-zerg/jyutquiz/internal/store"
)

const defaultDifficultLimit = 10

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Open config in $EDITOR (creates a template if missing)",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# jyutquiz configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# test = %q            # Test id
# section = ""             # Section id (default: first section of the test)
# adaptive = false         # Prioritize difficult words
# priority-ratio = %.2f    # Share of prioritized questions (0-1)
# seed = 0                 # Random seed (0: random)
# speech = false           # Enable speaking questions

[data]
# vocabulary = ""          # Vocabulary JSON file (default: built-in corpus)
# tests = ""               # Test catalog JSON file (default: built-in tests)

[log]
# level = %q           # debug, info, warn or error
`,
		defaultTest,
		defaultPriorityRatio,
		defaultLogLevel,
	)
}

func newTestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tests",
		Short: "List tests and their sections",
		Args:  cobra.NoArgs,
		RunE:  runTestsCmd,
	}
}

func runTestsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	_, catalog, err := loadData(fileCfg)
	if err != nil {
		return err
	}
	return writeTests(cmd.OutOrStdout(), catalog.Tests(), outputWidth(), isTerminal())
}

func writeTests(w io.Writer, tests []model.TestConfig, width int, styled bool) error {
	for _, test := range tests {
		heading := strings.TrimSpace(fmt.Sprintf("%s %s %s", test.Icon, test.Name, test.ChineseName))
		if styled {
			heading = headingStyle.Render(heading)
		}
		if _, err := fmt.Fprintf(w, "%s (%s)\n", heading, test.ID); err != nil {
			return err
		}
		if test.Description != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", truncate(test.Description, width-2)); err != nil {
				return err
			}
		}
		for _, sec := range test.Sections {
			line := fmt.Sprintf("  %-10s %s", sec.ID, sectionTitle(sec))
			if _, err := fmt.Fprintln(w, truncate(line, width)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func outputWidth() int {
	if !isTerminal() {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List vocabulary categories",
		Args:  cobra.NoArgs,
		RunE:  runCategoriesCmd,
	}
}

func runCategoriesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	vocab, _, err := loadData(fileCfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, cat := range vocab.Categories() {
		if _, err := fmt.Fprintf(out, "%-16s %3d  %s\n", cat.Key, len(cat.Items), cat.Name); err != nil {
			return err
		}
	}
	return nil
}

// withStore opens the history database for a subcommand.
func withStore(fn func(ctx context.Context, st *store.Store) error) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(context.Background(), st)
}

func newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "List words due for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(func(ctx context.Context, st *store.Store) error {
				table, err := st.LoadPerformance(ctx)
				if err != nil {
					return fmt.Errorf("failed to load performance: %w", err)
				}
				due := srs.NewScheduler(nil).DueForReview(table, time.Now())
				return stats.RenderDue(cmd.OutOrStdout(), due)
			})
		},
	}
}

func newDifficultCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "difficult",
		Short: "List words with the lowest accuracy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0")
			}
			return withStore(func(ctx context.Context, st *store.Store) error {
				table, err := st.LoadPerformance(ctx)
				if err != nil {
					return fmt.Errorf("failed to load performance: %w", err)
				}
				words := srs.NewScheduler(nil).DifficultWords(table, limit)
				return stats.RenderDifficult(cmd.OutOrStdout(), words)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultDifficultLimit, "number of words to show")
	return cmd
}

type statsOptions struct {
	testID    string
	since     string
	last      int
	sessionID string
}

func newStatsCmd() *cobra.Command {
	var opts statsOptions
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show quiz progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatsCmd(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.testID, "test", "", "only sessions of this test")
	cmd.Flags().StringVar(&opts.since, "since", "", "only sessions since date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.last, "last", 0, "only the last N sessions")
	cmd.Flags().StringVar(&opts.sessionID, "session", "", "show the answers of one session")
	return cmd
}

func runStatsCmd(w io.Writer, opts statsOptions) error {
	filter, err := sessionFilter(opts)
	if err != nil {
		return err
	}
	return withStore(func(ctx context.Context, st *store.Store) error {
		if opts.sessionID != "" {
			answers, err := st.ListAnswers(ctx, []string{opts.sessionID})
			if err != nil {
				return fmt.Errorf("failed to load answers: %w", err)
			}
			records, ok := answers[opts.sessionID]
			if !ok {
				return fmt.Errorf("session %s not found", opts.sessionID)
			}
			return stats.RenderAnswers(w, records)
		}
		report, err := stats.BuildReport(ctx, st, srs.NewScheduler(nil), stats.ReportConfig{
			Filter:         filter,
			DifficultLimit: defaultDifficultLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		return stats.RenderReport(w, report)
	})
}

func sessionFilter(opts statsOptions) (store.SessionFilter, error) {
	if opts.last < 0 {
		return store.SessionFilter{}, fmt.Errorf("--last must be >= 0")
	}
	filter := store.SessionFilter{TestID: opts.testID, Last: opts.last}
	if opts.since != "" {
		since, err := time.ParseInLocation("2006-01-02", opts.since, time.Local)
		if err != nil {
			return store.SessionFilter{}, fmt.Errorf("--since must be YYYY-MM-DD: %w", err)
		}
		filter.Since = &since
	}
	return filter, nil
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <word>...",
		Short: "Forget the review history of words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st *store.Store) error {
				out := cmd.OutOrStdout()
				for _, word := range args {
					removed, err := st.ResetWord(ctx, word)
					if err != nil {
						return fmt.Errorf("failed to reset %s: %w", word, err)
					}
					if !removed {
						logErrf("no history for %s\n", word)
						continue
					}
					if _, err := fmt.Fprintf(out, "reset %s\n", word); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

type importOptions struct {
	sheet    string
	startRow int
	out      string
}

func newImportCmd() *cobra.Command {
	defaults := corpus.DefaultImportConfig("")
	opts := importOptions{}
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Convert an .xlsx or .csv vocabulary sheet to corpus JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCmd(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.sheet, "sheet", defaults.SheetName, "sheet name for .xlsx files")
	cmd.Flags().IntVar(&opts.startRow, "start-row", defaults.StartRow, "first data row (1-based)")
	cmd.Flags().StringVar(&opts.out, "out", "", "output file (default: stdout)")
	return cmd
}

func runImportCmd(stdout io.Writer, path string, opts importOptions) error {
	if opts.startRow < 1 {
		return fmt.Errorf("--start-row must be >= 1")
	}
	cfg := corpus.DefaultImportConfig(path)
	cfg.SheetName = opts.sheet
	cfg.StartRow = opts.startRow
	result, err := corpus.Import(cfg)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	data, err := corpus.Marshal(result.Categories)
	if err != nil {
		return fmt.Errorf("failed to encode corpus: %w", err)
	}
	if opts.out == "" {
		if _, err := stdout.Write(append(data, '\n')); err != nil {
			return err
		}
	} else if err := os.WriteFile(opts.out, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.out, err)
	}

	logErrf("processed %d rows: %d created, %d skipped\n", result.TotalProcessed, result.Created, result.Skipped)
	for _, msg := range result.Errors {
		logErrln("  " + msg)
	}
	return nil
}
