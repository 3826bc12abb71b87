// Package main provides the CLI entrypoint for typist.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typist/internal/clock"
	"github.com/verte-zerg/typist/internal/config"
	"github.com/verte-zerg/typist/internal/generator"
	"github.com/verte-zerg/typist/internal/model"
	"github.com/verte-zerg/typist/internal/passage"
	"github.com/verte-zerg/typist/internal/report"
	"github.com/verte-zerg/typist/internal/session"
	"github.com/verte-zerg/typist/internal/store"
	"github.com/verte-zerg/typist/internal/tui"
	"github.com/verte-zerg/typist/internal/wordlist"
)

const (
	defaultLang  = "en"
	defaultWords = 25
	defaultCount = 10
	defaultCaps  = 0.0
	defaultPunct = 0.0
)

const defaultPunctSet = ".,!?;:"

var (
	practiceSource   string
	practicePassages string
	practiceStart    int
	practiceWordList string
	practiceLang     string
	practiceWords    int
	practiceCount    int
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string

	addTitle string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typist",
		Short:         "Passage typing practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceSource, "source", "", "passage source: default, file, library, generate")
	rootCmd.Flags().StringVar(&practicePassages, "passages", "", "passage file (.txt or .yaml)")
	rootCmd.Flags().IntVar(&practiceStart, "start", 0, "index of the first passage")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", "", "word list for generated passages (default: per-language list)")
	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "word list language code")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per generated passage")
	rootCmd.Flags().IntVar(&practiceCount, "count", defaultCount, "number of generated passages")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPassagesCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "source", &practiceSource, fileCfg.Practice.Source)
	applyStringConfig(cmd, "passages", &practicePassages, fileCfg.Practice.PassagesPath)
	applyIntConfig(cmd, "start", &practiceStart, fileCfg.Practice.Start)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordListPath)
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyIntConfig(cmd, "count", &practiceCount, fileCfg.Practice.Count)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)

	cfg := model.Config{
		Source:       practiceSource,
		PassagesPath: practicePassages,
		Start:        practiceStart,
		WordListPath: practiceWordList,
		Lang:         practiceLang,
		Words:        practiceWords,
		Count:        practiceCount,
		CapsPct:      practiceCaps,
		PunctPct:     practicePunct,
		PunctSet:     practicePunctSet,
	}
	cfg.Source = resolveSource(cfg)

	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("typist needs an interactive terminal")
	}

	set, err := loadPassages(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	sess, err := session.New(set, clock.System{}, session.WithStart(cfg.Start))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	m := tui.NewModel(sess)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if results := m.Results(); len(results) > 0 {
		if err := report.RenderSummary(cmd.OutOrStdout(), results); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

func resolveSource(cfg model.Config) string {
	source := strings.TrimSpace(strings.ToLower(cfg.Source))
	if source != "" {
		return source
	}
	if cfg.PassagesPath != "" {
		return model.SourceFile
	}
	return model.SourceDefault
}

func loadPassages(ctx context.Context, cfg model.Config) (*passage.Set, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch cfg.Source {
	case model.SourceDefault:
		return passage.Defaults(), nil
	case model.SourceFile:
		set, err := passage.LoadFile(cfg.PassagesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load passages: %w", err)
		}
		return set, nil
	case model.SourceLibrary:
		st, err := store.Open(config.DefaultLibraryPath())
		if err != nil {
			return nil, fmt.Errorf("failed to open library: %w", err)
		}
		defer closeStore(st)
		set, err := st.LoadSet(ctx)
		if errors.Is(err, passage.ErrNoPassages) {
			return nil, fmt.Errorf("library is empty; add passages with: typist passages add|import")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load library: %w", err)
		}
		return set, nil
	case model.SourceGenerate:
		path := cfg.WordListPath
		if path == "" {
			path = config.DefaultWordListPath(cfg.Lang)
		}
		words, err := wordlist.LoadWords(path, wordlist.FilterForLang(cfg.Lang))
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
		}
		passages, err := generator.New().Passages(words, generator.Options{
			Words:    cfg.Words,
			Count:    cfg.Count,
			CapsPct:  cfg.CapsPct,
			PunctPct: cfg.PunctPct,
			PunctSet: []rune(cfg.PunctSet),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate passages: %w", err)
		}
		return passage.NewSet(passages)
	default:
		return nil, fmt.Errorf("unknown passage source %q", cfg.Source)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
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
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newPassagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passages",
		Short: "Manage the passage library",
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List library passages",
		Args:  cobra.NoArgs,
		RunE:  runPassagesListCmd,
	}
	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a passage to the library",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPassagesAddCmd,
	}
	addCmd.Flags().StringVar(&addTitle, "title", "", "passage title")
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import passages from a .txt or .yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  runPassagesImportCmd,
	}
	removeCmd := &cobra.Command{
		Use:   "remove <id>...",
		Short: "Remove passages by id",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPassagesRemoveCmd,
	}
	cmd.AddCommand(listCmd, addCmd, importCmd, removeCmd)
	return cmd
}

func withLibrary(fn func(context.Context, *store.Store) error) error {
	st, err := store.Open(config.DefaultLibraryPath())
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer closeStore(st)
	return fn(context.Background(), st)
}

func runPassagesListCmd(cmd *cobra.Command, _ []string) error {
	return withLibrary(func(ctx context.Context, st *store.Store) error {
		records, err := st.ListPassages(ctx)
		if err != nil {
			return fmt.Errorf("failed to list passages: %w", err)
		}
		return report.RenderPassages(cmd.OutOrStdout(), records, outputWidth())
	})
}

func runPassagesAddCmd(cmd *cobra.Command, args []string) error {
	return withLibrary(func(ctx context.Context, st *store.Store) error {
		id, err := st.AddPassage(ctx, addTitle, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to add passage: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added passage %d\n", id)
		return err
	})
}

func runPassagesImportCmd(cmd *cobra.Command, args []string) error {
	set, err := passage.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read passages: %w", err)
	}
	return withLibrary(func(ctx context.Context, st *store.Store) error {
		n, err := st.AddPassages(ctx, set.Passages())
		if err != nil {
			return fmt.Errorf("failed to import passages: %w", err)
		}
		if skipped := set.Len() - n; skipped > 0 {
			logErrf("Skipped %d duplicate passages\n", skipped)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d passages\n", n)
		return err
	})
}

func runPassagesRemoveCmd(cmd *cobra.Command, args []string) error {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid passage id %q", arg)
		}
		ids = append(ids, id)
	}
	return withLibrary(func(ctx context.Context, st *store.Store) error {
		for _, id := range ids {
			if err := st.RemovePassage(ctx, id); err != nil {
				return fmt.Errorf("failed to remove passage %d: %w", id, err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed passage %d\n", id); err != nil {
				return err
			}
		}
		return nil
	})
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		logErrf("failed to close library: %v\n", err)
	}
}

func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typist configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# source = "default"      # default, file, library or generate
# passages = ""           # Passage file (.txt or .yaml) for source = "file"
# start = 0               # Index of the first passage
# wordlist = ""           # Word list for source = "generate"
# lang = %q             # Word list language code
# words = %d              # Words per generated passage
# count = %d              # Number of generated passages
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set
`,
		defaultLang,
		defaultWords,
		defaultCount,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	switch cfg.Source {
	case model.SourceDefault, model.SourceLibrary:
	case model.SourceFile:
		if cfg.PassagesPath == "" {
			return fmt.Errorf("--passages is required for source %q", cfg.Source)
		}
	case model.SourceGenerate:
		if cfg.Words <= 0 {
			return fmt.Errorf("--words must be > 0")
		}
		if cfg.Count <= 0 {
			return fmt.Errorf("--count must be > 0")
		}
		if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
			return fmt.Errorf("--caps must be between 0 and 1")
		}
		if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
			return fmt.Errorf("--punct must be between 0 and 1")
		}
		if cfg.PunctPct > 0 && cfg.PunctSet == "" {
			return fmt.Errorf("--punct-set must not be empty")
		}
	default:
		return fmt.Errorf("unknown --source %q (want default, file, library or generate)", cfg.Source)
	}
	if cfg.Start < 0 {
		return fmt.Errorf("--start must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
