package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amonks/todolist/internal/config"
	"github.com/amonks/todolist/internal/kv"
	"github.com/amonks/todolist/internal/paths"
	"github.com/amonks/todolist/internal/todoenv"
	"github.com/amonks/todolist/todo"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

// app is the per-invocation state shared by subcommands.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	dataDir string
	locale  language.Tag
}

var current *app

func setupApp(cmd *cobra.Command, args []string) error {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = rootLogLevel
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	dataDir, err := resolveDataDir(rootDataDir, cfg)
	if err != nil {
		return err
	}

	locale, err := resolveLocale(cfg.List.Locale)
	if err != nil {
		return err
	}

	current = &app{cfg: cfg, logger: logger, dataDir: dataDir, locale: locale}
	logger.Debug("loaded config", "dataDir", dataDir, "locale", locale)
	return nil
}

// resolveDataDir picks the data directory: the --data-dir flag, then
// $TODOLIST_DATA_DIR, then the config file, then the default state dir.
func resolveDataDir(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return paths.ExpandHome(flagValue)
	}
	if dir := todoenv.DataDir(); dir != "" {
		return paths.ExpandHome(dir)
	}
	if cfg != nil && cfg.Storage.Dir != "" {
		return cfg.Storage.Dir, nil
	}
	return paths.DefaultStateDir()
}

func resolveLocale(value string) (language.Tag, error) {
	if value == "" {
		return todo.DefaultLocale, nil
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", value, err)
	}
	return tag, nil
}

// openSession opens the store in the data directory and wraps it in a
// session whose filter starts from the configured list defaults.
func openSession() (*todo.Session, error) {
	if current == nil {
		return nil, fmt.Errorf("todo: not initialized")
	}
	if err := os.MkdirAll(current.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	persistence := todo.NewKVPersistence(kv.NewFileStore(current.dataDir), todo.KVPersistenceOptions{
		PrefersDark: terminalPrefersDark,
		Logger:      current.logger,
	})
	store, report, err := todo.Open(persistence, todo.StoreOptions{Logger: current.logger})
	if err != nil {
		return nil, err
	}
	if report.Source == todo.LoadSourceSeededFresh {
		current.logger.Info("no todos yet, showing sample todos", "dir", current.dataDir)
	}

	filter, err := configuredFilter(current.cfg)
	if err != nil {
		return nil, err
	}
	session := todo.NewSession(store, filter)
	session.SetLocale(current.locale)
	return session, nil
}

// configuredFilter returns the default filter with config overrides applied.
func configuredFilter(cfg *config.Config) (todo.Filter, error) {
	filter := todo.DefaultFilter()
	if cfg == nil {
		return filter, nil
	}
	if cfg.List.Status != "" {
		status, err := todo.ParseStatusFilter(cfg.List.Status)
		if err != nil {
			return filter, fmt.Errorf("config list.status: %w", err)
		}
		filter.Status = status
	}
	if cfg.List.SortBy != "" {
		key, err := todo.ParseSortKey(cfg.List.SortBy)
		if err != nil {
			return filter, fmt.Errorf("config list.sort-by: %w", err)
		}
		filter.SortBy = key
	}
	if cfg.List.SortOrder != "" {
		order, err := todo.ParseSortOrder(cfg.List.SortOrder)
		if err != nil {
			return filter, fmt.Errorf("config list.sort-order: %w", err)
		}
		filter.SortOrder = order
	}
	return filter, nil
}

// terminalPrefersDark asks the terminal for its background, and assumes a
// light one when stdout is not a terminal.
func terminalPrefersDark() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return lipgloss.HasDarkBackground()
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	parsed := log.WarnLevel
	if level != "" {
		var err error
		parsed, err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	return log.NewWithOptions(w, log.Options{
		Level:  parsed,
		Prefix: "todo",
	}), nil
}
