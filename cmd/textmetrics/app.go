package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seokit/textmetrics"
	"github.com/seokit/textmetrics/internal/config"
	"github.com/seokit/textmetrics/internal/drafts"
	"github.com/seokit/textmetrics/internal/logging"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	cfg      *config.Config
	log      *logging.Logger
	analyzer *textmetrics.Analyzer
	store    *drafts.SQLiteStore
}

func (a *app) setup(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	overrides := map[string]*string{
		"locale":    &cfg.Locale,
		"format":    &cfg.Format,
		"log-level": &cfg.LogLevel,
		"db":        &cfg.DBPath,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logging.New(cfg.LoggingConfig())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; logging to stderr\n", err)
		log = logging.NewDefault()
	}

	opts := []textmetrics.AnalyzerOpt{textmetrics.UsingWordsPerMinute(cfg.WordsPerMinute)}
	if cfg.Splitter == config.SplitterPunkt {
		splitter, err := textmetrics.NewPunktSplitter()
		if err != nil {
			return fmt.Errorf("load punkt sentence model: %w", err)
		}
		opts = append(opts, textmetrics.UsingSentenceSplitter(splitter))
	}

	a.cfg = cfg
	a.log = log.Named("textmetrics")
	a.analyzer = textmetrics.NewAnalyzer(opts...)

	a.log.Debug("configuration loaded",
		zap.String("config", cfgPath),
		zap.String("locale", cfg.Locale),
		zap.String("format", cfg.Format),
		zap.String("splitter", cfg.Splitter),
		zap.Int("wordsPerMinute", cfg.WordsPerMinute),
	)
	return nil
}

// openDrafts opens the draft store on first use.
func (a *app) openDrafts() (*drafts.SQLiteStore, error) {
	if a.store != nil {
		return a.store, nil
	}
	if a.cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(a.cfg.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create drafts directory: %w", err)
		}
	}
	store, err := drafts.NewSQLiteStore(a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	a.log.Debug("drafts store opened", zap.String("path", a.cfg.DBPath))
	a.store = store
	return store, nil
}

func (a *app) locale() string {
	return string(a.cfg.Language())
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil && a.log != nil {
			a.log.Warn("failed to close drafts store", zap.Error(err))
		}
		a.store = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
