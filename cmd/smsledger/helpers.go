package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nimesh4992/Stack-sub000/internal/banks"
	"github.com/nimesh4992/Stack-sub000/internal/classification"
	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/config"
	"github.com/nimesh4992/Stack-sub000/internal/parser"
	"github.com/nimesh4992/Stack-sub000/internal/storage"
)

// buildParser compiles the built-in tables plus any extension files named in
// the config.
func buildParser(cfg *config.Config) (*parser.Parser, error) {
	sets := banks.DefaultPatternSets()
	if cfg.PatternsFile != "" {
		ext, err := banks.LoadPatterns(cfg.PatternsFile)
		if err != nil {
			return nil, common.NewUserError("could not load bank patterns from "+cfg.PatternsFile, err)
		}
		sets = banks.Merge(sets, ext)
	}

	registry, err := banks.NewRegistry(sets, cfg.RegistryOptions()...)
	if err != nil {
		return nil, common.NewUserError("bank patterns are invalid", err)
	}

	keywords := classification.DefaultKeywords()
	if cfg.KeywordsFile != "" {
		ext, err := classification.LoadKeywords(cfg.KeywordsFile)
		if err != nil {
			return nil, common.NewUserError("could not load keywords from "+cfg.KeywordsFile, err)
		}
		keywords = classification.WithExtensions(ext)
	}

	classifier, err := classification.NewClassifier(keywords)
	if err != nil {
		return nil, common.NewUserError("merchant keywords are invalid", err)
	}

	return parser.New(registry, classifier)
}

// initStorage opens the ledger and brings its schema up to date.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, common.NewUserError("could not open ledger at "+cfg.DatabasePath, err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func closeStorage(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		common.LogError(err, "Failed to close database", nil)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
