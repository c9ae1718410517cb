// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/rpy-tools/internal/catalog"
	"github.com/pdiddy/rpy-tools/internal/index"
	"github.com/pdiddy/rpy-tools/internal/logging"
	"github.com/pdiddy/rpy-tools/internal/report"
	"github.com/pdiddy/rpy-tools/internal/settings"
)

func runIndex(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := logging.New(settings.LogConfig(v), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("tool", "rpy-indexer")

	cfg := settings.IndexerConfig(v)

	var rec index.Recorder
	if cfg.CatalogPath != "" {
		store, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			logger.Error("error opening catalog", "path", cfg.CatalogPath, "err", err)
			return err
		}
		defer store.Close()
		rec = store
	}

	b, err := index.Index(cmd.Context(), cfg, rec, logger)
	if err != nil {
		logger.Error("error indexing RPY files", "err", err)
		return err
	}

	s := report.Summary{Title: "RPY indexer"}
	s.Add("Indexed .rpy files", len(b.Roots), false)
	s.Add("Files without labels", b.Skipped, false)
	s.Add("Failed files", b.Failed, true)
	s.Add("Total labels", b.Labels, false)
	if b.MainFile != "" {
		s.AddText("Main index", b.MainFile)
	}
	if cfg.CatalogPath != "" {
		s.AddText("Catalog", cfg.CatalogPath)
	}
	s.Print(cmd.OutOrStdout())
	return nil
}
