// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/rpy-tools/internal/convert"
	"github.com/pdiddy/rpy-tools/internal/logging"
	"github.com/pdiddy/rpy-tools/internal/report"
	"github.com/pdiddy/rpy-tools/internal/settings"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := logging.New(settings.LogConfig(v), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("tool", "rpy-generator")

	b, err := convert.Generate(cmd.Context(), settings.GeneratorConfig(v), logger)
	if err != nil {
		logger.Error("error generating RPY files", "err", err)
		return err
	}

	s := report.Summary{Title: "RPY generator"}
	s.Add("Processed .txt files", b.Processed, false)
	s.Add("Failed files", b.Failed, true)
	s.Add("Characters found", b.Characters.Len(), false)
	s.Add("Total script lines", b.Lines, false)
	if b.MainFile != "" {
		s.AddText("Main script", b.MainFile)
	}
	s.Print(cmd.OutOrStdout())
	return nil
}
