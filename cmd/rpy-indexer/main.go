// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for rpy-indexer, which collects label
// declarations from .rpy files and builds jump menus over them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rpy-tools/internal/settings"
	"github.com/pdiddy/rpy-tools/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const projectURL = "https://github.com/Coobik/rpy-tools"

// v holds the resolved settings for this process.
var v = settings.New()

// rootCmd is the base command for the rpy-indexer CLI.
var rootCmd = &cobra.Command{
	Use:   "rpy-indexer",
	Short: "Collect labels from .rpy files and build jump menus",
	Long: `rpy-indexer walks an input directory for .rpy files and collects every
top-level label declaration. For each file with labels it writes
index_<file>.rpy, a paginated jump menu over those labels that links back to
the main index; the main index links to every per-file index.

With --catalog, every label found is also recorded in a SQLite catalog that
the search and export subcommands read.`,
	Example:       "  rpy-indexer -i game/ -o game/index -s 15 --catalog labels.db",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString(settings.FlagSettings)
		used, err := settings.ReadFile(v, path)
		if err != nil {
			return err
		}
		if used != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "Using settings file:", used)
		}
		return settings.BindFlags(v, cmd.Flags(), settings.Indexer)
	},
	RunE: runIndex,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("RPY indexer {{.Version}}\n" + projectURL + "\n")

	// Shared flags, inherited by the catalog subcommands.
	pf := rootCmd.PersistentFlags()
	pf.SetNormalizeFunc(settings.NormalizeFlagName)
	pf.String(settings.FlagCatalog, "", "SQLite catalog recording every indexed label")
	pf.String(settings.FlagSettings, "", "settings file (default: ./rpy-tools.yaml or ~/.config/rpy-tools/rpy-tools.yaml)")
	pf.String(settings.FlagLogLevel, "info", "log level: debug, info, warn, error")
	pf.String(settings.FlagLogFormat, "text", "log format: text or json")
	pf.String(settings.FlagLogFile, "", "also write JSON logs to this file (rotated)")

	f := rootCmd.Flags()
	f.SetNormalizeFunc(settings.NormalizeFlagName)
	f.StringP(settings.FlagInput, "i", "", "input directory path")
	f.StringP(settings.FlagOutput, "o", "", "output directory path (default: current directory)")
	f.StringP(settings.FlagMainLabel, "m", types.DefaultIndexLabel, "main label name")
	f.IntP(settings.FlagPageSize, "s", types.DefaultPageSize, "max labels per menu page")
	_ = rootCmd.MarkFlagRequired(settings.FlagInput)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error indexing RPY files:", err)
		stop()
		os.Exit(1)
	}
}
