// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for rpy-generator, which converts plain
// text screenplay files into .rpy script files and writes a main script
// with a paginated jump menu over every chapter.
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

// rootCmd is the base command for the rpy-generator CLI.
var rootCmd = &cobra.Command{
	Use:   "rpy-generator",
	Short: "Read plain text screenplay files and generate .rpy script files",
	Long: `rpy-generator walks an input directory for .txt screenplay files. Each
"Speaker: phrase" line becomes a dialogue statement; lines without a speaker
become narration. Every source file is written as one labeled .rpy chapter,
and a main script declares the speakers and links to every chapter through
paginated jump menus.

Existing output files are never overwritten.`,
	Example:       "  rpy-generator -i screenplay/ -o game/ -m my_story -c characters.yaml",
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
		return settings.BindFlags(v, cmd.Flags(), settings.Generator)
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("RPY generator {{.Version}}\n" + projectURL + "\n")

	f := rootCmd.Flags()
	f.SetNormalizeFunc(settings.NormalizeFlagName)
	f.StringP(settings.FlagInput, "i", "", "input directory path")
	f.StringP(settings.FlagOutput, "o", "", "output directory path (default: current directory)")
	f.StringP(settings.FlagMainLabel, "m", types.DefaultMainLabel, "main label name")
	f.IntP(settings.FlagPageSize, "s", types.DefaultPageSize, "max labels per menu page")
	f.StringP(settings.FlagConfig, "c", "", "YAML file mapping character names to identifiers")
	f.String(settings.FlagSettings, "", "settings file (default: ./rpy-tools.yaml or ~/.config/rpy-tools/rpy-tools.yaml)")
	f.String(settings.FlagLogLevel, "info", "log level: debug, info, warn, error")
	f.String(settings.FlagLogFormat, "text", "log format: text or json")
	f.String(settings.FlagLogFile, "", "also write JSON logs to this file (rotated)")
	_ = rootCmd.MarkFlagRequired(settings.FlagInput)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error generating RPY files:", err)
		stop()
		os.Exit(1)
	}
}
