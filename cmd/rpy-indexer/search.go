// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rpy-tools/internal/catalog"
	"github.com/pdiddy/rpy-tools/internal/settings"
)

var errNoCatalog = errors.New("no catalog: pass --catalog or set indexer.catalog")

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find labels in the catalog",
	Long: `Search prints every catalogued label containing the query, ignoring case,
together with the script that declares it and that script's index label.`,
	Example: "  rpy-indexer search --catalog labels.db chapter",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSearch,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the catalog as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	searchCmd.Flags().Int("limit", 20, "maximum number of matches")
	searchCmd.Flags().Bool("json", false, "print matches as JSON")
	exportCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(searchCmd, exportCmd)
}

func openCatalog() (*catalog.Store, error) {
	path := settings.IndexerConfig(v).CatalogPath
	if path == "" {
		return nil, errNoCatalog
	}
	return catalog.Open(path)
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	matches, err := store.Search(cmd.Context(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}
	if len(matches) == 0 {
		fmt.Fprintln(out, "No matching labels.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tINDEX\tSCRIPT")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Label, m.Root, m.Script)
	}
	return tw.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		return store.ExportYAML(cmd.Context(), cmd.OutOrStdout())
	case "json":
		return store.ExportJSON(cmd.Context(), cmd.OutOrStdout())
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
