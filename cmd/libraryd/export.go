// The export and convert commands write JSON snapshots of the store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweta-r4/library-api/internal/export"
)

var flagExportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every table to JSON files with a metadata envelope",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		outDir := flagExportDir
		if outDir == "" {
			outDir = cfg.DataDir
		}

		results, err := export.Tables(store, cfg.Backend, outDir)
		if err != nil {
			return fmt.Errorf("export tables: %w", err)
		}
		for _, res := range results {
			fmt.Printf("Exported %d records from %q to %s\n", res.Count, res.Table, res.Path)
		}
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the flat text files to catalog JSON files",
	Long: `Read books.txt, readers.txt, and staff.txt from the data directory
and write books.json, readers.json, and staff.json next to them in the wide
catalog record format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		results, err := export.Convert(dataDir)
		if err != nil {
			return fmt.Errorf("convert: %w", err)
		}
		for _, res := range results {
			fmt.Printf("Converted %d %s records to %s\n", res.Count, res.Table, res.Path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDir, "out", "", "output directory (default: data directory)")
}
