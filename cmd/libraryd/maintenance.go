// Maintenance commands: init, clear, version.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweta-r4/library-api/pkg/library"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the storage backend",
	Long:  `Create the data directory and the backing schema or files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := store.Init(); err != nil {
			return fmt.Errorf("init store: %w", err)
		}
		fmt.Printf("Initialized %s store in %s\n", cfg.Backend, cfg.DataDir)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every record from every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := store.Clear(); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
		fmt.Printf("Cleared %s store in %s\n", cfg.Backend, cfg.DataDir)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("libraryd v" + library.Version)
	},
}
