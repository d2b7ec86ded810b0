// Root command for the libraryd CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/sweta-r4/library-api/internal/paths"
	"github.com/sweta-r4/library-api/pkg/library"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configBackend    string
	configDataDir    string
	configListenAddr string
)

var rootCmd = &cobra.Command{
	Use:     "libraryd",
	Short:   "Libraryd is a small library-management REST backend",
	Version: library.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configListenAddr = cfg.GetString(cfgKeyListenAddr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.library-data)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite or flatfile (default from config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(convertCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > LIBRARY_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > LIBRARY_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveBackend returns the backend name, flag over config.
func resolveBackend() string {
	if flagBackend != "" {
		return flagBackend
	}
	return configBackend
}
