// invsim is a command-line harness for the grid inventory engine.
//
// Usage:
//
//	invsim run [script.lua...]  - Build the backpack and stash, run scenario scripts, print the result
//	invsim catalog              - List the item catalog
//	invsim validate             - Load and check configuration and content
//
// Global flags:
//
//	--config <path>     - Configuration file (default: configs/dev.yaml)
//	--items-dir <dir>   - Override content.items_dir
//	--starting <path>   - Override content.starting_items
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pedrocgb/Medieval-Project/internal/config"
	"github.com/pedrocgb/Medieval-Project/internal/observability"
)

var (
	flagConfig   string
	flagItemsDir string
	flagStarting string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "invsim",
	Short:        "Grid inventory simulator",
	SilenceUsage: true,
	Long: `invsim loads an item catalog, builds a backpack and a stash from the
configuration and runs Lua scenario scripts against them.

Examples:
  invsim catalog
  invsim run content/scripts/loadout.lua
  invsim validate --config configs/dev.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "configs/dev.yaml", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagItemsDir, "items-dir", "", "override content.items_dir")
	rootCmd.PersistentFlags().StringVar(&flagStarting, "starting", "", "override content.starting_items")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup() (config.Config, *zap.Logger) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if flagItemsDir != "" {
		cfg.Content.ItemsDir = flagItemsDir
	}
	if flagStarting != "" {
		cfg.Content.StartingItems = flagStarting
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	return cfg, logger
}
