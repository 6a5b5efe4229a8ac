package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configuration and content",
	Long: `Loads the configuration, the item catalog and the starting items and places
them into a fresh backpack. Exits non-zero on the first problem.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, logger := setup()
	defer func() { _ = logger.Sync() }()

	ws, err := buildWorkspace(cfg, logger)
	if err != nil {
		return err
	}
	backpack, _ := ws.Grid(backpackGrid)
	for _, name := range ws.GridNames() {
		g, _ := ws.Grid(name)
		if err := g.CheckConsistency(); err != nil {
			return fmt.Errorf("grid %s: %w", name, err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d items in catalog, %d starting stacks in backpack\n",
		ws.Registry().Len(), len(backpack.Items()))
	return nil
}
