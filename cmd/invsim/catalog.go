package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the item catalog",
	Long:  `Loads every item definition from the items directory and prints one line per item.`,
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, logger := setup()
	defer func() { _ = logger.Sync() }()

	reg := inventory.NewRegistry()
	if _, err := reg.LoadDir(cfg.Content.ItemsDir); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	defs := reg.All()
	if len(defs) == 0 {
		fmt.Fprintln(out, "No items defined.")
		return nil
	}

	maxIDLen := 2
	for _, d := range defs {
		maxIDLen = max(maxIDLen, len(d.ID))
	}
	fmt.Fprintf(out, "  %-*s  %-5s  %-9s  %-5s  %s\n", maxIDLen, "ID", "Size", "Rarity", "Stack", "Tags")
	for _, d := range defs {
		fmt.Fprintf(out, "  %-*s  %-5s  %-9s  %-5d  %s\n",
			maxIDLen, d.ID,
			fmt.Sprintf("%dx%d", d.Width, d.Height),
			rarityStyle(d.Rarity).Render(string(rarityOrCommon(d.Rarity))),
			d.MaxStack,
			joinTags(d.EquipTags),
		)
	}
	return nil
}

func rarityOrCommon(r inventory.Rarity) inventory.Rarity {
	if r == "" {
		return inventory.RarityCommon
	}
	return r
}

func joinTags(tags []inventory.EquipTag) string {
	if len(tags) == 0 {
		return "-"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
