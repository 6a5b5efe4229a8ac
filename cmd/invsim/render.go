package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

// rarityStyles colours item glyphs by loot tier.
var rarityStyles = map[inventory.Rarity]lipgloss.Style{
	inventory.RarityCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	inventory.RarityRare:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	inventory.RarityEpic:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	inventory.RarityLegendary: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	inventory.RarityUnique:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

var (
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func rarityStyle(r inventory.Rarity) lipgloss.Style {
	if s, ok := rarityStyles[r]; ok {
		return s
	}
	return rarityStyles[inventory.RarityCommon]
}

// renderStyled draws the same glyph layout as inventory.Render, colouring each
// glyph by its item's rarity and framing the grid.
func renderStyled(g *inventory.Grid) string {
	plain := strings.Split(strings.TrimSuffix(inventory.Render(g), "\n"), "\n")

	var sb strings.Builder
	for y, row := range plain {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < len(row); x++ {
			item := g.GetItemAt(x, y)
			if item == nil {
				sb.WriteString(emptyStyle.Render(string(row[x])))
				continue
			}
			sb.WriteString(rarityStyle(item.Def.Rarity).Render(string(row[x])))
		}
	}
	return frameStyle.Render(sb.String())
}
