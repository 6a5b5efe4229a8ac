package inventory

import "strings"

const renderGlyphs = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Render draws the grid as text: one line per row, '.' for empty cells and one glyph
// per item in placement order (a-z, then A-Z, then '#').
func Render(g *Grid) string {
	glyph := make(map[*ItemInstance]byte, len(g.items))
	for i, item := range g.items {
		if i < len(renderGlyphs) {
			glyph[item] = renderGlyphs[i]
		} else {
			glyph[item] = '#'
		}
	}

	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			item := g.cells[g.index(x, y)]
			if item == nil {
				b.WriteByte('.')
				continue
			}
			b.WriteByte(glyph[item])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
