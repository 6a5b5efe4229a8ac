package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

func rectDef(id string, w, h int) *inventory.ItemDef {
	return &inventory.ItemDef{ID: id, Name: id, Width: w, Height: h, MaxStack: 1}
}

func maskDef(id string, w, h int, mask ...bool) *inventory.ItemDef {
	d := rectDef(id, w, h)
	d.ShapeMask = mask
	return d
}

func stackDef(id string, maxStack int) *inventory.ItemDef {
	return &inventory.ItemDef{ID: id, Name: id, Width: 1, Height: 1, Stackable: true, MaxStack: maxStack}
}

// lShape occupies (0,0), (0,1) and (1,1) of a 2x2 box.
func lShape() *inventory.ItemDef {
	return maskDef("l_shape", 2, 2, true, false, true, true)
}

func newGrid(t testing.TB, w, h int) *inventory.Grid {
	t.Helper()
	g, err := inventory.NewGrid(w, h, nil)
	require.NoError(t, err)
	return g
}

func newObservedGrid(t testing.TB, w, h int) (*inventory.Grid, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	g, err := inventory.NewGrid(w, h, zap.New(core))
	require.NoError(t, err)
	return g, logs
}

func cellsOf(g *inventory.Grid, item *inventory.ItemInstance) []inventory.Cell {
	var out []inventory.Cell
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.GetItemAt(x, y) == item {
				out = append(out, inventory.Cell{X: x, Y: y})
			}
		}
	}
	return out
}

func snapshot(g *inventory.Grid) []*inventory.ItemInstance {
	out := make([]*inventory.ItemInstance, 0, g.Width()*g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out = append(out, g.GetItemAt(x, y))
		}
	}
	return out
}
