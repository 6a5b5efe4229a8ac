package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

func gearDef(id string, w, h int, tags ...inventory.EquipTag) *inventory.ItemDef {
	return &inventory.ItemDef{
		ID:        id,
		Name:      id,
		Width:     w,
		Height:    h,
		MaxStack:  1,
		Equipable: len(tags) > 0,
		EquipTags: tags,
	}
}

func gear(id string, w, h int, tags ...inventory.EquipTag) *inventory.ItemInstance {
	return inventory.NewItemInstance(gearDef(id, w, h, tags...), 1)
}

func newGrid(t testing.TB, w, h int) *inventory.Grid {
	t.Helper()
	g, err := inventory.NewGrid(w, h, nil)
	require.NoError(t, err)
	return g
}

// fill occupies every free cell of g with 1x1 filler items.
func fill(t testing.TB, g *inventory.Grid) {
	t.Helper()
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			if g.GetItemAt(x, y) == nil {
				require.True(t, g.TryPlace(gear("filler", 1, 1), x, y))
			}
		}
	}
}
