package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/pedrocgb/Medieval-Project/internal/game/equipment"
	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

func TestSet_EquipIntoEmptySlot(t *testing.T) {
	s := equipment.NewSet(zaptest.NewLogger(t))
	g := newGrid(t, 4, 4)
	sword := gear("sword", 1, 3, inventory.TagWeapon)
	require.True(t, g.TryPlace(sword, 0, 0))

	require.True(t, s.TryEquipFromInventory(equipment.SlotMainHand, sword, g))
	assert.Same(t, sword, s.Get(equipment.SlotMainHand))
	assert.Nil(t, sword.Owner())
	assert.Empty(t, g.Items())

	slot, ok := s.SlotOf(sword)
	assert.True(t, ok)
	assert.Equal(t, equipment.SlotMainHand, slot)
}

func TestSet_EquipRejections(t *testing.T) {
	s := equipment.NewSet(nil)
	g := newGrid(t, 4, 4)
	other := newGrid(t, 4, 4)
	helmet := gear("helmet", 2, 2, inventory.TagHelmet)
	require.True(t, g.TryPlace(helmet, 0, 0))

	assert.False(t, s.TryEquipFromInventory(equipment.SlotMainHand, helmet, g), "rule mismatch")
	assert.False(t, s.TryEquipFromInventory(equipment.SlotHelmet, helmet, other), "held by a different grid")
	assert.False(t, s.TryEquipFromInventory(equipment.SlotHelmet, helmet, nil))
	assert.Same(t, g, helmet.Owner())
	assert.Equal(t, 0, s.Len())
}

func TestSet_SwapPlacesPreviousOccupantInGrid(t *testing.T) {
	s := equipment.NewSet(nil)
	g := newGrid(t, 3, 3)
	sword := gear("sword", 1, 3, inventory.TagWeapon)
	axe := gear("axe", 1, 2, inventory.TagWeapon)
	require.True(t, g.TryPlace(sword, 0, 0))
	require.True(t, s.TryEquipFromInventory(equipment.SlotMainHand, sword, g))
	require.True(t, g.TryPlace(axe, 2, 0))

	require.True(t, s.TryEquipFromInventory(equipment.SlotMainHand, axe, g))
	assert.Same(t, axe, s.Get(equipment.SlotMainHand))
	assert.Nil(t, axe.Owner())
	assert.Same(t, g, sword.Owner())
	assert.Equal(t, [2]int{0, 0}, [2]int{sword.X(), sword.Y()})
	assert.NoError(t, g.CheckConsistency())
}

func TestSet_SwapFailsWhenGridIsFull(t *testing.T) {
	s := equipment.NewSet(nil)
	g := newGrid(t, 3, 3)
	sword := gear("sword", 1, 1, inventory.TagWeapon)
	require.True(t, s.TryEquipDirect(equipment.SlotMainHand, sword))

	axe := gear("axe", 1, 1, inventory.TagWeapon)
	require.True(t, g.TryPlace(axe, 1, 1))
	fill(t, g)
	before := g.Items()

	assert.False(t, s.TryEquipFromInventory(equipment.SlotMainHand, axe, g))
	assert.Same(t, sword, s.Get(equipment.SlotMainHand))
	assert.Nil(t, sword.Owner())
	assert.Same(t, g, axe.Owner())
	assert.Equal(t, [2]int{1, 1}, [2]int{axe.X(), axe.Y()})
	assert.Equal(t, before, g.Items())
}

func TestSet_TryEquipDirect(t *testing.T) {
	s := equipment.NewSet(nil)
	ring := gear("ring", 1, 1, inventory.TagRing)
	require.True(t, s.TryEquipDirect(equipment.SlotLeftRing, ring))
	assert.False(t, s.TryEquipDirect(equipment.SlotRightRing, ring), "already equipped")

	other := gear("ring", 1, 1, inventory.TagRing)
	assert.False(t, s.TryEquipDirect(equipment.SlotLeftRing, other), "slot occupied")
	assert.False(t, s.TryEquipDirect(equipment.SlotHelmet, other), "rule mismatch")

	g := newGrid(t, 1, 1)
	require.True(t, g.TryPlace(other, 0, 0))
	assert.False(t, s.TryEquipDirect(equipment.SlotRightRing, other), "still in a grid")
	assert.Equal(t, 1, s.Len())
}

func TestSet_UnequipAndForceSet(t *testing.T) {
	s := equipment.NewSet(nil)
	cape := gear("cape", 2, 2, inventory.TagCape)
	assert.Nil(t, s.Unequip(equipment.SlotCape))

	require.True(t, s.ForceSet(equipment.SlotCape, cape))
	assert.Same(t, cape, s.Get(equipment.SlotCape))
	assert.Same(t, cape, s.Unequip(equipment.SlotCape))
	assert.Nil(t, s.Get(equipment.SlotCape))

	require.True(t, s.ForceSet(equipment.SlotCape, cape))
	require.True(t, s.ForceSet(equipment.SlotCape, nil))
	assert.Equal(t, 0, s.Len())
}

func TestSet_ForceSetRefusesItemInGrid(t *testing.T) {
	s := equipment.NewSet(nil)
	g := newGrid(t, 2, 2)
	cape := gear("cape", 2, 2, inventory.TagCape)
	require.True(t, g.TryPlace(cape, 0, 0))

	assert.False(t, s.ForceSet(equipment.SlotCape, cape))
	assert.Nil(t, s.Get(equipment.SlotCape))
	assert.Same(t, g, cape.Owner())
}

func TestSet_SwapRollsBackWhenDisplacedItemCannotBePlaced(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := equipment.NewSet(zap.New(core))
	g := newGrid(t, 3, 3)
	stash := newGrid(t, 2, 2)
	old := gear("old_helmet", 2, 2, inventory.TagHelmet)
	fresh := gear("new_helmet", 1, 1, inventory.TagHelmet)
	require.True(t, g.TryPlace(old, 0, 0))
	require.True(t, s.TryEquipFromInventory(equipment.SlotHelmet, old, g))
	require.True(t, g.TryPlace(fresh, 2, 2))

	// The equipped helmet ends up in another grid behind the set's back.
	require.True(t, stash.TryPlace(old, 0, 0))

	assert.False(t, s.TryEquipFromInventory(equipment.SlotHelmet, fresh, g))
	assert.Same(t, old, s.Get(equipment.SlotHelmet))
	assert.Same(t, g, fresh.Owner())
	assert.Equal(t, [2]int{2, 2}, [2]int{fresh.X(), fresh.Y()})
	assert.Equal(t, 1, logs.FilterMessage("equipment: displaced item did not fit where space was found").Len())
	assert.Equal(t, 0, logs.FilterMessage("equipment: failed to restore item to its inventory position").Len())
	assert.NoError(t, g.CheckConsistency())
}

func TestSet_EquippedInSlotOrder(t *testing.T) {
	s := equipment.NewSet(nil)
	gloves := gear("gloves", 1, 1, inventory.TagGloves)
	helmet := gear("helmet", 2, 2, inventory.TagHelmet)
	boots := gear("boots", 2, 2, inventory.TagBoots)
	require.True(t, s.TryEquipDirect(equipment.SlotGloves, gloves))
	require.True(t, s.TryEquipDirect(equipment.SlotHelmet, helmet))
	require.True(t, s.TryEquipDirect(equipment.SlotBoots, boots))

	assert.Equal(t, []equipment.Equipped{
		{Slot: equipment.SlotHelmet, Item: helmet},
		{Slot: equipment.SlotBoots, Item: boots},
		{Slot: equipment.SlotGloves, Item: gloves},
	}, s.Equipped())
}

func TestProperty_SwapAtomicity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.IntRange(1, 5).Draw(rt, "w")
		h := rapid.IntRange(1, 5).Draw(rt, "h")
		g := newGrid(t, w, h)
		s := equipment.NewSet(nil)

		oldW := rapid.IntRange(1, 3).Draw(rt, "oldW")
		oldH := rapid.IntRange(1, 3).Draw(rt, "oldH")
		old := gear("old", oldW, oldH, inventory.TagWeapon)
		require.True(rt, s.TryEquipDirect(equipment.SlotMainHand, old))

		incoming := gear("new", 1, 1, inventory.TagWeapon)
		x := rapid.IntRange(0, w-1).Draw(rt, "x")
		y := rapid.IntRange(0, h-1).Draw(rt, "y")
		require.True(rt, g.TryPlace(incoming, x, y))
		fillers := rapid.IntRange(0, w*h).Draw(rt, "fillers")
		for i := 0; i < fillers; i++ {
			g.TryAutoPlace(gear("filler", 1, 1))
		}

		if s.TryEquipFromInventory(equipment.SlotMainHand, incoming, g) {
			if s.Get(equipment.SlotMainHand) != incoming || incoming.Owner() != nil || old.Owner() != g {
				rt.Fatalf("successful swap left inconsistent membership")
			}
		} else {
			if s.Get(equipment.SlotMainHand) != old || old.Owner() != nil {
				rt.Fatalf("failed swap moved the equipped item")
			}
			if incoming.Owner() != g || incoming.X() != x || incoming.Y() != y {
				rt.Fatalf("failed swap moved the incoming item")
			}
		}
		if err := g.CheckConsistency(); err != nil {
			rt.Fatalf("grid inconsistent: %v", err)
		}
	})
}
