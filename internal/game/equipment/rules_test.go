package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedrocgb/Medieval-Project/internal/game/equipment"
	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

func TestCanEquip(t *testing.T) {
	tests := []struct {
		slot equipment.Slot
		tag  inventory.EquipTag
		want bool
	}{
		{equipment.SlotHelmet, inventory.TagHelmet, true},
		{equipment.SlotHelmet, inventory.TagArmor, false},
		{equipment.SlotFace, inventory.TagFace, true},
		{equipment.SlotNecklace, inventory.TagNecklace, true},
		{equipment.SlotEarrings, inventory.TagEarrings, true},
		{equipment.SlotArmor, inventory.TagArmor, true},
		{equipment.SlotBackpack, inventory.TagBackpack, true},
		{equipment.SlotCape, inventory.TagCape, true},
		{equipment.SlotBoots, inventory.TagBoots, true},
		{equipment.SlotBelt, inventory.TagBelt, true},
		{equipment.SlotPouch, inventory.TagPouch, true},
		{equipment.SlotLeftRing, inventory.TagRing, true},
		{equipment.SlotRightRing, inventory.TagRing, true},
		{equipment.SlotMainHand, inventory.TagWeapon, true},
		{equipment.SlotMainHand, inventory.TagShield, false},
		{equipment.SlotOffHand, inventory.TagWeapon, true},
		{equipment.SlotOffHand, inventory.TagShield, true},
		{equipment.SlotGloves, inventory.TagGloves, true},
		{equipment.SlotGloves, inventory.TagRing, false},
	}
	for _, tt := range tests {
		def := gearDef("thing", 1, 1, tt.tag)
		assert.Equal(t, tt.want, equipment.CanEquip(tt.slot, def), "%s <- %s", tt.slot, tt.tag)
	}
}

func TestCanEquip_RequiresEquipableWithTags(t *testing.T) {
	def := gearDef("sword", 1, 3, inventory.TagWeapon)
	def.Equipable = false
	assert.False(t, equipment.CanEquip(equipment.SlotMainHand, def))

	noTags := gearDef("stick", 1, 3)
	noTags.Equipable = true
	assert.False(t, equipment.CanEquip(equipment.SlotMainHand, noTags))

	assert.False(t, equipment.CanEquip(equipment.SlotMainHand, nil))
	assert.False(t, equipment.CanEquip("tail", gearDef("sword", 1, 3, inventory.TagWeapon)))
}

func TestCanEquip_AnyMatchingTag(t *testing.T) {
	def := gearDef("buckler_blade", 1, 2, inventory.TagShield, inventory.TagWeapon)
	assert.True(t, equipment.CanEquip(equipment.SlotMainHand, def))
	assert.True(t, equipment.CanEquip(equipment.SlotOffHand, def))
}

func TestAllowedTags(t *testing.T) {
	assert.Equal(t, []inventory.EquipTag{inventory.TagWeapon, inventory.TagShield}, equipment.AllowedTags(equipment.SlotOffHand))
	assert.Nil(t, equipment.AllowedTags("tail"))

	tags := equipment.AllowedTags(equipment.SlotHelmet)
	tags[0] = inventory.TagBoots
	assert.Equal(t, []inventory.EquipTag{inventory.TagHelmet}, equipment.AllowedTags(equipment.SlotHelmet))
}

func TestSlots(t *testing.T) {
	all := equipment.AllSlots()
	assert.Len(t, all, 15)
	assert.Equal(t, equipment.SlotHelmet, all[0])
	assert.Equal(t, equipment.SlotGloves, all[len(all)-1])
	for _, s := range all {
		assert.True(t, s.Valid(), s)
		assert.NotEmpty(t, equipment.AllowedTags(s), s)
	}
	assert.False(t, equipment.Slot("tail").Valid())
	assert.Equal(t, "Main Hand", equipment.SlotMainHand.DisplayName())
	assert.Equal(t, "tail", equipment.Slot("tail").DisplayName())
}
