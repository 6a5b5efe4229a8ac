package equipment

import "github.com/pedrocgb/Medieval-Project/internal/game/inventory"

// slotAllowedTags is the fixed slot compatibility table.
var slotAllowedTags = map[Slot][]inventory.EquipTag{
	SlotHelmet:   {inventory.TagHelmet},
	SlotFace:     {inventory.TagFace},
	SlotNecklace: {inventory.TagNecklace},
	SlotEarrings: {inventory.TagEarrings},

	SlotArmor:    {inventory.TagArmor},
	SlotBackpack: {inventory.TagBackpack},
	SlotCape:     {inventory.TagCape},
	SlotBoots:    {inventory.TagBoots},

	SlotMainHand: {inventory.TagWeapon},
	SlotOffHand:  {inventory.TagWeapon, inventory.TagShield},
	SlotGloves:   {inventory.TagGloves},

	SlotBelt:  {inventory.TagBelt},
	SlotPouch: {inventory.TagPouch},

	SlotLeftRing:  {inventory.TagRing},
	SlotRightRing: {inventory.TagRing},
}

// CanEquip reports whether def may go into slot: def must be equipable, carry at
// least one tag, and share a tag with the slot's allowed set.
func CanEquip(slot Slot, def *inventory.ItemDef) bool {
	if def == nil || !def.Equipable || len(def.EquipTags) == 0 {
		return false
	}
	for _, allowed := range slotAllowedTags[slot] {
		if def.HasTag(allowed) {
			return true
		}
	}
	return false
}

// AllowedTags returns the tags slot accepts.
//
// Postcondition: returned slice is a copy; nil for an unknown slot.
func AllowedTags(slot Slot) []inventory.EquipTag {
	tags, ok := slotAllowedTags[slot]
	if !ok {
		return nil
	}
	out := make([]inventory.EquipTag, len(tags))
	copy(out, tags)
	return out
}
