// Package equipment holds the equipment set: named slots that each carry at most one
// item, the slot compatibility rules and the transfers between slots and inventory grids.
package equipment

// Slot identifies an equipment attachment point.
type Slot string

const (
	// Head
	SlotHelmet   Slot = "helmet"
	SlotFace     Slot = "face"
	SlotNecklace Slot = "necklace"
	SlotEarrings Slot = "earrings"

	// Body
	SlotArmor    Slot = "armor"
	SlotBackpack Slot = "backpack"
	SlotCape     Slot = "cape"
	SlotBoots    Slot = "boots"
	SlotBelt     Slot = "belt"
	SlotPouch    Slot = "pouch"

	// Rings
	SlotLeftRing  Slot = "left_ring"
	SlotRightRing Slot = "right_ring"

	// Hands
	SlotMainHand Slot = "main_hand"
	SlotOffHand  Slot = "off_hand"
	SlotGloves   Slot = "gloves"
)

// slotOrder is the fixed enumeration order; auto-equip tries slots in this order.
var slotOrder = []Slot{
	SlotHelmet, SlotFace, SlotNecklace, SlotEarrings,
	SlotArmor, SlotBackpack, SlotCape, SlotBoots, SlotBelt, SlotPouch,
	SlotLeftRing, SlotRightRing,
	SlotMainHand, SlotOffHand, SlotGloves,
}

// slotDisplayNames maps every slot to its human-readable label.
var slotDisplayNames = map[Slot]string{
	SlotHelmet:    "Helmet",
	SlotFace:      "Face",
	SlotNecklace:  "Necklace",
	SlotEarrings:  "Earrings",
	SlotArmor:     "Armor",
	SlotBackpack:  "Backpack",
	SlotCape:      "Cape",
	SlotBoots:     "Boots",
	SlotBelt:      "Belt",
	SlotPouch:     "Pouch",
	SlotLeftRing:  "Left Ring",
	SlotRightRing: "Right Ring",
	SlotMainHand:  "Main Hand",
	SlotOffHand:   "Off Hand",
	SlotGloves:    "Gloves",
}

// AllSlots returns every slot in enumeration order.
//
// Postcondition: returned slice is a copy.
func AllSlots() []Slot {
	out := make([]Slot, len(slotOrder))
	copy(out, slotOrder)
	return out
}

// Valid reports whether s is a defined slot.
func (s Slot) Valid() bool {
	_, ok := slotDisplayNames[s]
	return ok
}

// DisplayName returns the human-readable label, or the raw value when unknown.
func (s Slot) DisplayName() string {
	if label, ok := slotDisplayNames[s]; ok {
		return label
	}
	return string(s)
}
