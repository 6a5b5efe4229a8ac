package inventory

// EquipTag classifies what an equipable item is, for slot compatibility rules.
type EquipTag string

const (
	// Head
	TagHelmet   EquipTag = "helmet"
	TagNecklace EquipTag = "necklace"
	TagEarrings EquipTag = "earrings"
	TagFace     EquipTag = "face"

	// Body
	TagArmor    EquipTag = "armor"
	TagBackpack EquipTag = "backpack"
	TagCape     EquipTag = "cape"
	TagBoots    EquipTag = "boots"

	// Weapons and hands
	TagWeapon EquipTag = "weapon"
	TagShield EquipTag = "shield"
	TagGloves EquipTag = "gloves"

	// Jewelry
	TagRing EquipTag = "ring"

	// Belt
	TagBelt  EquipTag = "belt"
	TagPouch EquipTag = "pouch"
)

var validTags = map[EquipTag]struct{}{
	TagHelmet: {}, TagNecklace: {}, TagEarrings: {}, TagFace: {},
	TagArmor: {}, TagBackpack: {}, TagCape: {}, TagBoots: {},
	TagWeapon: {}, TagShield: {}, TagGloves: {},
	TagRing: {},
	TagBelt: {}, TagPouch: {},
}

// Valid reports whether t is one of the defined equip tags.
func (t EquipTag) Valid() bool {
	_, ok := validTags[t]
	return ok
}
