// Package inventory implements the grid inventory engine: item definitions, placed item
// instances and the shape-aware, rotation-aware occupancy grid that packs them.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Rarity is the loot tier of an item definition.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityUnique    Rarity = "unique"
)

// validRarities is the set of valid ItemDef rarities. The empty string means common.
var validRarities = map[Rarity]bool{
	"":              true,
	RarityCommon:    true,
	RarityRare:      true,
	RarityEpic:      true,
	RarityLegendary: true,
	RarityUnique:    true,
}

// ItemDef defines the static properties of an inventory item loaded from YAML.
//
// An ItemDef is immutable once registered and is shared by every ItemInstance
// created from it; definitions are compared by pointer identity.
type ItemDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	TypeName    string `yaml:"type_name"`
	Rarity      Rarity `yaml:"rarity"`

	// Width and Height are the unrotated footprint in cells.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// ShapeMask optionally restricts the footprint to a non-rectangular subset of the
	// bounding box. Row-major: index = x + y*Width. Only true cells collide.
	ShapeMask []bool `yaml:"shape_mask"`

	Stackable bool `yaml:"stackable"`
	MaxStack  int  `yaml:"max_stack"`

	Equipable bool       `yaml:"equipable"`
	EquipTags []EquipTag `yaml:"equip_tags"`
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.Width < 1 || d.Height < 1 {
		errs = append(errs, fmt.Errorf("width and height must be >= 1; got %dx%d", d.Width, d.Height))
	}
	if d.MaxStack < 1 {
		errs = append(errs, errors.New("max_stack must be >= 1"))
	}
	if !d.Stackable && d.MaxStack > 1 {
		errs = append(errs, fmt.Errorf("max_stack must be 1 for a non-stackable item; got %d", d.MaxStack))
	}
	if d.ShapeMask != nil {
		switch {
		case d.Width < 1 || d.Height < 1:
			// already reported above
		case len(d.ShapeMask) != d.Width*d.Height:
			errs = append(errs, fmt.Errorf("shape_mask must have %d entries; got %d", d.Width*d.Height, len(d.ShapeMask)))
		case countTrue(d.ShapeMask) == 0:
			errs = append(errs, errors.New("shape_mask must occupy at least one cell"))
		}
	}
	if d.Equipable && len(d.EquipTags) == 0 {
		errs = append(errs, errors.New("equip_tags must not be empty when equipable"))
	}
	for _, tag := range d.EquipTags {
		if !tag.Valid() {
			errs = append(errs, fmt.Errorf("equip tag %q is not valid", tag))
		}
	}
	if !validRarities[d.Rarity] {
		errs = append(errs, fmt.Errorf("rarity %q must be one of common, rare, epic, legendary, unique", d.Rarity))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q validation failed: %v", d.ID, errs)
	}
	return nil
}

// HasCustomShape reports whether the definition uses its shape mask instead of the
// full rectangle.
func (d *ItemDef) HasCustomShape() bool {
	return d.ShapeMask != nil && len(d.ShapeMask) == d.Width*d.Height
}

// Occupies reports whether the unrotated local cell (ox, oy) is part of the footprint.
//
// Precondition: 0 <= ox < Width and 0 <= oy < Height.
func (d *ItemDef) Occupies(ox, oy int) bool {
	if !d.HasCustomShape() {
		return true
	}
	return d.ShapeMask[ox+oy*d.Width]
}

// CellCount returns the number of cells the footprint occupies.
func (d *ItemDef) CellCount() int {
	if !d.HasCustomShape() {
		return d.Width * d.Height
	}
	return countTrue(d.ShapeMask)
}

// HasTag reports whether tag is one of the definition's equip tags.
func (d *ItemDef) HasTag(tag EquipTag) bool {
	for _, t := range d.EquipTags {
		if t == tag {
			return true
		}
	}
	return false
}

func countTrue(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}

// LoadItems reads all *.yaml and *.yml files from dir, parses each as an
// ItemDef, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(dir string) ([]*ItemDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var items []*ItemDef
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
		}
		var d ItemDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadItems: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadItems: invalid item in %q: %w", path, err)
		}
		items = append(items, &d)
	}
	if items == nil {
		items = []*ItemDef{}
	}
	return items, nil
}
