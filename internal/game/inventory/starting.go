package inventory

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// StartingItem is an item+quantity pair granted when a container is first filled.
type StartingItem struct {
	ItemID   string `yaml:"item"`
	Quantity int    `yaml:"quantity"`
}

// startingFile is the YAML structure for a starting-items file.
type startingFile struct {
	Items []StartingItem `yaml:"items"`
}

// LoadStartingItems reads a YAML file with a top-level "items" list.
//
// Precondition: path is a readable file.
// Postcondition: returns the parsed list or an error; quantities < 1 are rejected.
func LoadStartingItems(path string) ([]StartingItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading starting items %q: %w", path, err)
	}
	var f startingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing starting items %q: %w", path, err)
	}
	var errs []error
	for i, it := range f.Items {
		if it.ItemID == "" {
			errs = append(errs, fmt.Errorf("entry %d: item must not be empty", i))
		}
		if it.Quantity < 1 {
			errs = append(errs, fmt.Errorf("entry %d (%s): quantity must be >= 1", i, it.ItemID))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("starting items %q: %w", path, errors.Join(errs...))
	}
	return f.Items, nil
}

// PlaceStarting creates instances for each starting item and places them first-fit.
// Stackable quantities are split into full stacks; non-stackable quantities become
// one instance each. Items without room are returned in skipped and logged.
//
// Precondition: g and reg are non-nil.
// Postcondition: returns an error without placing anything if any item ID is unknown.
func PlaceStarting(g *Grid, reg *Registry, items []StartingItem) (placed, skipped []*ItemInstance, err error) {
	defs := make([]*ItemDef, len(items))
	for i, it := range items {
		def, ok := reg.Item(it.ItemID)
		if !ok {
			return nil, nil, fmt.Errorf("inventory: PlaceStarting: unknown item %q", it.ItemID)
		}
		defs[i] = def
	}

	for i, it := range items {
		for _, inst := range splitIntoStacks(defs[i], it.Quantity) {
			x, y, ok := g.TryFindSpaceFor(inst)
			if ok && g.TryPlace(inst, x, y) {
				g.logger.Info("starting item placed",
					zap.String("item", inst.Def.ID),
					zap.Int("count", inst.count),
					zap.Int("x", x),
					zap.Int("y", y),
				)
				placed = append(placed, inst)
				continue
			}
			g.logger.Warn("no space for starting item",
				zap.String("item", inst.Def.ID),
				zap.Int("count", inst.count),
			)
			skipped = append(skipped, inst)
		}
	}
	return placed, skipped, nil
}

func splitIntoStacks(def *ItemDef, quantity int) []*ItemInstance {
	quantity = max(quantity, 1)
	per := 1
	if def.Stackable {
		per = def.MaxStack
	}
	var out []*ItemInstance
	for quantity > 0 {
		n := min(quantity, per)
		out = append(out, NewItemInstance(def, n))
		quantity -= n
	}
	return out
}
