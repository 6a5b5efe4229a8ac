package equipment

import (
	"go.uber.org/zap"

	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

// Equipped pairs a slot with the item it holds.
type Equipped struct {
	Slot Slot
	Item *inventory.ItemInstance
}

// Set maps each slot to at most one item. An equipped item is never held by any
// inventory grid at the same time: its Owner() is nil while it sits in a slot.
//
// Set is not safe for concurrent use.
type Set struct {
	slots  map[Slot]*inventory.ItemInstance
	logger *zap.Logger
}

// NewSet returns a Set with every slot empty.
//
// Precondition: logger may be nil, in which case logging is disabled.
func NewSet(logger *zap.Logger) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Set{
		slots:  make(map[Slot]*inventory.ItemInstance),
		logger: logger,
	}
}

// Get returns the item in slot, or nil.
func (s *Set) Get(slot Slot) *inventory.ItemInstance {
	return s.slots[slot]
}

// Unequip clears slot and returns its previous occupant, or nil. It does not place
// the item anywhere; pairing it with a grid is the caller's job.
//
// Postcondition: Get(slot) == nil.
func (s *Set) Unequip(slot Slot) *inventory.ItemInstance {
	item := s.slots[slot]
	if item == nil {
		return nil
	}
	delete(s.slots, slot)
	return item
}

// ForceSet puts item into slot without checking rules, overwriting any occupant.
// It exists for rollback of an item that was validly equipped a moment ago.
// A nil item clears the slot.
//
// Postcondition: returns false without changes when item is still held by a grid.
func (s *Set) ForceSet(slot Slot, item *inventory.ItemInstance) bool {
	if item == nil {
		delete(s.slots, slot)
		return true
	}
	if item.Owner() != nil {
		return false
	}
	s.slots[slot] = item
	return true
}

// TryEquipFromInventory moves item from fromGrid into slot.
//
// An empty slot simply receives the item. An occupied slot is a swap: the current
// occupant must go back into the same grid, so a free position for it is found
// before anything moves. Without such a position nothing changes.
//
// Precondition: item is held by fromGrid.
// Postcondition: on success Get(slot) == item, item.Owner() == nil and any previous
// occupant is placed in fromGrid; on failure neither item changes container.
func (s *Set) TryEquipFromInventory(slot Slot, item *inventory.ItemInstance, fromGrid *inventory.Grid) bool {
	if item == nil || item.Def == nil || fromGrid == nil {
		return false
	}
	if !CanEquip(slot, item.Def) {
		return false
	}
	if item.Owner() != fromGrid {
		return false
	}

	existing := s.Get(slot)
	if existing == nil {
		if !fromGrid.Remove(item) {
			return false
		}
		s.slots[slot] = item
		s.logger.Debug("item equipped", equipFields(slot, item)...)
		return true
	}

	x, y, ok := fromGrid.TryFindSpaceFor(existing)
	if !ok {
		return false
	}

	origX, origY := item.X(), item.Y()
	if !fromGrid.Remove(item) {
		return false
	}
	if !fromGrid.TryPlace(existing, x, y) {
		s.logger.Error("equipment: displaced item did not fit where space was found",
			append(equipFields(slot, existing), zap.Int("x", x), zap.Int("y", y))...)
		if !fromGrid.TryPlace(item, origX, origY) {
			s.logger.Error("equipment: failed to restore item to its inventory position",
				append(equipFields(slot, item),
					zap.Int("x", origX), zap.Int("y", origY), zap.Stack("stack"))...)
		}
		return false
	}

	s.slots[slot] = item
	s.logger.Debug("item swapped in",
		append(equipFields(slot, item), zap.String("previous", existing.InstanceID))...)
	return true
}

// TryEquipDirect equips an item that is not held by any grid, such as a freshly
// spawned or looted one.
//
// Postcondition: returns false without changes when the rules reject the item, the
// slot is occupied, the item is still in a grid or already equipped elsewhere.
func (s *Set) TryEquipDirect(slot Slot, item *inventory.ItemInstance) bool {
	if item == nil || item.Def == nil {
		return false
	}
	if !CanEquip(slot, item.Def) {
		return false
	}
	if item.Owner() != nil || s.Get(slot) != nil {
		return false
	}
	if _, equipped := s.SlotOf(item); equipped {
		return false
	}
	s.slots[slot] = item
	s.logger.Debug("item equipped directly", equipFields(slot, item)...)
	return true
}

// SlotOf returns the slot holding item.
func (s *Set) SlotOf(item *inventory.ItemInstance) (Slot, bool) {
	if item == nil {
		return "", false
	}
	for slot, it := range s.slots {
		if it == item {
			return slot, true
		}
	}
	return "", false
}

// Equipped returns the occupied slots in enumeration order.
func (s *Set) Equipped() []Equipped {
	var out []Equipped
	for _, slot := range slotOrder {
		if item := s.slots[slot]; item != nil {
			out = append(out, Equipped{Slot: slot, Item: item})
		}
	}
	return out
}

// Len returns the number of occupied slots.
func (s *Set) Len() int {
	return len(s.slots)
}

func equipFields(slot Slot, item *inventory.ItemInstance) []zap.Field {
	return []zap.Field{
		zap.String("slot", string(slot)),
		zap.String("item", item.Def.ID),
		zap.String("instance", item.InstanceID),
	}
}
