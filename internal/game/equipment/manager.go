package equipment

import (
	"go.uber.org/zap"

	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

// ChangeKind names what happened to a slot.
type ChangeKind string

const (
	ChangeEquipped   ChangeKind = "equipped"
	ChangeSwapped    ChangeKind = "swapped"
	ChangeUnequipped ChangeKind = "unequipped"
	ChangeDropped    ChangeKind = "dropped"
)

// Change is delivered to listeners after every successful slot mutation.
type Change struct {
	Kind ChangeKind
	Slot Slot
	// Item is the item now in the slot, or the item that left it for
	// ChangeUnequipped and ChangeDropped.
	Item *inventory.ItemInstance
	// Previous is the displaced occupant of a swap.
	Previous *inventory.ItemInstance
}

// Manager composes a Set with inventory grids into remove-then-place transfers with
// rollback, and notifies listeners of every change.
//
// Manager is not safe for concurrent use.
type Manager struct {
	set       *Set
	logger    *zap.Logger
	listeners []func(Change)
}

// NewManager returns a Manager around an empty Set.
//
// Precondition: logger may be nil, in which case logging is disabled.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{set: NewSet(logger), logger: logger}
}

// Set returns the underlying equipment set.
func (m *Manager) Set() *Set {
	return m.set
}

// OnChange registers fn to be called after each successful mutation.
func (m *Manager) OnChange(fn func(Change)) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

// Equipped returns the item in slot, or nil.
func (m *Manager) Equipped(slot Slot) *inventory.ItemInstance {
	return m.set.Get(slot)
}

// TryEquipFromInventory equips item from grid into slot, swapping out any occupant.
//
// Postcondition: see Set.TryEquipFromInventory.
func (m *Manager) TryEquipFromInventory(slot Slot, item *inventory.ItemInstance, grid *inventory.Grid) bool {
	previous := m.set.Get(slot)
	if !m.set.TryEquipFromInventory(slot, item, grid) {
		return false
	}
	kind := ChangeEquipped
	if previous != nil {
		kind = ChangeSwapped
	}
	m.notify(Change{Kind: kind, Slot: slot, Item: item, Previous: previous})
	return true
}

// TryEquipDirect equips an item that is in no grid.
func (m *Manager) TryEquipDirect(slot Slot, item *inventory.ItemInstance) bool {
	if !m.set.TryEquipDirect(slot, item) {
		return false
	}
	m.notify(Change{Kind: ChangeEquipped, Slot: slot, Item: item})
	return true
}

// TryUnequipToInventory moves the occupant of slot into grid at (x, y) with its
// current rotation.
//
// Postcondition: on failure the item is still in slot.
func (m *Manager) TryUnequipToInventory(slot Slot, grid *inventory.Grid, x, y int) bool {
	if grid == nil {
		return false
	}
	item := m.set.Get(slot)
	if item == nil {
		return false
	}
	if !grid.CanPlace(item, x, y) {
		return false
	}

	removed := m.set.Unequip(slot)
	if removed == nil {
		return false
	}
	if !grid.TryPlace(removed, x, y) {
		m.set.ForceSet(slot, removed)
		m.logger.Warn("equipment: unequip placement failed after check; item restored to slot",
			append(equipFields(slot, removed), zap.Int("x", x), zap.Int("y", y))...)
		return false
	}

	m.notify(Change{Kind: ChangeUnequipped, Slot: slot, Item: removed})
	return true
}

// TryUnequipToFirstFit moves the occupant of slot into the first free position of
// grid, scanning column-major.
func (m *Manager) TryUnequipToFirstFit(slot Slot, grid *inventory.Grid) bool {
	if grid == nil {
		return false
	}
	item := m.set.Get(slot)
	if item == nil {
		return false
	}
	x, y, ok := grid.TryFindSpaceFor(item)
	if !ok {
		m.logger.Debug("equipment: no space to unequip", equipFields(slot, item)...)
		return false
	}
	return m.TryUnequipToInventory(slot, grid, x, y)
}

// TryAutoEquipFromInventory tries every slot in enumeration order and equips item
// into the first one that accepts it.
//
// Postcondition: ok reports success; slot is where the item went.
func (m *Manager) TryAutoEquipFromInventory(item *inventory.ItemInstance, grid *inventory.Grid) (slot Slot, ok bool) {
	if item == nil || item.Def == nil || grid == nil {
		return "", false
	}
	for _, s := range slotOrder {
		if !CanEquip(s, item.Def) {
			continue
		}
		if m.TryEquipFromInventory(s, item, grid) {
			return s, true
		}
	}
	return "", false
}

// Drop clears slot and hands its occupant to the caller, e.g. to spawn it in the world.
func (m *Manager) Drop(slot Slot) *inventory.ItemInstance {
	item := m.set.Unequip(slot)
	if item == nil {
		return nil
	}
	m.notify(Change{Kind: ChangeDropped, Slot: slot, Item: item})
	return item
}

func (m *Manager) notify(c Change) {
	for _, fn := range m.listeners {
		fn(c)
	}
}
