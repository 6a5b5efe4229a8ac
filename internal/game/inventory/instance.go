package inventory

import (
	"github.com/google/uuid"
)

// ItemInstance is one placeable unit of an item: a definition reference plus its
// position, rotation, stack count and the grid currently holding it.
//
// Position, rotation, count and owner are only mutated by Grid operations and the
// transfer helpers in this package, so a placed instance's recorded footprint always
// matches the cells it occupies.
type ItemInstance struct {
	// InstanceID uniquely identifies this instance.
	InstanceID string
	// Def is the shared, read-only item definition.
	Def *ItemDef

	x, y     int
	rotation Rotation
	count    int

	// owner is a non-owning back-reference used only to validate that an
	// operation originates from the grid actually holding the instance.
	owner *Grid
}

// NewItemInstance creates an unowned instance of def.
//
// Precondition: def must be non-nil and valid.
// Postcondition: StackCount() is stackCount clamped into [1, def.MaxStack], or 1 when
// def is not stackable; Rotation() == Rotation0; Owner() == nil.
func NewItemInstance(def *ItemDef, stackCount int) *ItemInstance {
	maxCount := 1
	if def != nil && def.Stackable {
		maxCount = def.MaxStack
	}
	count := min(max(stackCount, 1), maxCount)
	return &ItemInstance{
		InstanceID: uuid.New().String(),
		Def:        def,
		count:      count,
		rotation:   Rotation0,
	}
}

// X returns the top-left column of the instance in its owning grid.
// Meaningless when Owner() is nil.
func (i *ItemInstance) X() int { return i.x }

// Y returns the top-left row of the instance in its owning grid.
// Meaningless when Owner() is nil.
func (i *ItemInstance) Y() int { return i.y }

// Rotation returns the current orientation.
func (i *ItemInstance) Rotation() Rotation { return i.rotation }

// StackCount returns the number of units in this stack.
func (i *ItemInstance) StackCount() int { return i.count }

// Owner returns the grid currently holding the instance, or nil.
func (i *ItemInstance) Owner() *Grid { return i.owner }

// Width returns the bounding-box width under the current rotation.
func (i *ItemInstance) Width() int {
	w, _ := RotatedSize(i.Def.Width, i.Def.Height, i.rotation)
	return w
}

// Height returns the bounding-box height under the current rotation.
func (i *ItemInstance) Height() int {
	_, h := RotatedSize(i.Def.Width, i.Def.Height, i.rotation)
	return h
}

// SetRotation changes the orientation of an unowned instance. r is normalized.
//
// Postcondition: returns false and leaves the rotation unchanged when the instance
// is placed in a grid; use Grid.TryMoveAndRotate for placed items.
func (i *ItemInstance) SetRotation(r Rotation) bool {
	if i.owner != nil {
		return false
	}
	i.rotation = r.normalized()
	return true
}

// RemainingCapacity returns how many more units this stack can hold.
func (i *ItemInstance) RemainingCapacity() int {
	if i.Def == nil || !i.Def.Stackable {
		return 0
	}
	return max(i.Def.MaxStack-i.count, 0)
}
