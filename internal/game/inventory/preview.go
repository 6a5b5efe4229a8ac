package inventory

// Preview describes what dropping an item at a cell would do, for drag feedback.
type Preview struct {
	// Cells are the in-bounds cells of the rotated footprint at the hovered origin.
	Cells []Cell
	// Fits is true when the item could be placed there (its own cells count as free).
	Fits bool
	// StackTarget is the item under the hovered cell that would absorb units when the
	// placement itself does not fit; nil otherwise.
	StackTarget *ItemInstance
}

// Valid reports whether the drop would succeed either as a placement or a stack.
func (p Preview) Valid() bool {
	return p.Fits || p.StackTarget != nil
}

// Preview evaluates dropping item with its origin at (x, y) and orientation r.
//
// Postcondition: the grid is not modified.
func (g *Grid) Preview(item *ItemInstance, x, y int, r Rotation) Preview {
	var p Preview
	if item == nil || item.Def == nil {
		return p
	}

	p.Fits = g.CanPlaceWithRotation(item, x, y, r, true)
	if !p.Fits {
		if target := g.GetItemAt(x, y); target != nil && target != item && CanStack(item, target) {
			p.StackTarget = target
		}
	}

	for _, c := range FootprintAt(item.Def, x, y, r) {
		if g.InBounds(c.X, c.Y) {
			p.Cells = append(p.Cells, c)
		}
	}
	return p
}
