package inventory

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Cell is a grid coordinate with the origin at the top-left.
type Cell struct {
	X int
	Y int
}

// Grid is a fixed-size occupancy grid: the sole authority on which item occupies
// which cell of one rectangular container.
//
// Invariants: no two distinct items share a cell; every placed item's recorded
// position and rotation match the cells written for it; items and cells agree.
//
// Grid is not safe for concurrent use. Callers serialize mutations, including
// multi-step transfers that span two containers.
type Grid struct {
	width  int
	height int
	// cells is indexed x + y*width; nil means empty.
	cells []*ItemInstance
	// items holds placed instances in placement order.
	items  []*ItemInstance
	logger *zap.Logger
}

// NewGrid creates an empty width x height grid.
//
// Precondition: logger may be nil, in which case logging is disabled.
// Postcondition: returns an error iff width <= 0 or height <= 0.
func NewGrid(width, height int, logger *zap.Logger) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("inventory: NewGrid: dimensions must be positive; got %dx%d", width, height)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]*ItemInstance, width*height),
		logger: logger,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) index(x, y int) int {
	return x + y*g.width
}

// GetItemAt returns the item occupying (x, y), or nil when the cell is empty or out
// of bounds.
func (g *Grid) GetItemAt(x, y int) *ItemInstance {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[g.index(x, y)]
}

// Items returns a snapshot of the placed items in placement order.
//
// Postcondition: returned slice is a copy; mutations do not affect the grid.
func (g *Grid) Items() []*ItemInstance {
	out := make([]*ItemInstance, len(g.items))
	copy(out, g.items)
	return out
}

// Contains reports whether item is currently placed in this grid.
func (g *Grid) Contains(item *ItemInstance) bool {
	return item != nil && item.owner == g
}

// FreeCellCount returns the number of empty cells.
func (g *Grid) FreeCellCount() int {
	n := 0
	for _, c := range g.cells {
		if c == nil {
			n++
		}
	}
	return n
}

// FootprintAt returns the grid cells def would occupy with its origin at (x, y) and
// orientation r, in local scan order. Cells may lie outside the grid.
func FootprintAt(def *ItemDef, x, y int, r Rotation) []Cell {
	out := make([]Cell, 0, def.CellCount())
	for ox := 0; ox < def.Width; ox++ {
		for oy := 0; oy < def.Height; oy++ {
			if !def.Occupies(ox, oy) {
				continue
			}
			rx, ry := RotateLocal(ox, oy, r, def.Width, def.Height)
			out = append(out, Cell{X: x + rx, Y: y + ry})
		}
	}
	return out
}

// Footprint returns the cells item occupies at its recorded position and rotation.
func (g *Grid) Footprint(item *ItemInstance) []Cell {
	return FootprintAt(item.Def, item.x, item.y, item.rotation)
}

// CanPlace reports whether item fits with its origin at (x, y) using its current
// rotation.
func (g *Grid) CanPlace(item *ItemInstance, x, y int) bool {
	if item == nil || item.Def == nil {
		return false
	}
	return g.CanPlaceWithRotation(item, x, y, item.rotation, false)
}

// CanPlaceWithRotation reports whether item fits with its origin at (originX, originY)
// and orientation r. Only the cells of the shape mask collide. When ignoreSelf is
// true, cells already occupied by item itself count as free, which is what in-place
// move and rotate previews need. Definitions without any occupied cell never fit.
//
// Postcondition: the grid is not modified.
func (g *Grid) CanPlaceWithRotation(item *ItemInstance, originX, originY int, r Rotation, ignoreSelf bool) bool {
	if item == nil || item.Def == nil {
		return false
	}
	def := item.Def
	if def.Width < 1 || def.Height < 1 || def.CellCount() == 0 {
		return false
	}
	rotW, rotH := RotatedSize(def.Width, def.Height, r)
	if originX < 0 || originY < 0 || originX+rotW > g.width || originY+rotH > g.height {
		return false
	}

	for ox := 0; ox < def.Width; ox++ {
		for oy := 0; oy < def.Height; oy++ {
			if !def.Occupies(ox, oy) {
				continue
			}
			rx, ry := RotateLocal(ox, oy, r, def.Width, def.Height)
			gx, gy := originX+rx, originY+ry
			if !g.InBounds(gx, gy) {
				return false
			}
			occupant := g.cells[g.index(gx, gy)]
			if occupant != nil && (!ignoreSelf || occupant != item) {
				return false
			}
		}
	}
	return true
}

// TryPlace places an unowned item with its origin at (x, y) using its current rotation.
//
// Precondition: item is not held by any grid; remove it from its owner first.
// Postcondition: on success every footprint cell references item, X()/Y() are (x, y)
// and Owner() is g; on failure nothing is modified.
func (g *Grid) TryPlace(item *ItemInstance, x, y int) bool {
	if item == nil || item.Def == nil || item.owner != nil {
		return false
	}
	if !g.CanPlace(item, x, y) {
		return false
	}

	g.writeCells(item, x, y, item.rotation)
	item.x = x
	item.y = y
	item.owner = g
	if !g.listed(item) {
		g.items = append(g.items, item)
	}

	g.logger.Debug("item placed", append(itemFields(item),
		zap.Int("x", x), zap.Int("y", y), zap.Int("rotation", item.rotation.Degrees()))...)
	return true
}

// TryAutoPlace places item at the first free position found by TryFindSpaceFor.
//
// Postcondition: returns true iff the item was placed.
func (g *Grid) TryAutoPlace(item *ItemInstance) bool {
	x, y, ok := g.TryFindSpaceFor(item)
	if !ok {
		return false
	}
	return g.TryPlace(item, x, y)
}

// Remove clears every cell referencing item, drops it from the item list and clears
// its owner. The whole grid is scanned, so a stale recorded position does not matter.
//
// Postcondition: returns true iff any cell referenced item.
func (g *Grid) Remove(item *ItemInstance) bool {
	if item == nil {
		return false
	}

	found := false
	for i, c := range g.cells {
		if c == item {
			g.cells[i] = nil
			found = true
		}
	}
	if !found {
		return false
	}

	g.unlist(item)
	if item.owner == g {
		item.owner = nil
	}
	g.logger.Debug("item removed", itemFields(item)...)
	return true
}

// TryMove moves a placed item to a new origin keeping its rotation.
//
// Precondition: item is owned by g.
// Postcondition: on failure the item is back at its original position.
func (g *Grid) TryMove(item *ItemInstance, newX, newY int) bool {
	if item == nil || item.owner != g {
		return false
	}
	oldX, oldY := item.x, item.y

	g.Remove(item)
	if g.TryPlace(item, newX, newY) {
		return true
	}

	if !g.TryPlace(item, oldX, oldY) {
		g.reportLost("TryMove", item, oldX, oldY)
	}
	return false
}

// TryMoveAndRotate moves a placed item to a new origin and orientation.
//
// Precondition: item is owned by g.
// Postcondition: on success Rotation() is newRotation normalized; on failure the item
// is back at its original position and rotation.
func (g *Grid) TryMoveAndRotate(item *ItemInstance, newX, newY int, newRotation Rotation) bool {
	if item == nil || item.owner != g {
		return false
	}
	oldX, oldY, oldRot := item.x, item.y, item.rotation

	g.Remove(item)
	item.rotation = newRotation.normalized()
	if g.TryPlace(item, newX, newY) {
		return true
	}

	item.rotation = oldRot
	if !g.TryPlace(item, oldX, oldY) {
		g.reportLost("TryMoveAndRotate", item, oldX, oldY)
	}
	return false
}

// TryFindSpaceFor returns the first origin where item fits with its current rotation.
// The scan is column-major: x outer from 0, y inner from 0, so the leftmost column
// wins, then the topmost row within it.
//
// Postcondition: the grid is not modified; ok is false when no position fits.
func (g *Grid) TryFindSpaceFor(item *ItemInstance) (x, y int, ok bool) {
	if item == nil || item.Def == nil {
		return -1, -1, false
	}
	for cx := 0; cx < g.width; cx++ {
		for cy := 0; cy < g.height; cy++ {
			if g.CanPlace(item, cx, cy) {
				return cx, cy, true
			}
		}
	}
	return -1, -1, false
}

// CheckConsistency verifies that the cell table, the item list and every item's
// recorded position, rotation and owner agree.
//
// Postcondition: returns nil iff all grid invariants hold.
func (g *Grid) CheckConsistency() error {
	var errs []error
	counted := make(map[*ItemInstance]int, len(g.items))
	for i, item := range g.items {
		if _, dup := counted[item]; dup {
			errs = append(errs, fmt.Errorf("item %s listed twice", item.InstanceID))
			continue
		}
		counted[item] = 0
		if item.owner != g {
			errs = append(errs, fmt.Errorf("item %d (%s) does not reference this grid as owner", i, item.InstanceID))
		}
		for _, c := range g.Footprint(item) {
			if !g.InBounds(c.X, c.Y) {
				errs = append(errs, fmt.Errorf("item %s footprint cell (%d,%d) out of bounds", item.InstanceID, c.X, c.Y))
				continue
			}
			if occ := g.cells[g.index(c.X, c.Y)]; occ != item {
				errs = append(errs, fmt.Errorf("item %s footprint cell (%d,%d) not written", item.InstanceID, c.X, c.Y))
			}
		}
	}
	for i, c := range g.cells {
		if c == nil {
			continue
		}
		n, ok := counted[c]
		if !ok {
			errs = append(errs, fmt.Errorf("cell (%d,%d) references unlisted item %s", i%g.width, i/g.width, c.InstanceID))
			continue
		}
		counted[c] = n + 1
	}
	for item, n := range counted {
		if n != item.Def.CellCount() {
			errs = append(errs, fmt.Errorf("item %s occupies %d cells, footprint has %d", item.InstanceID, n, item.Def.CellCount()))
		}
	}
	return errors.Join(errs...)
}

func (g *Grid) writeCells(item *ItemInstance, x, y int, r Rotation) {
	for _, c := range FootprintAt(item.Def, x, y, r) {
		g.cells[g.index(c.X, c.Y)] = item
	}
}

func (g *Grid) listed(item *ItemInstance) bool {
	for _, it := range g.items {
		if it == item {
			return true
		}
	}
	return false
}

func (g *Grid) unlist(item *ItemInstance) {
	for i, it := range g.items {
		if it == item {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return
		}
	}
}

// reportLost logs an invariant violation: an item could not be written back to the
// cells it vacated a moment ago. The item is left unowned.
func (g *Grid) reportLost(op string, item *ItemInstance, x, y int) {
	g.logger.Error("inventory: failed to restore item to its original position",
		append(itemFields(item),
			zap.String("op", op),
			zap.Int("x", x),
			zap.Int("y", y),
			zap.Int("rotation", item.rotation.Degrees()),
			zap.Stack("stack"),
		)...)
}

func itemFields(item *ItemInstance) []zap.Field {
	id := ""
	if item.Def != nil {
		id = item.Def.ID
	}
	return []zap.Field{
		zap.String("item", id),
		zap.String("instance", item.InstanceID),
		zap.Int("count", item.count),
	}
}
