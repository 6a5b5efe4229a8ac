package inventory

import "go.uber.org/zap"

// TryTransfer moves a placed item to (x, y) with orientation r in grid to, which may
// be the grid already holding it.
//
// Precondition: item is held by some grid.
// Postcondition: on success the item is owned by to at (x, y, r); on failure it is
// back in its source grid at its original position and rotation.
func TryTransfer(item *ItemInstance, to *Grid, x, y int, r Rotation) bool {
	if item == nil || item.Def == nil || to == nil {
		return false
	}
	from := item.owner
	if from == nil {
		return false
	}
	if from == to {
		return to.TryMoveAndRotate(item, x, y, r)
	}
	if !to.CanPlaceWithRotation(item, x, y, r, false) {
		return false
	}

	oldX, oldY, oldRot := item.x, item.y, item.rotation
	from.Remove(item)
	item.rotation = r.normalized()
	if to.TryPlace(item, x, y) {
		return true
	}

	item.rotation = oldRot
	if !from.TryPlace(item, oldX, oldY) {
		from.reportLost("TryTransfer", item, oldX, oldY)
	}
	return false
}

// TryStackAcross merges units from source into target wherever each one is held.
// Within one grid it is TryStack; across grids the counts are adjusted here and an
// emptied source is removed from its grid.
//
// Precondition: source and target are each held by a grid.
// Postcondition: on success the combined count is unchanged and target does not
// exceed its definition's MaxStack.
func TryStackAcross(source, target *ItemInstance) bool {
	if source == nil || target == nil {
		return false
	}
	from, to := source.owner, target.owner
	if from == nil || to == nil {
		return false
	}
	if from == to {
		return from.TryStack(source, target)
	}
	if !CanStack(source, target) {
		return false
	}

	moved := moveUnits(source, target)
	if moved <= 0 {
		return false
	}
	if source.count <= 0 {
		from.Remove(source)
	}

	to.logger.Debug("items stacked across grids",
		zap.String("item", target.Def.ID),
		zap.String("source", source.InstanceID),
		zap.String("target", target.InstanceID),
		zap.Int("moved", moved),
		zap.Int("target_count", target.count),
	)
	return true
}
