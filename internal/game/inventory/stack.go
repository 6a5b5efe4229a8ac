package inventory

import "go.uber.org/zap"

// CanStack reports whether some units of source could be merged into target: both
// share the same definition, the definition is stackable, target has capacity left
// and source is not empty.
func CanStack(source, target *ItemInstance) bool {
	if source == nil || target == nil || source == target {
		return false
	}
	if source.Def == nil || target.Def == nil || source.Def != target.Def {
		return false
	}
	if !target.Def.Stackable {
		return false
	}
	if target.RemainingCapacity() <= 0 {
		return false
	}
	return source.count > 0
}

// CanStack is the grid-scoped form of the package-level CanStack, used by previews.
func (g *Grid) CanStack(source, target *ItemInstance) bool {
	return CanStack(source, target)
}

// TryStack merges as many units as fit from source into target. Both must be held
// by g; cross-grid merges go through TryStackAcross.
//
// Postcondition: on success min(capacityLeft, source count) units moved and the
// combined count is unchanged; if source reached zero it was removed from g.
func (g *Grid) TryStack(source, target *ItemInstance) bool {
	if source == nil || target == nil {
		return false
	}
	if source.owner != g || target.owner != g {
		return false
	}
	if !CanStack(source, target) {
		return false
	}

	moved := moveUnits(source, target)
	if moved <= 0 {
		return false
	}
	if source.count <= 0 {
		g.Remove(source)
	}

	g.logger.Debug("items stacked",
		zap.String("item", target.Def.ID),
		zap.String("source", source.InstanceID),
		zap.String("target", target.InstanceID),
		zap.Int("moved", moved),
		zap.Int("target_count", target.count),
	)
	return true
}

// moveUnits transfers min(capacity left, source count) units and returns the amount.
func moveUnits(source, target *ItemInstance) int {
	n := min(target.RemainingCapacity(), source.count)
	if n <= 0 {
		return 0
	}
	target.count += n
	source.count -= n
	return n
}
