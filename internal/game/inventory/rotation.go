package inventory

// Rotation is the orientation of a placed item. Only the unrotated and the
// 90-degree clockwise states exist; 180 and 270 are not supported.
type Rotation int

const (
	// Rotation0 is the unrotated orientation.
	Rotation0 Rotation = 0
	// Rotation90 is rotated 90 degrees clockwise around the top-left cell.
	Rotation90 Rotation = 90
)

// NormalizeRotation maps an arbitrary angle in degrees to a supported Rotation.
// The angle is reduced into [0,360); 90 maps to Rotation90 and every other value
// falls back to Rotation0.
func NormalizeRotation(degrees int) Rotation {
	degrees = ((degrees % 360) + 360) % 360
	if degrees == 90 {
		return Rotation90
	}
	return Rotation0
}

// Toggle returns the other supported orientation.
func (r Rotation) Toggle() Rotation {
	if r.normalized() == Rotation90 {
		return Rotation0
	}
	return Rotation90
}

// Degrees returns the rotation as an angle.
func (r Rotation) Degrees() int {
	return int(r.normalized())
}

// normalized reduces a raw value such as Rotation(450) to a supported Rotation.
func (r Rotation) normalized() Rotation {
	return NormalizeRotation(int(r))
}

// swapsAxes reports whether the rotated bounding box is transposed.
func (r Rotation) swapsAxes() bool {
	return r.normalized() == Rotation90
}

// RotatedSize returns the bounding box of a srcW x srcH footprint under r.
func RotatedSize(srcW, srcH int, r Rotation) (w, h int) {
	if r.swapsAxes() {
		return srcH, srcW
	}
	return srcW, srcH
}

// RotateLocal maps the local offset (ox, oy) inside an unrotated srcW x srcH
// footprint to its offset inside the rotated bounding box.
//
// r is normalized first. Rotation0 is the identity. Rotation90 turns clockwise around the top-left cell:
// rx = srcH-1-oy, ry = ox, and the bounding box becomes srcH x srcW.
func RotateLocal(ox, oy int, r Rotation, srcW, srcH int) (rx, ry int) {
	if r.normalized() == Rotation90 {
		return srcH - 1 - oy, ox
	}
	return ox, oy
}
