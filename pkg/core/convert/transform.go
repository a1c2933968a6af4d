package convert

import "math"

// UnitsPerStud is the number of target grid units per source unit.
const UnitsPerStud = 20

// RotateOffset turns offset by rotation quarter turns about the Z axis.
// Each turn maps (x, y) to (-y, x); Z is unchanged.
func RotateOffset(offset [3]int32, rotation uint8) [3]int32 {
	x, y := offset[0], offset[1]
	for i := uint8(0); i < rotation%4; i++ {
		x, y = -y, x
	}
	return [3]int32{x, y, offset[2]}
}

// Rotation returns the target rotation for a source angle plus a
// descriptor's rotation offset.
func Rotation(source, offset uint8) uint8 {
	return (source%4 + offset%4) % 4
}

// Position converts a source position to the target grid and adds offset,
// rotated by the source angle. The source X and Y axes are swapped.
func Position(pos [3]float64, angle uint8, offset [3]int32) [3]int32 {
	r := RotateOffset(offset, angle)
	return [3]int32{
		units(pos[1], r[0]),
		units(pos[0], r[1]),
		units(pos[2], r[2]),
	}
}

// units scales v to grid units, truncating toward zero, and adds off. The
// sum saturates at ±math.MaxInt32; math.MinInt32 is excluded because the
// writer's sign-magnitude encoding cannot hold it. NaN maps to off.
func units(v float64, off int32) int32 {
	u := math.Trunc(v * UnitsPerStud)
	if math.IsNaN(u) {
		u = 0
	}
	u += float64(off)
	switch {
	case u >= math.MaxInt32:
		return math.MaxInt32
	case u <= -math.MaxInt32:
		return -math.MaxInt32
	}
	return int32(u)
}
