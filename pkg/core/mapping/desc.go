package mapping

import (
	"fmt"
	"strings"

	"github.com/matzehuels/bls2brs/pkg/brs"
)

// Desc is one target brick produced by a mapping rule.
//
// Desc values are immutable templates: the With* methods return modified
// copies, so a shared template such as a road lane can be specialized per
// use without affecting other rules.
type Desc struct {
	Asset          string
	Size           [3]uint32 // zero keeps the asset's intrinsic size
	Offset         [3]int32  // in the brick's own unrotated frame
	RotationOffset uint8     // quarter turns added to the source angle
	ColorOverride  *brs.Color
}

// New returns a descriptor for asset with the default rotation offset of
// one quarter turn, which aligns most target assets with their source
// counterparts.
func New(asset string) Desc {
	return Desc{Asset: asset, RotationOffset: 1}
}

// WithSize returns a copy of d with the given size.
func (d Desc) WithSize(x, y, z uint32) Desc {
	d.Size = [3]uint32{x, y, z}
	return d
}

// WithOffset returns a copy of d with the given local offset.
func (d Desc) WithOffset(x, y, z int32) Desc {
	d.Offset = [3]int32{x, y, z}
	return d
}

// WithRotation returns a copy of d with the given rotation offset.
func (d Desc) WithRotation(r uint8) Desc {
	d.RotationOffset = r % 4
	return d
}

// WithColor returns a copy of d that ignores the source brick's color.
func (d Desc) WithColor(c brs.Color) Desc {
	d.ColorOverride = &c
	return d
}

// String formats d for debug logging.
func (d Desc) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s size=%v", d.Asset, d.Size)
	if d.Offset != ([3]int32{}) {
		fmt.Fprintf(&sb, " offset=%v", d.Offset)
	}
	fmt.Fprintf(&sb, " rot=%d", d.RotationOffset)
	if d.ColorOverride != nil {
		fmt.Fprintf(&sb, " color=%s", d.ColorOverride)
	}
	return sb.String()
}

// Mapping is the ordered list of target bricks one source brick becomes.
type Mapping []Desc

// Clone returns a copy of m that shares no memory with it.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for i, d := range m {
		if d.ColorOverride != nil {
			c := *d.ColorOverride
			d.ColorOverride = &c
		}
		out[i] = d
	}
	return out
}
