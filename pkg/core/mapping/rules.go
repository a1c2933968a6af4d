package mapping

import (
	"math"
	"regexp"
	"strconv"

	"github.com/matzehuels/bls2brs/pkg/bls"
)

// rule maps every UI name its pattern matches. A generator returning false
// marks the brick unmapped; later rules are not consulted.
type rule struct {
	re  *regexp.Regexp
	gen func(m match, from bls.Brick) (Mapping, bool)
}

// rules are scanned in order; the first matching pattern decides.
var rules = []rule{
	{regexp.MustCompile(`^(\d+)x(\d+)(?:x(\d+)|([Ff])|([Hh]))?( Print)?$`), sizeRule},
	{regexp.MustCompile(`^(-)?(25|45|72|80)° (Inv )?Ramp(?: (\d+)x)?( Corner)?(?: Print)?$`), rampRule},
	{regexp.MustCompile(`^(25|45)° Crest (?:(End)|(Corner)|(\d+)x)$`), crestRule},
	{regexp.MustCompile(`^(\d+)x(\d+)F Tile$`), tileRule},
	{regexp.MustCompile(`^(\d+)x(\d+) Base$`), baseRule},
	{regexp.MustCompile(`^(\d+)x Cube$`), cubeRule},
	{regexp.MustCompile(`^(\d+)x (Cube|Ramp|CornerA|CornerB|CornerC|CornerD|Wedge)( Steep| 3/4h| 1/2h| 1/4h| )?$`), shapeRule},
}

// match is a successful pattern match against a UI name.
type match struct {
	name string
	loc  []int
}

// has reports whether capture group i took part in the match.
func (m match) has(i int) bool {
	return m.loc[2*i] >= 0
}

func (m match) group(i int) string {
	if !m.has(i) {
		return ""
	}
	return m.name[m.loc[2*i]:m.loc[2*i+1]]
}

// scaled parses group i as a decimal integer and multiplies it by k. It
// fails on a missing group, a malformed number, or uint32 overflow.
func (m match) scaled(i int, k uint32) (uint32, bool) {
	v, err := strconv.ParseUint(m.group(i), 10, 32)
	if err != nil {
		return 0, false
	}
	return scale(uint32(v), k)
}

func scale(v, k uint32) (uint32, bool) {
	p := uint64(v) * uint64(k)
	if p > math.MaxUint32 {
		return 0, false
	}
	return uint32(p), true
}

// sizeRule handles plain bricks and plates such as "1x2", "2x4F", "1x1x5"
// and "1x4 Print".
func sizeRule(m match, from bls.Brick) (Mapping, bool) {
	w, ok := m.scaled(1, stud)
	if !ok {
		return nil, false
	}
	l, ok := m.scaled(2, stud)
	if !ok {
		return nil, false
	}

	var z uint32
	switch {
	case m.has(4):
		z = plate
	case m.has(5):
		z = 4
	case m.has(3):
		if z, ok = m.scaled(3, tall); !ok {
			return nil, false
		}
	default:
		z = tall
	}

	asset, rot := "PB_DefaultBrick", uint8(1)
	if m.has(6) {
		rot = 0
		if blankPrints[from.Print] {
			asset = "PB_DefaultTile"
		}
	}
	return Mapping{New(asset).WithSize(w, l, z).WithRotation(rot)}, true
}

func rampRule(m match, _ bls.Brick) (Mapping, bool) {
	neg, inv, corner := m.has(1), m.has(3), m.has(5)
	if inv && !corner {
		return nil, false
	}

	var asset string
	switch {
	case neg && inv:
		asset = "PB_DefaultRampInnerCornerInverted"
	case neg && corner:
		asset = "PB_DefaultRampCornerInverted"
	case neg:
		asset = "PB_DefaultRampInverted"
	case inv:
		asset = "PB_DefaultRampInnerCorner"
	case corner:
		asset = "PB_DefaultRampCorner"
	default:
		asset = "PB_DefaultRamp"
	}

	var depth, thick uint32
	switch m.group(2) {
	case "25":
		depth, thick = 15, 6
	case "45":
		depth, thick = 10, 6
	case "72":
		depth, thick = 10, 18
	case "80":
		depth, thick = 10, 30
	default:
		return nil, false
	}

	length := depth
	if m.has(4) {
		if corner {
			return nil, false
		}
		var ok bool
		if length, ok = m.scaled(4, stud); !ok {
			return nil, false
		}
	}
	return Mapping{New(asset).WithSize(depth, length, thick).WithRotation(0)}, true
}

func crestRule(m match, _ bls.Brick) (Mapping, bool) {
	var thick uint32
	var dz int32
	switch m.group(1) {
	case "25":
		thick, dz = 4, -2
	case "45":
		thick, dz = 6, 0
	default:
		return nil, false
	}

	var d Desc
	switch {
	case m.has(2):
		d = New("PB_DefaultRampCrestEnd").WithSize(10, 5, thick).WithRotation(2)
	case m.has(3):
		d = New("PB_DefaultRampCrestCorner").WithSize(10, 10, thick).WithRotation(0)
	default:
		length, ok := m.scaled(4, stud)
		if !ok {
			return nil, false
		}
		d = New("PB_DefaultRampCrest").WithSize(10, length, thick).WithRotation(0)
	}
	return Mapping{d.WithOffset(0, 0, dz)}, true
}

func tileRule(m match, _ bls.Brick) (Mapping, bool) {
	return flat("PB_DefaultTile", m)
}

func baseRule(m match, _ bls.Brick) (Mapping, bool) {
	return flat("PB_DefaultBrick", m)
}

// flat maps a "WxL" footprint onto a plate-height asset.
func flat(asset string, m match) (Mapping, bool) {
	w, ok := m.scaled(1, stud)
	if !ok {
		return nil, false
	}
	l, ok := m.scaled(2, stud)
	if !ok {
		return nil, false
	}
	return Mapping{New(asset).WithSize(w, l, plate)}, true
}

func cubeRule(m match, _ bls.Brick) (Mapping, bool) {
	s, ok := m.scaled(1, stud)
	if !ok {
		return nil, false
	}
	return Mapping{New("PB_DefaultBrick").WithSize(s, s, s)}, true
}

// shapeRule handles the sized shape family ("4x Ramp", "2x Wedge Steep",
// "8x CornerC 1/2h").
func shapeRule(m match, _ bls.Brick) (Mapping, bool) {
	size, ok := m.scaled(1, 1)
	if !ok {
		return nil, false
	}

	height := size
	switch m.group(3) {
	case " Steep":
		if height, ok = scale(size, 2); !ok {
			return nil, false
		}
	case " 3/4h":
		return nil, false
	case " 1/2h":
		height = size / 2
	case " 1/4h":
		height = size / 4
	}

	var asset string
	var rot uint8
	switch m.group(2) {
	case "Cube":
		asset, rot = "PB_DefaultBrick", 1
	case "Wedge":
		asset, rot = "PB_DefaultSideWedge", 2
	case "Ramp":
		asset, rot = "PB_DefaultWedge", 3
	case "CornerB":
		// Approximation: there is no matching target asset.
		asset, rot = "PB_DefaultRampInnerCorner", 2
	case "CornerC":
		asset, rot = "PB_DefaultRampCorner", 2
	case "CornerD":
		asset, rot = "PB_DefaultRampInnerCorner", 2
	default:
		// TODO: CornerA has no target asset yet.
		return nil, false
	}

	s, ok := scale(size, stud)
	if !ok {
		return nil, false
	}
	h, ok := scale(height, stud)
	if !ok {
		return nil, false
	}
	return Mapping{New(asset).WithSize(s, s, h).WithRotation(rot)}, true
}
