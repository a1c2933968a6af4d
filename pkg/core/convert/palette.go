package convert

import (
	"math"
	"slices"

	"github.com/matzehuels/bls2brs/pkg/bls"
	"github.com/matzehuels/bls2brs/pkg/brs"
)

// Palette interns asset names and colors for one conversion. Indices are
// stable: tables only grow, and a value keeps the index it was first given.
type Palette struct {
	assets     []string
	assetIndex map[string]uint32
	colors     []brs.Color
	colorIndex map[brs.Color]uint32
}

// NewPalette returns a palette whose color table starts with seed. Seed
// entries keep their positions even when repeated, so source color indices
// stay valid; lookups resolve to the first occurrence.
func NewPalette(seed []brs.Color) *Palette {
	p := &Palette{
		assetIndex: make(map[string]uint32),
		colors:     slices.Clone(seed),
		colorIndex: make(map[brs.Color]uint32, len(seed)),
	}
	for i, c := range p.colors {
		if _, ok := p.colorIndex[c]; !ok {
			p.colorIndex[c] = uint32(i)
		}
	}
	return p
}

// Asset returns the index of name in the asset table, adding it if unseen.
func (p *Palette) Asset(name string) uint32 {
	if i, ok := p.assetIndex[name]; ok {
		return i
	}
	i := uint32(len(p.assets))
	p.assets = append(p.assets, name)
	p.assetIndex[name] = i
	return i
}

// Color returns the index of c in the color table, adding it if unseen.
func (p *Palette) Color(c brs.Color) uint32 {
	if i, ok := p.colorIndex[c]; ok {
		return i
	}
	i := uint32(len(p.colors))
	p.colors = append(p.colors, c)
	p.colorIndex[c] = i
	return i
}

// Assets returns the asset table.
func (p *Palette) Assets() []string { return p.assets }

// Colors returns the color table.
func (p *Palette) Colors() []brs.Color { return p.colors }

// Gamma is the exponent that converts source colors to the target's linear
// color space.
const Gamma = 2.2

// MapColor converts a source palette entry to a target color.
func MapColor(c bls.Color) brs.Color {
	return brs.Color{
		R: linear(c.R),
		G: linear(c.G),
		B: linear(c.B),
		A: linear(c.A),
	}
}

func linear(v float64) uint8 {
	v = math.Pow(v, Gamma) * 255
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
