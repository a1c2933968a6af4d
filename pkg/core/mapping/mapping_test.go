package mapping

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/matzehuels/bls2brs/pkg/bls"
	"github.com/matzehuels/bls2brs/pkg/brs"
)

func TestMapPatterns(t *testing.T) {
	tests := []struct {
		name  string
		print string
		want  Desc
	}{
		// sized bricks
		{"2x4", "", New("PB_DefaultBrick").WithSize(10, 20, 6)},
		{"1x2F", "", New("PB_DefaultBrick").WithSize(5, 10, 2)},
		{"1x2f", "", New("PB_DefaultBrick").WithSize(5, 10, 2)},
		{"2x2H", "", New("PB_DefaultBrick").WithSize(10, 10, 4)},
		{"1x1x5", "", New("PB_DefaultBrick").WithSize(5, 5, 30)},
		{"1x4 Print", "Letters/-space", New("PB_DefaultTile").WithSize(5, 20, 6).WithRotation(0)},
		{"1x2F Print", "1x2f/blank", New("PB_DefaultTile").WithSize(5, 10, 2).WithRotation(0)},
		{"1x2F Print", "Letters/A", New("PB_DefaultBrick").WithSize(5, 10, 2).WithRotation(0)},

		// ramps
		{"45° Ramp 2x", "", New("PB_DefaultRamp").WithSize(10, 10, 6).WithRotation(0)},
		{"25° Ramp", "", New("PB_DefaultRamp").WithSize(15, 15, 6).WithRotation(0)},
		{"45° Ramp 1x Print", "", New("PB_DefaultRamp").WithSize(10, 5, 6).WithRotation(0)},
		{"-25° Ramp Corner", "", New("PB_DefaultRampCornerInverted").WithSize(15, 15, 6).WithRotation(0)},
		{"-45° Ramp 4x", "", New("PB_DefaultRampInverted").WithSize(10, 20, 6).WithRotation(0)},
		{"72° Inv Ramp Corner", "", New("PB_DefaultRampInnerCorner").WithSize(10, 10, 18).WithRotation(0)},
		{"-80° Inv Ramp Corner", "", New("PB_DefaultRampInnerCornerInverted").WithSize(10, 10, 30).WithRotation(0)},
		{"80° Ramp Corner", "", New("PB_DefaultRampCorner").WithSize(10, 10, 30).WithRotation(0)},

		// crests
		{"25° Crest End", "", New("PB_DefaultRampCrestEnd").WithSize(10, 5, 4).WithRotation(2).WithOffset(0, 0, -2)},
		{"45° Crest Corner", "", New("PB_DefaultRampCrestCorner").WithSize(10, 10, 6).WithRotation(0)},
		{"45° Crest 4x", "", New("PB_DefaultRampCrest").WithSize(10, 20, 6).WithRotation(0)},

		// flat and cubes
		{"4x4F Tile", "", New("PB_DefaultTile").WithSize(20, 20, 2)},
		{"32x32 Base", "", New("PB_DefaultBrick").WithSize(160, 160, 2)},
		{"4x Cube", "", New("PB_DefaultBrick").WithSize(20, 20, 20)},

		// sized shapes
		{"4x Ramp", "", New("PB_DefaultWedge").WithSize(20, 20, 20).WithRotation(3)},
		{"4x Ramp ", "", New("PB_DefaultWedge").WithSize(20, 20, 20).WithRotation(3)},
		{"4x Wedge Steep", "", New("PB_DefaultSideWedge").WithSize(20, 20, 40).WithRotation(2)},
		{"4x Cube Steep", "", New("PB_DefaultBrick").WithSize(20, 20, 40)},
		{"8x CornerB 1/4h", "", New("PB_DefaultRampInnerCorner").WithSize(40, 40, 10).WithRotation(2)},
		{"8x CornerC 1/2h", "", New("PB_DefaultRampCorner").WithSize(40, 40, 20).WithRotation(2)},
		{"2x CornerD", "", New("PB_DefaultRampInnerCorner").WithSize(10, 10, 10).WithRotation(2)},

		// largest width that still fits the target grid
		{"858993459x1", "", New("PB_DefaultBrick").WithSize(4294967295, 5, 6)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.name, tt.print), func(t *testing.T) {
			got, ok := Map(tt.name, bls.Brick{UIName: tt.name, Print: tt.print})
			if !ok {
				t.Fatalf("Map(%q) unmapped", tt.name)
			}
			if len(got) != 1 {
				t.Fatalf("Map(%q) = %d descriptors, want 1", tt.name, len(got))
			}
			if got[0] != tt.want {
				t.Errorf("Map(%q) = %s, want %s", tt.name, got[0], tt.want)
			}
		})
	}
}

func TestMapUnmapped(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{"Nonexistent Brick 42", "no rule"},
		{"", "empty name"},
		{"45° Inv Ramp", "inverted ramp needs corner"},
		{"45° Ramp 2x Corner", "length and corner are exclusive"},
		{"4x CornerA", "no target asset"},
		{"4x Ramp 3/4h", "unsupported height"},
		{"858993460x1", "width overflows"},
		{"1x1x715827883", "height overflows"},
		{"99999999999x1", "number too large"},
		{"Big 45° Crest 2x", "patterns are anchored"},
		{"2x4 ", "trailing space"},
		{"30° Ramp", "unknown angle"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			if got, ok := Map(tt.name, bls.Brick{UIName: tt.name}); ok {
				t.Errorf("Map(%q) = %v, want unmapped", tt.name, got)
			}
		})
	}
}

func TestMapLiteralComposites(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Pine Tree", 1},
		{"2x2x2 Cone", 2},
		{"2x2 Octo", 3},
		{"Castle Wall", 4},
		{"1x4x5 Window", 2},
		{"32x32 Road", 6},
		{"32x32 Road T", 11},
		{"32x32 Road X", 32},
		{"32x32 Road C", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Map(tt.name, bls.Brick{})
			require.True(t, ok)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestMapRoadColors(t *testing.T) {
	got, ok := Map("32x32 Road", bls.Brick{})
	require.True(t, ok)

	stripe := brs.RGBA(254, 254, 232, 255)
	lane := brs.RGBA(51, 51, 51, 255)

	assert.Nil(t, got[0].ColorOverride, "sidewalks take the source color")
	assert.Nil(t, got[1].ColorOverride)
	for _, d := range got[2:4] {
		require.NotNil(t, d.ColorOverride)
		assert.Equal(t, stripe, *d.ColorOverride)
		assert.Equal(t, "PB_DefaultTile", d.Asset)
	}
	for _, d := range got[4:6] {
		require.NotNil(t, d.ColorOverride)
		assert.Equal(t, lane, *d.ColorOverride)
	}
}

func TestMapReturnsIndependentCopies(t *testing.T) {
	first, ok := Map("32x32 Road", bls.Brick{})
	require.True(t, ok)
	first[2].ColorOverride.R = 0
	first[0].Asset = "changed"

	second, ok := Map("32x32 Road", bls.Brick{})
	require.True(t, ok)
	assert.Equal(t, uint8(254), second[2].ColorOverride.R)
	assert.Equal(t, "PB_DefaultBrick", second[0].Asset)
	assert.Equal(t, uint8(254), roadStripe.ColorOverride.R)
}

func TestPropertyLiteralIgnoresBrickFields(t *testing.T) {
	names := LiteralNames()
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(names).Draw(t, "name")
		from := bls.Brick{
			UIName: name,
			Position: [3]float64{
				rapid.Float64Range(-1e4, 1e4).Draw(t, "x"),
				rapid.Float64Range(-1e4, 1e4).Draw(t, "y"),
				rapid.Float64Range(-1e4, 1e4).Draw(t, "z"),
			},
			Angle:      rapid.Uint8Range(0, 3).Draw(t, "angle"),
			ColorIndex: rapid.Uint8().Draw(t, "color"),
			ColorFx:    rapid.Uint8().Draw(t, "fx"),
			Print:      rapid.SampledFrom([]string{"", "Letters/-space", "Letters/A"}).Draw(t, "print"),
			Collision:  rapid.Bool().Draw(t, "collision"),
		}

		got, ok := Map(name, from)
		want, wantOK := Map(name, bls.Brick{})
		if !ok || !wantOK {
			t.Fatalf("Map(%q) unmapped", name)
		}
		if !assert.ObjectsAreEqual(want, got) {
			t.Fatalf("Map(%q) depends on brick fields: %v vs %v", name, got, want)
		}
	})
}

func TestPropertySizeRule(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.Uint32Range(1, 1000).Draw(t, "width")
		l := rapid.Uint32Range(1, 1000).Draw(t, "length")
		h := rapid.Uint32Range(1, 1000).Draw(t, "height")
		suffix := rapid.SampledFrom([]string{"", "F", "f", "H", "h", "xN"}).Draw(t, "suffix")

		var name string
		var wantZ uint32
		switch suffix {
		case "":
			name, wantZ = fmt.Sprintf("%dx%d", w, l), 6
		case "F", "f":
			name, wantZ = fmt.Sprintf("%dx%d%s", w, l, suffix), 2
		case "H", "h":
			name, wantZ = fmt.Sprintf("%dx%d%s", w, l, suffix), 4
		default:
			name, wantZ = fmt.Sprintf("%dx%dx%d", w, l, h), h*6
		}

		got, ok := Map(name, bls.Brick{})
		if !ok || len(got) != 1 {
			t.Fatalf("Map(%q) = %v, %v", name, got, ok)
		}
		want := [3]uint32{w * 5, l * 5, wantZ}
		if got[0].Size != want {
			t.Fatalf("Map(%q).Size = %v, want %v", name, got[0].Size, want)
		}
		if got[0].RotationOffset != 1 || got[0].Asset != "PB_DefaultBrick" {
			t.Fatalf("Map(%q) = %s", name, got[0])
		}
	})
}

func TestPropertyMapNeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.OneOf(
			rapid.String(),
			rapid.StringMatching(`[0-9]{1,12}x[0-9]{1,12}(x[0-9]{1,12}|F|H)?( Print)?`),
			rapid.StringMatching(`-?(25|45|72|80)° (Inv )?Ramp( [0-9]{1,12}x)?( Corner)?`),
			rapid.StringMatching(`[0-9]{1,12}x (Cube|Ramp|CornerA|CornerB|CornerC|CornerD|Wedge)( Steep| 3/4h| 1/2h| 1/4h)?`),
		).Draw(t, "name")

		got, ok := Map(name, bls.Brick{UIName: name})
		if ok && len(got) == 0 {
			t.Fatalf("Map(%q) mapped to an empty list", name)
		}
		for _, d := range got {
			if d.RotationOffset > 3 {
				t.Fatalf("Map(%q) rotation offset %d", name, d.RotationOffset)
			}
		}
	})
}

func TestLiteralNamesSorted(t *testing.T) {
	names := LiteralNames()
	require.Len(t, names, len(literals))
	assert.IsIncreasing(t, names)
}

func TestPatternsAnchored(t *testing.T) {
	for _, p := range Patterns() {
		assert.Regexp(t, `^\^.*\$$`, p)
	}
}
