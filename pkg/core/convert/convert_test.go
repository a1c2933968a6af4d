package convert

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/bls2brs/pkg/bls"
	"github.com/matzehuels/bls2brs/pkg/brs"
)

// fakeSource serves bricks from memory and fails with err once they run out.
type fakeSource struct {
	description []string
	colors      []bls.Color
	count       int
	bricks      []bls.Brick
	err         error
}

func (s *fakeSource) Description() []string { return s.description }
func (s *fakeSource) Colors() []bls.Color   { return s.colors }
func (s *fakeSource) BrickCount() int       { return s.count }

func (s *fakeSource) Next() (bls.Brick, error) {
	if len(s.bricks) == 0 {
		if s.err != nil {
			return bls.Brick{}, s.err
		}
		return bls.Brick{}, io.EOF
	}
	b := s.bricks[0]
	s.bricks = s.bricks[1:]
	return b, nil
}

func palette64() []bls.Color {
	colors := make([]bls.Color, bls.PaletteSize)
	for i := range colors {
		colors[i] = bls.Color{R: float64(i) / bls.PaletteSize, G: 0.5, A: 1}
	}
	return colors
}

func newSource(bricks ...bls.Brick) *fakeSource {
	return &fakeSource{colors: palette64(), count: len(bricks), bricks: bricks}
}

func brick(name string) bls.Brick {
	return bls.Brick{UIName: name, Collision: true, Rendering: true}
}

func TestConvertSimpleBrick(t *testing.T) {
	b := brick("4x6")
	b.ColorIndex = 5
	rep, err := Convert(newSource(b), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Success)
	assert.Equal(t, 0, rep.Failure)
	require.Len(t, rep.Save.Bricks, 1)
	assert.Equal(t, []string{"PB_DefaultBrick"}, rep.Save.BrickAssets)

	want := brs.Brick{
		AssetNameIndex: 0,
		Size:           [3]uint32{20, 30, 6},
		Direction:      brs.DirectionZPositive,
		Rotation:       1,
		Collision:      true,
		Visibility:     true,
		MaterialIndex:  MaterialPlastic,
		Color:          brs.ColorIndex(5),
	}
	assert.Equal(t, want, rep.Save.Bricks[0])
}

func TestConvertUnmapped(t *testing.T) {
	rep, err := Convert(newSource(brick("Nonexistent Brick 42")), Options{})
	require.NoError(t, err)

	assert.Empty(t, rep.Save.Bricks)
	assert.Equal(t, 0, rep.Success)
	assert.Equal(t, 1, rep.Failure)
	assert.Equal(t, map[string]int{"Nonexistent Brick 42": 1}, rep.Unmapped)
	assert.Equal(t, 1, rep.Total())
}

func TestConvertCompositeRotation(t *testing.T) {
	b := brick("Castle Wall")
	b.Angle = 1
	rep, err := Convert(newSource(b), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Success, "a composite counts once")
	require.Len(t, rep.Save.Bricks, 4)

	wantPos := [][3]int32{{10, 0, 0}, {-10, 0, 0}, {0, 0, -18}, {0, 0, 28}}
	for i, got := range rep.Save.Bricks {
		assert.Equal(t, wantPos[i], got.Position, "brick %d", i)
		assert.Equal(t, uint8(2), got.Rotation, "brick %d", i)
	}
	// The two posts stay symmetric about the center.
	assert.Equal(t, rep.Save.Bricks[0].Position[0], -rep.Save.Bricks[1].Position[0])
}

func TestConvertCompositeRotationAllAngles(t *testing.T) {
	convertAt := func(angle uint8) []brs.Brick {
		b := brick("32x32 Road X")
		b.Position = [3]float64{3.5, -2, 0.1}
		b.Angle = angle
		rep, err := Convert(newSource(b), Options{})
		require.NoError(t, err)
		return rep.Save.Bricks
	}
	canonical := convertAt(0)
	require.Len(t, canonical, 32)

	for angle := uint8(1); angle < 4; angle++ {
		rotated := convertAt(angle)
		require.Len(t, rotated, len(canonical), "angle %d", angle)
		for i := range canonical {
			for j := i + 1; j < len(canonical); j++ {
				want := RotateOffset(delta(canonical[i], canonical[j]), angle)
				got := delta(rotated[i], rotated[j])
				assert.Equal(t, want, got, "angle %d, bricks %d and %d", angle, i, j)
			}
			assert.Equal(t, Rotation(canonical[i].Rotation, angle), rotated[i].Rotation, "angle %d, brick %d", angle, i)
		}
	}
}

// delta is the position of b relative to a.
func delta(a, b brs.Brick) [3]int32 {
	return [3]int32{
		b.Position[0] - a.Position[0],
		b.Position[1] - a.Position[1],
		b.Position[2] - a.Position[2],
	}
}

func TestConvertColorOverride(t *testing.T) {
	rep, err := Convert(newSource(brick("1x4x5 Window"), brick("1x4x5 Window")), Options{})
	require.NoError(t, err)
	require.Len(t, rep.Save.Bricks, 4)

	pane := brs.RGBA(255, 255, 255, 76)
	require.Len(t, rep.Save.Colors, bls.PaletteSize+1)
	assert.Equal(t, pane, rep.Save.Colors[bls.PaletteSize])

	assert.Equal(t, brs.ColorIndex(0), rep.Save.Bricks[0].Color, "frame keeps the source color")
	assert.Equal(t, brs.ColorIndex(bls.PaletteSize), rep.Save.Bricks[1].Color)
	assert.Equal(t, brs.ColorIndex(bls.PaletteSize), rep.Save.Bricks[3].Color)
}

func TestConvertColorIndexOutsidePalette(t *testing.T) {
	stray := brick("2x4")
	stray.ColorIndex = bls.PaletteSize
	last := brick("2x4")
	last.ColorIndex = bls.PaletteSize - 1

	rep, err := Convert(newSource(brick("32x32 Road"), stray, last), Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Success)
	assert.Equal(t, 1, rep.Failure)
	assert.Equal(t, 1, rep.BadColor)
	assert.Empty(t, rep.Unmapped, "a known name is not reported as unknown")

	// Road stripes intern override colors right after the source palette,
	// so none of the emitted 2x4 bricks may point there.
	require.Greater(t, len(rep.Save.Colors), bls.PaletteSize)
	var plain []brs.Brick
	for _, b := range rep.Save.Bricks {
		if b.Size == [3]uint32{10, 20, 6} {
			plain = append(plain, b)
		}
	}
	require.Len(t, plain, 1)
	assert.Equal(t, brs.ColorIndex(bls.PaletteSize-1), plain[0].Color)
	assert.NoError(t, rep.Save.Validate())
}

func TestConvertMaterials(t *testing.T) {
	tests := []struct {
		fx   uint8
		want uint32
	}{
		{0, MaterialPlastic},
		{1, MaterialMetallic},
		{2, MaterialMetallic},
		{3, MaterialGlow},
		{4, MaterialPlastic},
		{255, MaterialPlastic},
	}
	for _, tt := range tests {
		b := brick("2x2")
		b.ColorFx = tt.fx
		rep, err := Convert(newSource(b), Options{})
		require.NoError(t, err)
		assert.Equal(t, tt.want, rep.Save.Bricks[0].MaterialIndex, "color fx %d", tt.fx)
	}
}

func TestConvertFlags(t *testing.T) {
	b := bls.Brick{UIName: "2x2", Collision: false, Rendering: false}
	rep, err := Convert(newSource(b), Options{})
	require.NoError(t, err)
	assert.False(t, rep.Save.Bricks[0].Collision)
	assert.False(t, rep.Save.Bricks[0].Visibility)
}

func TestConvertDocumentDefaults(t *testing.T) {
	now := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	src := newSource()
	src.description = []string{"line one", "line two"}
	src.count = 3

	rep, err := Convert(src, Options{Now: func() time.Time { return now }})
	require.NoError(t, err)
	save := rep.Save

	assert.Equal(t, DefaultName, save.Map)
	assert.Equal(t, brs.User{ID: uuid.Nil, Name: DefaultName}, save.Author)
	assert.Equal(t, "line one\nline two", save.Description)
	assert.Equal(t, now, save.SaveTime)
	assert.Empty(t, save.Mods)
	assert.Equal(t, []string{"BMC_Plastic", "BMC_Glow", "BMC_Metallic"}, save.Materials)
	assert.Equal(t, []brs.User{brs.PublicOwner}, save.BrickOwners)
	assert.Len(t, save.Colors, bls.PaletteSize)
	assert.Equal(t, 3, cap(save.Bricks))
	assert.NoError(t, save.Validate())
}

func TestConvertOptions(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	rep, err := Convert(newSource(), Options{MapName: "Beta City", AuthorName: "Badspot", AuthorID: id})
	require.NoError(t, err)
	assert.Equal(t, "Beta City", rep.Save.Map)
	assert.Equal(t, brs.User{ID: id, Name: "Badspot"}, rep.Save.Author)
}

func TestConvertSourceError(t *testing.T) {
	boom := errors.New("boom")
	src := newSource(brick("2x2"))
	src.err = boom

	rep, err := Convert(src, Options{})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, rep)
}

func TestConvertLogsEachNameOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	src := newSource(brick("2x2"), brick("2x2"), brick("Mystery"), brick("Mystery"), brick("2x2"))
	rep, err := Convert(src, Options{Logger: logger})
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Success)
	assert.Equal(t, 2, rep.Failure)
	out := strings.TrimSpace(buf.String())
	assert.Len(t, strings.Split(out, "\n"), 2, "log output:\n%s", out)
	assert.Contains(t, out, "PB_DefaultBrick")
}

func TestConvertPrintedBricksKeyedByPrint(t *testing.T) {
	blank := brick("1x2F Print")
	blank.Print = "1x2f/blank"
	letter := brick("1x2F Print")
	letter.Print = "Letters/A"

	rep, err := Convert(newSource(blank, letter, blank), Options{})
	require.NoError(t, err)
	require.Len(t, rep.Save.Bricks, 3)

	assets := rep.Save.BrickAssets
	assert.Equal(t, "PB_DefaultTile", assets[rep.Save.Bricks[0].AssetNameIndex])
	assert.Equal(t, "PB_DefaultBrick", assets[rep.Save.Bricks[1].AssetNameIndex])
	assert.Equal(t, "PB_DefaultTile", assets[rep.Save.Bricks[2].AssetNameIndex])
}

func TestUnmappedByCount(t *testing.T) {
	rep := &Report{Unmapped: map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}}
	want := []NameCount{{"c", 5}, {"a", 2}, {"b", 2}, {"d", 1}}
	assert.Equal(t, want, rep.UnmappedByCount())
}

func TestConvertReader(t *testing.T) {
	text := bls.Signature + "\r\n1\r\nhello\r\n" +
		strings.Repeat("1 1 1 1\r\n", bls.PaletteSize) +
		"Linecount 2\r\n" +
		"2x4\" 0 0 0 0 0 3  0 0 1 1 1\r\n" +
		"Unknown Thing\" 1 1 1 0 0 3  0 0 1 1 1\r\n"

	r, err := bls.NewReader(strings.NewReader(text))
	require.NoError(t, err)
	rep, err := Convert(r, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Success)
	assert.Equal(t, 1, rep.Failure)
	assert.Equal(t, "hello", rep.Save.Description)
	assert.Equal(t, brs.RGBA(255, 255, 255, 255), rep.Save.Colors[3])
}
