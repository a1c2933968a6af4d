package convert

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestRotateOffset(t *testing.T) {
	tests := []struct {
		rot  uint8
		want [3]int32
	}{
		{0, [3]int32{3, 7, -2}},
		{1, [3]int32{-7, 3, -2}},
		{2, [3]int32{-3, -7, -2}},
		{3, [3]int32{7, -3, -2}},
		{5, [3]int32{-7, 3, -2}},
	}

	for _, tt := range tests {
		if got := RotateOffset([3]int32{3, 7, -2}, tt.rot); got != tt.want {
			t.Errorf("RotateOffset(_, %d) = %v, want %v", tt.rot, got, tt.want)
		}
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		source, offset, want uint8
	}{
		{0, 1, 1},
		{3, 1, 0},
		{2, 3, 1},
		{3, 0, 3},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Rotation(tt.source, tt.offset); got != tt.want {
			t.Errorf("Rotation(%d, %d) = %d, want %d", tt.source, tt.offset, got, tt.want)
		}
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name   string
		pos    [3]float64
		angle  uint8
		offset [3]int32
		want   [3]int32
	}{
		{"origin", [3]float64{}, 0, [3]int32{}, [3]int32{}},
		{"axes swap", [3]float64{1, 2, 3}, 0, [3]int32{}, [3]int32{40, 20, 60}},
		{"truncates", [3]float64{0.26, -0.26, 0.1}, 0, [3]int32{}, [3]int32{-5, 5, 2}},
		{"offset rotated", [3]float64{}, 1, [3]int32{0, -10, 4}, [3]int32{10, 0, 4}},
		{"offset and position", [3]float64{1, 1, 0}, 2, [3]int32{5, 0, 0}, [3]int32{15, 20, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Position(tt.pos, tt.angle, tt.offset); got != tt.want {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnitsSaturates(t *testing.T) {
	tests := []struct {
		in   float64
		off  int32
		want int32
	}{
		{1e12, 0, math.MaxInt32},
		{-1e12, 0, -math.MaxInt32},
		{math.NaN(), 0, 0},
		{math.NaN(), 7, 7},
		{math.Inf(1), 0, math.MaxInt32},
		{math.Inf(-1), 0, -math.MaxInt32},
		{-math.MaxInt32 / UnitsPerStud, -100, -math.MaxInt32},
		{math.MaxInt32 / UnitsPerStud, 100, math.MaxInt32},
		{-1, math.MinInt32 + 1, -math.MaxInt32},
	}
	for _, tt := range tests {
		if got := units(tt.in, tt.off); got != tt.want {
			t.Errorf("units(%v, %d) = %d, want %d", tt.in, tt.off, got, tt.want)
		}
	}
}

func TestPropertyPositionNeverMinInt32(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pos := [3]float64{
			rapid.Float64().Draw(t, "x"),
			rapid.Float64().Draw(t, "y"),
			rapid.Float64().Draw(t, "z"),
		}
		off := [3]int32{
			rapid.Int32().Draw(t, "ox"),
			rapid.Int32().Draw(t, "oy"),
			rapid.Int32().Draw(t, "oz"),
		}
		angle := rapid.Uint8Range(0, 3).Draw(t, "angle")
		for i, v := range Position(pos, angle, off) {
			if v == math.MinInt32 {
				t.Fatalf("axis %d = MinInt32 for pos %v offset %v", i, pos, off)
			}
		}
	})
}

func TestPropertyRotateOffsetOrderFour(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		off := [3]int32{
			rapid.Int32Range(-1e6, 1e6).Draw(t, "x"),
			rapid.Int32Range(-1e6, 1e6).Draw(t, "y"),
			rapid.Int32Range(-1e6, 1e6).Draw(t, "z"),
		}
		got := off
		for i := 0; i < 4; i++ {
			got = RotateOffset(got, 1)
		}
		if got != off {
			t.Fatalf("four quarter turns of %v = %v", off, got)
		}
		r := rapid.Uint8Range(0, 3).Draw(t, "rot")
		if RotateOffset(off, r)[2] != off[2] {
			t.Fatalf("rotation changed Z of %v", off)
		}
	})
}

func TestPropertyPositionWithoutRotation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pos := [3]float64{
			rapid.Float64Range(-1e5, 1e5).Draw(t, "x"),
			rapid.Float64Range(-1e5, 1e5).Draw(t, "y"),
			rapid.Float64Range(-1e5, 1e5).Draw(t, "z"),
		}
		got := Position(pos, 0, [3]int32{})
		want := [3]int32{int32(pos[1] * 20), int32(pos[0] * 20), int32(pos[2] * 20)}
		if got != want {
			t.Fatalf("Position(%v) = %v, want %v", pos, got, want)
		}
	})
}

func TestPropertyRotationInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.Uint8().Draw(t, "source")
		o := rapid.Uint8().Draw(t, "offset")
		if got := Rotation(s, o); got > 3 {
			t.Fatalf("Rotation(%d, %d) = %d", s, o, got)
		}
	})
}
