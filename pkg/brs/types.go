// Package brs models Brickadia save documents and writes them in the binary
// BRS container format.
//
// A [SaveData] is assembled in memory (usually by the converter in
// pkg/core/convert) and serialized in one call with [Write]. Shared tables
// (assets, colors, materials, owners) are referenced from bricks by index.
//
// # Format
//
// The container starts with the magic bytes "BRS" and a little-endian u16
// version, followed by three zlib-compressed sections:
//
//  1. Header 1: map name, author name, description, author UUID, save time
//  2. Header 2: mods, brick assets, colors, materials, brick owners
//  3. Bricks: a bit-packed stream, one byte-aligned record per brick
//
// Only version 4 is written.
package brs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Version is the BRS format version produced by [Write].
const Version uint16 = 4

// Color is an 8-bit RGBA color in the target color space.
type Color struct {
	R, G, B, A uint8
}

// RGBA returns the color with the given channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// String formats the color as "rgba(r, g, b, a)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// User identifies a save author or brick owner.
type User struct {
	ID   uuid.UUID
	Name string
}

// PublicOwnerID is the UUID Brickadia reserves for the public owner
// (all bits set).
var PublicOwnerID = uuid.UUID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// PublicOwner is the synthetic owner every converted brick belongs to.
var PublicOwner = User{ID: PublicOwnerID, Name: "PUBLIC"}

// Direction is the axis a brick's top face points along.
type Direction uint8

// Directions in the order the format encodes them.
const (
	DirectionXPositive Direction = iota
	DirectionXNegative
	DirectionYPositive
	DirectionYNegative
	DirectionZPositive
	DirectionZNegative
)

// ColorMode references a brick color either by palette index or by value.
type ColorMode struct {
	Custom bool   // Value is used instead of Index
	Index  uint32 // index into SaveData.Colors
	Value  Color
}

// ColorIndex returns a ColorMode referencing the palette entry at i.
func ColorIndex(i uint32) ColorMode {
	return ColorMode{Index: i}
}

// ColorCustom returns a ColorMode carrying an explicit color.
func ColorCustom(c Color) ColorMode {
	return ColorMode{Custom: true, Value: c}
}

// Brick is one placed brick in the target document.
type Brick struct {
	AssetNameIndex uint32
	Size           [3]uint32 // zero for assets with an intrinsic size
	Position       [3]int32
	Direction      Direction
	Rotation       uint8 // quarter turns, 0..3
	Collision      bool
	Visibility     bool
	MaterialIndex  uint32
	Color          ColorMode
	OwnerIndex     uint32 // 0 is public, i > 0 is BrickOwners[i-1]
}

// SaveData is a complete target document.
type SaveData struct {
	Map         string
	Author      User
	Description string
	SaveTime    time.Time
	Mods        []string
	BrickAssets []string
	Colors      []Color
	Materials   []string
	BrickOwners []User
	Bricks      []Brick
}

// Validate checks that every brick references existing table entries and
// carries an encodable orientation.
func (d *SaveData) Validate() error {
	for i, b := range d.Bricks {
		if int(b.AssetNameIndex) >= len(d.BrickAssets) {
			return fmt.Errorf("brick %d: asset index %d out of range (%d assets)", i, b.AssetNameIndex, len(d.BrickAssets))
		}
		if !b.Color.Custom && int(b.Color.Index) >= len(d.Colors) {
			return fmt.Errorf("brick %d: color index %d out of range (%d colors)", i, b.Color.Index, len(d.Colors))
		}
		if int(b.MaterialIndex) >= len(d.Materials) {
			return fmt.Errorf("brick %d: material index %d out of range (%d materials)", i, b.MaterialIndex, len(d.Materials))
		}
		if int(b.OwnerIndex) > len(d.BrickOwners) {
			return fmt.Errorf("brick %d: owner index %d out of range (%d owners)", i, b.OwnerIndex, len(d.BrickOwners))
		}
		if b.Rotation > 3 {
			return fmt.Errorf("brick %d: rotation %d out of range", i, b.Rotation)
		}
		if b.Direction > DirectionZNegative {
			return fmt.Errorf("brick %d: direction %d out of range", i, b.Direction)
		}
	}
	return nil
}
