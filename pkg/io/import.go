package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/bls2brs/pkg/brs"
)

// Unmarshal decodes a JSON save document produced by [Marshal].
//
// Every brick must carry exactly one of "color" (palette index) or "rgba"
// (custom color). The decoded document is validated with
// [brs.SaveData.Validate], so indices are guaranteed to be in range.
func Unmarshal(data []byte) (*brs.SaveData, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ReadJSON decodes a JSON save document from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*brs.SaveData, error) {
	var in save
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	s := &brs.SaveData{
		Map:         in.Map,
		Author:      brs.User{ID: in.Author.ID, Name: in.Author.Name},
		Description: in.Description,
		SaveTime:    in.SaveTime,
		Mods:        in.Mods,
		BrickAssets: in.BrickAssets,
		Colors:      make([]brs.Color, len(in.Colors)),
		Materials:   in.Materials,
		BrickOwners: make([]brs.User, len(in.BrickOwners)),
		Bricks:      make([]brs.Brick, len(in.Bricks)),
	}
	for i, c := range in.Colors {
		s.Colors[i] = brs.RGBA(c[0], c[1], c[2], c[3])
	}
	for i, u := range in.BrickOwners {
		s.BrickOwners[i] = brs.User{ID: u.ID, Name: u.Name}
	}
	for i, b := range in.Bricks {
		var color brs.ColorMode
		switch {
		case b.Color != nil && b.RGBA == nil:
			color = brs.ColorIndex(*b.Color)
		case b.RGBA != nil && b.Color == nil:
			color = brs.ColorCustom(brs.RGBA(b.RGBA[0], b.RGBA[1], b.RGBA[2], b.RGBA[3]))
		default:
			return nil, fmt.Errorf("brick %d: need exactly one of color and rgba", i)
		}
		s.Bricks[i] = brs.Brick{
			AssetNameIndex: b.Asset,
			Size:           b.Size,
			Position:       b.Position,
			Direction:      brs.Direction(b.Direction),
			Rotation:       b.Rotation,
			Collision:      b.Collision,
			Visibility:     b.Visibility,
			MaterialIndex:  b.Material,
			Color:          color,
			OwnerIndex:     b.Owner,
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ImportJSON reads a JSON save document from the file at path.
func ImportJSON(path string) (*brs.SaveData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
