package io

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/bls2brs/pkg/brs"
)

type save struct {
	Map         string    `json:"map"`
	Author      user      `json:"author"`
	Description string    `json:"description"`
	SaveTime    time.Time `json:"save_time"`
	Mods        []string  `json:"mods"`
	BrickAssets []string  `json:"brick_assets"`
	Colors      []rgba    `json:"colors"`
	Materials   []string  `json:"materials"`
	BrickOwners []user    `json:"brick_owners"`
	Bricks      []brick   `json:"bricks"`
}

type user struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type rgba [4]uint8

type brick struct {
	Asset      uint32    `json:"asset"`
	Size       [3]uint32 `json:"size"`
	Position   [3]int32  `json:"position"`
	Direction  uint8     `json:"direction"`
	Rotation   uint8     `json:"rotation"`
	Collision  bool      `json:"collision"`
	Visibility bool      `json:"visibility"`
	Material   uint32    `json:"material"`
	Color      *uint32   `json:"color,omitempty"`
	RGBA       *rgba     `json:"rgba,omitempty"`
	Owner      uint32    `json:"owner"`
}

func toRGBA(c brs.Color) rgba { return rgba{c.R, c.G, c.B, c.A} }

func toUser(u brs.User) user { return user{ID: u.ID, Name: u.Name} }

// Marshal encodes a save document as indented JSON.
func Marshal(s *brs.SaveData) ([]byte, error) {
	out := save{
		Map:         s.Map,
		Author:      toUser(s.Author),
		Description: s.Description,
		SaveTime:    s.SaveTime,
		Mods:        nonNil(s.Mods),
		BrickAssets: nonNil(s.BrickAssets),
		Colors:      make([]rgba, len(s.Colors)),
		Materials:   nonNil(s.Materials),
		BrickOwners: make([]user, len(s.BrickOwners)),
		Bricks:      make([]brick, len(s.Bricks)),
	}
	for i, c := range s.Colors {
		out.Colors[i] = toRGBA(c)
	}
	for i, u := range s.BrickOwners {
		out.BrickOwners[i] = toUser(u)
	}
	for i, b := range s.Bricks {
		br := brick{
			Asset:      b.AssetNameIndex,
			Size:       b.Size,
			Position:   b.Position,
			Direction:  uint8(b.Direction),
			Rotation:   b.Rotation,
			Collision:  b.Collision,
			Visibility: b.Visibility,
			Material:   b.MaterialIndex,
			Owner:      b.OwnerIndex,
		}
		if b.Color.Custom {
			c := toRGBA(b.Color.Value)
			br.RGBA = &c
		} else {
			idx := b.Color.Index
			br.Color = &idx
		}
		out.Bricks[i] = br
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// WriteJSON encodes a save document as JSON and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(s *brs.SaveData, w io.Writer) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
