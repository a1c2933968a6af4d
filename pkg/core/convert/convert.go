package convert

import (
	"errors"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/bls2brs/pkg/bls"
	"github.com/matzehuels/bls2brs/pkg/brs"
	"github.com/matzehuels/bls2brs/pkg/core/mapping"
)

// Material table indices.
const (
	MaterialPlastic uint32 = iota
	MaterialGlow
	MaterialMetallic
)

// Materials is the material table written to every converted save, indexed
// by the Material* constants.
var Materials = []string{"BMC_Plastic", "BMC_Glow", "BMC_Metallic"}

const (
	// DefaultName is used for the map and author when none is given.
	DefaultName = "Unknown"

	// MaxBrickHint caps the capacity preallocated from the declared brick
	// count, which comes from the untrusted save header.
	MaxBrickHint = 10_000_000
)

// Source yields the header and bricks of a source save. [bls.Reader]
// implements it.
type Source interface {
	Description() []string
	Colors() []bls.Color
	BrickCount() int
	// Next returns io.EOF after the last brick.
	Next() (bls.Brick, error)
}

// Options configures a conversion. The zero value is usable.
type Options struct {
	MapName    string
	AuthorName string
	AuthorID   uuid.UUID

	// Now supplies the save time. Defaults to time.Now.
	Now func() time.Time

	// Logger receives one debug line per distinct brick name. Defaults to a
	// discarding logger.
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.MapName == "" {
		o.MapName = DefaultName
	}
	if o.AuthorName == "" {
		o.AuthorName = DefaultName
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Report is the outcome of a conversion.
type Report struct {
	Save *brs.SaveData

	// Unmapped counts source bricks without a mapping by UI name.
	Unmapped map[string]int

	// BadColor counts source bricks whose color index lies outside the
	// source palette. They are included in Failure.
	BadColor int

	// Success and Failure count source bricks, not target bricks.
	Success int
	Failure int
}

// Total returns the number of source bricks read.
func (r *Report) Total() int { return r.Success + r.Failure }

// NameCount is a UI name and how many bricks carried it.
type NameCount struct {
	Name  string
	Count int
}

// UnmappedByCount returns the unmapped names, most frequent first. Names
// with equal counts are ordered alphabetically.
func (r *Report) UnmappedByCount() []NameCount {
	out := make([]NameCount, 0, len(r.Unmapped))
	for name, n := range r.Unmapped {
		out = append(out, NameCount{Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b NameCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Material selects the material index for a source color effect.
func Material(colorFx uint8) uint32 {
	switch colorFx {
	case 3:
		return MaterialGlow
	case 1, 2:
		return MaterialMetallic
	}
	return MaterialPlastic
}

// memoKey identifies a mapping result. Printed bricks resolve differently
// depending on their print, so the print is part of the key.
type memoKey struct {
	name  string
	print string
}

type converter struct {
	opts    Options
	palette *Palette
	memo    map[memoKey]mapping.Mapping
	report  *Report

	// nColors is the size of the source palette. Indices at or above it
	// would alias colors interned for overrides.
	nColors int
}

// Convert reads every brick from src and builds the target save.
//
// Bricks without a mapping, or whose color index lies outside the source
// palette, are counted in the report and skipped. Any error
// from src other than io.EOF aborts the conversion.
func Convert(src Source, opts Options) (*Report, error) {
	opts.setDefaults()

	seed := make([]brs.Color, len(src.Colors()))
	for i, c := range src.Colors() {
		seed[i] = MapColor(c)
	}

	save := &brs.SaveData{
		Map:         opts.MapName,
		Author:      brs.User{ID: opts.AuthorID, Name: opts.AuthorName},
		Description: strings.Join(src.Description(), "\n"),
		SaveTime:    opts.Now(),
		Mods:        []string{},
		Materials:   slices.Clone(Materials),
		BrickOwners: []brs.User{brs.PublicOwner},
		Bricks:      make([]brs.Brick, 0, min(max(src.BrickCount(), 0), MaxBrickHint)),
	}

	c := &converter{
		opts:    opts,
		palette: NewPalette(seed),
		memo:    make(map[memoKey]mapping.Mapping),
		report:  &Report{Save: save, Unmapped: make(map[string]int)},
		nColors: len(seed),
	}

	for {
		from, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		c.add(from)
	}

	save.BrickAssets = c.palette.Assets()
	save.Colors = c.palette.Colors()
	return c.report, nil
}

// add converts one source brick and appends its target bricks.
func (c *converter) add(from bls.Brick) {
	if int(from.ColorIndex) >= c.nColors {
		c.opts.Logger.Warn("color index outside palette", "name", from.UIName, "index", from.ColorIndex, "palette", c.nColors)
		c.report.Failure++
		c.report.BadColor++
		return
	}
	m, ok := c.resolve(from)
	if !ok {
		c.report.Failure++
		c.report.Unmapped[from.UIName]++
		return
	}
	c.report.Success++

	save := c.report.Save
	for _, d := range m {
		color := brs.ColorIndex(uint32(from.ColorIndex))
		if d.ColorOverride != nil {
			color = brs.ColorIndex(c.palette.Color(*d.ColorOverride))
		}
		save.Bricks = append(save.Bricks, brs.Brick{
			AssetNameIndex: c.palette.Asset(d.Asset),
			Size:           d.Size,
			Position:       Position(from.Position, from.Angle, d.Offset),
			Direction:      brs.DirectionZPositive,
			Rotation:       Rotation(from.Angle, d.RotationOffset),
			Collision:      from.Collision,
			Visibility:     from.Rendering,
			MaterialIndex:  Material(from.ColorFx),
			Color:          color,
			OwnerIndex:     0,
		})
	}
}

// resolve returns the memoized mapping for from, computing it on first use.
func (c *converter) resolve(from bls.Brick) (mapping.Mapping, bool) {
	key := memoKey{name: from.UIName}
	if strings.HasSuffix(from.UIName, " Print") {
		key.print = from.Print
	}
	if m, ok := c.memo[key]; ok {
		return m, m != nil
	}

	m, ok := mapping.Map(from.UIName, from)
	if !ok {
		m = nil
		c.opts.Logger.Debug("unmapped brick", "name", from.UIName)
	} else {
		descs := make([]string, len(m))
		for i, d := range m {
			descs[i] = d.String()
		}
		c.opts.Logger.Debug("mapped brick", "name", from.UIName, "to", strings.Join(descs, "; "))
	}
	c.memo[key] = m
	return m, ok
}
