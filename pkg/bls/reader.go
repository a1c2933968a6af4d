// Package bls reads Blockland save files.
//
// A save is a Windows-1252 encoded text file: a fixed signature line, a
// counted block of description lines, the 64-entry color palette, a brick
// count, then one line per brick. Lines starting with "+-" attach extra data
// (owner, events, lights, emitters, ...) to the preceding brick and are
// skipped.
//
//	This is a Blockland save file.  You probably shouldn't modify it cause you'll screw it up.
//	1
//	My castle
//	0.898039 0.000000 0.000000 1.000000
//	... 63 more color lines ...
//	Linecount 2
//	2x4" 0.5 1 0.3 1 1 3  0 0 1 1 1
//	32x32 Road" 10 10 0.1 0 1 7  0 0 1 1 1
//	+-OWNER 9789
//
// The header is parsed by [NewReader]; bricks are decoded lazily by
// [Reader.Next].
package bls

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Signature is the first line of every save.
const Signature = "This is a Blockland save file.  You probably shouldn't modify it cause you'll screw it up."

// PaletteSize is the number of colors stored in a save.
const PaletteSize = 64

var (
	ErrBadSignature   = errors.New("bls: missing save file signature")
	ErrBadHeader      = errors.New("bls: malformed header")
	ErrMalformedColor = errors.New("bls: malformed color")
	ErrMalformedBrick = errors.New("bls: malformed brick")
)

// Color is a palette entry with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Brick is one placed brick.
type Brick struct {
	UIName      string
	Position    [3]float64
	Angle       uint8 // quarter turns, 0..3
	IsBaseplate bool
	ColorIndex  uint8
	Print       string
	ColorFx     uint8
	ShapeFx     uint8
	RayCasting  bool
	Collision   bool
	Rendering   bool
}

// Reader decodes a save file.
type Reader struct {
	sc          *bufio.Scanner
	line        int
	description []string
	colors      []Color
	brickCount  int
}

// NewReader decodes the save header from r. Bricks are read with Next.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(charmap.Windows1252.NewDecoder().Reader(r))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	rd := &Reader{sc: sc}
	if err := rd.readHeader(); err != nil {
		return nil, err
	}
	return rd, nil
}

// Description returns the save description, one entry per line.
func (r *Reader) Description() []string { return r.description }

// Colors returns the color palette.
func (r *Reader) Colors() []Color { return r.colors }

// BrickCount returns the brick count declared in the header. It is only a
// hint: the number of bricks Next yields may differ.
func (r *Reader) BrickCount() int { return r.brickCount }

// Next returns the next brick, or io.EOF once all bricks have been read.
func (r *Reader) Next() (Brick, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			return Brick{}, err
		}
		if line == "" || strings.HasPrefix(line, "+-") {
			continue
		}
		b, err := parseBrick(line)
		if err != nil {
			return Brick{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return b, nil
	}
}

func (r *Reader) readHeader() error {
	sig, err := r.readLine()
	if err != nil {
		return headerErr(ErrBadSignature, err)
	}
	if sig != Signature {
		return ErrBadSignature
	}

	countLine, err := r.readLine()
	if err != nil {
		return headerErr(ErrBadHeader, err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || count < 0 {
		return fmt.Errorf("%w: line %d: description line count %q", ErrBadHeader, r.line, countLine)
	}
	r.description = make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, err := r.readLine()
		if err != nil {
			return headerErr(ErrBadHeader, err)
		}
		r.description = append(r.description, line)
	}

	r.colors = make([]Color, 0, PaletteSize)
	for i := 0; i < PaletteSize; i++ {
		line, err := r.readLine()
		if err != nil {
			return headerErr(ErrBadHeader, err)
		}
		c, err := parseColor(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", r.line, err)
		}
		r.colors = append(r.colors, c)
	}

	line, err := r.readLine()
	if err != nil {
		return headerErr(ErrBadHeader, err)
	}
	n, ok := strings.CutPrefix(line, "Linecount ")
	if !ok {
		return fmt.Errorf("%w: line %d: expected Linecount, got %q", ErrBadHeader, r.line, line)
	}
	if r.brickCount, err = strconv.Atoi(strings.TrimSpace(n)); err != nil || r.brickCount < 0 {
		return fmt.Errorf("%w: line %d: brick count %q", ErrBadHeader, r.line, n)
	}
	return nil
}

// readLine returns the next line without its line terminator.
func (r *Reader) readLine() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	r.line++
	return strings.TrimSuffix(r.sc.Text(), "\r"), nil
}

// headerErr reports a truncated header as kind, and passes read errors through.
func headerErr(kind, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected end of file", kind)
	}
	return err
}

func parseColor(line string) (Color, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrMalformedColor, line)
	}
	var ch [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrMalformedColor, line)
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// brickFields is the number of space-separated fields after the UI name.
// The print field is empty for unprinted bricks, which leaves two adjacent
// separators, so fields are split on single spaces.
const brickFields = 12

func parseBrick(line string) (Brick, error) {
	name, rest, ok := strings.Cut(line, "\" ")
	if !ok {
		return Brick{}, fmt.Errorf("%w: no UI name terminator in %q", ErrMalformedBrick, line)
	}
	fields := strings.Split(rest, " ")
	if len(fields) < brickFields {
		return Brick{}, fmt.Errorf("%w: %d fields after %q, want %d", ErrMalformedBrick, len(fields), name, brickFields)
	}

	b := Brick{UIName: name, Print: fields[6]}
	var err error
	for i := 0; i < 3; i++ {
		if b.Position[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return Brick{}, fmt.Errorf("%w: position of %q: %v", ErrMalformedBrick, name, err)
		}
	}

	small := []struct {
		dst   *uint8
		field int
		what  string
		max   uint64
	}{
		{&b.Angle, 3, "angle", 3},
		{&b.ColorIndex, 5, "color index", 255},
		{&b.ColorFx, 7, "color fx", 255},
		{&b.ShapeFx, 8, "shape fx", 255},
	}
	for _, s := range small {
		v, err := strconv.ParseUint(fields[s.field], 10, 8)
		if err != nil || v > s.max {
			return Brick{}, fmt.Errorf("%w: %s of %q: %q", ErrMalformedBrick, s.what, name, fields[s.field])
		}
		*s.dst = uint8(v)
	}

	flags := []struct {
		dst   *bool
		field int
	}{
		{&b.IsBaseplate, 4},
		{&b.RayCasting, 9},
		{&b.Collision, 10},
		{&b.Rendering, 11},
	}
	for _, f := range flags {
		v, err := parseFlag(fields[f.field])
		if err != nil {
			return Brick{}, fmt.Errorf("%w: flag %d of %q: %v", ErrMalformedBrick, f.field, name, err)
		}
		*f.dst = v
	}
	return b, nil
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("invalid flag %q", s)
}
