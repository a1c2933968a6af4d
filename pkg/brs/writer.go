package brs

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/unicode"
)

// magic is the file signature of every BRS save.
var magic = []byte("BRS")

// ticksAtUnixEpoch is the number of 100ns ticks between 0001-01-01 and
// 1970-01-01, the epoch the format stores save times against.
const ticksAtUnixEpoch = 621355968000000000

// Write validates data and serializes it to w.
func Write(w io.Writer, data *SaveData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("invalid save: %w", err)
	}

	var head []byte
	head = append(head, magic...)
	head = binary.LittleEndian.AppendUint16(head, Version)
	if _, err := w.Write(head); err != nil {
		return err
	}

	h1, err := encodeHeader1(data)
	if err != nil {
		return fmt.Errorf("header 1: %w", err)
	}
	if err := writeCompressed(w, h1); err != nil {
		return fmt.Errorf("header 1: %w", err)
	}

	h2, err := encodeHeader2(data)
	if err != nil {
		return fmt.Errorf("header 2: %w", err)
	}
	if err := writeCompressed(w, h2); err != nil {
		return fmt.Errorf("header 2: %w", err)
	}

	if err := writeCompressed(w, encodeBricks(data)); err != nil {
		return fmt.Errorf("bricks: %w", err)
	}
	return nil
}

func encodeHeader1(data *SaveData) ([]byte, error) {
	var b []byte
	var err error
	for _, s := range []string{data.Map, data.Author.Name, data.Description} {
		if b, err = appendString(b, s); err != nil {
			return nil, err
		}
	}
	b = appendUUID(b, data.Author.ID)
	b = binary.LittleEndian.AppendUint64(b, uint64(ticks(data.SaveTime)))
	return b, nil
}

func encodeHeader2(data *SaveData) ([]byte, error) {
	var b []byte
	var err error
	for _, list := range [][]string{data.Mods, data.BrickAssets} {
		if b, err = appendStrings(b, list); err != nil {
			return nil, err
		}
	}

	b = binary.LittleEndian.AppendUint32(b, uint32(len(data.Colors)))
	for _, c := range data.Colors {
		b = append(b, c.B, c.G, c.R, c.A)
	}

	if b, err = appendStrings(b, data.Materials); err != nil {
		return nil, err
	}

	b = binary.LittleEndian.AppendUint32(b, uint32(len(data.BrickOwners)))
	for _, u := range data.BrickOwners {
		b = appendUUID(b, u.ID)
		if b, err = appendString(b, u.Name); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func encodeBricks(data *SaveData) []byte {
	assetMax := max(2, uint32(len(data.BrickAssets)))
	colorMax := max(2, uint32(len(data.Colors)))

	var w bitWriter
	for _, brick := range data.Bricks {
		w.align()
		w.writeInt(brick.AssetNameIndex, assetMax)

		if brick.Size == ([3]uint32{}) {
			w.writeBit(false)
		} else {
			w.writeBit(true)
			for _, v := range brick.Size {
				w.writeUintPacked(v)
			}
		}
		for _, v := range brick.Position {
			w.writeIntPacked(v)
		}

		orientation := uint32(brick.Direction)<<2 | uint32(brick.Rotation)
		w.writeInt(orientation, 24)
		w.writeBit(brick.Collision)
		w.writeBit(brick.Visibility)

		// Material 1 is the engine default and costs a single bit.
		if brick.MaterialIndex == 1 {
			w.writeBit(false)
		} else {
			w.writeBit(true)
			w.writeUintPacked(brick.MaterialIndex)
		}

		if brick.Color.Custom {
			c := brick.Color.Value
			w.writeBit(true)
			w.writeBits(uint32(c.B)|uint32(c.G)<<8|uint32(c.R)<<16|uint32(c.A)<<24, 32)
		} else {
			w.writeBit(false)
			w.writeInt(brick.Color.Index, colorMax)
		}

		w.writeUintPacked(brick.OwnerIndex)
	}
	return w.bytes()
}

// writeCompressed writes a section as its uncompressed size, its compressed
// size, and the payload. The payload is stored raw, with a compressed size
// of zero, when zlib does not make it smaller.
func writeCompressed(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	var head []byte
	head = binary.LittleEndian.AppendUint32(head, uint32(len(raw)))
	payload := raw
	if buf.Len() < len(raw) {
		head = binary.LittleEndian.AppendUint32(head, uint32(buf.Len()))
		payload = buf.Bytes()
	} else {
		head = binary.LittleEndian.AppendUint32(head, 0)
	}

	if _, err := w.Write(head); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// utf16 encodes strings that are not plain ASCII.
var utf16 = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// appendString writes s as an Unreal FString: ASCII text with a positive
// length, otherwise UCS-2 with a negative length. Both forms count and
// include a terminating NUL.
func appendString(b []byte, s string) ([]byte, error) {
	if isASCII(s) {
		b = binary.LittleEndian.AppendUint32(b, uint32(len(s)+1))
		b = append(b, s...)
		return append(b, 0), nil
	}

	enc, err := utf16.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", s, err)
	}
	units := len(enc)/2 + 1
	b = binary.LittleEndian.AppendUint32(b, uint32(-int32(units)))
	b = append(b, enc...)
	return append(b, 0, 0), nil
}

func appendStrings(b []byte, list []string) ([]byte, error) {
	b = binary.LittleEndian.AppendUint32(b, uint32(len(list)))
	var err error
	for _, s := range list {
		if b, err = appendString(b, s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// appendUUID writes id as four little-endian words, each taken big-endian
// from the UUID bytes.
func appendUUID(b []byte, id uuid.UUID) []byte {
	for i := 0; i < 16; i += 4 {
		b = binary.LittleEndian.AppendUint32(b, binary.BigEndian.Uint32(id[i:i+4]))
	}
	return b
}

func ticks(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()/100 + ticksAtUnixEpoch
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
