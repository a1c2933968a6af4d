package brs

// bitWriter appends bits least-significant first, matching the serializer
// Unreal Engine uses for the bricks section.
type bitWriter struct {
	buf []byte
	pos uint64 // bits written, including alignment padding
}

func (w *bitWriter) writeBit(v bool) {
	if w.pos%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if v {
		w.buf[len(w.buf)-1] |= 1 << (w.pos % 8)
	}
	w.pos++
}

// writeBits writes the n low bits of v.
func (w *bitWriter) writeBits(v uint32, n int) {
	for i := 0; i < n; i++ {
		w.writeBit(v>>i&1 == 1)
	}
}

// align pads with zero bits up to the next byte boundary.
func (w *bitWriter) align() {
	w.pos = (w.pos + 7) &^ 7
}

// writeInt writes v using just enough bits to represent values below max.
// max must be at least 2.
func (w *bitWriter) writeInt(v, max uint32) {
	var value uint64
	for mask := uint64(1); value+mask < uint64(max); mask <<= 1 {
		if uint64(v)&mask != 0 {
			w.writeBit(true)
			value += mask
		} else {
			w.writeBit(false)
		}
	}
}

// writeUintPacked writes v in 7-bit groups, each preceded by a
// continuation bit.
func (w *bitWriter) writeUintPacked(v uint32) {
	for {
		group := v & 0x7f
		v >>= 7
		w.writeBit(v != 0)
		w.writeBits(group, 7)
		if v == 0 {
			return
		}
	}
}

// writeIntPacked writes v as a packed magnitude with the sign in the low bit.
// math.MinInt32 has no such encoding; positions are clamped before they get
// here.
func (w *bitWriter) writeIntPacked(v int32) {
	mag := uint32(v)
	if v < 0 {
		mag = uint32(-int64(v))
	}
	u := mag << 1
	if v < 0 {
		u |= 1
	}
	w.writeUintPacked(u)
}

func (w *bitWriter) bytes() []byte {
	return w.buf
}
