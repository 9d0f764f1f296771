package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: FLAC block headers, STREAMINFO, PICTURE.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: Vorbis comments.
	LittleEndian
)

// Unsigned is the set of fixed-width integers the generic helpers accept.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// order returns the encoding/binary byte order for endian.
func (e Endianness) order() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// decode assembles the first n bytes of b into an integer. Odd widths such
// as the 24-bit lengths have no encoding/binary helper.
func decode(b []byte, n int, endian Endianness) uint64 {
	order := endian.order()
	switch n {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	}
	var v uint64
	if endian == LittleEndian {
		for i := n - 1; i >= 0; i-- {
			v = v<<8 | uint64(b[i])
		}
		return v
	}
	for i := range n {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// encode writes the low n bytes of v into b.
func encode(b []byte, v uint64, n int, endian Endianness) {
	order := endian.order()
	switch n {
	case 1:
		b[0] = byte(v)
		return
	case 2:
		order.PutUint16(b, uint16(v))
		return
	case 4:
		order.PutUint32(b, uint32(v))
		return
	case 8:
		order.PutUint64(b, v)
		return
	}
	for i := range n {
		shift := uint(8 * i)
		if endian == LittleEndian {
			b[i] = byte(v >> shift)
		} else {
			b[n-1-i] = byte(v >> shift)
		}
	}
}
