package byteconv

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Integer is the set of fixed-width integers that can be packed into bytes.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// byteOrder maps the littleEndian flag used throughout the package to a ByteOrder.
func byteOrder(littleEndian bool) binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func readWord(b []byte, size int, order binary.ByteOrder) uint64 {
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	default:
		return order.Uint64(b)
	}
}

func writeWord(b []byte, size int, order binary.ByteOrder, v uint64) {
	switch size {
	case 1:
		b[0] = byte(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	default:
		order.PutUint64(b, v)
	}
}

// BytesToInts unpacks b into a slice of fixed-width integers.
//
// A trailing partial word is read as if b were padded with zero bytes up to the
// next word boundary. Signed types are decoded as two's complement.
func BytesToInts[T Integer](b []byte, littleEndian bool) []T {
	var zero T
	size := binary.Size(zero)
	order := byteOrder(littleEndian)

	out := make([]T, (len(b)+size-1)/size)
	word := make([]byte, size)
	for i := range out {
		chunk := b[i*size : min((i+1)*size, len(b))]
		if len(chunk) < size {
			clear(word)
			copy(word, chunk)
			chunk = word
		}
		out[i] = T(readWord(chunk, size, order))
	}
	return out
}

// IntsToBytes packs values into a byte slice, each occupying its natural width.
func IntsToBytes[T Integer](values []T, littleEndian bool) []byte {
	var zero T
	size := binary.Size(zero)
	order := byteOrder(littleEndian)

	out := make([]byte, len(values)*size)
	for i, v := range values {
		writeWord(out[i*size:], size, order, uint64(v))
	}
	return out
}

// first returns the first decoded word or zero when b is empty.
func first[T Integer](b []byte, littleEndian bool) T {
	values := BytesToInts[T](b, littleEndian)
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

func BytesToUint8(b []byte) []uint8 { return BytesToInts[uint8](b, false) }
func BytesToInt8(b []byte) []int8   { return BytesToInts[int8](b, false) }

func BytesToUint16(b []byte, littleEndian bool) []uint16 {
	return BytesToInts[uint16](b, littleEndian)
}

func BytesToInt16(b []byte, littleEndian bool) []int16 {
	return BytesToInts[int16](b, littleEndian)
}

func BytesToUint32(b []byte, littleEndian bool) []uint32 {
	return BytesToInts[uint32](b, littleEndian)
}

func BytesToInt32(b []byte, littleEndian bool) []int32 {
	return BytesToInts[int32](b, littleEndian)
}

func BytesToUint64(b []byte, littleEndian bool) []uint64 {
	return BytesToInts[uint64](b, littleEndian)
}

func BytesToInt64(b []byte, littleEndian bool) []int64 {
	return BytesToInts[int64](b, littleEndian)
}

func Uint8ToBytes(v ...uint8) []byte { return IntsToBytes(v, false) }
func Int8ToBytes(v ...int8) []byte   { return IntsToBytes(v, false) }

func Uint16ToBytes(littleEndian bool, v ...uint16) []byte { return IntsToBytes(v, littleEndian) }
func Int16ToBytes(littleEndian bool, v ...int16) []byte   { return IntsToBytes(v, littleEndian) }
func Uint32ToBytes(littleEndian bool, v ...uint32) []byte { return IntsToBytes(v, littleEndian) }
func Int32ToBytes(littleEndian bool, v ...int32) []byte   { return IntsToBytes(v, littleEndian) }
func Uint64ToBytes(littleEndian bool, v ...uint64) []byte { return IntsToBytes(v, littleEndian) }
func Int64ToBytes(littleEndian bool, v ...int64) []byte   { return IntsToBytes(v, littleEndian) }

// Uint16 decodes the first 16-bit word of b.
func Uint16(b []byte, littleEndian bool) uint16 { return first[uint16](b, littleEndian) }

// Uint32 decodes the first 32-bit word of b.
func Uint32(b []byte, littleEndian bool) uint32 { return first[uint32](b, littleEndian) }

// Uint64 decodes the first 64-bit word of b.
func Uint64(b []byte, littleEndian bool) uint64 { return first[uint64](b, littleEndian) }

// Int64 decodes the first 64-bit word of b as two's complement.
func Int64(b []byte, littleEndian bool) int64 { return first[int64](b, littleEndian) }

// IEEE-754 field widths.
const (
	float32ExpBits  = 8
	float32FracBits = 23
	float64ExpBits  = 11
	float64FracBits = 52
)

// decodeFloat assembles a value from raw IEEE-754 fields. The result is exact
// for both binary32 and binary64 inputs since every binary32 value is
// representable as a float64.
func decodeFloat(bits uint64, expBits, fracBits uint) float64 {
	sign := (bits >> (expBits + fracBits)) & 1
	exp := int((bits >> fracBits) & (1<<expBits - 1))
	frac := bits & (1<<fracBits - 1)
	bias := 1<<(expBits-1) - 1

	var v float64
	switch exp {
	case 1<<expBits - 1:
		if frac != 0 {
			return math.NaN()
		}
		v = math.Inf(1)
	case 0:
		// zero or subnormal: no implicit leading bit
		v = math.Ldexp(float64(frac), 1-bias-int(fracBits))
	default:
		v = math.Ldexp(float64(frac|1<<fracBits), exp-bias-int(fracBits))
	}

	if sign == 1 {
		v = -v
	}
	return v
}

// BytesToFloat32 decodes IEEE-754 binary32 values from b.
func BytesToFloat32(b []byte, littleEndian bool) []float32 {
	words := BytesToUint32(b, littleEndian)
	out := make([]float32, len(words))
	for i, w := range words {
		out[i] = float32(decodeFloat(uint64(w), float32ExpBits, float32FracBits))
	}
	return out
}

// BytesToFloat64 decodes IEEE-754 binary64 values from b.
func BytesToFloat64(b []byte, littleEndian bool) []float64 {
	words := BytesToUint64(b, littleEndian)
	out := make([]float64, len(words))
	for i, w := range words {
		out[i] = decodeFloat(w, float64ExpBits, float64FracBits)
	}
	return out
}

func Float32ToBytes(littleEndian bool, v ...float32) []byte {
	words := make([]uint32, len(v))
	for i, f := range v {
		words[i] = math.Float32bits(f)
	}
	return IntsToBytes(words, littleEndian)
}

func Float64ToBytes(littleEndian bool, v ...float64) []byte {
	words := make([]uint64, len(v))
	for i, f := range v {
		words[i] = math.Float64bits(f)
	}
	return IntsToBytes(words, littleEndian)
}

// Latin1 narrows each rune of s to a single byte. Runes above U+00FF are
// truncated to their low eight bits. Bytes of s that are not valid UTF-8 are
// copied through unchanged.
func Latin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			out = append(out, s[i])
		} else {
			out = append(out, byte(r))
		}
		i += size
	}
	return out
}

// Latin1String widens each byte of b to the rune with the same value.
func Latin1String(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
