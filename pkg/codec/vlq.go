package codec

import (
	"errors"
	"fmt"
	"strings"
)

const (
	vlqShift        = 5
	vlqContinuation = 1 << vlqShift // 0b100000
	vlqMask         = vlqContinuation - 1
)

var (
	// ErrInvalidVLQ indicates a character outside the base64 alphabet.
	ErrInvalidVLQ = errors.New("codec: invalid base64 VLQ character")

	// ErrTruncatedVLQ indicates the input ended while a continuation bit was set.
	ErrTruncatedVLQ = errors.New("codec: truncated base64 VLQ")

	// ErrVLQOverflow indicates a decoded value does not fit in an int64.
	ErrVLQOverflow = errors.New("codec: base64 VLQ value overflows int64")
)

// EncodeVLQ encodes n as a base64 variable-length quantity.
//
// The sign is folded into bit 0 of the first quantum, each symbol carries five
// payload bits and bit 5 flags that more symbols follow. Groups are emitted
// least significant first, as in source maps.
func EncodeVLQ(n int64) string {
	var sb strings.Builder
	appendVLQ(&sb, n)
	return sb.String()
}

// EncodeVLQs encodes each value in turn into one contiguous string.
func EncodeVLQs(values []int64) string {
	var sb strings.Builder
	for _, v := range values {
		appendVLQ(&sb, v)
	}
	return sb.String()
}

func appendVLQ(sb *strings.Builder, n int64) {
	// Work on the magnitude so MinInt64 needs no 65th bit: the first quantum
	// holds the sign and four magnitude bits, later quanta five each.
	mag := uint64(n)
	var sign uint64
	if n < 0 {
		mag = -mag
		sign = 1
	}

	digit := (mag&0xF)<<1 | sign
	mag >>= 4
	for {
		if mag > 0 {
			digit |= vlqContinuation
		}
		sb.WriteByte(Alphabet[digit])
		if mag == 0 {
			return
		}
		digit = mag & vlqMask
		mag >>= vlqShift
	}
}

// DecodeVLQ decodes a single value. Input beyond the first value is an error.
func DecodeVLQ(s string) (int64, error) {
	v, n, err := decodeOne(s, 0)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, fmt.Errorf("%w: unexpected data after value at offset %d", ErrInvalidVLQ, n)
	}
	return v, nil
}

// DecodeVLQs decodes every value in s.
func DecodeVLQs(s string) ([]int64, error) {
	var values []int64
	for pos := 0; pos < len(s); {
		v, next, err := decodeOne(s, pos)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		pos = next
	}
	return values, nil
}

// decodeOne reads one value starting at pos and returns it with the offset of
// the following symbol.
func decodeOne(s string, pos int) (int64, int, error) {
	var mag uint64
	var sign uint64
	shift := uint(0)

	for i := pos; ; i++ {
		if i >= len(s) {
			return 0, i, fmt.Errorf("%w at offset %d", ErrTruncatedVLQ, i)
		}

		c := s[i]
		digit := uint64(decodeMap[c])
		if digit == invalidSymbol {
			return 0, i, fmt.Errorf("%w %q at offset %d", ErrInvalidVLQ, c, i)
		}

		more := digit&vlqContinuation != 0
		digit &= vlqMask

		if i == pos {
			sign = digit & 1
			mag = digit >> 1
			shift = 4
		} else {
			if digit != 0 && (shift >= 64 || digit>>(64-shift) != 0) {
				return 0, i, fmt.Errorf("%w at offset %d", ErrVLQOverflow, pos)
			}
			mag |= digit << shift
			shift += vlqShift
		}

		if !more {
			v, err := applySign(mag, sign)
			if err != nil {
				return 0, i + 1, fmt.Errorf("%w at offset %d", err, pos)
			}
			return v, i + 1, nil
		}
	}
}

func applySign(mag, sign uint64) (int64, error) {
	if sign == 0 {
		if mag > 1<<63-1 {
			return 0, ErrVLQOverflow
		}
		return int64(mag), nil
	}
	if mag > 1<<63 {
		return 0, ErrVLQOverflow
	}
	return int64(-mag), nil
}
