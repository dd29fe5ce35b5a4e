package byteconv

import (
	"fmt"
	"strconv"
)

// Kinds lists the numeric type names accepted by DecodeAs and EncodeAs.
var Kinds = []string{
	"uint8", "int8", "uint16", "int16", "uint32", "int32",
	"uint64", "int64", "float32", "float64",
}

func boxed[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// DecodeAs unpacks b as an array of the named numeric type. The elements of
// the result have that concrete type.
func DecodeAs(kind string, b []byte, littleEndian bool) ([]interface{}, error) {
	switch kind {
	case "uint8":
		return boxed(BytesToUint8(b)), nil
	case "int8":
		return boxed(BytesToInt8(b)), nil
	case "uint16":
		return boxed(BytesToUint16(b, littleEndian)), nil
	case "int16":
		return boxed(BytesToInt16(b, littleEndian)), nil
	case "uint32":
		return boxed(BytesToUint32(b, littleEndian)), nil
	case "int32":
		return boxed(BytesToInt32(b, littleEndian)), nil
	case "uint64":
		return boxed(BytesToUint64(b, littleEndian)), nil
	case "int64":
		return boxed(BytesToInt64(b, littleEndian)), nil
	case "float32":
		return boxed(BytesToFloat32(b, littleEndian)), nil
	case "float64":
		return boxed(BytesToFloat64(b, littleEndian)), nil
	default:
		return nil, fmt.Errorf("byteconv: unknown numeric type %q", kind)
	}
}

func parseInts[T Integer](values []string, bits int, signed bool) ([]T, error) {
	out := make([]T, len(values))
	for i, s := range values {
		if signed {
			n, err := strconv.ParseInt(s, 0, bits)
			if err != nil {
				return nil, fmt.Errorf("byteconv: value %d: %w", i, err)
			}
			out[i] = T(n)
			continue
		}
		n, err := strconv.ParseUint(s, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("byteconv: value %d: %w", i, err)
		}
		out[i] = T(n)
	}
	return out, nil
}

func encodeInts[T Integer](values []string, bits int, signed, littleEndian bool) ([]byte, error) {
	v, err := parseInts[T](values, bits, signed)
	if err != nil {
		return nil, err
	}
	return IntsToBytes(v, littleEndian), nil
}

// EncodeAs parses each value as the named numeric type and packs the results.
// Integers accept the prefixes understood by strconv (0x, 0o, 0b).
func EncodeAs(kind string, values []string, littleEndian bool) ([]byte, error) {
	switch kind {
	case "uint8":
		return encodeInts[uint8](values, 8, false, littleEndian)
	case "int8":
		return encodeInts[int8](values, 8, true, littleEndian)
	case "uint16":
		return encodeInts[uint16](values, 16, false, littleEndian)
	case "int16":
		return encodeInts[int16](values, 16, true, littleEndian)
	case "uint32":
		return encodeInts[uint32](values, 32, false, littleEndian)
	case "int32":
		return encodeInts[int32](values, 32, true, littleEndian)
	case "uint64":
		return encodeInts[uint64](values, 64, false, littleEndian)
	case "int64":
		return encodeInts[int64](values, 64, true, littleEndian)
	case "float32":
		f := make([]float32, len(values))
		for i, s := range values {
			n, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return nil, fmt.Errorf("byteconv: value %d: %w", i, err)
			}
			f[i] = float32(n)
		}
		return Float32ToBytes(littleEndian, f...), nil
	case "float64":
		f := make([]float64, len(values))
		for i, s := range values {
			n, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("byteconv: value %d: %w", i, err)
			}
			f[i] = n
		}
		return Float64ToBytes(littleEndian, f...), nil
	default:
		return nil, fmt.Errorf("byteconv: unknown numeric type %q", kind)
	}
}
