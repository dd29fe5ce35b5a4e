package utf

import (
	"bytes"

	"github.com/ssargent/binkit/pkg/byteconv"
)

const encUTF32 = "UTF-32"

func byteOrder32(b []byte, o Options) (littleEndian bool, skip int) {
	switch o.Endian {
	case LittleEndian:
		littleEndian = true
	case BigEndian:
	default:
		switch {
		case bytes.HasPrefix(b, []byte{0x00, 0x00, 0xFE, 0xFF}):
			return false, 4
		case bytes.HasPrefix(b, []byte{0xFF, 0xFE, 0x00, 0x00}):
			return true, 4
		}
	}
	if o.StripBOM && len(b) >= 4 && byteconv.Uint32(b, littleEndian) == BOM {
		skip = 4
	}
	return littleEndian, skip
}

// DecodeUTF32 decodes UTF-32 bytes into codepoints. Units above U+10FFFF,
// surrogates (unless allowed) and a trailing partial unit are malformed.
func DecodeUTF32(b []byte, opts *Options) ([]rune, error) {
	o := resolve(opts)
	littleEndian, skip := byteOrder32(b, o)

	body := b[skip:]
	units := byteconv.BytesToUint32(body[:len(body)&^3], littleEndian)
	d := newDecoder(encUTF32, o, len(units))

	for i, u := range units {
		if u > MaxRune {
			if err := d.malformed(skip+4*i, "codepoint above U+10FFFF"); err != nil {
				return nil, err
			}
			continue
		}
		if err := d.scalar(skip+4*i, rune(u)); err != nil {
			return nil, err
		}
	}

	if rem := len(body) % 4; rem != 0 {
		if err := d.malformed(len(b)-rem, "truncated code unit"); err != nil {
			return nil, err
		}
	}

	return d.out, nil
}

// EncodeUTF32 encodes codepoints as UTF-32, big-endian unless
// Options.Endian is LittleEndian.
func EncodeUTF32(runes []rune, opts *Options) ([]byte, error) {
	o := resolve(opts)

	units := make([]uint32, 0, len(runes)+1)
	if o.WriteBOM {
		units = append(units, BOM)
	}

	for i, r := range runes {
		if err := checkEncodable(encUTF32, i, r, o); err != nil {
			return nil, err
		}
		units = append(units, uint32(r))
	}

	return byteconv.Uint32ToBytes(o.Endian == LittleEndian, units...), nil
}
