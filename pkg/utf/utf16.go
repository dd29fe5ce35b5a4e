package utf

import (
	"bytes"

	"github.com/ssargent/binkit/pkg/byteconv"
)

const encUTF16 = "UTF-16"

const (
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	surrogateOffset  = 0x10000
)

// byteOrder16 resolves the code unit order and the number of leading bytes to
// skip.
func byteOrder16(b []byte, o Options) (littleEndian bool, skip int) {
	switch o.Endian {
	case LittleEndian:
		littleEndian = true
	case BigEndian:
	default:
		switch {
		case bytes.HasPrefix(b, []byte{0xFE, 0xFF}):
			return false, 2
		case bytes.HasPrefix(b, []byte{0xFF, 0xFE}):
			return true, 2
		}
	}
	if o.StripBOM && len(b) >= 2 && byteconv.Uint16(b, littleEndian) == BOM {
		skip = 2
	}
	return littleEndian, skip
}

// DecodeUTF16 decodes UTF-16 bytes into codepoints (RFC 2781).
//
// A high surrogate followed by a low surrogate combines into one
// supplementary codepoint. An unpaired surrogate is one malformed unit unless
// AllowSurrogates is set. A dangling odd byte at the end is malformed.
func DecodeUTF16(b []byte, opts *Options) ([]rune, error) {
	o := resolve(opts)
	littleEndian, skip := byteOrder16(b, o)

	body := b[skip:]
	units := byteconv.BytesToUint16(body[:len(body)&^1], littleEndian)
	d := newDecoder(encUTF16, o, len(units))

	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		offset := skip + 2*i

		if !isSurrogate(u) {
			d.out = append(d.out, u)
			continue
		}

		if u <= highSurrogateMax && i+1 < len(units) {
			if lo := rune(units[i+1]); lo >= lowSurrogateMin && lo <= surrogateMax {
				d.out = append(d.out, surrogateOffset+(u-surrogateMin)<<10|(lo-lowSurrogateMin))
				i++
				continue
			}
		}

		if err := d.scalar(offset, u); err != nil {
			return nil, err
		}
	}

	if len(body)%2 != 0 {
		if err := d.malformed(len(b)-1, "odd trailing byte"); err != nil {
			return nil, err
		}
	}

	return d.out, nil
}

// EncodeUTF16 encodes codepoints as UTF-16, big-endian unless
// Options.Endian is LittleEndian. Supplementary codepoints become surrogate
// pairs.
func EncodeUTF16(runes []rune, opts *Options) ([]byte, error) {
	o := resolve(opts)

	units := make([]uint16, 0, len(runes)+1)
	if o.WriteBOM {
		units = append(units, BOM)
	}

	for i, r := range runes {
		if err := checkEncodable(encUTF16, i, r, o); err != nil {
			return nil, err
		}
		if r < surrogateOffset {
			units = append(units, uint16(r))
			continue
		}
		r -= surrogateOffset
		units = append(units, uint16(surrogateMin+r>>10), uint16(lowSurrogateMin+r&0x3FF))
	}

	return byteconv.Uint16ToBytes(o.Endian == LittleEndian, units...), nil
}
