package utf

import "bytes"

const encUTF8 = "UTF-8"

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// DecodeUTF8 decodes UTF-8 bytes into codepoints (RFC 3629).
//
// Stray continuation bytes, lead bytes above 0xF7, truncated sequences,
// overlong forms, surrogates and values above U+10FFFF are malformed. A
// truncated sequence is one unit spanning its lead byte and the continuation
// bytes that were present; any other malformed sequence is one unit of its
// declared length.
func DecodeUTF8(b []byte, opts *Options) ([]rune, error) {
	o := resolve(opts)
	d := newDecoder(encUTF8, o, len(b))

	i := 0
	if o.StripBOM && bytes.HasPrefix(b, bomUTF8) {
		i = len(bomUTF8)
	}

	for i < len(b) {
		c := b[i]
		if c < 0x80 {
			d.out = append(d.out, rune(c))
			i++
			continue
		}

		var size int
		var minRune, r rune
		switch {
		case c&0xE0 == 0xC0:
			size, minRune, r = 2, 0x80, rune(c&0x1F)
		case c&0xF0 == 0xE0:
			size, minRune, r = 3, 0x800, rune(c&0x0F)
		case c&0xF8 == 0xF0:
			size, minRune, r = 4, 0x10000, rune(c&0x07)
		default:
			reason := "unexpected continuation byte"
			if c >= 0xF8 {
				reason = "invalid lead byte"
			}
			if err := d.malformed(i, reason); err != nil {
				return nil, err
			}
			i++
			continue
		}

		n := 1
		for n < size && i+n < len(b) && b[i+n]&0xC0 == 0x80 {
			r = r<<6 | rune(b[i+n]&0x3F)
			n++
		}

		var err error
		switch {
		case n < size:
			err = d.malformed(i, "truncated sequence")
		case r < minRune && !o.AllowOverlong:
			err = d.malformed(i, "overlong encoding")
		default:
			err = d.scalar(i, r)
		}
		if err != nil {
			return nil, err
		}
		i += n
	}

	return d.out, nil
}

// DecodeUTF8String decodes b into a Go string. Surrogates admitted by
// AllowSurrogates cannot be represented in a string and become U+FFFD.
func DecodeUTF8String(b []byte, opts *Options) (string, error) {
	runes, err := DecodeUTF8(b, opts)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// EncodeUTF8 encodes codepoints as UTF-8 using the shortest form for each.
//
// Surrogate codepoints are encoded as three-byte sequences unless the mode is
// Strict without AllowSurrogates, in which case they are a *RangeError.
func EncodeUTF8(runes []rune, opts *Options) ([]byte, error) {
	o := resolve(opts)

	out := make([]byte, 0, len(runes)+len(bomUTF8))
	if o.WriteBOM {
		out = append(out, bomUTF8...)
	}

	for i, r := range runes {
		if err := checkEncodable(encUTF8, i, r, o); err != nil {
			return nil, err
		}

		switch {
		case r < 0x80:
			out = append(out, byte(r))
		case r < 0x800:
			out = append(out, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			out = append(out, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
		default:
			out = append(out, 0xF0|byte(r>>18), 0x80|byte(r>>12&0x3F), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
		}
	}

	return out, nil
}

// EncodeUTF8String encodes the codepoints of s. Invalid UTF-8 in s has
// already been replaced with U+FFFD by the string-to-rune conversion.
func EncodeUTF8String(s string, opts *Options) ([]byte, error) {
	return EncodeUTF8([]rune(s), opts)
}
