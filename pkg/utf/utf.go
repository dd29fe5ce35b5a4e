// Package utf transcodes between Unicode codepoints and their UTF-8, UTF-16
// and UTF-32 byte encodings.
//
// Decoders turn bytes into codepoints. Malformed input is handled according
// to Options.Mode: in Lenient mode (the default) each malformed unit becomes
// one U+FFFD REPLACEMENT CHARACTER; in Strict mode decoding stops with a
// *DecodeError that records the byte offset. Decoders never emit values
// outside [0, 0x10FFFF], and emit surrogate halves only when
// Options.AllowSurrogates is set.
//
// Encoders turn codepoints into bytes and always produce the shortest form.
// A codepoint outside [0, 0x10FFFF] is reported as a *RangeError regardless
// of mode.
//
// A nil *Options selects the defaults: lenient, no overlongs, no surrogates,
// byte-order mark kept, big-endian unless a BOM says otherwise.
package utf

import (
	"errors"
	"fmt"
)

const (
	// ReplacementChar is substituted for malformed input in Lenient mode.
	ReplacementChar = '\uFFFD'

	// BOM is the byte-order mark codepoint.
	BOM = '\uFEFF'

	// MaxRune is the largest Unicode scalar value.
	MaxRune = 0x10FFFF

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Mode selects how decoders react to malformed input.
type Mode int

const (
	// Lenient substitutes U+FFFD for each malformed unit.
	Lenient Mode = iota

	// Strict rejects malformed input with a *DecodeError.
	Strict
)

func (m Mode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Endianness selects the byte order of UTF-16 and UTF-32 code units.
type Endianness int

const (
	// AutoEndian reads the order from a leading byte-order mark, which is
	// consumed, and falls back to big-endian. Encoders treat it as big-endian.
	AutoEndian Endianness = iota
	BigEndian
	LittleEndian
)

// Options configures the transcoders.
type Options struct {
	Mode Mode

	// AllowOverlong accepts UTF-8 sequences longer than necessary.
	AllowOverlong bool

	// AllowSurrogates passes surrogate halves (U+D800..U+DFFF) through instead
	// of treating them as malformed. For UTF-16 this admits unpaired
	// surrogates.
	AllowSurrogates bool

	// StripBOM drops a leading U+FEFF when decoding.
	StripBOM bool

	// Endian is the UTF-16/UTF-32 byte order.
	Endian Endianness

	// WriteBOM prefixes encoded output with a byte-order mark.
	WriteBOM bool
}

func resolve(opts *Options) Options {
	if opts == nil {
		return Options{}
	}
	return *opts
}

var (
	// ErrInvalidSequence is wrapped by every *DecodeError.
	ErrInvalidSequence = errors.New("utf: invalid byte sequence")

	// ErrCodepointRange is wrapped by every *RangeError.
	ErrCodepointRange = errors.New("utf: codepoint out of range")
)

// DecodeError reports malformed input found in Strict mode.
type DecodeError struct {
	Encoding string // "UTF-8", "UTF-16" or "UTF-32"
	Offset   int    // byte offset of the malformed unit
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("utf: invalid %s at offset %d: %s", e.Encoding, e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrInvalidSequence }

// RangeError reports a codepoint that cannot be encoded.
type RangeError struct {
	Encoding  string
	Index     int // position in the input codepoint slice
	Codepoint rune
	Reason    string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("utf: cannot encode %#x at index %d as %s: %s", e.Codepoint, e.Index, e.Encoding, e.Reason)
}

func (e *RangeError) Unwrap() error { return ErrCodepointRange }

func isSurrogate(r rune) bool { return r >= surrogateMin && r <= surrogateMax }

// decoder accumulates codepoints and applies the malformed-input policy.
type decoder struct {
	opts     Options
	encoding string
	out      []rune
}

func newDecoder(encoding string, opts Options, capacity int) *decoder {
	return &decoder{opts: opts, encoding: encoding, out: make([]rune, 0, capacity)}
}

// malformed records one malformed unit at offset. It returns an error only in
// Strict mode.
func (d *decoder) malformed(offset int, reason string) error {
	if d.opts.Mode == Strict {
		return &DecodeError{Encoding: d.encoding, Offset: offset, Reason: reason}
	}
	d.out = append(d.out, ReplacementChar)
	return nil
}

// scalar accepts r, applying the surrogate policy.
func (d *decoder) scalar(offset int, r rune) error {
	switch {
	case r > MaxRune:
		return d.malformed(offset, "codepoint above U+10FFFF")
	case isSurrogate(r) && !d.opts.AllowSurrogates:
		return d.malformed(offset, "surrogate codepoint")
	}
	d.out = append(d.out, r)
	return nil
}

// checkEncodable validates a codepoint before encoding.
func checkEncodable(encoding string, index int, r rune, opts Options) error {
	if r < 0 || r > MaxRune {
		return &RangeError{Encoding: encoding, Index: index, Codepoint: r, Reason: "outside [0, 0x10FFFF]"}
	}
	if isSurrogate(r) && opts.Mode == Strict && !opts.AllowSurrogates {
		return &RangeError{Encoding: encoding, Index: index, Codepoint: r, Reason: "surrogate codepoint"}
	}
	return nil
}
