package websocket

import (
	"errors"
	"fmt"
	"math"

	"github.com/ssargent/binkit/pkg/byteconv"
)

const (
	// maxControlPayload is the largest control frame payload (Section 5.5).
	maxControlPayload = 125

	// Payload length encoding thresholds (Section 5.2).
	payloadLen7Bit  = 125 // 0-125: stored in 7 bits
	payloadLen16Bit = 126 // 126: followed by 16-bit length
	payloadLen64Bit = 127 // 127: followed by 64-bit length

	// MaxHeaderSize is the largest possible frame header: 2 bytes, an 8-byte
	// extended length and a 4-byte masking key.
	MaxHeaderSize = 14
)

// Header holds the fields that precede a frame's payload.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-------+-+-------------+-------------------------------+
//	|F|R|R|R| opcode|M| Payload len |    Extended payload length    |
//	|I|S|S|S|  (4)  |A|     (7)     |             (16/64)           |
//	|N|V|V|V|       |S|             |   (if payload len==126/127)   |
//	| |1|2|3|       |K|             |                               |
//	+-+-+-+-+-------+-+-------------+ - - - - - - - - - - - - - - - +
//	|     Extended payload length continued, if payload len == 127  |
//	+ - - - - - - - - - - - - - - - +-------------------------------+
//	|                               |Masking-key, if MASK set to 1  |
//	+-------------------------------+-------------------------------+
type Header struct {
	IsFinal bool
	IsRSV1  bool
	IsRSV2  bool
	IsRSV3  bool
	Opcode  Opcode

	// Masked reports the MASK bit; MaskKey is meaningful only when it is set.
	Masked  bool
	MaskKey [4]byte

	// PayloadLength is the declared length and may be any uint64, including
	// values too large to allocate.
	PayloadLength uint64
}

// Frame is a header plus its payload.
type Frame struct {
	Header
	Payload []byte
}

// Options adjusts frame encoding and decoding. A nil *Options is valid.
type Options struct {
	// NoMask leaves payload bytes as they are on the wire: decoding returns
	// the still-masked bytes and encoding emits the payload unmasked even
	// though the MASK bit and key are written.
	NoMask bool
}

func (o *Options) noMask() bool {
	return o != nil && o.NoMask
}

func incomplete(need, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrIncompleteFrame, need, have)
}

// DecodeHeader parses the frame header at the start of b and returns it along
// with the number of header bytes consumed.
func DecodeHeader(b []byte) (Header, int, error) {
	if len(b) < 2 {
		return Header{}, 0, incomplete(2, len(b))
	}

	h := Header{
		IsFinal: b[0]&0x80 != 0,
		IsRSV1:  b[0]&0x40 != 0,
		IsRSV2:  b[0]&0x20 != 0,
		IsRSV3:  b[0]&0x10 != 0,
		Opcode:  Opcode(b[0] & 0x0F),
		Masked:  b[1]&0x80 != 0,
	}

	n := 2
	switch length := b[1] & 0x7F; length {
	case payloadLen16Bit:
		if len(b) < 4 {
			return Header{}, 0, incomplete(4, len(b))
		}
		h.PayloadLength = uint64(byteconv.Uint16(b[2:4], false))
		n = 4
	case payloadLen64Bit:
		if len(b) < 10 {
			return Header{}, 0, incomplete(10, len(b))
		}
		h.PayloadLength = byteconv.Uint64(b[2:10], false)
		n = 10
	default:
		h.PayloadLength = uint64(length)
	}

	if h.Masked {
		if len(b) < n+4 {
			return Header{}, 0, incomplete(n+4, len(b))
		}
		copy(h.MaskKey[:], b[n:n+4])
		n += 4
	}

	return h, n, nil
}

// DecodeFrame parses one complete frame from the start of b. It returns the
// frame and the total number of bytes consumed. The payload is a copy and is
// unmasked unless opts.NoMask is set.
//
// If b holds only part of the frame the error wraps ErrIncompleteFrame.
func DecodeFrame(b []byte, opts *Options) (*Frame, int, error) {
	h, n, err := DecodeHeader(b)
	if err != nil {
		return nil, 0, err
	}

	if h.PayloadLength > uint64(math.MaxInt-n) {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, h.PayloadLength)
	}
	end := n + int(h.PayloadLength)
	if len(b) < end {
		return nil, 0, incomplete(end, len(b))
	}

	payload := make([]byte, h.PayloadLength)
	copy(payload, b[n:end])
	if h.Masked && !opts.noMask() {
		ApplyMask(payload, h.MaskKey)
	}

	return &Frame{Header: h, Payload: payload}, end, nil
}

// DecodeResult is the outcome of DecodeFrames.
type DecodeResult struct {
	Frames []*Frame

	// Remaining is the unconsumed tail of the input, holding at most the
	// beginning of one frame. It aliases the input slice.
	Remaining []byte
}

// DecodeFrames decodes every complete frame in b. A trailing partial frame is
// returned in Remaining rather than as an error.
func DecodeFrames(b []byte, opts *Options) (DecodeResult, error) {
	var res DecodeResult
	for len(b) > 0 {
		f, n, err := DecodeFrame(b, opts)
		if err != nil {
			if errors.Is(err, ErrIncompleteFrame) {
				break
			}
			return res, err
		}
		res.Frames = append(res.Frames, f)
		b = b[n:]
	}
	res.Remaining = b
	return res, nil
}

// EncodeHeader serializes h using the shortest length encoding that fits
// h.PayloadLength.
func EncodeHeader(h Header) []byte {
	out := make([]byte, 0, MaxHeaderSize)

	b0 := byte(h.Opcode) & 0x0F
	if h.IsFinal {
		b0 |= 0x80
	}
	if h.IsRSV1 {
		b0 |= 0x40
	}
	if h.IsRSV2 {
		b0 |= 0x20
	}
	if h.IsRSV3 {
		b0 |= 0x10
	}

	var b1 byte
	if h.Masked {
		b1 = 0x80
	}

	switch length := h.PayloadLength; {
	case length <= payloadLen7Bit:
		out = append(out, b0, b1|byte(length))
	case length <= math.MaxUint16:
		out = append(out, b0, b1|payloadLen16Bit)
		out = append(out, byteconv.Uint16ToBytes(false, uint16(length))...)
	default:
		out = append(out, b0, b1|payloadLen64Bit)
		out = append(out, byteconv.Uint64ToBytes(false, length)...)
	}

	if h.Masked {
		out = append(out, h.MaskKey[:]...)
	}
	return out
}

// EncodeFrame serializes f. A zero f.PayloadLength is taken from the payload;
// any other value must equal len(f.Payload) or the error wraps
// ErrLengthMismatch. The payload is masked with f.MaskKey when f.Masked is set
// unless opts.NoMask is set. f.Payload is never modified.
func EncodeFrame(f *Frame, opts *Options) ([]byte, error) {
	h := f.Header
	size := uint64(len(f.Payload))
	if h.PayloadLength != 0 && h.PayloadLength != size {
		return nil, fmt.Errorf("%w: header declares %d bytes, payload has %d", ErrLengthMismatch, h.PayloadLength, size)
	}
	h.PayloadLength = size

	out := EncodeHeader(h)
	start := len(out)
	out = append(out, f.Payload...)
	if h.Masked && !opts.noMask() {
		ApplyMask(out[start:], h.MaskKey)
	}
	return out, nil
}

// Validate checks f against the RFC 6455 framing rules that can be verified
// on a single frame: reserved bits and opcodes, the 64-bit length MSB, control
// frame limits, and agreement between PayloadLength and the payload.
func (f *Frame) Validate() error {
	if f.Opcode.IsReserved() {
		return fmt.Errorf("%w: 0x%X", ErrInvalidOpcode, byte(f.Opcode))
	}
	if f.IsRSV1 || f.IsRSV2 || f.IsRSV3 {
		return ErrReservedBits
	}
	if f.PayloadLength>>63 != 0 {
		return fmt.Errorf("%w: 64-bit length has its most significant bit set", ErrProtocolError)
	}
	if f.PayloadLength != 0 && f.PayloadLength != uint64(len(f.Payload)) {
		return fmt.Errorf("%w: header declares %d bytes, payload has %d", ErrLengthMismatch, f.PayloadLength, len(f.Payload))
	}

	if f.Opcode.IsControl() {
		if !f.IsFinal {
			return ErrControlFragmented
		}
		if len(f.Payload) > maxControlPayload {
			return fmt.Errorf("%w: %d bytes", ErrControlTooLarge, len(f.Payload))
		}
	}
	return nil
}

// ApplyMask XORs data in place with key, cycling through its four bytes
// (Section 5.3). Applying the same key twice restores the input.
func ApplyMask(data []byte, key [4]byte) {
	for i := range data {
		data[i] ^= key[i%4]
	}
}
