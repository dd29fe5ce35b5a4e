// Package pixel generates tiny solid-colour PNG images.
//
// The image is 4x4 pixels, 8-bit RGBA, with the pixel data stored in a single
// uncompressed deflate block so that no compressor is needed. Every pixel has
// the requested colour.
package pixel

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ssargent/binkit/pkg/byteconv"
	"github.com/ssargent/binkit/pkg/checksum"
	"github.com/ssargent/binkit/pkg/codec"
)

const (
	// Width and Height of the generated image.
	Width  = 4
	Height = 4

	bytesPerPixel = 4
	rowSize       = 1 + Width*bytesPerPixel // filter byte + pixels
	rawSize       = Height * rowSize

	dataURIPrefix = "data:image/png;base64,"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// ihdr is the fixed header chunk: 4x4, bit depth 8, colour type 6 (RGBA),
// deflate, adaptive filtering, no interlace. Its CRC never changes.
var ihdr = []byte{
	0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x00, Width, 0x00, 0x00, 0x00, Height,
	0x08, 0x06, 0x00, 0x00, 0x00,
	0xA9, 0xF1, 0x9E, 0x7E,
}

var iend = []byte{0x00, 0x00, 0x00, 0x00, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}

// RGBA returns a PNG image filled with the given colour.
func RGBA(r, g, b, a uint8) []byte {
	raw := make([]byte, 0, rawSize)
	for y := 0; y < Height; y++ {
		raw = append(raw, 0) // filter type None
		for x := 0; x < Width; x++ {
			raw = append(raw, r, g, b, a)
		}
	}

	out := make([]byte, 0, len(signature)+len(ihdr)+12+zlibSize(len(raw))+len(iend))
	out = append(out, signature...)
	out = append(out, ihdr...)
	out = appendChunk(out, "IDAT", storedZlib(raw))
	out = append(out, iend...)
	return out
}

// ParseColor parses rrggbb or rrggbbaa hex, with an optional leading '#'.
// A missing alpha channel is opaque.
func ParseColor(s string) (r, g, b, a uint8, err error) {
	c, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || (len(c) != 3 && len(c) != 4) {
		return 0, 0, 0, 0, fmt.Errorf("pixel: invalid colour %q: want rrggbb or rrggbbaa", s)
	}
	a = 0xFF
	if len(c) == 4 {
		a = c[3]
	}
	return c[0], c[1], c[2], a, nil
}

// DataURI returns RGBA as a data URI suitable for an <img> src attribute.
func DataURI(r, g, b, a uint8) string {
	return dataURIPrefix + codec.EncodeBase64(RGBA(r, g, b, a))
}

func zlibSize(n int) int { return 2 + 5 + n + 4 }

// storedZlib wraps data in a zlib stream holding one final stored block. data
// must be shorter than 64 KiB.
func storedZlib(data []byte) []byte {
	n := uint16(len(data))

	out := make([]byte, 0, zlibSize(len(data)))
	out = append(out, 0x78, 0x01) // deflate, 32K window, no dictionary
	out = append(out, 0x01)       // BFINAL=1, BTYPE=00
	out = append(out, byteconv.Uint16ToBytes(true, n, ^n)...)
	out = append(out, data...)
	out = append(out, byteconv.Uint32ToBytes(false, checksum.Adler32(data))...)
	return out
}

// appendChunk appends a length-prefixed chunk whose CRC covers type and data.
func appendChunk(dst []byte, typ string, data []byte) []byte {
	dst = append(dst, byteconv.Uint32ToBytes(false, uint32(len(data)))...)
	dst = append(dst, typ...)
	dst = append(dst, data...)

	crc := checksum.UpdateCRC32(checksum.CRC32String(typ), data)
	return append(dst, byteconv.Uint32ToBytes(false, crc)...)
}
