// Package checksum implements the Adler-32 and CRC-32 checksums used by zlib,
// gzip and PNG.
//
// Both functions operate on fully buffered input and never fail. The empty
// input yields the identity value of each algorithm: 1 for Adler-32 and 0 for
// CRC-32.
package checksum

import "github.com/ssargent/binkit/pkg/byteconv"

const (
	// adlerMod is the largest prime below 2^16 (RFC 1950).
	adlerMod = 65521

	// adlerNMax is the largest n such that 255*n*(n+1)/2 + (n+1)*(adlerMod-1)
	// fits in 32 bits, so the modulo can be deferred across n bytes.
	adlerNMax = 5552

	// IEEE is the reflected CRC-32 polynomial shared by zlib, gzip and PNG.
	IEEE = 0xEDB88320
)

var crcTable = makeTable(IEEE)

func makeTable(poly uint32) *[256]uint32 {
	t := new([256]uint32)
	for i := range t {
		c := uint32(i)
		for k := 0; k < 8; k++ {
			if c&1 == 1 {
				c = poly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return t
}

// Adler32 returns the Adler-32 checksum of data.
func Adler32(data []byte) uint32 {
	return UpdateAdler32(1, data)
}

// UpdateAdler32 continues an Adler-32 checksum with more data. Passing 1 as
// adler starts a new checksum.
func UpdateAdler32(adler uint32, data []byte) uint32 {
	a, b := adler&0xFFFF, adler>>16
	for len(data) > 0 {
		n := min(len(data), adlerNMax)
		for _, c := range data[:n] {
			a += uint32(c)
			b += a
		}
		a %= adlerMod
		b %= adlerMod
		data = data[n:]
	}
	return b<<16 | a
}

// CRC32 returns the CRC-32 (IEEE) checksum of data.
func CRC32(data []byte) uint32 {
	return UpdateCRC32(0, data)
}

// UpdateCRC32 continues a CRC-32 with more data. Passing 0 as crc starts a new
// checksum; passing a previous result continues over the concatenated input.
func UpdateCRC32(crc uint32, data []byte) uint32 {
	crc = ^crc
	for _, c := range data {
		crc = crcTable[byte(crc)^c] ^ (crc >> 8)
	}
	return ^crc
}

// Adler32String checksums s with each character narrowed to one byte.
func Adler32String(s string) uint32 {
	return Adler32(byteconv.Latin1(s))
}

// CRC32String checksums s with each character narrowed to one byte.
func CRC32String(s string) uint32 {
	return CRC32(byteconv.Latin1(s))
}
