// Package digest implements the SHA-1 message digest (FIPS 180-1).
//
// SHA-1 is provided for legacy interoperability such as the WebSocket
// Sec-WebSocket-Accept handshake. It is not collision resistant and must not
// be used where cryptographic security is required.
package digest

import (
	"encoding/hex"
	"math/bits"

	"github.com/ssargent/binkit/pkg/byteconv"
)

const (
	// Size is the length of a SHA-1 digest in bytes.
	Size = 20

	// BlockSize is the SHA-1 block size in bytes.
	BlockSize = 64
)

// Initial hash values, FIPS 180-1 section 7.
const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// Round constants, one per group of 20 rounds.
const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// SHA1 returns the SHA-1 digest of data.
func SHA1(data []byte) [Size]byte {
	h := [5]uint32{init0, init1, init2, init3, init4}

	for _, block := range pad(data) {
		compress(&h, block)
	}

	var out [Size]byte
	copy(out[:], byteconv.Uint32ToBytes(false, h[:]...))
	return out
}

// SHA1Hex returns the SHA-1 digest of data as 40 lowercase hex characters.
func SHA1Hex(data []byte) string {
	sum := SHA1(data)
	return hex.EncodeToString(sum[:])
}

// SHA1String returns the hex SHA-1 digest of the UTF-8 encoding of s.
func SHA1String(s string) string {
	return SHA1Hex([]byte(s))
}

// pad appends the 0x80 marker, zero fill and the 64-bit big-endian bit length,
// then splits the message into 64-byte blocks.
func pad(data []byte) [][]byte {
	n := len(data) + 1 + 8
	total := (n + BlockSize - 1) / BlockSize * BlockSize

	msg := make([]byte, total)
	copy(msg, data)
	msg[len(data)] = 0x80
	copy(msg[total-8:], byteconv.Uint64ToBytes(false, uint64(len(data))*8))

	blocks := make([][]byte, 0, total/BlockSize)
	for i := 0; i < total; i += BlockSize {
		blocks = append(blocks, msg[i:i+BlockSize])
	}
	return blocks
}

func compress(h *[5]uint32, block []byte) {
	var w [80]uint32
	copy(w[:16], byteconv.BytesToUint32(block, false))
	for t := 16; t < 80; t++ {
		w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
	for t := 0; t < 80; t++ {
		var f, k uint32
		switch {
		case t < 20:
			f, k = (b&c)|(^b&d), k0
		case t < 40:
			f, k = b^c^d, k1
		case t < 60:
			f, k = (b&c)|(b&d)|(c&d), k2
		default:
			f, k = b^c^d, k3
		}

		temp := bits.RotateLeft32(a, 5) + f + e + w[t] + k
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, temp
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}
