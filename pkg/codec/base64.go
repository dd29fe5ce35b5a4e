package codec

import (
	"strings"

	"github.com/ssargent/binkit/pkg/byteconv"
)

// Alphabet is the standard MIME base64 alphabet (RFC 2045).
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const padChar = '='

// invalidSymbol marks bytes outside the alphabet in decodeMap.
const invalidSymbol = 0xFF

var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalidSymbol
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = byte(i)
	}
	return m
}()

// EncodeBase64 encodes data as padded MIME base64.
func EncodeBase64(data []byte) string {
	var sb strings.Builder
	sb.Grow((len(data) + 2) / 3 * 4)

	for i := 0; i < len(data); i += 3 {
		n := min(3, len(data)-i)

		var group uint32
		for j := 0; j < n; j++ {
			group |= uint32(data[i+j]) << (16 - 8*j)
		}

		// n bytes produce n+1 significant symbols
		for j := 0; j < 4; j++ {
			if j <= n {
				sb.WriteByte(Alphabet[(group>>(18-6*j))&0x3F])
			} else {
				sb.WriteByte(padChar)
			}
		}
	}

	return sb.String()
}

// EncodeBase64String encodes s with each character narrowed to one byte.
// Text outside Latin-1 must be transcoded to bytes first.
func EncodeBase64String(s string) string {
	return EncodeBase64(byteconv.Latin1(s))
}

// DecodeBase64 decodes base64 text. Characters outside the alphabet, padding
// included, are discarded before decoding. A dangling single symbol carries
// fewer than eight bits and is dropped.
func DecodeBase64(s string) []byte {
	symbols := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if v := decodeMap[s[i]]; v != invalidSymbol {
			symbols = append(symbols, v)
		}
	}

	out := make([]byte, 0, len(symbols)*3/4)
	for i := 0; i < len(symbols); i += 4 {
		n := min(4, len(symbols)-i)
		if n < 2 {
			break
		}

		var group uint32
		for j := 0; j < n; j++ {
			group |= uint32(symbols[i+j]) << (18 - 6*j)
		}

		// n symbols carry n-1 whole bytes
		for j := 0; j < n-1; j++ {
			out = append(out, byte(group>>(16-8*j)))
		}
	}

	return out
}

// DecodeBase64String decodes base64 text into a string holding one character
// per decoded byte.
func DecodeBase64String(s string) string {
	return byteconv.Latin1String(DecodeBase64(s))
}
