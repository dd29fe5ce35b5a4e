// Package codec provides text and record encodings for binkit.
//
// # Base64
//
// EncodeBase64 and DecodeBase64 implement the MIME alphabet
// (A-Z, a-z, 0-9, '+', '/') with '=' padding. The decoder is forgiving: every
// character outside the alphabet, including whitespace, line breaks and the
// padding itself, is discarded before the remaining symbols are decoded, so
// wrapped or partially padded input decodes without error.
//
// The String variants treat text as Latin-1: each character is one byte.
// Text containing characters above U+00FF must be transcoded with package utf
// before encoding.
//
// # Base64 VLQ
//
// The variable-length quantities used by source maps pack a signed integer
// into base64 symbols:
//
//	 5   4   3   2   1   0
//	+---+---+---+---+---+---+
//	| C |       payload     |   C = continuation: more symbols follow
//	+---+---+---+---+---+---+
//
// The first symbol stores the sign in bit 0 and the four lowest magnitude bits
// above it; each further symbol adds five more bits, least significant group
// first. For example 16 encodes as "gB" and -1 as "D".
//
// Decoding fails with ErrInvalidVLQ for characters outside the alphabet,
// ErrTruncatedVLQ when input stops mid-value and ErrVLQOverflow for values
// that do not fit an int64. All int64 values, MinInt64 included, round-trip.
//
// # Records
//
// Records are serialized in a binary format with the following structure:
//
//	[CRC32(4)][KeySize(4)][ValueSize(4)][Timestamp(8)][Key][Value]
//
// All integers are little-endian. The CRC32 covers every field after itself,
// so corruption anywhere in the header or data is reported by Validate:
//
//	c := codec.NewRecordCodec()
//	encoded, err := c.Encode([]byte("key"), []byte("value"))
//	if err != nil {
//	    return err
//	}
//	record, err := c.Decode(encoded)
//	if err != nil {
//	    return err
//	}
//	if err := record.Validate(); err != nil {
//	    return err // record is corrupted
//	}
//
// RecordCodec instances are safe for concurrent use.
package codec
