// Package byteconv converts between byte slices and fixed-width numbers.
//
// Every conversion takes a littleEndian flag; false selects big-endian
// (network) order. Integers of 8, 16, 32 and 64 bits are supported in both
// signed and unsigned forms through the generic BytesToInts and IntsToBytes,
// with named wrappers for each width. 64-bit values travel as int64/uint64 so
// the full two's-complement range round-trips exactly.
//
// Float decoding reads the IEEE-754 sign, exponent and mantissa fields directly
// and handles signed zero, infinities, NaN and subnormals.
//
// Conversions never fail. Input whose length is not a multiple of the word
// size is treated as if zero bytes followed it.
package byteconv
