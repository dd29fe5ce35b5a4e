// Package websocket encodes and decodes RFC 6455 WebSocket frames.
//
// The package works on byte slices only. It parses and builds frame headers,
// applies the client masking key, and computes the Sec-WebSocket-Accept
// handshake value. It does not open connections or manage message
// fragmentation across frames.
//
// RFC Reference: https://datatracker.ietf.org/doc/html/rfc6455
package websocket

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode is the 4-bit frame operation code (RFC 6455 Section 5.2).
//
// Opcodes 0x0-0x2 are data frames, 0x8-0xA are control frames.
// Opcodes 0x3-0x7 and 0xB-0xF are reserved for future use.
type Opcode byte

const (
	OpContinue Opcode = 0x0
	OpText     Opcode = 0x1
	OpBinary   Opcode = 0x2
	OpClose    Opcode = 0x8
	OpPing     Opcode = 0x9
	OpPong     Opcode = 0xA
)

// String returns the opcode name: continue, text, binary, close, ping, pong,
// or reserved.
func (o Opcode) String() string {
	switch o {
	case OpContinue:
		return "continue"
	case OpText:
		return "text"
	case OpBinary:
		return "binary"
	case OpClose:
		return "close"
	case OpPing:
		return "ping"
	case OpPong:
		return "pong"
	default:
		return "reserved"
	}
}

// IsControl reports whether o is a control opcode, i.e. has the high bit of
// the nibble set (RFC 6455 Section 5.5).
func (o Opcode) IsControl() bool {
	return o&0x08 != 0
}

// IsReserved reports whether o has no meaning assigned by RFC 6455.
func (o Opcode) IsReserved() bool {
	return o.String() == "reserved"
}

// ParseOpcode accepts an opcode name as returned by String, or a number in
// any base strconv understands. Numbers may name reserved opcodes.
func ParseOpcode(s string) (Opcode, error) {
	for op := Opcode(0); op <= 0xF; op++ {
		if !op.IsReserved() && strings.EqualFold(op.String(), s) {
			return op, nil
		}
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil || n > 0xF {
		return 0, fmt.Errorf("websocket: invalid opcode %q", s)
	}
	return Opcode(n), nil
}
