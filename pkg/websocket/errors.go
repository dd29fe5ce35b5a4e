package websocket

import "errors"

var (
	// ErrIncompleteFrame indicates the buffer ends before the frame does.
	// More bytes are needed; the input is not malformed.
	ErrIncompleteFrame = errors.New("websocket: incomplete frame")

	// ErrFrameTooLarge indicates a declared payload length that cannot be
	// held in memory on this platform.
	ErrFrameTooLarge = errors.New("websocket: frame too large")

	// ErrLengthMismatch indicates a header PayloadLength that disagrees with
	// the actual payload.
	ErrLengthMismatch = errors.New("websocket: payload length mismatch")

	// ErrProtocolError indicates a frame that violates RFC 6455 framing rules.
	// Section 5.2: the most significant bit of a 64-bit length must be 0.
	ErrProtocolError = errors.New("websocket: protocol error")

	// ErrReservedBits indicates RSV1/RSV2/RSV3 bits are set.
	// Section 5.2: reserved bits must be 0 unless an extension is negotiated.
	ErrReservedBits = errors.New("websocket: reserved bits must be 0")

	// ErrInvalidOpcode indicates a reserved opcode.
	// Section 5.2: opcodes 0x3-0x7 and 0xB-0xF are reserved.
	ErrInvalidOpcode = errors.New("websocket: invalid opcode")

	// ErrControlFragmented indicates a control frame with FIN=0.
	// Section 5.5: control frames must not be fragmented.
	ErrControlFragmented = errors.New("websocket: control frame must not be fragmented")

	// ErrControlTooLarge indicates a control frame payload over 125 bytes.
	ErrControlTooLarge = errors.New("websocket: control frame payload too large")
)
