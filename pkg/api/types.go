package api

import (
	"github.com/ssargent/binkit/pkg/utf"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port int
	Bind string

	// APIKey is required in X-API-Key on /api/v1 routes. Empty disables the
	// check.
	APIKey string

	// UTF holds the transcoding defaults; query parameters override them.
	UTF *utf.Options

	// LittleEndian is the default byte order for integer decoding.
	LittleEndian bool

	// LogRequests enables the chi request logger.
	LogRequests bool
}

// ChecksumResponse is returned by the checksum endpoint
type ChecksumResponse struct {
	Algorithm string `json:"algorithm"`
	Value     uint32 `json:"value"`
	Hex       string `json:"hex"`
	Size      int    `json:"size"`
}

// DigestResponse is returned by the digest endpoint
type DigestResponse struct {
	Algorithm string `json:"algorithm"`
	Hex       string `json:"hex"`
	Size      int    `json:"size"`
}

// BytesResponse carries binary output as hex
type BytesResponse struct {
	Hex  string `json:"hex"`
	Size int    `json:"size"`
}

// Base64Response is returned by base64 encoding
type Base64Response struct {
	Base64 string `json:"base64"`
}

// VLQResponse carries both forms of a VLQ sequence
type VLQResponse struct {
	VLQ    string  `json:"vlq"`
	Values []int64 `json:"values"`
}

// UTFDecodeResponse is returned by the UTF decode endpoint
type UTFDecodeResponse struct {
	Encoding   string `json:"encoding"`
	Codepoints []rune `json:"codepoints"`
	Text       string `json:"text"`
}

// IntsResponse is returned by the integer decode endpoint
type IntsResponse struct {
	Type         string        `json:"type"`
	LittleEndian bool          `json:"little_endian"`
	Values       []interface{} `json:"values"`
}

// AcceptResponse is returned by the websocket accept endpoint
type AcceptResponse struct {
	Key    string `json:"key"`
	Accept string `json:"accept"`
}

// FrameInfo describes one decoded websocket frame
type FrameInfo struct {
	Final         bool   `json:"fin"`
	RSV1          bool   `json:"rsv1"`
	RSV2          bool   `json:"rsv2"`
	RSV3          bool   `json:"rsv3"`
	Opcode        byte   `json:"opcode"`
	OpcodeName    string `json:"opcode_name"`
	Masked        bool   `json:"masked"`
	MaskKey       string `json:"mask_key,omitempty"`
	PayloadLength uint64 `json:"payload_length"`
	PayloadHex    string `json:"payload_hex"`
	Valid         bool   `json:"valid"`
	Problem       string `json:"problem,omitempty"`
}

// FramesResponse is returned by the websocket decode endpoint
type FramesResponse struct {
	Frames    []FrameInfo `json:"frames"`
	Remaining int         `json:"remaining"`
}

// PixelResponse is returned by the pixel endpoint in data URI form
type PixelResponse struct {
	DataURI string `json:"data_uri"`
}

// VectorRequest creates a stored test vector
type VectorRequest struct {
	Name string `json:"name"`

	// Input is base64 encoded.
	Input string `json:"input"`
}

// VectorResponse describes a stored test vector
type VectorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Input     string `json:"input"`
	CRC32     string `json:"crc32"`
	Adler32   string `json:"adler32"`
	SHA1      string `json:"sha1"`
	CreatedAt string `json:"created_at"`
	Verified  *bool  `json:"verified,omitempty"`
	Problem   string `json:"problem,omitempty"`
}
