package websocket

import (
	"crypto/rand"
	"fmt"

	"github.com/ssargent/binkit/pkg/codec"
	"github.com/ssargent/binkit/pkg/digest"
)

// acceptGUID is appended to the client key before hashing (Section 1.3).
const acceptGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

// AcceptKey computes the Sec-WebSocket-Accept value for a client's
// Sec-WebSocket-Key: base64(SHA-1(key + GUID)).
func AcceptKey(clientKey string) string {
	sum := digest.SHA1([]byte(clientKey + acceptGUID))
	return codec.EncodeBase64(sum[:])
}

// NewMaskKey returns a masking key from a cryptographically strong source, as
// Section 5.3 requires for client frames.
func NewMaskKey() ([4]byte, error) {
	var key [4]byte
	if _, err := rand.Read(key[:]); err != nil {
		return key, fmt.Errorf("websocket: generate mask key: %w", err)
	}
	return key, nil
}
