package api

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/binkit/pkg/byteconv"
	"github.com/ssargent/binkit/pkg/checksum"
	"github.com/ssargent/binkit/pkg/codec"
	"github.com/ssargent/binkit/pkg/digest"
	"github.com/ssargent/binkit/pkg/pixel"
	"github.com/ssargent/binkit/pkg/utf"
	"github.com/ssargent/binkit/pkg/websocket"
)

// maxBodySize bounds request bodies read by the codec handlers.
const maxBodySize = 4 << 20

// Server holds the API server state
type Server struct {
	store   VectorStore
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server. store and metrics may be nil.
func NewServer(store VectorStore, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		store:   store,
		config:  config,
		metrics: metrics,
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s parameter %q", name, v)
	}
	return b, nil
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleChecksum godoc
//
//	@Summary		Checksum a request body
//	@Description	Compute the Adler-32 or CRC-32 of the raw request body
//	@Tags			checksum
//	@Accept			octet-stream
//	@Produce		json
//	@Param			algo	path		string	true	"adler32 or crc32"
//	@Param			body	body		[]byte	true	"Data"
//	@Success		200		{object}	ChecksumResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/checksum/{algo} [post]
func (s *Server) handleChecksum(w http.ResponseWriter, r *http.Request) {
	algo := strings.ToLower(chi.URLParam(r, "algo"))

	var sum func([]byte) uint32
	switch algo {
	case "adler32":
		sum = checksum.Adler32
	case "crc32":
		sum = checksum.CRC32
	default:
		sendError(w, fmt.Sprintf("Unknown checksum algorithm %q", algo), http.StatusBadRequest)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		s.metrics.RecordCodecOperation(algo, "checksum", false, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	value := sum(body)
	s.metrics.RecordCodecOperation(algo, "checksum", true, len(body))
	sendSuccess(w, ChecksumResponse{
		Algorithm: algo,
		Value:     value,
		Hex:       fmt.Sprintf("%08x", value),
		Size:      len(body),
	})
}

// handleSHA1 godoc
//
//	@Summary		SHA-1 digest
//	@Description	Compute the SHA-1 digest of the raw request body
//	@Tags			digest
//	@Accept			octet-stream
//	@Produce		json
//	@Param			body	body		[]byte	true	"Data"
//	@Success		200		{object}	DigestResponse
//	@Security		ApiKeyAuth
//	@Router			/digest/sha1 [post]
func (s *Server) handleSHA1(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.metrics.RecordCodecOperation("sha1", "digest", false, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("sha1", "digest", true, len(body))
	sendSuccess(w, DigestResponse{Algorithm: "sha1", Hex: digest.SHA1Hex(body), Size: len(body)})
}

// handleBase64Encode godoc
//
//	@Summary		Base64 encode
//	@Tags			base64
//	@Accept			octet-stream
//	@Produce		json
//	@Param			body	body		[]byte	true	"Data"
//	@Success		200		{object}	Base64Response
//	@Security		ApiKeyAuth
//	@Router			/base64/encode [post]
func (s *Server) handleBase64Encode(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.metrics.RecordCodecOperation("base64", "encode", false, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("base64", "encode", true, len(body))
	sendSuccess(w, Base64Response{Base64: codec.EncodeBase64(body)})
}

// handleBase64Decode godoc
//
//	@Summary		Base64 decode
//	@Description	Decode base64 text, skipping characters outside the alphabet
//	@Tags			base64
//	@Accept			plain
//	@Produce		json
//	@Param			body	body		string	true	"Base64 text"
//	@Success		200		{object}	BytesResponse
//	@Security		ApiKeyAuth
//	@Router			/base64/decode [post]
func (s *Server) handleBase64Decode(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.metrics.RecordCodecOperation("base64", "decode", false, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	decoded := codec.DecodeBase64(string(body))
	s.metrics.RecordCodecOperation("base64", "decode", true, len(body))
	sendSuccess(w, BytesResponse{Hex: hex.EncodeToString(decoded), Size: len(decoded)})
}

// handleVLQEncode godoc
//
//	@Summary		Base64 VLQ encode
//	@Tags			vlq
//	@Produce		json
//	@Param			values	query		string	true	"Comma separated integers"
//	@Success		200		{object}	VLQResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/vlq/encode [get]
func (s *Server) handleVLQEncode(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("values")
	var values []int64
	if raw != "" {
		for _, field := range strings.Split(raw, ",") {
			n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil {
				s.metrics.RecordCodecOperation("vlq", "encode", false, len(raw))
				sendError(w, fmt.Sprintf("Invalid integer %q", field), http.StatusBadRequest)
				return
			}
			values = append(values, n)
		}
	}

	s.metrics.RecordCodecOperation("vlq", "encode", true, len(raw))
	sendSuccess(w, VLQResponse{VLQ: codec.EncodeVLQs(values), Values: values})
}

// handleVLQDecode godoc
//
//	@Summary		Base64 VLQ decode
//	@Tags			vlq
//	@Produce		json
//	@Param			s	query		string	true	"VLQ sequence"
//	@Success		200	{object}	VLQResponse
//	@Failure		400	{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/vlq/decode [get]
func (s *Server) handleVLQDecode(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("s")
	values, err := codec.DecodeVLQs(raw)
	if err != nil {
		s.metrics.RecordCodecOperation("vlq", "decode", false, len(raw))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("vlq", "decode", true, len(raw))
	sendSuccess(w, VLQResponse{VLQ: raw, Values: values})
}

// utfOptions starts from the server defaults and applies query overrides.
func (s *Server) utfOptions(r *http.Request) (*utf.Options, error) {
	var opts utf.Options
	if s.config.UTF != nil {
		opts = *s.config.UTF
	}

	strict, err := queryBool(r, "strict", opts.Mode == utf.Strict)
	if err != nil {
		return nil, err
	}
	opts.Mode = utf.Lenient
	if strict {
		opts.Mode = utf.Strict
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"allow_overlong", &opts.AllowOverlong},
		{"allow_surrogates", &opts.AllowSurrogates},
		{"strip_bom", &opts.StripBOM},
		{"bom", &opts.WriteBOM},
	}
	for _, f := range flags {
		if *f.dst, err = queryBool(r, f.name, *f.dst); err != nil {
			return nil, err
		}
	}

	switch endian := strings.ToLower(r.URL.Query().Get("endian")); endian {
	case "", "auto":
	case "be", "big":
		opts.Endian = utf.BigEndian
	case "le", "little":
		opts.Endian = utf.LittleEndian
	default:
		return nil, fmt.Errorf("invalid endian parameter %q", endian)
	}

	return &opts, nil
}

func normalizeEncoding(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "")
}

// handleUTFDecode godoc
//
//	@Summary		Decode UTF-8, UTF-16 or UTF-32
//	@Description	Decode the raw request body into codepoints
//	@Tags			utf
//	@Accept			octet-stream
//	@Produce		json
//	@Param			encoding	path		string	true	"utf8, utf16 or utf32"
//	@Param			strict		query		bool	false	"Reject malformed input"
//	@Param			endian		query		string	false	"be, le or auto"
//	@Param			body		body		[]byte	true	"Encoded text"
//	@Success		200			{object}	UTFDecodeResponse
//	@Failure		400			{object}	APIResponse
//	@Failure		422			{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/utf/{encoding}/decode [post]
func (s *Server) handleUTFDecode(w http.ResponseWriter, r *http.Request) {
	encoding := normalizeEncoding(chi.URLParam(r, "encoding"))

	var decode func([]byte, *utf.Options) ([]rune, error)
	switch encoding {
	case "utf8":
		decode = utf.DecodeUTF8
	case "utf16":
		decode = utf.DecodeUTF16
	case "utf32":
		decode = utf.DecodeUTF32
	default:
		sendError(w, fmt.Sprintf("Unknown encoding %q", encoding), http.StatusBadRequest)
		return
	}

	opts, err := s.utfOptions(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	runes, err := decode(body, opts)
	if err != nil {
		s.metrics.RecordCodecOperation(encoding, "decode", false, len(body))
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.metrics.RecordCodecOperation(encoding, "decode", true, len(body))
	if runes == nil {
		runes = []rune{}
	}
	sendSuccess(w, UTFDecodeResponse{Encoding: encoding, Codepoints: runes, Text: string(runes)})
}

// handleUTFEncode godoc
//
//	@Summary		Encode text as UTF-8, UTF-16 or UTF-32
//	@Tags			utf
//	@Accept			plain
//	@Produce		json
//	@Param			encoding	path		string	true	"utf8, utf16 or utf32"
//	@Param			bom			query		bool	false	"Write a byte-order mark"
//	@Param			endian		query		string	false	"be or le"
//	@Param			body		body		string	true	"UTF-8 text"
//	@Success		200			{object}	BytesResponse
//	@Security		ApiKeyAuth
//	@Router			/utf/{encoding}/encode [post]
func (s *Server) handleUTFEncode(w http.ResponseWriter, r *http.Request) {
	encoding := normalizeEncoding(chi.URLParam(r, "encoding"))

	var encode func([]rune, *utf.Options) ([]byte, error)
	switch encoding {
	case "utf8":
		encode = utf.EncodeUTF8
	case "utf16":
		encode = utf.EncodeUTF16
	case "utf32":
		encode = utf.EncodeUTF32
	default:
		sendError(w, fmt.Sprintf("Unknown encoding %q", encoding), http.StatusBadRequest)
		return
	}

	opts, err := s.utfOptions(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, err := utf.DecodeUTF8(body, &utf.Options{Mode: opts.Mode})
	if err != nil {
		s.metrics.RecordCodecOperation(encoding, "encode", false, len(body))
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	out, err := encode(text, opts)
	if err != nil {
		s.metrics.RecordCodecOperation(encoding, "encode", false, len(body))
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.metrics.RecordCodecOperation(encoding, "encode", true, len(body))
	sendSuccess(w, BytesResponse{Hex: hex.EncodeToString(out), Size: len(out)})
}

// handleIntsDecode godoc
//
//	@Summary		Decode numbers
//	@Description	Interpret the raw request body as an array of fixed-width numbers
//	@Tags			bytes
//	@Accept			octet-stream
//	@Produce		json
//	@Param			type	path		string	true	"uint8..int64, float32 or float64"
//	@Param			le		query		bool	false	"Little-endian"
//	@Param			body	body		[]byte	true	"Data"
//	@Success		200		{object}	IntsResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/ints/{type}/decode [post]
func (s *Server) handleIntsDecode(w http.ResponseWriter, r *http.Request) {
	kind := strings.ToLower(chi.URLParam(r, "type"))

	le, err := queryBool(r, "le", s.config.LittleEndian)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	values, err := byteconv.DecodeAs(kind, body, le)
	if err != nil {
		s.metrics.RecordCodecOperation("bytes", "decode", false, len(body))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("bytes", "decode", true, len(body))
	sendSuccess(w, IntsResponse{Type: kind, LittleEndian: le, Values: values})
}

// handlePixel godoc
//
//	@Summary		Solid colour PNG
//	@Description	Generate a 4x4 PNG filled with one colour
//	@Tags			pixel
//	@Produce		png,json
//	@Param			rgba	path		string	true	"rrggbb or rrggbbaa"
//	@Param			format	query		string	false	"png (default) or datauri"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/pixel/{rgba} [get]
func (s *Server) handlePixel(w http.ResponseWriter, r *http.Request) {
	red, green, blue, alpha, err := pixel.ParseColor(chi.URLParam(r, "rgba"))
	if err != nil {
		s.metrics.RecordCodecOperation("png", "encode", false, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.metrics.RecordCodecOperation("png", "encode", true, 4)

	if r.URL.Query().Get("format") == "datauri" {
		sendSuccess(w, PixelResponse{DataURI: pixel.DataURI(red, green, blue, alpha)})
		return
	}

	img := pixel.RGBA(red, green, blue, alpha)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	_, _ = w.Write(img)
}

// handleWebsocketAccept godoc
//
//	@Summary		Sec-WebSocket-Accept
//	@Description	Compute the handshake accept value for a client key
//	@Tags			websocket
//	@Produce		json
//	@Param			key	query		string	true	"Sec-WebSocket-Key"
//	@Success		200	{object}	AcceptResponse
//	@Failure		400	{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/websocket/accept [get]
func (s *Server) handleWebsocketAccept(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		sendError(w, "key is required", http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("websocket", "accept", true, len(key))
	sendSuccess(w, AcceptResponse{Key: key, Accept: websocket.AcceptKey(key)})
}

func frameInfo(f *websocket.Frame) FrameInfo {
	info := FrameInfo{
		Final:         f.IsFinal,
		RSV1:          f.IsRSV1,
		RSV2:          f.IsRSV2,
		RSV3:          f.IsRSV3,
		Opcode:        byte(f.Opcode),
		OpcodeName:    f.Opcode.String(),
		Masked:        f.Masked,
		PayloadLength: f.PayloadLength,
		PayloadHex:    hex.EncodeToString(f.Payload),
		Valid:         true,
	}
	if f.Masked {
		info.MaskKey = hex.EncodeToString(f.MaskKey[:])
	}
	if err := f.Validate(); err != nil {
		info.Valid = false
		info.Problem = err.Error()
	}
	return info
}

// handleWebsocketDecode godoc
//
//	@Summary		Decode websocket frames
//	@Description	Decode every complete RFC 6455 frame in the request body
//	@Tags			websocket
//	@Accept			octet-stream
//	@Produce		json
//	@Param			nomask	query		bool	false	"Return payloads still masked"
//	@Param			body	body		[]byte	true	"Frames"
//	@Success		200		{object}	FramesResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/websocket/decode [post]
func (s *Server) handleWebsocketDecode(w http.ResponseWriter, r *http.Request) {
	noMask, err := queryBool(r, "nomask", false)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := websocket.DecodeFrames(body, &websocket.Options{NoMask: noMask})
	if err != nil {
		s.metrics.RecordCodecOperation("websocket", "decode", false, len(body))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	out := FramesResponse{Frames: make([]FrameInfo, 0, len(res.Frames)), Remaining: len(res.Remaining)}
	for _, f := range res.Frames {
		out.Frames = append(out.Frames, frameInfo(f))
	}

	s.metrics.RecordCodecOperation("websocket", "decode", true, len(body))
	sendSuccess(w, out)
}

// handleWebsocketEncode godoc
//
//	@Summary		Encode a websocket frame
//	@Description	Wrap the request body in a single RFC 6455 frame
//	@Tags			websocket
//	@Accept			octet-stream
//	@Produce		octet-stream
//	@Param			opcode	query		string	false	"Opcode name or number (default text)"
//	@Param			fin		query		bool	false	"FIN bit (default true)"
//	@Param			mask	query		string	false	"Masking key as 8 hex characters"
//	@Param			body	body		[]byte	true	"Payload"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/websocket/encode [post]
func (s *Server) handleWebsocketEncode(w http.ResponseWriter, r *http.Request) {
	h := websocket.Header{Opcode: websocket.OpText}

	if name := r.URL.Query().Get("opcode"); name != "" {
		op, err := websocket.ParseOpcode(name)
		if err != nil {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Opcode = op
	}

	fin, err := queryBool(r, "fin", true)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.IsFinal = fin

	if mask := r.URL.Query().Get("mask"); mask != "" {
		key, err := hex.DecodeString(mask)
		if err != nil || len(key) != 4 {
			sendError(w, fmt.Sprintf("invalid mask %q: want 8 hex characters", mask), http.StatusBadRequest)
			return
		}
		h.Masked = true
		copy(h.MaskKey[:], key)
	}

	body, err := readBody(w, r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	frame := &websocket.Frame{Header: h, Payload: body}
	if err := frame.Validate(); err != nil {
		s.metrics.RecordCodecOperation("websocket", "encode", false, len(body))
		status := http.StatusBadRequest
		if errors.Is(err, websocket.ErrControlTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		sendError(w, err.Error(), status)
		return
	}

	wire, err := websocket.EncodeFrame(frame, nil)
	if err != nil {
		s.metrics.RecordCodecOperation("websocket", "encode", false, len(body))
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordCodecOperation("websocket", "encode", true, len(body))
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(wire)
}
