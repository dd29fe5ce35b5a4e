package websocket

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"

	"github.com/ssargent/binkit/pkg/codec"
)

// readFrame reads from r until one whole frame has arrived.
func readFrame(r io.Reader) (*Frame, error) {
	var buf []byte
	chunk := make([]byte, 512)
	for {
		f, _, err := DecodeFrame(buf, nil)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, ErrIncompleteFrame) {
			return nil, err
		}

		n, err := r.Read(chunk)
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
		buf = append(buf, chunk[:n]...)
	}
}

// TestInterop_GorillaServer sends frames built here to a gorilla/websocket
// server and decodes its reply.
func TestInterop_GorillaServer(t *testing.T) {
	upgrader := gorillaws.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		mt, msg, err := conn.ReadMessage()
		if err != nil {
			t.Errorf("server read: %v", err)
			return
		}
		if err := conn.WriteMessage(mt, append([]byte("echo: "), msg...)); err != nil {
			t.Errorf("server write: %v", err)
		}
	}))
	defer srv.Close()

	addr := srv.Listener.Addr().String()
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

	key := codec.EncodeBase64([]byte("binkit-handshake"))
	req := "GET / HTTP/1.1\r\n" +
		"Host: " + addr + "\r\n" +
		"Upgrade: websocket\r\n" +
		"Connection: Upgrade\r\n" +
		"Sec-WebSocket-Key: " + key + "\r\n" +
		"Sec-WebSocket-Version: 13\r\n\r\n"
	if _, err := conn.Write([]byte(req)); err != nil {
		t.Fatalf("write handshake: %v", err)
	}

	br := bufio.NewReader(conn)
	resp, err := http.ReadResponse(br, nil)
	if err != nil {
		t.Fatalf("read handshake: %v", err)
	}
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("status = %d, want 101", resp.StatusCode)
	}
	if got := resp.Header.Get("Sec-WebSocket-Accept"); got != AcceptKey(key) {
		t.Fatalf("Sec-WebSocket-Accept = %s, want %s", got, AcceptKey(key))
	}

	wire, err := EncodeFrame(&Frame{
		Header:  Header{IsFinal: true, Opcode: OpText, Masked: true, MaskKey: [4]byte{9, 8, 7, 6}},
		Payload: []byte("Hello"),
	}, nil)
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}
	if _, err := conn.Write(wire); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	f, err := readFrame(br)
	if err != nil {
		t.Fatalf("read reply: %v", err)
	}
	if f.Masked {
		t.Error("server frames must not be masked")
	}
	if f.Opcode != OpText || string(f.Payload) != "echo: Hello" {
		t.Errorf("reply = %v %q", f.Opcode, f.Payload)
	}
}

// TestInterop_GorillaClient serves the handshake and frames from this package
// to a gorilla/websocket client.
func TestInterop_GorillaClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Error("response writer does not support hijacking")
			return
		}
		conn, brw, err := hj.Hijack()
		if err != nil {
			t.Errorf("hijack: %v", err)
			return
		}
		defer conn.Close()

		accept := AcceptKey(r.Header.Get("Sec-WebSocket-Key"))
		_, _ = brw.WriteString("HTTP/1.1 101 Switching Protocols\r\n" +
			"Upgrade: websocket\r\n" +
			"Connection: Upgrade\r\n" +
			"Sec-WebSocket-Accept: " + accept + "\r\n\r\n")
		if err := brw.Flush(); err != nil {
			t.Errorf("flush handshake: %v", err)
			return
		}

		f, err := readFrame(brw.Reader)
		if err != nil {
			t.Errorf("server read: %v", err)
			return
		}
		if !f.Masked {
			t.Error("client frames must be masked")
		}

		reply, err := EncodeFrame(&Frame{
			Header:  Header{IsFinal: true, Opcode: OpBinary},
			Payload: []byte(strings.ToUpper(string(f.Payload))),
		}, nil)
		if err != nil {
			t.Errorf("encode reply: %v", err)
			return
		}
		if _, err := conn.Write(reply); err != nil {
			t.Errorf("write reply: %v", err)
		}
	}))
	defer srv.Close()

	c, _, err := gorillaws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()
	_ = c.SetReadDeadline(time.Now().Add(5 * time.Second))

	if err := c.WriteMessage(gorillaws.TextMessage, []byte("shout")); err != nil {
		t.Fatalf("client write: %v", err)
	}

	mt, msg, err := c.ReadMessage()
	if err != nil {
		t.Fatalf("client read: %v", err)
	}
	if mt != gorillaws.BinaryMessage || string(msg) != "SHOUT" {
		t.Errorf("reply = %d %q", mt, msg)
	}
}
