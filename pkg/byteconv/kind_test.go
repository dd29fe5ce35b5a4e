package byteconv

import (
	"bytes"
	"testing"
)

func TestDecodeAs(t *testing.T) {
	data := []byte{0xFF, 0xFE, 0x00, 0x01}

	got, err := DecodeAs("int16", data, false)
	if err != nil {
		t.Fatalf("DecodeAs: %v", err)
	}
	if len(got) != 2 || got[0] != int16(-2) || got[1] != int16(1) {
		t.Errorf("int16 big-endian: got %v", got)
	}

	got, err = DecodeAs("uint32", data, true)
	if err != nil {
		t.Fatalf("DecodeAs: %v", err)
	}
	if len(got) != 1 || got[0] != uint32(0x0100FEFF) {
		t.Errorf("uint32 little-endian: got %#x", got)
	}

	for _, kind := range Kinds {
		if _, err := DecodeAs(kind, data, false); err != nil {
			t.Errorf("DecodeAs(%q): %v", kind, err)
		}
	}

	if _, err := DecodeAs("int128", data, false); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestEncodeAs(t *testing.T) {
	tests := []struct {
		kind   string
		values []string
		le     bool
		want   []byte
	}{
		{"uint8", []string{"1", "0xff"}, false, []byte{0x01, 0xFF}},
		{"int8", []string{"-1", "-128"}, false, []byte{0xFF, 0x80}},
		{"uint16", []string{"0x0102"}, true, []byte{0x02, 0x01}},
		{"int32", []string{"-2"}, false, []byte{0xFF, 0xFF, 0xFF, 0xFE}},
		{"uint64", []string{"18446744073709551615"}, false, bytes.Repeat([]byte{0xFF}, 8)},
		{"float32", []string{"1"}, false, []byte{0x3F, 0x80, 0x00, 0x00}},
		{"float64", []string{"-2"}, true, []byte{0, 0, 0, 0, 0, 0, 0x00, 0xC0}},
	}

	for _, tt := range tests {
		got, err := EncodeAs(tt.kind, tt.values, tt.le)
		if err != nil {
			t.Errorf("EncodeAs(%s, %v): %v", tt.kind, tt.values, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeAs(%s, %v) = %x, want %x", tt.kind, tt.values, got, tt.want)
		}
	}

	for _, bad := range []struct {
		kind   string
		values []string
	}{
		{"uint8", []string{"256"}},
		{"int8", []string{"128"}},
		{"uint16", []string{"-1"}},
		{"float32", []string{"one"}},
		{"int128", []string{"1"}},
	} {
		if _, err := EncodeAs(bad.kind, bad.values, false); err == nil {
			t.Errorf("EncodeAs(%s, %v): expected error", bad.kind, bad.values)
		}
	}
}
