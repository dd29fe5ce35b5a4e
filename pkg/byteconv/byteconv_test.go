package byteconv

import (
	"bytes"
	"math"
	"testing"
)

func TestBytesToUint32_Endianness(t *testing.T) {
	got := BytesToUint32([]byte{0xAA, 0xBB, 0xCC, 0xDD}, false)
	if len(got) != 1 || got[0] != 0xAABBCCDD {
		t.Errorf("big-endian: got %#x, want [0xaabbccdd]", got)
	}

	got = BytesToUint32([]byte{0xDD, 0xCC, 0xBB, 0xAA}, true)
	if len(got) != 1 || got[0] != 0xAABBCCDD {
		t.Errorf("little-endian: got %#x, want [0xaabbccdd]", got)
	}
}

func TestBytesToInts_ManyAtOnce(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF, 0xFF, 0x80, 0x00}

	u := BytesToUint16(data, false)
	want := []uint16{0x0001, 0xFFFF, 0x8000}
	for i := range want {
		if u[i] != want[i] {
			t.Errorf("uint16[%d]: got %#x, want %#x", i, u[i], want[i])
		}
	}

	s := BytesToInt16(data, false)
	wantSigned := []int16{1, -1, math.MinInt16}
	for i := range wantSigned {
		if s[i] != wantSigned[i] {
			t.Errorf("int16[%d]: got %d, want %d", i, s[i], wantSigned[i])
		}
	}
}

func TestBytesToInts_PartialWord(t *testing.T) {
	got := BytesToUint32([]byte{0x01, 0x02, 0x03, 0x04, 0x05}, false)
	if len(got) != 2 {
		t.Fatalf("expected 2 words, got %d", len(got))
	}
	if got[1] != 0x05000000 {
		t.Errorf("partial word: got %#x, want 0x05000000", got[1])
	}

	if got := BytesToUint64(nil, false); len(got) != 0 {
		t.Errorf("empty input: got %v", got)
	}
}

// Boundary values mirror the fixtures used for the integer conversions:
// MIN..MIN+n, -n..n and MAX-n..MAX for each width.
func TestInt8_RoundTripAllValues(t *testing.T) {
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		v := int8(i)
		b := Int8ToBytes(v)
		if b[0] != byte(v) {
			t.Fatalf("Int8ToBytes(%d) = %#x", v, b[0])
		}
		if got := BytesToInt8(b)[0]; got != v {
			t.Fatalf("BytesToInt8(%#x) = %d, want %d", b[0], got, v)
		}
	}
}

func TestInt16_RoundTripAllValues(t *testing.T) {
	for i := math.MinInt16; i <= math.MaxInt16; i++ {
		v := int16(i)
		for _, le := range []bool{false, true} {
			if got := BytesToInt16(Int16ToBytes(le, v), le)[0]; got != v {
				t.Fatalf("int16 %d (le=%v) round-tripped to %d", v, le, got)
			}
		}
	}
}

func TestInt32_Boundaries(t *testing.T) {
	const n = 1024
	var values []int32
	for i := int64(math.MinInt32); i < math.MinInt32+n; i++ {
		values = append(values, int32(i))
	}
	for i := int32(-n); i < n; i++ {
		values = append(values, i)
	}
	for i := int64(math.MaxInt32 - n); i <= math.MaxInt32; i++ {
		values = append(values, int32(i))
	}

	for _, le := range []bool{false, true} {
		got := BytesToInt32(Int32ToBytes(le, values...), le)
		if len(got) != len(values) {
			t.Fatalf("length mismatch: %d != %d", len(got), len(values))
		}
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("int32 %d (le=%v) round-tripped to %d", values[i], le, got[i])
			}
		}
	}

	if b := Int32ToBytes(false, -1); !bytes.Equal(b, []byte{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("Int32ToBytes(-1) = %x", b)
	}
	if b := Int32ToBytes(false, math.MinInt32); !bytes.Equal(b, []byte{0x80, 0, 0, 0}) {
		t.Errorf("Int32ToBytes(MinInt32) = %x", b)
	}
}

func TestInt64_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		bytes []byte
	}{
		{"zero", 0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{"minus one", -1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"min", math.MinInt64, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}},
		{"max", math.MaxInt64, []byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"min plus one", math.MinInt64 + 1, []byte{0x80, 0, 0, 0, 0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int64ToBytes(false, tt.value); !bytes.Equal(got, tt.bytes) {
				t.Errorf("Int64ToBytes = %x, want %x", got, tt.bytes)
			}
			if got := Int64(tt.bytes, false); got != tt.value {
				t.Errorf("Int64 = %d, want %d", got, tt.value)
			}
			le := Int64ToBytes(true, tt.value)
			if got := Int64(le, true); got != tt.value {
				t.Errorf("little-endian round trip = %d, want %d", got, tt.value)
			}
		})
	}
}

func TestUint64_Max(t *testing.T) {
	b := Uint64ToBytes(false, math.MaxUint64)
	if !bytes.Equal(b, bytes.Repeat([]byte{0xFF}, 8)) {
		t.Errorf("Uint64ToBytes(MaxUint64) = %x", b)
	}
	if got := Uint64(b, false); got != math.MaxUint64 {
		t.Errorf("Uint64 = %d", got)
	}
	// The same bit pattern read as signed is -1.
	if got := Int64(b, true); got != -1 {
		t.Errorf("Int64 of all ones = %d, want -1", got)
	}
}

func TestBytesToFloat64_SpecialValues(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"positive zero", 0},
		{"negative zero", math.Copysign(0, -1)},
		{"one", 1},
		{"minus pi", -math.Pi},
		{"max", math.MaxFloat64},
		{"smallest normal", 0x1p-1022},
		{"smallest subnormal", math.SmallestNonzeroFloat64},
		{"largest subnormal", 0x1p-1022 - math.SmallestNonzeroFloat64},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, le := range []bool{false, true} {
				b := Float64ToBytes(le, tt.value)
				got := BytesToFloat64(b, le)[0]
				if math.Float64bits(got) != math.Float64bits(tt.value) {
					t.Errorf("le=%v: got %v (%#x), want %v (%#x)", le, got, math.Float64bits(got), tt.value, math.Float64bits(tt.value))
				}
			}
		})
	}

	nan := BytesToFloat64([]byte{0x7F, 0xF8, 0, 0, 0, 0, 0, 1}, false)[0]
	if !math.IsNaN(nan) {
		t.Errorf("expected NaN, got %v", nan)
	}
}

func TestBytesToFloat32_SpecialValues(t *testing.T) {
	tests := []struct {
		name  string
		bits  uint32
		value float32
	}{
		{"one", 0x3F800000, 1},
		{"minus two", 0xC0000000, -2},
		{"negative zero", 0x80000000, float32(math.Copysign(0, -1))},
		{"smallest subnormal", 0x00000001, math.SmallestNonzeroFloat32},
		{"max", 0x7F7FFFFF, math.MaxFloat32},
		{"infinity", 0x7F800000, float32(math.Inf(1))},
		{"negative infinity", 0xFF800000, float32(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BytesToFloat32(Uint32ToBytes(false, tt.bits), false)[0]
			if math.Float32bits(got) != math.Float32bits(tt.value) {
				t.Errorf("got %v (%#x), want %v", got, math.Float32bits(got), tt.value)
			}
			if back := Float32ToBytes(true, got); Uint32(back, true) != tt.bits {
				t.Errorf("re-encode: got %#x, want %#x", Uint32(back, true), tt.bits)
			}
		})
	}

	if !math.IsNaN(float64(BytesToFloat32([]byte{0x7F, 0xC0, 0, 0}, false)[0])) {
		t.Error("expected NaN")
	}
}

func TestBytesToFloat64_MatchesBitCast(t *testing.T) {
	// Walk a spread of bit patterns across every exponent range.
	for bits := uint64(0); bits < 1<<16; bits++ {
		pattern := bits<<48 | bits*0x9E3779B1
		want := math.Float64frombits(pattern)
		got := BytesToFloat64(Uint64ToBytes(false, pattern), false)[0]
		if math.IsNaN(want) {
			if !math.IsNaN(got) {
				t.Fatalf("%#x: expected NaN, got %v", pattern, got)
			}
			continue
		}
		if math.Float64bits(got) != pattern {
			t.Fatalf("%#x: got %#x", pattern, math.Float64bits(got))
		}
	}
}

func TestLatin1(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"ascii", "abc", []byte("abc")},
		{"narrowed runes", "caféĀ", []byte{'c', 'a', 'f', 0xE9, 0x00}},
		{"raw bytes", "\xe1\xff", []byte{0xE1, 0xFF}},
		{"mixed", "é\x80z", []byte{0xE9, 0x80, 'z'}},
		{"truncated sequence", "\xc3", []byte{0xC3}},
		{"literal replacement char", "\uFFFD", []byte{0xFD}},
		{"empty", "", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Latin1(tt.in); !bytes.Equal(got, tt.want) {
				t.Errorf("Latin1(%q) = %x, want %x", tt.in, got, tt.want)
			}
		})
	}

	if s := Latin1String([]byte{'c', 0xE9}); s != "cé" {
		t.Errorf("Latin1String = %q", s)
	}
}
