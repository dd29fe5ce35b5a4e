package pixel

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
)

const redOpaque = "iVBORw0KGgoAAAANSUhEUgAAAAQAAAAECAYAAACp8Z5+AAAAT0lEQVR4AQFEALv/AP8AAP//AAD//wAA//8AAP8A/wAA//8AAP//AAD//wAA/wD/AAD//wAA//8AAP//AAD/AP8AAP//AAD//wAA//8AAP88QB/hUu3/ogAAAABJRU5ErkJggg=="

func TestRGBA_RedGolden(t *testing.T) {
	got := base64.StdEncoding.EncodeToString(RGBA(255, 0, 0, 255))
	if got != redOpaque {
		t.Errorf("RGBA(255,0,0,255) =\n%s\nwant\n%s", got, redOpaque)
	}
}

func TestRGBA_Layout(t *testing.T) {
	img := RGBA(1, 2, 3, 4)

	if len(img) != 136 {
		t.Fatalf("image length = %d, want 136", len(img))
	}
	if !bytes.HasPrefix(img, signature) {
		t.Errorf("missing PNG signature: % x", img[:8])
	}
	if !bytes.HasSuffix(img, iend) {
		t.Errorf("missing IEND chunk: % x", img[len(img)-12:])
	}
	if got := string(img[37:41]); got != "IDAT" {
		t.Errorf("chunk type at 37 = %q, want IDAT", got)
	}
}

func TestRGBA_DecodesWithImagePNG(t *testing.T) {
	colours := []color.NRGBA{
		{255, 0, 0, 255},
		{0, 0, 0, 0},
		{18, 52, 86, 120},
		{255, 255, 255, 255},
	}

	for _, c := range colours {
		img, err := png.Decode(bytes.NewReader(RGBA(c.R, c.G, c.B, c.A)))
		if err != nil {
			t.Fatalf("decode %v: %v", c, err)
		}

		bounds := img.Bounds()
		if bounds.Dx() != Width || bounds.Dy() != Height {
			t.Fatalf("bounds = %v, want %dx%d", bounds, Width, Height)
		}

		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				if got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA); got != c {
					t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, c)
				}
			}
		}
	}
}

func TestStoredZlib_Inflates(t *testing.T) {
	data := []byte(strings.Repeat("stored block ", 40))

	zr, err := zlib.NewReader(bytes.NewReader(storedZlib(data)))
	if err != nil {
		t.Fatalf("zlib.NewReader: %v", err)
	}
	defer zr.Close()

	got, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("inflated %d bytes, want %d", len(got), len(data))
	}
}

func TestDataURI(t *testing.T) {
	uri := DataURI(255, 0, 0, 255)
	if want := "data:image/png;base64," + redOpaque; uri != want {
		t.Errorf("DataURI = %s, want %s", uri, want)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in         string
		r, g, b, a uint8
		wantErr    bool
	}{
		{in: "ff0000", r: 0xFF, a: 0xFF},
		{in: "#00ff0080", g: 0xFF, a: 0x80},
		{in: "0A0B0C0D", r: 0x0A, g: 0x0B, b: 0x0C, a: 0x0D},
		{in: "fff", wantErr: true},
		{in: "ff00000000", wantErr: true},
		{in: "red", wantErr: true},
	}

	for _, tt := range tests {
		r, g, b, a, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
			t.Errorf("ParseColor(%q) = %02x%02x%02x%02x", tt.in, r, g, b, a)
		}
	}
}
