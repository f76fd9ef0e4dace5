package images_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"spritec/utils/images"
)

func fixture(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0x80, A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "fixture.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path   string
		format images.Format
		ok     bool
	}{
		{"sprite.png", images.PNG, true},
		{"SPRITE.PNG", images.PNG, true},
		{"sprite.jpg", images.JPEG, true},
		{"sprite.jpeg", images.JPEG, true},
		{"sprite.gif", images.GIF, true},
		{"sprite.webp", 0, false},
		{"sprite.svg", 0, false},
		{"sprite", 0, false},
	}

	for _, tc := range cases {
		f, err := images.FormatFromPath(tc.path)
		if tc.ok {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.path, err)
			} else if f != tc.format {
				t.Errorf("%s: expected %s, got %s", tc.path, tc.format, f)
			}
			continue
		}
		if !errors.Is(err, images.ErrUnsupported) {
			t.Errorf("%s: expected ErrUnsupported, got %v", tc.path, err)
		}
	}
}

func TestDecodable(t *testing.T) {
	for _, path := range []string{"a.png", "a.gif", "a.jpg", "a.JPEG", "a.webp", "a.bmp", "a.tif", "a.tiff"} {
		if !images.Decodable(path) {
			t.Errorf("%s must be decodable", path)
		}
	}
	for _, path := range []string{"a.svg", "a.ico", "a.txt", "a"} {
		if images.Decodable(path) {
			t.Errorf("%s must not be decodable", path)
		}
	}
}

func TestOpen(t *testing.T) {
	img, err := images.Open(fixture(t, 12, 7))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 12 || h != 7 {
		t.Errorf("expected 12x7, got %dx%d", w, h)
	}
}

func TestOpen_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.svg")
	if err := os.WriteFile(path, []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := images.Open(path); !errors.Is(err, images.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestOpen_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := images.Open(path); err == nil {
		t.Error("expected error for garbage content")
	}
}

func TestNewCanvas_Transparent(t *testing.T) {
	canvas := images.NewCanvas(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if c := canvas.NRGBAAt(x, y); c.A != 0 {
				t.Fatalf("expected transparent canvas, got %v at (%d,%d)", c, x, y)
			}
		}
	}
}

func TestCopy_Clips(t *testing.T) {
	dst := images.NewCanvas(4, 4)
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{G: 0xff, A: 0xff})
		}
	}

	// drawing partially outside must not panic and must fill the overlap
	images.Copy(dst, src, 2, 2)
	if c := dst.NRGBAAt(3, 3); c.A == 0 {
		t.Error("expected overlap filled")
	}
	if c := dst.NRGBAAt(1, 1); c.A != 0 {
		t.Error("expected area outside placement untouched")
	}
}

func TestFill_Dimensions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	out := images.Fill(src, 9, 3)
	if w, h := out.Bounds().Dx(), out.Bounds().Dy(); w != 9 || h != 3 {
		t.Errorf("expected 9x3, got %dx%d", w, h)
	}
}

func TestEncode(t *testing.T) {
	img := images.NewCanvas(8, 8)

	for _, f := range []images.Format{images.PNG, images.JPEG, images.GIF} {
		data, err := images.Encode(img, f, 75)
		if err != nil {
			t.Errorf("%s: encode failed: %v", f, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s: empty output", f)
		}
	}
}

func TestEncode_JPEGCarriesJFIF(t *testing.T) {
	data, err := images.Encode(images.NewCanvas(8, 8), images.JPEG, 75)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	// SOI then APP0 with the JFIF identifier
	if len(data) < 11 || data[2] != 0xff || data[3] != 0xe0 || string(data[6:11]) != "JFIF\x00" {
		t.Error("expected JFIF APP0 segment right after SOI")
	}
}
