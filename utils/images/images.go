// Package images wraps raster primitives the sprite compositor needs:
// extension-gated decoding, blank canvas allocation, clipped region copy,
// resampling and format-specific encoding.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format of the composite output file.
type Format int

const (
	PNG Format = iota
	JPEG
	GIF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// ErrUnsupported reports a file extension we refuse to touch.
var ErrUnsupported = errors.New("unsupported image format")

// decodable extensions. Vector formats are deliberately absent.
var decodeExt = map[string]bool{
	".png":  true,
	".gif":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// Decodable reports whether the file extension belongs to a supported
// raster input format.
func Decodable(path string) bool {
	return decodeExt[strings.ToLower(filepath.Ext(path))]
}

// FormatFromPath selects output format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
}

// Open decodes an image file. The extension is checked before anything is
// read so that obviously wrong references (svg, ico, garbage) fail early and
// uniformly. Actual decoding is magic-byte driven.
func Open(path string) (image.Image, error) {
	if !decodeExt[strings.ToLower(filepath.Ext(path))] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// cheap header sniff gives a cleaner error than decoder internals would
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("file does not contain image data: %s", path)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", path, err)
	}
	return img, nil
}

// NewCanvas allocates a transparent true-color canvas.
func NewCanvas(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// Copy draws src onto dst at (dx, dy), clipping at dst bounds.
func Copy(dst *image.NRGBA, src image.Image, dx, dy int) {
	b := src.Bounds()
	r := image.Rect(dx, dy, dx+b.Dx(), dy+b.Dy())
	draw.Draw(dst, r, src, b.Min, draw.Over)
}

// CopyRegion draws the (sx, sy, w, h) region of src onto dst at (dx, dy).
func CopyRegion(dst *image.NRGBA, src image.Image, dx, dy, sx, sy, w, h int) {
	b := src.Bounds()
	r := image.Rect(dx, dy, dx+w, dy+h)
	draw.Draw(dst, r, src, b.Min.Add(image.Pt(sx, sy)), draw.Over)
}

// Fill resamples src to exactly cover a w x h block.
func Fill(src image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(src, w, h, imaging.Lanczos)
}

// Encode serializes img in the requested format. PNG gets maximum
// compression, JPEG gets the requested quality plus a JFIF APP0 segment
// with 300dpi density (the standard encoder omits it).
func Encode(img image.Image, f Format, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	switch f {
	case PNG:
		if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case JPEG:
		if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, err
		}
		out, _, err := ensureJFIFAPP0(buf.Bytes(), dpiPxPerInch, 300, 300)
		return out, err
	case GIF:
		if err := imaging.Encode(buf, img, imaging.GIF); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnsupported, int(f))
	}
}
