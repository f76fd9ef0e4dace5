package sprite

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"spritec/utils/images"
)

const (
	// inter-block padding on the canvas
	padding = 10
	// canvas never shrinks below this, even with nothing registered
	minCanvasSide = 5
)

// BuilderOptions is the constructor-level configuration of the layout
// engine.
type BuilderOptions struct {
	// ImageRoot is the directory all reference file names are resolved
	// against.
	ImageRoot string
	// OutputFile is the composite image destination, its extension selects
	// the encoder (png, jpg, jpeg, gif).
	OutputFile string
	// JPEGQuality is only used when OutputFile selects the jpeg encoder.
	JPEGQuality int
	// Optimizer, when non-empty, is an external command (name plus
	// arguments) run on the saved file; the file path is appended as the
	// last argument. Its failure fails the build.
	Optimizer []string
}

// Builder is the layout engine: it resolves every registered block against
// its image file, accumulates canvas geometry, draws all blocks and
// substitutes placeholder tokens with computed CSS values.
//
// A Builder is not safe for concurrent use: canvas accumulators are shared
// between passes, the caller must serialize builds.
type Builder struct {
	reg    *Registry
	opts   BuilderOptions
	format images.Format
	log    *zap.Logger

	canvasWidth  int
	canvasHeight int
}

// NewBuilder validates the output configuration and creates a layout engine
// over the given registry.
func NewBuilder(reg *Registry, opts BuilderOptions, log *zap.Logger) (*Builder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(opts.OutputFile) == 0 {
		return nil, &ConfigError{Option: "output_file", Reason: "output file is required"}
	}
	format, err := images.FormatFromPath(opts.OutputFile)
	if err != nil {
		return nil, &ConfigError{Option: "output_file", Value: opts.OutputFile, Reason: "extension selects no known encoder (png, jpg, jpeg, gif)"}
	}
	if opts.JPEGQuality == 0 {
		opts.JPEGQuality = 75
	}
	return &Builder{
		reg:    reg,
		opts:   opts,
		format: format,
		log:    log.Named("layout"),
	}, nil
}

// Build processes every registered block strictly in first-seen order,
// composes the sprite image, writes it to the configured output file and
// returns text with every placeholder token replaced by its CSS value.
//
// Any failure - decode, encode, optimizer - aborts the whole build; no
// output file is produced on error.
func (b *Builder) Build(ctx context.Context, text string) (string, error) {
	b.canvasWidth, b.canvasHeight = 0, 0

	if err := b.resolve(ctx); err != nil {
		return "", err
	}

	out, canvas := b.compose(text)

	if err := b.save(ctx, canvas); err != nil {
		return "", err
	}
	return out, nil
}

// resolve opens every referenced image one at a time, in registration
// order, and accumulates canvas dimensions. Order is load-bearing: each
// block's vertical position depends on every block registered before it.
func (b *Builder) resolve(ctx context.Context) error {
	for _, blk := range b.reg.Blocks() {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(b.opts.ImageRoot, blk.Filename)
		img, err := images.Open(path)
		if err != nil {
			if errors.Is(err, images.ErrUnsupported) {
				return &FormatError{Path: path}
			}
			return &LoadError{Path: path, Line: blk.Line, Err: err}
		}

		blk.img = img
		blk.ImageWidth = img.Bounds().Dx()
		blk.ImageHeight = img.Bounds().Dy()
		if blk.Width == 0 {
			blk.Width = blk.ImageWidth
		}
		if blk.Height == 0 {
			blk.Height = blk.ImageHeight
		}

		switch {
		case blk.Repeat == RepeatX:
			if blk.LimitRepeatX != 0 {
				blk.BlockWidth = Pixels(blk.LimitRepeatX)
			} else {
				blk.BlockWidth = FillCanvas()
			}
		case blk.Align != AlignBlock:
			// non-block alignment needs the full canvas width to align within
			blk.BlockWidth = FillCanvas()
		default:
			blk.BlockWidth = Pixels(blk.Width)
		}

		blk.BlockHeight = blk.Height
		if blk.Repeat == RepeatY {
			blk.BlockHeight = blk.LimitRepeatY
		}
		if blk.BlockHeight < blk.Height {
			blk.BlockHeight = blk.Height
		}

		if !blk.BlockWidth.IsFill() && blk.BlockWidth.Px() > b.canvasWidth {
			b.canvasWidth = blk.BlockWidth.Px()
		}
		// full-width blocks must still not shrink the canvas below their
		// own image width
		if blk.Width > b.canvasWidth {
			b.canvasWidth = blk.Width
		}
		b.canvasHeight += blk.BlockHeight + padding

		b.log.Debug("Resolved sprite block",
			zap.Int("id", blk.ID),
			zap.String("file", blk.Filename),
			zap.Int("imageWidth", blk.ImageWidth),
			zap.Int("imageHeight", blk.ImageHeight),
			zap.Stringer("blockWidth", blk.BlockWidth),
			zap.Int("blockHeight", blk.BlockHeight))
	}
	return nil
}

// compose draws all blocks onto a shared canvas and substitutes their
// placeholder tokens in text. No I/O happens here.
func (b *Builder) compose(text string) (string, *image.NRGBA) {
	canvas := images.NewCanvas(max(b.canvasWidth, minCanvasSide), max(b.canvasHeight, minCanvasSide))

	curY := 0
	for _, blk := range b.reg.Blocks() {
		blockWidth := blk.BlockWidth.Px()
		if blk.BlockWidth.IsFill() {
			blockWidth = b.canvasWidth
		}

		tile := b.renderTile(blk)

		curX := 0
		switch blk.Align {
		case AlignCenter:
			curX = int(math.Round(float64(b.canvasWidth-blk.Width) / 2))
		case AlignRight:
			curX = b.canvasWidth - blk.Width
		}
		startX, startY := curX, curY

		switch blk.Repeat {
		case RepeatX:
			curX, startX = 0, 0
			for x := 0; x < blockWidth && blk.Width > 0; x += blk.Width {
				w := min(blk.Width, blockWidth-x)
				images.CopyRegion(canvas, tile, x, curY, 0, 0, w, blk.Height)
			}
			curY += blk.Height + padding
		case RepeatY:
			limit := startY + blk.BlockHeight
			for y := startY; y < limit && blk.Height > 0; y += blk.Height {
				h := min(blk.Height, limit-y)
				images.CopyRegion(canvas, tile, curX, y, 0, 0, blk.Width, h)
			}
			curY = limit + padding
		default:
			images.Copy(canvas, tile, curX, curY)
			curY += blk.Height + padding
		}

		blk.X, blk.Y = startX, startY

		token := b.reg.token(blk.ID)
		value := blk.cssValue(startX, startY)
		text = strings.ReplaceAll(text, token, value)

		b.log.Debug("Placed sprite block",
			zap.Int("id", blk.ID),
			zap.Int("x", startX),
			zap.Int("y", startY),
			zap.String("css", value))
	}
	return text, canvas
}

// renderTile builds the block-sized raster one block occupies on the
// canvas, either resampled to fill the block exactly or placed at natural
// size and cropped to block edges.
func (b *Builder) renderTile(blk *Block) *image.NRGBA {
	tile := images.NewCanvas(blk.Width, blk.Height)

	if blk.Resize {
		images.Copy(tile, images.Fill(blk.img, blk.Width, blk.Height), 0, 0)
		return tile
	}

	posX := 0
	if blk.Width > blk.ImageWidth {
		posX = (blk.Width - blk.ImageWidth) / 2
	}
	var posY int
	switch blk.VAlign {
	case VAlignTop:
		posY = 0
	case VAlignBottom:
		posY = blk.Height - blk.ImageHeight
	default:
		posY = (blk.Height - blk.ImageHeight) / 2
	}
	images.Copy(tile, blk.img, posX, posY)
	return tile
}

// cssValue renders the replacement for one block's placeholder token.
func (blk *Block) cssValue(startX, startY int) string {
	x := fmt.Sprintf("-%dpx", startX)
	switch blk.Align {
	case AlignRight:
		x = "100%"
	case AlignCenter:
		x = "center"
	}
	value := fmt.Sprintf("%s -%dpx", x, startY)

	if blk.TotalWidth > 0 && blk.TotalHeight > 0 {
		w := blk.ImageWidth + 2*blk.PadWidth
		h := blk.ImageHeight + 2*blk.PadHeight
		left := floorDiv(blk.TotalWidth-w, 2)
		right := blk.TotalWidth - w - left
		top := floorDiv(blk.TotalHeight-h, 2)
		bottom := blk.TotalHeight - h - top
		value += fmt.Sprintf("; margin: %dpx %dpx %dpx %dpx !important; width: %dpx !important; height: %dpx !important",
			top, right, bottom, left, w, h)
	}
	return value
}

func floorDiv(a, b int) int {
	return int(math.Floor(float64(a) / float64(b)))
}

// save encodes the canvas and atomically moves it into place. The optional
// optimizer runs on the temporary file, before the rename, so a failed run
// never leaves a half-optimized output behind.
func (b *Builder) save(ctx context.Context, canvas *image.NRGBA) error {
	data, err := images.Encode(canvas, b.format, b.opts.JPEGQuality)
	if err != nil {
		return &EncodeError{Path: b.opts.OutputFile, Err: err}
	}

	dir, name := filepath.Split(b.opts.OutputFile)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &EncodeError{Path: b.opts.OutputFile, Err: err}
	}
	defer os.Remove(tmp)

	if len(b.opts.Optimizer) > 0 {
		if err := b.optimize(ctx, tmp); err != nil {
			return err
		}
	}

	if err := os.Rename(tmp, b.opts.OutputFile); err != nil {
		return &EncodeError{Path: b.opts.OutputFile, Err: err}
	}

	b.log.Info("Sprite image written",
		zap.String("file", b.opts.OutputFile),
		zap.Stringer("format", b.format),
		zap.Int("blocks", b.reg.Len()),
		zap.Int("width", max(b.canvasWidth, minCanvasSide)),
		zap.Int("height", max(b.canvasHeight, minCanvasSide)))
	return nil
}
