// Package sprite packs referenced images into a single composite canvas and
// rewrites each reference into concrete CSS position values. It knows
// nothing about the stylesheet language itself: the host compiler feeds it
// references one by one and later hands over the rendered text for
// placeholder substitution.
package sprite

import (
	"fmt"
	"image"

	"go.uber.org/zap"
)

// DefaultPlaceholder is the token prefix embedded into compiled stylesheet
// text in place of a sprite reference.
const DefaultPlaceholder = "SPRITE_PLACEHOLDER"

// Ref is one sprite function occurrence as seen by the host compiler: the
// referenced file, the raw option string and the stylesheet line it came
// from.
type Ref struct {
	Filename string
	Options  string
	Line     int
}

// Extent is a horizontal block measure: either a concrete pixel count or
// "as wide as the canvas ends up being".
type Extent struct {
	fill bool
	px   int
}

// Pixels returns a concrete extent.
func Pixels(n int) Extent { return Extent{px: n} }

// FillCanvas returns the symbolic full-canvas-width extent.
func FillCanvas() Extent { return Extent{fill: true} }

// IsFill reports whether the extent resolves to the canvas width.
func (e Extent) IsFill() bool { return e.fill }

// Px returns the pixel value of a concrete extent.
func (e Extent) Px() int { return e.px }

func (e Extent) String() string {
	if e.fill {
		return "100%"
	}
	return fmt.Sprintf("%dpx", e.px)
}

// Block is the layout cell reserved on the canvas for one unique reference.
// Identity matters: registering an equivalent reference again yields the
// same block and the same placeholder id.
type Block struct {
	Options

	Filename string
	ID       int
	Line     int

	// filled in during the build
	ImageWidth  int
	ImageHeight int
	BlockWidth  Extent
	BlockHeight int

	// canvas placement, for manifests and previews
	X int
	Y int

	img image.Image
}

// Registry interns sprite references: identical records share one Block and
// one placeholder token, iteration order is first-seen order.
type Registry struct {
	placeholder string
	nextID      int
	blocks      []*Block
	index       map[string]*Block
	log         *zap.Logger
}

// NewRegistry creates an empty registry. Empty placeholder selects
// DefaultPlaceholder.
func NewRegistry(placeholder string, log *zap.Logger) *Registry {
	if len(placeholder) == 0 {
		placeholder = DefaultPlaceholder
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		placeholder: placeholder,
		index:       make(map[string]*Block),
		log:         log.Named("registry"),
	}
}

// Register parses and validates the reference options and returns the
// placeholder token to embed in place of the reference. Equivalent
// references (same filename, same merged options, whatever the clause order
// or spacing) resolve to the same token.
func (r *Registry) Register(ref Ref) (string, error) {
	if len(ref.Filename) == 0 {
		return "", &OptionError{Key: "filename", Reason: "file name is required"}
	}

	opts, err := parseOptions(ref.Options)
	if err != nil {
		return "", err
	}

	sig := opts.signature(ref.Filename)
	if b, ok := r.index[sig]; ok {
		r.log.Debug("Reusing sprite block", zap.Int("id", b.ID), zap.String("file", ref.Filename))
		return r.token(b.ID), nil
	}

	r.nextID++
	b := &Block{
		Options:  opts,
		Filename: ref.Filename,
		ID:       r.nextID,
		Line:     ref.Line,
	}
	r.blocks = append(r.blocks, b)
	r.index[sig] = b
	r.log.Debug("Registered sprite block", zap.Int("id", b.ID), zap.String("file", ref.Filename), zap.Int("line", ref.Line))
	return r.token(b.ID), nil
}

// Blocks returns unique blocks in first-seen order. The slice is shared
// with the registry, callers must not modify it.
func (r *Registry) Blocks() []*Block {
	return r.blocks
}

// Len returns the number of unique blocks registered so far.
func (r *Registry) Len() int {
	return len(r.blocks)
}

func (r *Registry) token(id int) string {
	return fmt.Sprintf("%s(%d)", r.placeholder, id)
}
