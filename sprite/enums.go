package sprite

// Horizontal placement of a block on the canvas.
// ENUM(block, left, center, right)
type Align int

// Vertical placement of an image within its block.
// ENUM(block, top, middle, bottom)
type VAlign int

// Tiling behavior of a block.
// ENUM(no, x, y)
type Repeat int
