package decode

import "github.com/tsawler/tagex/buffer"

// Fragment is one raw run of text as reported by the decoding library.
// Transform is the run's affine matrix [a b c d e f] in the decoder's
// native bottom-left-origin coordinate space: e and f are the anchor
// position, and the scale components carry the effective font size.
type Fragment struct {
	Text      string
	Transform [6]float64
	Width     float64
	FontName  string
}

// Viewport holds the rendered page dimensions at a given scale.
type Viewport struct {
	Width  float64
	Height float64
}

// Page is a decoded page ready to report its text content.
type Page interface {
	// TextContent returns the page's text fragments in the decoder's
	// natural stream order.
	TextContent() ([]Fragment, error)

	// Viewport returns the page dimensions multiplied by scale.
	Viewport(scale float64) Viewport
}

// Decoder turns file bytes into a decoded page. Decode consumes buf:
// the buffer is detached afterwards regardless of success, matching
// the one-shot ownership the underlying libraries impose.
type Decoder interface {
	Decode(buf *buffer.Buffer, pageNumber int) (Page, error)
}
