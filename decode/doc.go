// Package decode defines the boundary to the page-decoding library and
// provides the production PDF implementation.
//
// # Boundary
//
// The engine consumes decoding through two small interfaces:
//
//	type Decoder interface {
//	    Decode(buf *buffer.Buffer, pageNumber int) (Page, error)
//	}
//
//	type Page interface {
//	    TextContent() ([]Fragment, error)
//	    Viewport(scale float64) Viewport
//	}
//
// Decode consumes the buffer it is given: the buffer is detached
// afterwards and must be re-derived by cloning before any further
// decode call. Fragments carry the decoder's native bottom-left-origin
// coordinates inside their affine transform; the text package flips
// them into top-left page-pixel space.
//
// # Production Decoder
//
// [PDFDecoder] binds the boundary to github.com/ledongthuc/pdf. The
// library panics on some malformed files, so every call into it runs
// behind a recover that converts panics into ordinary errors.
package decode
