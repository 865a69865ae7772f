package decode

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/tagex/buffer"
)

// US Letter, used when a page carries no usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// PDFDecoder decodes PDF bytes using github.com/ledongthuc/pdf.
// The zero value is ready to use.
type PDFDecoder struct{}

// NewPDFDecoder creates a new PDF decoder.
func NewPDFDecoder() *PDFDecoder {
	return &PDFDecoder{}
}

// Decode consumes buf and returns the requested page (1-indexed).
func (d *PDFDecoder) Decode(buf *buffer.Buffer, pageNumber int) (Page, error) {
	data, err := buf.Take()
	if err != nil {
		return nil, err
	}
	if pageNumber < 1 {
		return nil, fmt.Errorf("decode: invalid page number %d", pageNumber)
	}

	var page pdf.Page
	err = withRecover(func() error {
		r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return fmt.Errorf("decode: open pdf: %w", err)
		}
		if n := r.NumPage(); pageNumber > n {
			return fmt.Errorf("decode: page %d out of range (document has %d)", pageNumber, n)
		}
		p := r.Page(pageNumber)
		if p.V.IsNull() {
			return fmt.Errorf("decode: page %d not found", pageNumber)
		}
		page = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &pdfPage{page: page}, nil
}

// pdfPage adapts a pdf.Page to the Page interface.
type pdfPage struct {
	page pdf.Page
}

// TextContent returns the page's text runs in content stream order.
func (p *pdfPage) TextContent() ([]Fragment, error) {
	var fragments []Fragment

	err := withRecover(func() error {
		content := p.page.Content()
		fragments = make([]Fragment, 0, len(content.Text))
		for _, t := range content.Text {
			fragments = append(fragments, Fragment{
				Text: t.S,
				// The library pre-multiplies the text matrix, so the
				// effective transform reduces to a uniform font-size
				// scale at (X, Y).
				Transform: [6]float64{t.FontSize, 0, 0, t.FontSize, t.X, t.Y},
				Width:     t.W,
				FontName:  t.Font,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fragments, nil
}

// Viewport returns the page's MediaBox dimensions multiplied by scale,
// falling back to US Letter when the MediaBox is missing or malformed.
func (p *pdfPage) Viewport(scale float64) Viewport {
	width, height := defaultPageWidth, defaultPageHeight

	_ = withRecover(func() error {
		box := mediaBox(p.page.V)
		if box.IsNull() || box.Kind() != pdf.Array || box.Len() < 4 {
			return nil
		}
		llx := numeric(box.Index(0))
		lly := numeric(box.Index(1))
		urx := numeric(box.Index(2))
		ury := numeric(box.Index(3))
		if urx > llx && ury > lly {
			width = urx - llx
			height = ury - lly
		}
		return nil
	})

	return Viewport{Width: width * scale, Height: height * scale}
}

// mediaBox resolves the page's MediaBox, walking up the page tree for
// inherited values.
func mediaBox(v pdf.Value) pdf.Value {
	for i := 0; i < 16 && !v.IsNull(); i++ {
		if box := v.Key("MediaBox"); !box.IsNull() {
			return box
		}
		v = v.Key("Parent")
	}
	return pdf.Value{}
}

// numeric reads an Integer or Real value as float64.
func numeric(v pdf.Value) float64 {
	switch v.Kind() {
	case pdf.Integer:
		return float64(v.Int64())
	case pdf.Real:
		return v.Float64()
	default:
		return 0
	}
}

// withRecover runs fn, converting any panic from the pdf library into
// an error.
func withRecover(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode: pdf library panic: %v", r)
		}
	}()
	return fn()
}
