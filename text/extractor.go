package text

import (
	"math"

	"github.com/tsawler/tagex/decode"
	"github.com/tsawler/tagex/model"
)

// defaultFontName is reported for fragments whose font the decoder
// could not name.
const defaultFontName = "unknown"

// ElementsFromPage projects a decoded page's fragments into positioned
// text elements in top-left-origin page-pixel space.
//
// For each fragment with non-empty text the element's font size is
// sqrt(c²+d²) of the fragment transform [a b c d e f], its position is
// (e, pageHeight−f), its width is the fragment's reported advance
// width, and its height equals the font size. Elements keep the
// decoder's natural fragment order.
//
// Callers that must never fail treat a returned error as an empty
// element list; the error exists so diagnostics can tell a decode
// fault apart from a genuinely empty page.
func ElementsFromPage(page decode.Page) ([]model.TextElement, error) {
	fragments, err := page.TextContent()
	if err != nil {
		return nil, err
	}

	pageHeight := page.Viewport(1.0).Height

	elements := make([]model.TextElement, 0, len(fragments))
	for _, f := range fragments {
		if f.Text == "" {
			continue
		}

		fontSize := math.Sqrt(f.Transform[2]*f.Transform[2] + f.Transform[3]*f.Transform[3])
		fontName := f.FontName
		if fontName == "" {
			fontName = defaultFontName
		}

		elements = append(elements, model.TextElement{
			Text: f.Text,
			Position: model.Point{
				X: f.Transform[4],
				Y: pageHeight - f.Transform[5],
			},
			Width:    f.Width,
			Height:   fontSize,
			FontSize: fontSize,
			FontName: fontName,
		})
	}

	return elements, nil
}
