package text

import (
	"errors"
	"math"
	"testing"

	"github.com/tsawler/tagex/decode"
)

// stubPage is a scripted decode.Page for pipeline tests.
type stubPage struct {
	fragments []decode.Fragment
	height    float64
	err       error
}

func (p stubPage) TextContent() ([]decode.Fragment, error) {
	return p.fragments, p.err
}

func (p stubPage) Viewport(scale float64) decode.Viewport {
	return decode.Viewport{Width: 612 * scale, Height: p.height * scale}
}

func TestElementsFromPage(t *testing.T) {
	page := stubPage{
		height: 792,
		fragments: []decode.Fragment{
			{Text: "Hello", Transform: [6]float64{12, 0, 0, 12, 100, 700}, Width: 40, FontName: "Helvetica"},
		},
	}

	elements, err := ElementsFromPage(page)
	if err != nil {
		t.Fatalf("ElementsFromPage: %v", err)
	}
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	el := elements[0]
	if el.Text != "Hello" {
		t.Errorf("Text = %q, want Hello", el.Text)
	}
	if el.Position.X != 100 {
		t.Errorf("X = %v, want 100", el.Position.X)
	}
	// Y flips from bottom-left origin: 792 - 700
	if el.Position.Y != 92 {
		t.Errorf("Y = %v, want 92", el.Position.Y)
	}
	if el.FontSize != 12 || el.Height != 12 {
		t.Errorf("FontSize/Height = %v/%v, want 12/12", el.FontSize, el.Height)
	}
	if el.Width != 40 {
		t.Errorf("Width = %v, want 40", el.Width)
	}
	if el.FontName != "Helvetica" {
		t.Errorf("FontName = %q, want Helvetica", el.FontName)
	}
}

func TestElementsFromPageFontSizeFromRotatedTransform(t *testing.T) {
	// Font size comes from the scale components sqrt(c² + d²), so a
	// rotated transform still reports the right size.
	page := stubPage{
		height: 792,
		fragments: []decode.Fragment{
			{Text: "R", Transform: [6]float64{0, 12, -9, 12, 50, 50}, Width: 10},
		},
	}

	elements, err := ElementsFromPage(page)
	if err != nil {
		t.Fatalf("ElementsFromPage: %v", err)
	}

	want := math.Sqrt(9*9 + 12*12) // 15
	if elements[0].FontSize != want {
		t.Errorf("FontSize = %v, want %v", elements[0].FontSize, want)
	}
}

func TestElementsFromPageSkipsEmptyText(t *testing.T) {
	page := stubPage{
		height: 792,
		fragments: []decode.Fragment{
			{Text: "", Transform: [6]float64{12, 0, 0, 12, 0, 0}},
			{Text: "kept", Transform: [6]float64{12, 0, 0, 12, 0, 0}},
		},
	}

	elements, err := ElementsFromPage(page)
	if err != nil {
		t.Fatalf("ElementsFromPage: %v", err)
	}
	if len(elements) != 1 || elements[0].Text != "kept" {
		t.Errorf("Expected only the non-empty fragment, got %+v", elements)
	}
}

func TestElementsFromPageDefaultFontName(t *testing.T) {
	page := stubPage{
		height: 792,
		fragments: []decode.Fragment{
			{Text: "x", Transform: [6]float64{10, 0, 0, 10, 0, 0}},
		},
	}

	elements, err := ElementsFromPage(page)
	if err != nil {
		t.Fatalf("ElementsFromPage: %v", err)
	}
	if elements[0].FontName != "unknown" {
		t.Errorf("FontName = %q, want unknown", elements[0].FontName)
	}
}

func TestElementsFromPagePropagatesError(t *testing.T) {
	sentinel := errors.New("decode failed")
	page := stubPage{height: 792, err: sentinel}

	if _, err := ElementsFromPage(page); !errors.Is(err, sentinel) {
		t.Errorf("Expected decode error to propagate, got %v", err)
	}
}
