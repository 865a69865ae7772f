package batch

import (
	"fmt"
	"testing"

	"github.com/tsawler/tagex/buffer"
	"github.com/tsawler/tagex/decode"
	"github.com/tsawler/tagex/model"
)

// stubPage is a scripted decode.Page.
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

// stubDecoder serves scripted pages keyed by buffer content. It
// consumes buffers the way the real decoder does.
type stubDecoder struct {
	pages  map[string]stubPage
	panics map[string]bool
	calls  int
}

func (d *stubDecoder) Decode(buf *buffer.Buffer, page int) (decode.Page, error) {
	data, err := buf.Take()
	if err != nil {
		return nil, err
	}
	d.calls++
	key := string(data)
	if d.panics[key] {
		panic("decoder exploded on " + key)
	}
	p, ok := d.pages[key]
	if !ok {
		return nil, fmt.Errorf("no page scripted for %q", key)
	}
	return p, nil
}

// frag builds a fragment whose projected top-left-origin position is
// (x, topY) on a 792-point-tall page.
func frag(txt string, x, topY, width, fontSize float64) decode.Fragment {
	return decode.Fragment{
		Text:      txt,
		Transform: [6]float64{fontSize, 0, 0, fontSize, x, 792 - topY},
		Width:     width,
		FontName:  "Helvetica",
	}
}

// textPage returns a page with two words at the top and enough filler
// near the bottom to clear the scanned-classification threshold.
func textPage() stubPage {
	return stubPage{
		height: 792,
		fragments: []decode.Fragment{
			frag("Hello", 10, 100, 40, 12),
			frag("World", 70, 100, 45, 12),
			frag("footer1", 10, 700, 40, 8),
			frag("footer2, ", 60, 700, 40, 8),
			frag("footer3", 110, 700, 40, 8),
			frag("footer4", 160, 700, 40, 8),
		},
	}
}

func makeTag(id, name string, region model.Region) model.Tag {
	return model.Tag{ID: id, Name: name, Region: region}
}

func headerTag() model.Tag {
	return makeTag("tag-1", "Header", model.NewRegion(0, 50, 200, 100))
}

func TestExtractAllSuccess(t *testing.T) {
	dec := &stubDecoder{pages: map[string]stubPage{"DOC-A": textPage()}}
	o := New(WithDecoder(dec))

	doc := NewDocument("a.pdf", []byte("DOC-A"))
	results := o.ExtractAll([]Document{doc}, []model.Tag{headerTag()})

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	r := results[0]
	if !r.OK() {
		t.Fatalf("Expected success, got error code %s", r.ErrorCode)
	}
	if r.ExtractedText != "Hello World" {
		t.Errorf("ExtractedText = %q, want %q", r.ExtractedText, "Hello World")
	}
	if r.DocumentID != doc.ID || r.FileName != "a.pdf" {
		t.Errorf("Document identity not carried: %+v", r)
	}
	if r.TagID != "tag-1" || r.TagName != "Header" {
		t.Errorf("Tag identity not carried: %+v", r)
	}
	if r.PageNumber != 1 {
		t.Errorf("PageNumber = %d, want 1", r.PageNumber)
	}
	if r.ID == "" {
		t.Error("Result ID is empty")
	}
	if len(r.TextElements) != 2 {
		t.Errorf("Expected 2 retained elements, got %d", len(r.TextElements))
	}
}

func TestExtractAllMissingBufferStillEmitsOtherDocuments(t *testing.T) {
	dec := &stubDecoder{pages: map[string]stubPage{"DOC-B": textPage()}}
	o := New(WithDecoder(dec))

	missing := Document{ID: "doc-1", FileName: "missing.pdf"}
	valid := NewDocument("b.pdf", []byte("DOC-B"))

	results := o.ExtractAll([]Document{missing, valid}, []model.Tag{headerTag()})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].ErrorCode != model.ErrCodeNoData {
		t.Errorf("results[0].ErrorCode = %s, want NO_DATA", results[0].ErrorCode)
	}
	if results[0].ExtractedText == "" {
		t.Error("Placeholder result has empty text")
	}
	if !results[1].OK() {
		t.Errorf("Second document should succeed, got %s", results[1].ErrorCode)
	}
}

func TestExtractAllDetachedBuffer(t *testing.T) {
	dec := &stubDecoder{pages: map[string]stubPage{}}
	o := New(WithDecoder(dec))

	doc := NewDocument("a.pdf", []byte("DOC-A"))
	if _, err := doc.Data.Take(); err != nil {
		t.Fatalf("Take: %v", err)
	}

	results := o.ExtractAll([]Document{doc}, []model.Tag{headerTag()})
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].ErrorCode != model.ErrCodeBufferDetached {
		t.Errorf("ErrorCode = %s, want BUFFER_DETACHED", results[0].ErrorCode)
	}
	if dec.calls != 0 {
		t.Errorf("Decoder called %d times for a detached buffer, want 0", dec.calls)
	}
}

func TestExtractAllScannedShortCircuit(t *testing.T) {
	// Four fragments is below the threshold of five, so every tag
	// short-circuits regardless of region placement.
	scanned := stubPage{
		height: 792,
		fragments: []decode.Fragment{
			frag("a", 10, 100, 10, 12),
			frag("b", 30, 100, 10, 12),
			frag("c", 50, 100, 10, 12),
			frag("d", 70, 100, 10, 12),
		},
	}
	dec := &stubDecoder{pages: map[string]stubPage{"SCAN": scanned}}
	o := New(WithDecoder(dec))

	doc := NewDocument("scan.pdf", []byte("SCAN"))
	tags := []model.Tag{
		headerTag(), // covers the fragments
		makeTag("tag-2", "Elsewhere", model.NewRegion(400, 400, 50, 50)),
	}

	results := o.ExtractAll([]Document{doc}, tags)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.ErrorCode != model.ErrCodeNoTextContent {
			t.Errorf("Tag %s: ErrorCode = %s, want NO_TEXT_CONTENT", r.TagID, r.ErrorCode)
		}
	}
}

func TestExtractAllEmptyRegionDistinction(t *testing.T) {
	dec := &stubDecoder{pages: map[string]stubPage{"DOC-A": textPage()}}
	o := New(WithDecoder(dec))

	doc := NewDocument("a.pdf", []byte("DOC-A"))
	tags := []model.Tag{
		makeTag("tag-hit", "Header", model.NewRegion(0, 50, 200, 100)),
		makeTag("tag-miss", "Nowhere", model.NewRegion(400, 300, 50, 50)),
	}

	results := o.ExtractAll([]Document{doc}, tags)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	if !results[0].OK() {
		t.Errorf("Overlapping tag should succeed, got %s", results[0].ErrorCode)
	}
	if results[1].ErrorCode != model.ErrCodeEmptyRegion {
		t.Errorf("Non-overlapping tag: ErrorCode = %s, want EMPTY_REGION", results[1].ErrorCode)
	}
	if results[1].ExtractedText != model.PlaceholderEmptyRegion {
		t.Errorf("Empty region text = %q, want %q", results[1].ExtractedText, model.PlaceholderEmptyRegion)
	}
	if results[1].TextElements == nil || len(results[1].TextElements) != 0 {
		t.Errorf("Empty region should retain an empty element slice, got %v", results[1].TextElements)
	}
}

func TestExtractAllDecodeFailureBecomesNoTextContent(t *testing.T) {
	dec := &stubDecoder{pages: map[string]stubPage{}} // nothing scripted: Decode errors
	o := New(WithDecoder(dec))

	doc := NewDocument("bad.pdf", []byte("BAD"))
	results := o.ExtractAll([]Document{doc}, []model.Tag{headerTag()})

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].ErrorCode != model.ErrCodeNoTextContent {
		t.Errorf("ErrorCode = %s, want NO_TEXT_CONTENT", results[0].ErrorCode)
	}
}

func TestExtractAllPanicIsolatedPerDocument(t *testing.T) {
	dec := &stubDecoder{
		pages:  map[string]stubPage{"DOC-B": textPage()},
		panics: map[string]bool{"DOC-A": true},
	}
	o := New(WithDecoder(dec))

	docs := []Document{
		NewDocument("a.pdf", []byte("DOC-A")),
		NewDocument("b.pdf", []byte("DOC-B")),
	}

	results := o.ExtractAll(docs, []model.Tag{headerTag()})
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].ErrorCode != model.ErrCodeBatchProcessing {
		t.Errorf("results[0].ErrorCode = %s, want BATCH_PROCESSING_ERROR", results[0].ErrorCode)
	}
	if !results[1].OK() {
		t.Errorf("Second document should be unaffected, got %s", results[1].ErrorCode)
	}
}

func TestExtractAllLeavesDocumentBuffersUsable(t *testing.T) {
	dec := &stubDecoder{pages: map[string]stubPage{"DOC-A": textPage()}}
	o := New(WithDecoder(dec))

	docs := []Document{NewDocument("a.pdf", []byte("DOC-A"))}
	tags := []model.Tag{headerTag()}

	first := o.ExtractAll(docs, tags)
	second := o.ExtractAll(docs, tags)

	if !first[0].OK() || !second[0].OK() {
		t.Errorf("Expected both runs to succeed: %s / %s", first[0].ErrorCode, second[0].ErrorCode)
	}
	if dec.calls != 2 {
		t.Errorf("Decoder calls = %d, want 2 (one fresh clone per run)", dec.calls)
	}
}

func TestExtractAllWhitespaceOnlyFallsBack(t *testing.T) {
	page := textPage()
	// Replace the header words with whitespace-only runs.
	page.fragments[0] = frag(" ", 10, 100, 5, 12)
	page.fragments[1] = frag("\t", 60, 100, 5, 12)
	dec := &stubDecoder{pages: map[string]stubPage{"WS": page}}
	o := New(WithDecoder(dec))

	doc := NewDocument("ws.pdf", []byte("WS"))
	results := o.ExtractAll([]Document{doc}, []model.Tag{headerTag()})

	r := results[0]
	if !r.OK() {
		t.Fatalf("Expected success with fallback text, got %s", r.ErrorCode)
	}
	if r.ExtractedText != model.PlaceholderNoText {
		t.Errorf("ExtractedText = %q, want %q", r.ExtractedText, model.PlaceholderNoText)
	}
}

func TestExtractAllRecorder(t *testing.T) {
	rec := NewCaptureRecorder()
	dec := &stubDecoder{pages: map[string]stubPage{"DOC-A": textPage()}}
	o := New(WithDecoder(dec), WithRecorder(rec))

	doc := NewDocument("a.pdf", []byte("DOC-A"))
	results := o.ExtractAll([]Document{doc}, []model.Tag{headerTag()})

	if !rec.Done {
		t.Fatal("Recorder did not receive completion")
	}
	if rec.Summary.Documents != 1 || rec.Summary.Tags != 1 || rec.Summary.Results != 1 {
		t.Errorf("Summary counts = %+v", rec.Summary)
	}
	if rec.Summary.Duration() < 0 {
		t.Error("Negative duration in summary")
	}

	steps := make(map[string]bool)
	for _, ev := range rec.Steps {
		steps[ev.Step] = true
		if ev.Timestamp.IsZero() {
			t.Errorf("Step %s has zero timestamp", ev.Step)
		}
	}
	for _, want := range []string{"document", "extracted", "tagExtracted"} {
		if !steps[want] {
			t.Errorf("Missing step event %q", want)
		}
	}

	elements, ok := rec.Summary.Elements[results[0].ID]
	if !ok {
		t.Fatal("Summary has no element set for the result")
	}
	if len(elements) != 2 {
		t.Errorf("Summary element count = %d, want 2", len(elements))
	}
}

func TestExtractAllKeepElementsDisabled(t *testing.T) {
	dec := &stubDecoder{pages: map[string]stubPage{"DOC-A": textPage()}}
	o := New(WithDecoder(dec), KeepElements(false))

	doc := NewDocument("a.pdf", []byte("DOC-A"))
	results := o.ExtractAll([]Document{doc}, []model.Tag{headerTag()})

	if results[0].TextElements != nil {
		t.Errorf("Expected no retained elements, got %d", len(results[0].TextElements))
	}
}

func TestExtractAllNoTags(t *testing.T) {
	dec := &stubDecoder{pages: map[string]stubPage{"DOC-A": textPage()}}
	o := New(WithDecoder(dec))

	doc := NewDocument("a.pdf", []byte("DOC-A"))
	results := o.ExtractAll([]Document{doc}, nil)

	if len(results) != 0 {
		t.Errorf("Expected no results without tags, got %d", len(results))
	}
}
