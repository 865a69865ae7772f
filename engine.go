package tagex

import (
	"github.com/tsawler/tagex/batch"
	"github.com/tsawler/tagex/buffer"
	"github.com/tsawler/tagex/decode"
	"github.com/tsawler/tagex/model"
	"github.com/tsawler/tagex/text"
)

// Engine exposes the extraction operations behind a shared
// configuration. Each configuration method returns a new Engine
// instance, making it safe to share and to chain.
type Engine struct {
	decoder  decode.Decoder
	recorder batch.Recorder
	options  engineOptions
}

// New creates an Engine with the production PDF decoder, no
// diagnostics, and default thresholds.
func New() *Engine {
	return &Engine{
		decoder:  decode.NewPDFDecoder(),
		recorder: batch.NopRecorder{},
		options:  defaultOptions(),
	}
}

// clone creates a copy of the Engine so configuration methods never
// mutate a shared instance.
func (e *Engine) clone() *Engine {
	return &Engine{
		decoder:  e.decoder,
		recorder: e.recorder,
		options:  e.options,
	}
}

// WithDecoder returns an Engine using the given page decoder. A nil
// decoder is ignored.
func (e *Engine) WithDecoder(d decode.Decoder) *Engine {
	if d == nil {
		return e
	}
	next := e.clone()
	next.decoder = d
	return next
}

// WithRecorder returns an Engine reporting diagnostics to r. A nil
// recorder is ignored.
func (e *Engine) WithRecorder(r batch.Recorder) *Engine {
	if r == nil {
		return e
	}
	next := e.clone()
	next.recorder = r
	return next
}

// WithScannedThreshold returns an Engine classifying pages as scanned
// below the given fragment count.
func (e *Engine) WithScannedThreshold(threshold int) *Engine {
	next := e.clone()
	next.options.scannedThreshold = threshold
	return next
}

// WithReconstructConfig returns an Engine using the given
// reading-order thresholds.
func (e *Engine) WithReconstructConfig(cfg text.ReconstructConfig) *Engine {
	next := e.clone()
	next.options.reconstruct = cfg
	return next
}

// KeepElements returns an Engine that retains (or drops) the ordered
// text elements on successful batch results.
func (e *Engine) KeepElements(keep bool) *Engine {
	next := e.clone()
	next.options.keepElements = keep
	return next
}

// TextElementsFromPage decodes the given page (1-indexed) and returns
// its positioned text elements. The input buffer is cloned before
// decoding, so it stays usable.
func (e *Engine) TextElementsFromPage(buf *buffer.Buffer, pageNumber int) ([]model.TextElement, error) {
	clone, err := buf.Clone()
	if err != nil {
		return nil, err
	}

	page, err := e.decoder.Decode(clone, pageNumber)
	if err != nil {
		return nil, err
	}

	return text.ElementsFromPage(page)
}

// TextFromRegion extracts the reading-order text inside region on the
// given page (1-indexed). When the page decodes but no element falls
// inside the region, the region placeholder text is returned; when
// the region's text is empty after cleanup, the no-text placeholder
// is returned. The result is never the empty string on success.
func (e *Engine) TextFromRegion(buf *buffer.Buffer, pageNumber int, region model.Region) (string, error) {
	elements, err := e.TextElementsFromPage(buf, pageNumber)
	if err != nil {
		return "", err
	}

	filtered := text.FilterByRegion(elements, region)
	if len(filtered) == 0 {
		return model.PlaceholderEmptyRegion, nil
	}

	extracted := text.Normalize(text.ReconstructWithConfig(filtered, e.options.reconstruct))
	if extracted == "" {
		return model.PlaceholderNoText, nil
	}
	return extracted, nil
}

// IsProbablyScanned reports whether the document's first page is
// likely image-only. A document that cannot be decoded at all counts
// as scanned: either way it has no usable text layer.
func (e *Engine) IsProbablyScanned(buf *buffer.Buffer) bool {
	elements, err := e.TextElementsFromPage(buf, 1)
	if err != nil {
		return true
	}
	return text.LikelyScannedWithThreshold(len(elements), e.options.scannedThreshold)
}

// ExtractAll runs batch extraction over documents and tags, returning
// one result per (document, tag) pair in document-major order.
func (e *Engine) ExtractAll(documents []batch.Document, tags []model.Tag) []model.ExtractionResult {
	o := batch.New(
		batch.WithDecoder(e.decoder),
		batch.WithRecorder(e.recorder),
		batch.WithReconstructConfig(e.options.reconstruct),
		batch.WithScannedThreshold(e.options.scannedThreshold),
		batch.KeepElements(e.options.keepElements),
	)
	return o.ExtractAll(documents, tags)
}
