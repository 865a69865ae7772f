package batch

import (
	"time"

	"github.com/google/uuid"

	"github.com/tsawler/tagex/buffer"
	"github.com/tsawler/tagex/decode"
	"github.com/tsawler/tagex/model"
	"github.com/tsawler/tagex/text"
)

// Only the first page of each document is processed.
const pageNumber = 1

// Orchestrator runs region extraction over a batch of documents.
type Orchestrator struct {
	decoder          decode.Decoder
	recorder         Recorder
	reconstruct      text.ReconstructConfig
	scannedThreshold int
	keepElements     bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithDecoder sets the page decoder. The default is the production
// PDF decoder.
func WithDecoder(d decode.Decoder) Option {
	return func(o *Orchestrator) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithRecorder sets the diagnostics recorder. The default discards
// diagnostics.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithReconstructConfig overrides the reading-order thresholds.
func WithReconstructConfig(cfg text.ReconstructConfig) Option {
	return func(o *Orchestrator) {
		o.reconstruct = cfg
	}
}

// WithScannedThreshold overrides the fragment count below which a
// document is classified as scanned.
func WithScannedThreshold(threshold int) Option {
	return func(o *Orchestrator) {
		o.scannedThreshold = threshold
	}
}

// KeepElements controls whether successful results retain the ordered
// elements their text was built from. On by default.
func KeepElements(keep bool) Option {
	return func(o *Orchestrator) {
		o.keepElements = keep
	}
}

// New creates an Orchestrator with the given options applied over the
// defaults.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		decoder:          decode.NewPDFDecoder(),
		recorder:         NopRecorder{},
		reconstruct:      text.DefaultReconstructConfig(),
		scannedThreshold: text.DefaultScannedThreshold,
		keepElements:     true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ExtractAll extracts every tag region from every document, returning
// one result per (document, tag) pair in document-major order. It
// never fails as a whole: per-document and per-tag faults become
// typed placeholder results.
func (o *Orchestrator) ExtractAll(documents []Document, tags []model.Tag) []model.ExtractionResult {
	start := time.Now()
	results := make([]model.ExtractionResult, 0, len(documents)*len(tags))
	captured := make(map[string][]model.TextElement)

	for _, doc := range documents {
		o.step("document", map[string]interface{}{
			"documentId": doc.ID,
			"fileName":   doc.FileName,
		})
		results = append(results, o.processDocument(doc, tags, captured)...)
	}

	o.recorder.OnComplete(Summary{
		StartTime: start,
		EndTime:   time.Now(),
		Documents: len(documents),
		Tags:      len(tags),
		Results:   len(results),
		Elements:  captured,
	})

	return results
}

// processDocument extracts all tags from one document. A panic
// anywhere in the document's processing is converted into batch-error
// placeholders for every tag, isolating the fault from the rest of
// the batch.
func (o *Orchestrator) processDocument(doc Document, tags []model.Tag, captured map[string][]model.TextElement) (results []model.ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			o.step("documentPanic", map[string]interface{}{
				"documentId": doc.ID,
				"panic":      r,
			})
			results = o.placeholders(doc, tags, model.ErrCodeBatchProcessing)
		}
	}()

	if doc.Data == nil {
		return o.placeholders(doc, tags, model.ErrCodeNoData)
	}
	if doc.Data.Detached() {
		return o.placeholders(doc, tags, model.ErrCodeBufferDetached)
	}

	// One clone per decode: the decoder consumes whatever it is
	// handed, so the document keeps its own buffer intact.
	clone, err := doc.Data.Clone()
	if err != nil {
		return o.placeholders(doc, tags, model.ErrCodeBufferDetached)
	}

	elements := o.extractElements(clone, doc)

	if len(elements) == 0 || text.LikelyScannedWithThreshold(len(elements), o.scannedThreshold) {
		return o.placeholders(doc, tags, model.ErrCodeNoTextContent)
	}

	for _, tag := range tags {
		results = append(results, o.processTag(doc, tag, elements, captured))
	}
	return results
}

// extractElements decodes page 1 and projects its fragments. Decode
// failures yield an empty list; the document is then reported as
// having no text content rather than failing the batch.
func (o *Orchestrator) extractElements(clone *buffer.Buffer, doc Document) []model.TextElement {
	page, err := o.decoder.Decode(clone, pageNumber)
	if err != nil {
		o.step("decodeFailed", map[string]interface{}{
			"documentId": doc.ID,
			"error":      err.Error(),
		})
		return nil
	}

	elements, err := text.ElementsFromPage(page)
	if err != nil {
		o.step("textContentFailed", map[string]interface{}{
			"documentId": doc.ID,
			"error":      err.Error(),
		})
		return nil
	}

	o.step("extracted", map[string]interface{}{
		"documentId": doc.ID,
		"elements":   len(elements),
	})
	return elements
}

// processTag filters, reconstructs, and normalizes one tag's region.
// Unexpected failures become a processing-error placeholder for this
// tag only.
func (o *Orchestrator) processTag(doc Document, tag model.Tag, elements []model.TextElement, captured map[string][]model.TextElement) (result model.ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = o.placeholder(doc, tag, model.ErrCodeProcessing)
		}
	}()

	filtered := text.FilterByRegion(elements, tag.Region)
	if len(filtered) == 0 {
		result = o.placeholder(doc, tag, model.ErrCodeEmptyRegion)
		result.TextElements = []model.TextElement{}
		return result
	}

	ordered := text.OrderElements(filtered, o.reconstruct)
	extracted := text.Normalize(text.ReconstructWithConfig(ordered, o.reconstruct))
	if extracted == "" {
		extracted = model.PlaceholderNoText
	}

	result = model.ExtractionResult{
		ID:            uuid.NewString(),
		DocumentID:    doc.ID,
		FileName:      doc.FileName,
		PageNumber:    pageNumber,
		TagID:         tag.ID,
		TagName:       tag.Name,
		ExtractedText: extracted,
	}
	if o.keepElements {
		result.TextElements = ordered
	}
	captured[result.ID] = ordered

	o.step("tagExtracted", map[string]interface{}{
		"documentId": doc.ID,
		"tagId":      tag.ID,
		"elements":   len(ordered),
		"characters": len(extracted),
	})
	return result
}

// placeholder builds one failure result for a (document, tag) pair.
func (o *Orchestrator) placeholder(doc Document, tag model.Tag, code model.ErrorCode) model.ExtractionResult {
	return model.ExtractionResult{
		ID:            uuid.NewString(),
		DocumentID:    doc.ID,
		FileName:      doc.FileName,
		PageNumber:    pageNumber,
		TagID:         tag.ID,
		TagName:       tag.Name,
		ExtractedText: code.Placeholder(),
		ErrorCode:     code,
	}
}

// placeholders builds one failure result per tag for a document.
func (o *Orchestrator) placeholders(doc Document, tags []model.Tag, code model.ErrorCode) []model.ExtractionResult {
	results := make([]model.ExtractionResult, 0, len(tags))
	for _, tag := range tags {
		results = append(results, o.placeholder(doc, tag, code))
	}
	return results
}

// step notifies the recorder of one processing step.
func (o *Orchestrator) step(step string, details map[string]interface{}) {
	o.recorder.OnStep(StepEvent{
		Step:      step,
		Timestamp: time.Now(),
		Details:   details,
	})
}
