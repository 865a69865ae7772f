// Package tagex extracts the text that falls inside user-defined
// rectangular tags on PDF pages, across one document or a whole batch.
//
// Basic usage:
//
//	buf := buffer.New(pdfBytes)
//	region := model.NewRegion(50, 100, 300, 80)
//	text, err := tagex.ExtractTextFromRegion(buf, 1, region)
//	if err != nil {
//	    // handle error
//	}
//
// Batch usage, one result per (document, tag) pair:
//
//	docs := []batch.Document{
//	    batch.NewDocument("invoice.pdf", invoiceBytes),
//	    batch.NewDocument("receipt.pdf", receiptBytes),
//	}
//	tags := []model.Tag{
//	    {ID: "t1", Name: "Total", Region: model.NewRegion(400, 700, 150, 40)},
//	}
//	results := tagex.ExtractTextFromAllDocuments(docs, tags)
//
// With configuration:
//
//	engine := tagex.New().
//	    WithRecorder(batch.NewLogRecorder(nil)).
//	    KeepElements(false)
//	results := engine.ExtractAll(docs, tags)
//
// Input buffers are one-shot: every extraction clones the buffer it is
// given before decoding, so the caller's buffer stays usable across
// calls. See the buffer package for the ownership rules.
package tagex

import (
	"github.com/tsawler/tagex/batch"
	"github.com/tsawler/tagex/buffer"
	"github.com/tsawler/tagex/model"
)

// ExtractTextFromRegion extracts the reading-order text inside region
// on the given page (1-indexed) using a default engine.
func ExtractTextFromRegion(buf *buffer.Buffer, pageNumber int, region model.Region) (string, error) {
	return New().TextFromRegion(buf, pageNumber, region)
}

// ExtractTextElementsFromPage returns the positioned text elements of
// the given page (1-indexed) using a default engine.
func ExtractTextElementsFromPage(buf *buffer.Buffer, pageNumber int) ([]model.TextElement, error) {
	return New().TextElementsFromPage(buf, pageNumber)
}

// ExtractTextFromAllDocuments runs batch extraction over documents and
// tags with a default engine, returning one result per (document, tag)
// pair. It never fails as a whole; per-item faults become typed
// placeholder results.
func ExtractTextFromAllDocuments(documents []batch.Document, tags []model.Tag) []model.ExtractionResult {
	return New().ExtractAll(documents, tags)
}

// IsProbablyScanned reports whether the document's first page looks
// image-only, using a default engine.
func IsProbablyScanned(buf *buffer.Buffer) bool {
	return New().IsProbablyScanned(buf)
}
