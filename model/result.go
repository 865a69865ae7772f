package model

// ErrorCode classifies why an extraction produced placeholder text
// instead of real content. The empty value means success.
type ErrorCode string

const (
	// ErrCodeNoData means the document arrived without file bytes.
	ErrCodeNoData ErrorCode = "NO_DATA"

	// ErrCodeBufferDetached means the document's buffer had already
	// been consumed by an earlier decode call.
	ErrCodeBufferDetached ErrorCode = "BUFFER_DETACHED"

	// ErrCodeNoTextContent means the page yielded too few text
	// fragments to be a real text layer, usually a scanned image.
	ErrCodeNoTextContent ErrorCode = "NO_TEXT_CONTENT"

	// ErrCodeEmptyRegion means the page has text but none of it falls
	// inside the tag's rectangle.
	ErrCodeEmptyRegion ErrorCode = "EMPTY_REGION"

	// ErrCodeProcessing means an unexpected failure while extracting
	// a single tag.
	ErrCodeProcessing ErrorCode = "PROCESSING_ERROR"

	// ErrCodeBatchProcessing means an unexpected failure while
	// processing a whole document.
	ErrCodeBatchProcessing ErrorCode = "BATCH_PROCESSING_ERROR"
)

// PlaceholderNoText is the fallback text for a successful extraction
// whose source text was empty after cleanup. ExtractedText is never
// the empty string.
const PlaceholderNoText = "[No text found]"

// PlaceholderEmptyRegion is the text emitted when no elements fall
// inside a tag's rectangle.
const PlaceholderEmptyRegion = "[No text found in this region]"

// placeholders maps each error code to the bracketed text shown in
// place of extracted content, so downstream rendering needs no
// special-casing for failures.
var placeholders = map[ErrorCode]string{
	ErrCodeNoData:          "[No file data available]",
	ErrCodeBufferDetached:  "[File data is no longer available]",
	ErrCodeNoTextContent:   "[No text content - document appears to be scanned]",
	ErrCodeEmptyRegion:     PlaceholderEmptyRegion,
	ErrCodeProcessing:      "[Error extracting text]",
	ErrCodeBatchProcessing: "[Error processing document]",
}

// Placeholder returns the user-visible stand-in text for the code.
func (c ErrorCode) Placeholder() string {
	if s, ok := placeholders[c]; ok {
		return s
	}
	return PlaceholderNoText
}

// ExtractionResult records the outcome of extracting one
// (document, tag) pair. ErrorCode is empty on success; on failure
// ExtractedText still carries a descriptive placeholder so the result
// renders like any other. TextElements optionally retains the ordered
// elements the text was built from.
type ExtractionResult struct {
	ID            string        `json:"id"`
	DocumentID    string        `json:"documentId"`
	FileName      string        `json:"fileName"`
	PageNumber    int           `json:"pageNumber"`
	TagID         string        `json:"tagId"`
	TagName       string        `json:"tagName"`
	ExtractedText string        `json:"extractedText"`
	TextElements  []TextElement `json:"textElements,omitempty"`
	ErrorCode     ErrorCode     `json:"errorCode,omitempty"`
}

// OK reports whether the result represents a successful extraction.
func (r ExtractionResult) OK() bool {
	return r.ErrorCode == ""
}
