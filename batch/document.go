package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tsawler/tagex/buffer"
)

// Document is one input file in a batch. Data may be nil for a
// document whose bytes were never loaded; the orchestrator reports
// such documents rather than failing the batch.
type Document struct {
	ID       string
	FileName string
	Data     *buffer.Buffer
}

// NewDocument wraps raw file bytes in a Document with a generated ID.
func NewDocument(fileName string, data []byte) Document {
	return Document{
		ID:       uuid.NewString(),
		FileName: fileName,
		Data:     buffer.New(data),
	}
}

// FromFile loads a document from disk.
func FromFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("batch: read %s: %w", path, err)
	}
	return NewDocument(filepath.Base(path), data), nil
}
