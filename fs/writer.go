// Package fs provides file-based storage for extracted text.
package fs

import (
	"context"
	"os"

	"github.com/fwojciec/docxtext"
)

// Ensure Writer implements docxtext.TextWriter at compile time.
var _ docxtext.TextWriter = (*Writer)(nil)

// Writer writes text to files on the local filesystem.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText writes text to path as UTF-8, truncating any existing file.
// Parent directories must already exist.
func (w *Writer) WriteText(ctx context.Context, path, text string) error {
	if path == "" {
		return docxtext.Errorf(docxtext.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}
