package mock

import (
	"context"

	"github.com/fwojciec/docxtext"
)

var _ docxtext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docxtext.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, path string) (*docxtext.Document, error)
}

func (e *Extractor) Extract(ctx context.Context, path string) (*docxtext.Document, error) {
	return e.ExtractFn(ctx, path)
}
