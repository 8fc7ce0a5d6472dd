package mock

import (
	"context"

	"github.com/fwojciec/docxtext"
)

var _ docxtext.TextWriter = (*TextWriter)(nil)

// TextWriter is a mock implementation of docxtext.TextWriter.
type TextWriter struct {
	WriteTextFn func(ctx context.Context, path, text string) error
}

func (w *TextWriter) WriteText(ctx context.Context, path, text string) error {
	return w.WriteTextFn(ctx, path, text)
}
