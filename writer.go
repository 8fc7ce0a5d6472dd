package docxtext

import "context"

// TextWriter persists extracted text.
type TextWriter interface {
	// WriteText stores text at path, replacing any existing content.
	WriteText(ctx context.Context, path, text string) error
}
