// Package slog provides logging decorators for docxtext services.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docxtext"
)

// Ensure LoggingExtractor implements docxtext.Extractor.
var _ docxtext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   docxtext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docxtext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, path string) (doc *docxtext.Document, err error) {
	defer func(begin time.Time) {
		text := doc.Text()
		e.logger.Info("docx extraction",
			"path", path,
			"paragraphs", paragraphCount(doc),
			"bytes", len(text),
			"hash", hashText(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, path)
}

func paragraphCount(doc *docxtext.Document) int {
	if doc == nil {
		return 0
	}
	return len(doc.Paragraphs)
}

// hashText returns the xxHash of text as 16 hex digits.
func hashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
