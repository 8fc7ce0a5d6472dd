// Package docx extracts text from DOCX packages by combining a part reader
// with a paragraph parser.
package docx

import (
	"context"

	"github.com/fwojciec/docxtext"
)

// Ensure Extractor implements docxtext.Extractor at compile time.
var _ docxtext.Extractor = (*Extractor)(nil)

// Extractor reads the main document part of a package and parses its
// paragraphs.
type Extractor struct {
	Parts  docxtext.PartReader
	Parser docxtext.ParagraphParser
}

// Extract returns the paragraph text of the package at path.
func (e *Extractor) Extract(ctx context.Context, path string) (*docxtext.Document, error) {
	data, err := e.Parts.ReadPart(ctx, path, docxtext.DocumentPart)
	if err != nil {
		return nil, err
	}

	paragraphs, err := e.Parser.ParseParagraphs(data)
	if err != nil {
		return nil, err
	}

	return &docxtext.Document{Path: path, Paragraphs: paragraphs}, nil
}
