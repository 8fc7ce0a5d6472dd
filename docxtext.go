// Package docxtext extracts plain text from Word (DOCX) documents.
// It reads the main document part of the package, joins the text runs of
// each paragraph and writes one paragraph per line.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., zip/, etree/, slog/).
package docxtext

import "strings"

// DocumentPart is the name of the main document body inside a DOCX package.
const DocumentPart = "word/document.xml"

// WordprocessingML is the namespace of the main document markup.
const WordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Document holds the text extracted from a DOCX package.
type Document struct {
	// Path is the location of the source package.
	Path string

	// Paragraphs holds the text of each paragraph in document order.
	// Paragraphs without text are not represented.
	Paragraphs []string
}

// Text returns the paragraphs joined by a single newline, with no trailing
// newline.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	return strings.Join(d.Paragraphs, "\n")
}
