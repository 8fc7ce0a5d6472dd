package docxtext

import "context"

// ErrorPrefix starts the text of a failed extraction.
const ErrorPrefix = "Error extracting text: "

// Extractor extracts the paragraph text of a DOCX package.
type Extractor interface {
	// Extract reads the package at path and returns its text.
	// Returns EARCHIVE if the package cannot be opened, ENOTFOUND if the
	// main document part is missing and EMALFORMED if it is not XML.
	Extract(ctx context.Context, path string) (*Document, error)
}

// PartReader reads named parts of a ZIP-based package.
type PartReader interface {
	// ReadPart returns the bytes of the part called name inside the package
	// at path. Returns ENOTFOUND if the package has no such part.
	ReadPart(ctx context.Context, path, name string) ([]byte, error)
}

// ParagraphParser turns main document markup into paragraph text.
type ParagraphParser interface {
	// ParseParagraphs returns the text of every non-empty paragraph in data.
	ParseParagraphs(data []byte) ([]string, error)
}

// Result is the outcome of an extraction: either a Document or an error.
type Result struct {
	Document *Document
	Err      error
}

// OK reports whether the extraction succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// String flattens the result into the text written for the user. A failed
// extraction becomes ErrorPrefix followed by the error message.
func (r Result) String() string {
	if r.Err != nil {
		return ErrorPrefix + ErrorMessage(r.Err)
	}
	return r.Document.Text()
}

// Extract runs e on path and captures the outcome as a Result. It never
// returns an error; failures are carried in Result.Err.
func Extract(ctx context.Context, e Extractor, path string) Result {
	doc, err := e.Extract(ctx, path)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Document: doc}
}
