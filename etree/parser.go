// Package etree parses WordprocessingML markup into paragraph text.
package etree

import (
	"bytes"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docxtext"
	"golang.org/x/net/html/charset"
)

// Ensure Parser implements docxtext.ParagraphParser at compile time.
var _ docxtext.ParagraphParser = (*Parser)(nil)

// Parser extracts paragraph text from the main document part.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseParagraphs parses data as XML and returns the text of each w:p
// element. The w:t runs of a paragraph are concatenated without a separator
// and paragraphs without text are skipped.
func (p *Parser) ParseParagraphs(data []byte) ([]string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	doc.ReadSettings.ValidateInput = true
	// Validation rejects any token after the root element, so the
	// comments and processing instructions allowed there are removed first.
	if err := doc.ReadFromBytes(trimTrailingMisc(data)); err != nil {
		return nil, docxtext.Errorf(docxtext.EMALFORMED, "%w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docxtext.Errorf(docxtext.EMALFORMED, "no element found")
	}

	var paragraphs []string
	for _, para := range FindDescendants(root, docxtext.WordprocessingML, "p") {
		var runs []string
		for _, run := range FindDescendants(para, docxtext.WordprocessingML, "t") {
			if text := run.Text(); text != "" {
				runs = append(runs, text)
			}
		}
		if len(runs) > 0 {
			paragraphs = append(paragraphs, strings.Join(runs, ""))
		}
	}
	return paragraphs, nil
}

// trimTrailingMisc removes the whitespace, comments and processing
// instructions at the end of data. Anything else after the root element is
// left in place for validation to reject.
func trimTrailingMisc(data []byte) []byte {
	for {
		data = bytes.TrimRight(data, " \t\r\n")
		open, end := "", ""
		switch {
		case bytes.HasSuffix(data, []byte("-->")):
			open, end = "<!--", "-->"
		case bytes.HasSuffix(data, []byte("?>")):
			open, end = "<?", "?>"
		default:
			return data
		}
		start := bytes.LastIndex(data, []byte(open))
		if start < 0 || start+len(open) > len(data)-len(end) {
			return data
		}
		data = data[:start]
	}
}

// FindDescendants returns every element below root whose namespace URI is
// space and whose local name is tag, in document order. The root itself is
// not considered. Matching uses the resolved namespace, so any prefix bound
// to space (including the default namespace) matches.
func FindDescendants(root *etree.Element, space, tag string) []*etree.Element {
	var found []*etree.Element
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			if child.Tag == tag && child.NamespaceURI() == space {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(root)
	return found
}
