package docxtext_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/docxtext"
	"github.com/fwojciec/docxtext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Text(t *testing.T) {
	t.Parallel()

	t.Run("joins paragraphs with a single newline", func(t *testing.T) {
		t.Parallel()

		doc := &docxtext.Document{Paragraphs: []string{"Hi", "Bye"}}

		assert.Equal(t, "Hi\nBye", doc.Text())
	})

	t.Run("has no trailing newline", func(t *testing.T) {
		t.Parallel()

		doc := &docxtext.Document{Paragraphs: []string{"one", "two", "three"}}

		assert.False(t, strings.HasSuffix(doc.Text(), "\n"))
	})

	t.Run("returns empty string without paragraphs", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, (&docxtext.Document{}).Text())
	})

	t.Run("returns empty string for nil document", func(t *testing.T) {
		t.Parallel()

		var doc *docxtext.Document

		assert.Empty(t, doc.Text())
	})
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	t.Run("returns document text on success", func(t *testing.T) {
		t.Parallel()

		r := docxtext.Result{Document: &docxtext.Document{Paragraphs: []string{"Hello world"}}}

		assert.True(t, r.OK())
		assert.Equal(t, "Hello world", r.String())
	})

	t.Run("prefixes the error message on failure", func(t *testing.T) {
		t.Parallel()

		r := docxtext.Result{Err: docxtext.Errorf(docxtext.EARCHIVE, "zip: not a valid zip file")}

		assert.False(t, r.OK())
		assert.Equal(t, "Error extracting text: zip: not a valid zip file", r.String())
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("captures the document", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		e := &mock.Extractor{
			ExtractFn: func(_ context.Context, path string) (*docxtext.Document, error) {
				gotPath = path
				return &docxtext.Document{Path: path, Paragraphs: []string{"Hi", "Bye"}}, nil
			},
		}

		r := docxtext.Extract(context.Background(), e, "report.docx")

		require.NoError(t, r.Err)
		assert.Equal(t, "report.docx", gotPath)
		assert.Equal(t, "Hi\nBye", r.String())
	})

	t.Run("captures the error instead of returning it", func(t *testing.T) {
		t.Parallel()

		e := &mock.Extractor{
			ExtractFn: func(context.Context, string) (*docxtext.Document, error) {
				return nil, errors.New("permission denied")
			},
		}

		r := docxtext.Extract(context.Background(), e, "report.docx")

		require.Error(t, r.Err)
		assert.Nil(t, r.Document)
		assert.Equal(t, "Error extracting text: permission denied", r.String())
	})
}
