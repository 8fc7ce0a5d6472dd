// Package zip reads parts of ZIP-based document packages.
package zip

import (
	"context"
	"io"

	"github.com/fwojciec/docxtext"
	"github.com/klauspost/compress/zip"
)

// Ensure PartReader implements docxtext.PartReader at compile time.
var _ docxtext.PartReader = (*PartReader)(nil)

// PartReader reads parts from packages on the local filesystem.
type PartReader struct{}

// NewPartReader creates a new PartReader.
func NewPartReader() *PartReader {
	return &PartReader{}
}

// ReadPart opens the package at path and returns the contents of the part
// called name. The archive is closed before ReadPart returns.
func (r *PartReader) ReadPart(ctx context.Context, path, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, docxtext.Errorf(docxtext.EARCHIVE, "%w", err)
	}
	defer archive.Close()

	file := findFile(archive.File, name)
	if file == nil {
		return nil, docxtext.Errorf(docxtext.ENOTFOUND, "there is no item named %q in the archive", name)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, docxtext.Errorf(docxtext.EARCHIVE, "%w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, docxtext.Errorf(docxtext.EARCHIVE, "reading %s: %w", name, err)
	}
	return data, nil
}

// findFile returns the entry called name, or nil if there is none. When
// several entries share the name, the last one wins.
func findFile(files []*zip.File, name string) *zip.File {
	for i := len(files) - 1; i >= 0; i-- {
		if files[i].Name == name {
			return files[i]
		}
	}
	return nil
}
