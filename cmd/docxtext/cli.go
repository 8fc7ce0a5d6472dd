package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/docxtext"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool     `short:"v" env:"DOCXTEXT_VERBOSE" help:"Log extraction details to stderr"`
	Input   string   `arg:"" name:"docx_file" help:"Word document to read"`
	Output  string   `arg:"" name:"output_file" help:"Text file to write (overwritten)"`
	Extra   []string `arg:"" optional:"" help:"Additional arguments are ignored"`
}

// ExtractCmd extracts the text of one document into a file.
type ExtractCmd struct {
	Input     string
	Output    string
	Extractor docxtext.Extractor
	Writer    docxtext.TextWriter
	Logger    *slog.Logger
}

// Run extracts Input and writes the result to Output. A failed extraction
// is not an error: its message is written in place of the text.
func (c *ExtractCmd) Run(ctx context.Context) error {
	result := docxtext.Extract(ctx, c.Extractor, c.Input)
	if !result.OK() {
		c.Logger.Info("extraction failed",
			"path", c.Input,
			"code", docxtext.ErrorCode(result.Err),
			"err", result.Err,
		)
	}

	if err := c.Writer.WriteText(ctx, c.Output, result.String()); err != nil {
		return fmt.Errorf("failed to write %q: %w", c.Output, err)
	}
	return nil
}
