package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docxtext"
	"github.com/fwojciec/docxtext/docx"
	"github.com/fwojciec/docxtext/etree"
	"github.com/fwojciec/docxtext/fs"
	docxslog "github.com/fwojciec/docxtext/slog"
	"github.com/fwojciec/docxtext/zip"
)

// ErrUsage is returned by Run when too few arguments were given.
// The usage line has already been printed when it is returned.
var ErrUsage = errors.New("usage")

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Name is the program name shown in usage output.
	Name string

	// Services for end-to-end testing. Defaults are wired by Run when nil.
	Extractor docxtext.Extractor
	Writer    docxtext.TextWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Name: "docxtext"}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(m.Name),
		kong.Description("Extract plain text from a Word (DOCX) document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if countPositional(args) < 2 {
		fmt.Fprintf(stdout, "Usage: %s <docx_file> <output_file>\n", m.Name)
		return ErrUsage
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire dependencies
	extractor := m.Extractor
	if extractor == nil {
		extractor = &docx.Extractor{
			Parts:  zip.NewPartReader(),
			Parser: etree.NewParser(),
		}
	}
	writer := m.Writer
	if writer == nil {
		writer = fs.NewWriter()
	}

	cmd := &ExtractCmd{
		Input:     cli.Input,
		Output:    cli.Output,
		Extractor: docxslog.NewLoggingExtractor(extractor, logger),
		Writer:    writer,
		Logger:    logger,
	}
	return cmd.Run(ctx)
}

// countPositional returns the number of arguments that are not flags.
func countPositional(args []string) int {
	n := 0
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			n++
		}
	}
	return n
}

// newLogger returns a text logger on w. Only warnings and errors are
// emitted unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
