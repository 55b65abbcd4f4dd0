package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagediff/difflib"
	"github.com/fwojciec/pagediff/fs"
	"github.com/fwojciec/pagediff/goquery"
	pdslog "github.com/fwojciec/pagediff/slog"
	"github.com/fwojciec/pagediff/template"
)

func main() {
	m := NewMain()

	if err := m.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Argument errors and load
// failures return a non-nil error so main exits non-zero; everything past
// loading degrades gracefully and completes the run.
func (m *Main) Run(args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagediff"),
		kong.Description("Compare two HTML snapshots around a marker phrase and render a side-by-side report."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	extractor := goquery.NewExtractor()
	differ := difflib.NewDiffer()

	deps := &Dependencies{
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: pdslog.NewLoggingExtractor(extractor, logger),
		Links:     extractor,
		Blocks:    extractor,
		Differ:    differ,
		Renderer:  template.NewRenderer(differ),
		Writer:    fs.NewWriter(),
	}

	return kongCtx.Run(deps)
}
