package main

import (
	"io"

	"github.com/fwojciec/pagediff"
)

// Dependencies holds the services bound into command execution.
type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer

	Extractor pagediff.RegionExtractor
	Links     pagediff.LinkExtractor
	Blocks    pagediff.BlockExtractor
	Differ    pagediff.Differ
	Renderer  pagediff.ReportRenderer
	Writer    pagediff.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File1  string `arg:"" help:"First HTML snapshot"`
	File2  string `arg:"" help:"Second HTML snapshot"`
	Marker string `arg:"" optional:"" default:"Course Syllabus" help:"Marker phrase locating the content region"`

	Output  string `short:"o" default:"comparison.html" help:"Report output path"`
	Base1   string `name:"base1" help:"Base URL for resolving relative links in the first snapshot"`
	Base2   string `name:"base2" help:"Base URL for resolving relative links in the second snapshot"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}
