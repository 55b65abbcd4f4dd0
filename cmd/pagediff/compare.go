package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagediff"
)

// Run executes the comparison. Both files are read before any comparison;
// the report is written in a single operation after it is fully built.
func (c *CLI) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Loading HTML files...")

	html1, err := loadHTML(c.File1)
	if err != nil {
		return err
	}
	html2, err := loadHTML(c.File2)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "  loaded %s\n", c.File1)
	fmt.Fprintf(deps.Stdout, "  loaded %s\n", c.File2)

	fmt.Fprintf(deps.Stdout, "Extracting content after marker %q...\n", c.Marker)
	region1, err := deps.Extractor.ExtractRegion(html1, c.Marker)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %s", c.File1, pagediff.ErrorMessage(err))
	}
	region2, err := deps.Extractor.ExtractRegion(html2, c.Marker)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %s", c.File2, pagediff.ErrorMessage(err))
	}
	reportMarker(deps, "version 1", region1)
	reportMarker(deps, "version 2", region2)

	fmt.Fprintln(deps.Stdout, "Extracting links and text...")
	links1, err := deps.Links.ExtractLinks(region1.HTML)
	if err != nil {
		return fmt.Errorf("failed to extract links from %q: %s", c.File1, pagediff.ErrorMessage(err))
	}
	links2, err := deps.Links.ExtractLinks(region2.HTML)
	if err != nil {
		return fmt.Errorf("failed to extract links from %q: %s", c.File2, pagediff.ErrorMessage(err))
	}
	blocks1 := deps.Blocks.ExtractBlocks(region1.HTML)
	blocks2 := deps.Blocks.ExtractBlocks(region2.HTML)
	fmt.Fprintf(deps.Stdout, "  version 1: %d links, %d content blocks, %d characters\n",
		len(links1), len(blocks1), utf8.RuneCountInString(region1.Text))
	fmt.Fprintf(deps.Stdout, "  version 2: %d links, %d content blocks, %d characters\n",
		len(links2), len(blocks2), utf8.RuneCountInString(region2.Text))

	fmt.Fprintln(deps.Stdout, "Comparing links...")
	linkDiff := pagediff.CompareLinks(links1, links2, c.Base1, c.Base2)
	fmt.Fprintf(deps.Stdout, "  only in version 1: %d\n", len(linkDiff.OnlyInV1))
	fmt.Fprintf(deps.Stdout, "  only in version 2: %d\n", len(linkDiff.OnlyInV2))
	fmt.Fprintf(deps.Stdout, "  in both: %d\n", len(linkDiff.InBoth))

	cmp := &pagediff.Comparison{
		File1:    c.File1,
		File2:    c.File2,
		Marker:   c.Marker,
		Region1:  region1,
		Region2:  region2,
		Links1:   links1,
		Links2:   links2,
		LinkDiff: linkDiff,
	}

	fmt.Fprintln(deps.Stdout, "Generating report...")
	var buf bytes.Buffer
	if err := deps.Renderer.Render(&buf, cmp); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := deps.Writer.WriteReport(c.Output, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Report saved to %s\n", c.Output)

	similarity := deps.Differ.Similarity(region1.Text, region2.Text)
	fmt.Fprintln(deps.Stdout, "")
	fmt.Fprintln(deps.Stdout, "Summary:")
	fmt.Fprintf(deps.Stdout, "  text similarity: %.1f%%\n", similarity*100)
	fmt.Fprintf(deps.Stdout, "  links removed:   %d\n", len(linkDiff.OnlyInV1))
	fmt.Fprintf(deps.Stdout, "  links added:     %d\n", len(linkDiff.OnlyInV2))
	fmt.Fprintf(deps.Stdout, "  links unchanged: %d\n", len(linkDiff.InBoth))

	return nil
}

// reportMarker prints where the marker was found for one side.
func reportMarker(deps *Dependencies, side string, region *pagediff.Region) {
	if region.MarkerFound {
		fmt.Fprintf(deps.Stdout, "  %s: marker found in <%s>\n", side, region.MarkerTag)
		return
	}
	fmt.Fprintf(deps.Stdout, "  %s: marker not found, using full body\n", side)
}

// loadHTML reads a snapshot as UTF-8. Invalid byte sequences are dropped
// rather than rejected.
func loadHTML(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return strings.ToValidUTF8(string(b), ""), nil
}
