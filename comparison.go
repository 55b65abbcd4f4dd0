package pagediff

import "io"

// Comparison holds everything extracted from one run: the two regions,
// their links, and the link classification. It is the renderer's sole
// input besides a clock.
type Comparison struct {
	// File1 and File2 name the compared snapshots (display only).
	File1 string
	File2 string

	// Marker is the phrase that anchored region extraction.
	Marker string

	Region1 *Region
	Region2 *Region

	Links1 []Link
	Links2 []Link

	LinkDiff LinkComparison
}

// ReportRenderer writes a self-contained interactive report for a
// comparison. Identical inputs must render byte-identical output except
// for the embedded generation timestamp.
type ReportRenderer interface {
	Render(w io.Writer, cmp *Comparison) error
}

// ReportWriter persists a fully rendered report.
type ReportWriter interface {
	WriteReport(path string, data []byte) error
}
