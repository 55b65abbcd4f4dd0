package pagediff

// Region is the content region extracted from one document: everything that
// follows the marker element at its structural level. Extraction never
// fails; when the marker is absent the region degrades to the whole body.
type Region struct {
	// HTML is the serialized markup of the region's elements, in document
	// order. Empty when the marker had no following siblings.
	HTML string

	// Text is the region flattened to plain text, one stripped text
	// fragment per line.
	Text string

	// MarkerFound reports whether the marker phrase was located. When
	// false the region holds the whole-body fallback.
	MarkerFound bool

	// MarkerTag is the element name the marker was found in ("b", "h2",
	// ...). Empty when MarkerFound is false.
	MarkerTag string
}

// RegionExtractor isolates the content region following a marker phrase.
type RegionExtractor interface {
	// ExtractRegion parses html and returns the region after the first
	// element whose visible text contains marker (case-insensitive).
	// The source markup is never mutated.
	ExtractRegion(html string, marker string) (*Region, error)
}

// LinkExtractor pulls hyperlinks from a region's markup.
type LinkExtractor interface {
	// ExtractLinks returns all anchors with a non-empty href, in document
	// order. Duplicate raw URLs are preserved; deduplication happens
	// later via normalized keys.
	ExtractLinks(html string) ([]Link, error)
}

// BlockExtractor splits a region's markup into block-level text units.
type BlockExtractor interface {
	// ExtractBlocks returns the block-level elements of the region whose
	// visible text is long enough to be comparable content.
	ExtractBlocks(html string) []TextBlock
}

// TextBlock is a block-level element with enough visible text to count as
// content. Fragments at or below MinBlockChars characters are noise and
// are excluded.
type TextBlock struct {
	Tag  string
	Text string
	HTML string
}

// MinBlockChars is the visible-text length a block must exceed to be
// emitted by a BlockExtractor.
const MinBlockChars = 10
