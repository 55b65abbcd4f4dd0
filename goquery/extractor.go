// Package goquery implements HTML content extraction using PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagediff"
	"golang.org/x/net/html"
)

// markerSelector lists the headline-like elements scanned, in document
// order, for the marker phrase.
const markerSelector = "b, strong, h1, h2, h3, h4, p, font"

// containerTags is the ancestor-walk stopping policy: climbing from the
// marker element stops at the first ancestor with one of these tags, which
// keeps the current element as the anchor for sibling collection.
var containerTags = map[string]bool{
	"td":   true,
	"div":  true,
	"body": true,
}

// boundaryTags end the climb unconditionally; the anchor never moves to or
// past these.
var boundaryTags = map[string]bool{
	"body":      true,
	"html":      true,
	"#document": true,
}

// Ensure Extractor implements the extraction interfaces at compile time.
var (
	_ pagediff.RegionExtractor = (*Extractor)(nil)
	_ pagediff.LinkExtractor   = (*Extractor)(nil)
	_ pagediff.BlockExtractor  = (*Extractor)(nil)
)

// Extractor extracts marker-anchored content regions, links and text
// blocks from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractRegion returns the content following the first marker occurrence.
// The marker matches any headline-like element whose visible text contains
// it case-insensitively. From the match the walk climbs to the nearest
// structural container and collects that anchor's following siblings; an
// empty collection is retried once from the anchor's parent. A missing
// marker degrades to the whole body. The parsed source tree is never
// mutated; region markup is serialized copies of the siblings.
func (e *Extractor) ExtractRegion(rawHTML string, marker string) (*pagediff.Region, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagediff.Errorf(pagediff.EINVALID, "failed to parse HTML: %v", err)
	}

	markerSel := findMarker(doc, marker)
	if markerSel == nil {
		return fallbackRegion(doc), nil
	}

	anchor := climbToContainer(markerSel)
	siblings := anchor.NextAll()
	if siblings.Length() == 0 {
		// One retry a level up. Deeper nesting can still yield an empty
		// region; that is documented behavior, not an error.
		siblings = anchor.Parent().NextAll()
	}

	return &pagediff.Region{
		HTML:        outerHTML(siblings),
		Text:        flattenText(siblings),
		MarkerFound: true,
		MarkerTag:   goquery.NodeName(markerSel),
	}, nil
}

// findMarker returns the first element in document order whose visible
// text contains marker, ignoring case. Returns nil when no element
// matches.
func findMarker(doc *goquery.Document, marker string) *goquery.Selection {
	needle := strings.ToLower(marker)
	var found *goquery.Selection
	doc.Find(markerSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(s.Text()), needle) {
			found = s
			return false
		}
		return true
	})
	return found
}

// climbToContainer walks up from s until the parent is a structural
// container or a document boundary, returning the highest ancestor below
// that point.
func climbToContainer(s *goquery.Selection) *goquery.Selection {
	cur := s
	for {
		parent := cur.Parent()
		if parent.Length() == 0 {
			return cur
		}
		name := goquery.NodeName(parent)
		if boundaryTags[name] || containerTags[name] {
			return cur
		}
		cur = parent
	}
}

// fallbackRegion returns the whole body (or the whole document when there
// is no body) as the region.
func fallbackRegion(doc *goquery.Document) *pagediff.Region {
	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	return &pagediff.Region{
		HTML: outerHTML(sel),
		Text: flattenText(sel),
	}
}

// outerHTML serializes every element of sel, in order.
func outerHTML(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Each(func(_ int, s *goquery.Selection) {
		if h, err := goquery.OuterHtml(s); err == nil {
			b.WriteString(h)
		}
	})
	return b.String()
}

// flattenText flattens sel to plain text: each text node is trimmed,
// empty fragments are dropped, and the rest are joined with newlines.
func flattenText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, "\n")
}

// collectText appends the trimmed non-empty text nodes under n to parts.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
