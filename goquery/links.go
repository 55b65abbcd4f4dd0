package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagediff"
)

// ExtractLinks returns all anchors with a non-empty href from the region
// markup, in document order. Anchors without an href are skipped silently.
// Duplicate raw URLs are preserved; deduplication happens downstream via
// normalized keys.
func (e *Extractor) ExtractLinks(regionHTML string) ([]pagediff.Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(regionHTML))
	if err != nil {
		return nil, pagediff.Errorf(pagediff.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []pagediff.Link
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		links = append(links, pagediff.Link{
			URL:  href,
			Text: strings.TrimSpace(s.Text()),
		})
	})
	return links, nil
}
