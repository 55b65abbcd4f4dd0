package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagediff"
)

// blockSelector lists the block-level elements considered content units.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, li, td, th, div"

// ExtractBlocks returns the block-level elements of the region whose
// visible text exceeds pagediff.MinBlockChars characters. Shorter
// fragments are noise and excluded. Unparseable markup yields no blocks.
func (e *Extractor) ExtractBlocks(regionHTML string) []pagediff.TextBlock {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(regionHTML))
	if err != nil {
		return nil
	}

	var blocks []pagediff.TextBlock
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		text := strippedText(s)
		if utf8.RuneCountInString(text) <= pagediff.MinBlockChars {
			return
		}
		h, err := goquery.OuterHtml(s)
		if err != nil {
			return
		}
		blocks = append(blocks, pagediff.TextBlock{
			Tag:  goquery.NodeName(s),
			Text: text,
			HTML: h,
		})
	})
	return blocks
}

// strippedText concatenates the trimmed text nodes of sel with no
// separator.
func strippedText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, "")
}
