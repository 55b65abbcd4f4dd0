package mock

import "github.com/fwojciec/pagediff"

var _ pagediff.RegionExtractor = (*RegionExtractor)(nil)

// RegionExtractor is a mock implementation of pagediff.RegionExtractor.
type RegionExtractor struct {
	ExtractRegionFn func(html string, marker string) (*pagediff.Region, error)
}

func (e *RegionExtractor) ExtractRegion(html string, marker string) (*pagediff.Region, error) {
	return e.ExtractRegionFn(html, marker)
}

var _ pagediff.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of pagediff.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]pagediff.Link, error)
}

func (e *LinkExtractor) ExtractLinks(html string) ([]pagediff.Link, error) {
	return e.ExtractLinksFn(html)
}

var _ pagediff.BlockExtractor = (*BlockExtractor)(nil)

// BlockExtractor is a mock implementation of pagediff.BlockExtractor.
type BlockExtractor struct {
	ExtractBlocksFn func(html string) []pagediff.TextBlock
}

func (e *BlockExtractor) ExtractBlocks(html string) []pagediff.TextBlock {
	return e.ExtractBlocksFn(html)
}
