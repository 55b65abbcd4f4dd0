package mock

import "github.com/fwojciec/pagediff"

var _ pagediff.Differ = (*Differ)(nil)

// Differ is a mock implementation of pagediff.Differ.
type Differ struct {
	SimilarityFn func(a, b string) float64
	SegmentsFn   func(a, b string) []pagediff.DiffSegment
	LinesFn      func(a, b string) [][]pagediff.LineDiff
}

func (d *Differ) Similarity(a, b string) float64 {
	return d.SimilarityFn(a, b)
}

func (d *Differ) Segments(a, b string) []pagediff.DiffSegment {
	return d.SegmentsFn(a, b)
}

func (d *Differ) Lines(a, b string) [][]pagediff.LineDiff {
	return d.LinesFn(a, b)
}
