package mock

import (
	"io"

	"github.com/fwojciec/pagediff"
)

var _ pagediff.ReportRenderer = (*ReportRenderer)(nil)

// ReportRenderer is a mock implementation of pagediff.ReportRenderer.
type ReportRenderer struct {
	RenderFn func(w io.Writer, cmp *pagediff.Comparison) error
}

func (r *ReportRenderer) Render(w io.Writer, cmp *pagediff.Comparison) error {
	return r.RenderFn(w, cmp)
}
