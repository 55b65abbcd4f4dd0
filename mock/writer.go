package mock

import "github.com/fwojciec/pagediff"

var _ pagediff.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of pagediff.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(path string, data []byte) error
}

func (w *ReportWriter) WriteReport(path string, data []byte) error {
	return w.WriteReportFn(path, data)
}
