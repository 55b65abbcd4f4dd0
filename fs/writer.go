// Package fs provides file-based output for comparison reports.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/pagediff"
)

// Ensure Writer implements pagediff.ReportWriter at compile time.
var _ pagediff.ReportWriter = (*Writer)(nil)

// Writer writes rendered reports to the local filesystem. The report is
// written in a single operation after it is fully built.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteReport writes data to path, creating parent directories as needed.
func (w *Writer) WriteReport(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
