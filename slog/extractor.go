// Package slog provides logging decorators for pagediff interfaces.
package slog

import (
	"log/slog"

	"github.com/fwojciec/pagediff"
)

// Ensure LoggingExtractor implements pagediff.RegionExtractor.
var _ pagediff.RegionExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a RegionExtractor and logs marker resolution.
// Marker-not-found is non-fatal but worth surfacing, so the whole-body
// fallback logs as a warning.
type LoggingExtractor struct {
	next   pagediff.RegionExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagediff.RegionExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractRegion delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractRegion(html string, marker string) (*pagediff.Region, error) {
	region, err := e.next.ExtractRegion(html, marker)
	if err != nil {
		return nil, err
	}

	if !region.MarkerFound {
		e.logger.Warn("marker not found, falling back to full body", "marker", marker)
		return region, nil
	}

	e.logger.Debug("marker found",
		"marker", marker,
		"tag", region.MarkerTag,
	)
	return region, nil
}
