// Package pagediff compares two HTML document snapshots and renders a
// single-page interactive report of their differences. It locates a common
// content region via a marker phrase, extracts comparable text and links
// from that region, and produces side-by-side character and line diffs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, difflib/, template/).
package pagediff
