// Package difflib implements similarity scoring and diff generation using
// pmezard/go-difflib's SequenceMatcher.
package difflib

import (
	"strings"

	"github.com/fwojciec/pagediff"
	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the number of unchanged lines kept around each change in
// the line-level diff.
const contextLines = 3

// Ensure Differ implements pagediff.Differ at compile time.
var _ pagediff.Differ = (*Differ)(nil)

// Differ aligns texts with SequenceMatcher. Stateless.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Similarity returns the matching-block ratio between a and b, in [0,1].
// The ratio is 1.0 iff the texts are identical. SequenceMatcher's popular-
// element heuristic can make the raw ratio depend on argument order for
// long inputs, so arguments are ordered canonically before matching to
// keep the result symmetric.
func (d *Differ) Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a > b {
		a, b = b, a
	}
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

// Segments returns the character-level alignment of a and b as ordered
// segments. Concatenating TextA over all segments reconstructs a exactly,
// and TextB reconstructs b.
func (d *Differ) Segments(a, b string) []pagediff.DiffSegment {
	as, bs := splitRunes(a), splitRunes(b)
	opcodes := difflib.NewMatcher(as, bs).GetOpCodes()

	segments := make([]pagediff.DiffSegment, 0, len(opcodes))
	for _, op := range opcodes {
		segments = append(segments, pagediff.DiffSegment{
			Op:    opFor(op.Tag),
			TextA: strings.Join(as[op.I1:op.I2], ""),
			TextB: strings.Join(bs[op.J1:op.J2], ""),
		})
	}
	return segments
}

// Lines aligns a and b line-by-line (split on newline) and returns groups
// of side-by-side rows with contextLines lines of context around each
// change. Unchanged runs between groups are omitted.
func (d *Differ) Lines(a, b string) [][]pagediff.LineDiff {
	as := strings.Split(a, "\n")
	bs := strings.Split(b, "\n")
	grouped := difflib.NewMatcher(as, bs).GetGroupedOpCodes(contextLines)

	groups := make([][]pagediff.LineDiff, 0, len(grouped))
	for _, opcodes := range grouped {
		var rows []pagediff.LineDiff
		for _, op := range opcodes {
			rows = append(rows, lineRows(op, as, bs)...)
		}
		groups = append(groups, rows)
	}
	return groups
}

// lineRows expands one opcode into side-by-side rows. Equal and replace
// runs pair lines positionally; delete and insert runs leave the other
// side blank.
func lineRows(op difflib.OpCode, as, bs []string) []pagediff.LineDiff {
	var rows []pagediff.LineDiff

	left := as[op.I1:op.I2]
	right := bs[op.J1:op.J2]

	n := len(left)
	if len(right) > n {
		n = len(right)
	}

	for i := 0; i < n; i++ {
		row := pagediff.LineDiff{Op: opFor(op.Tag)}
		if i < len(left) {
			row.LeftNo = op.I1 + i + 1
			row.Left = left[i]
		}
		if i < len(right) {
			row.RightNo = op.J1 + i + 1
			row.Right = right[i]
		}
		rows = append(rows, row)
	}
	return rows
}

// opFor maps SequenceMatcher tags to domain opcodes.
func opFor(tag byte) pagediff.DiffOp {
	switch tag {
	case 'e':
		return pagediff.OpEqual
	case 'd':
		return pagediff.OpDelete
	case 'i':
		return pagediff.OpInsert
	case 'r':
		return pagediff.OpReplace
	}
	return pagediff.OpEqual
}

// splitRunes explodes s into one string per rune so the matcher aligns
// characters, not bytes.
func splitRunes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
