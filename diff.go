package pagediff

import "unicode/utf8"

// DiffOp classifies a contiguous run produced by sequence alignment.
type DiffOp string

// Alignment opcode values.
const (
	OpEqual   DiffOp = "equal"
	OpDelete  DiffOp = "delete"
	OpInsert  DiffOp = "insert"
	OpReplace DiffOp = "replace"
)

// DiffSegment is a contiguous run of text from a character-level alignment.
// TextA is the run from side 1, TextB from side 2; for OpEqual both are
// identical, for OpDelete TextB is empty, for OpInsert TextA is empty.
// Concatenating TextA over all segments reconstructs side 1 exactly, and
// TextB reconstructs side 2.
type DiffSegment struct {
	Op    DiffOp
	TextA string
	TextB string
}

// LineDiff is one row of a side-by-side line alignment. Line numbers are
// 1-based; zero means no line on that side.
type LineDiff struct {
	Op      DiffOp
	LeftNo  int
	RightNo int
	Left    string
	Right   string
}

// Differ aligns two texts and reports their similarity.
type Differ interface {
	// Similarity returns a ratio in [0,1]; 1.0 iff the texts are
	// identical. Symmetric in its arguments.
	Similarity(a, b string) float64

	// Segments returns the character-level alignment of a and b.
	Segments(a, b string) []DiffSegment

	// Lines aligns a and b line-by-line and returns groups of rows with
	// a few lines of context around each change; unchanged runs between
	// groups are omitted.
	Lines(a, b string) [][]LineDiff
}

// CharDiffLimit caps the text fed to the character-level diff. Longer
// inputs are truncated before alignment, consistently on both sides.
const CharDiffLimit = 5000

// TruncateForDiff returns at most CharDiffLimit characters of s.
func TruncateForDiff(s string) string {
	if utf8.RuneCountInString(s) <= CharDiffLimit {
		return s
	}
	return string([]rune(s)[:CharDiffLimit])
}
