package difflib_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/pagediff"
	"github.com/fwojciec/pagediff/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	d := difflib.NewDiffer()

	t.Run("identical texts score 1.0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1.0, d.Similarity("course syllabus", "course syllabus"))
	})

	t.Run("empty texts score 1.0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1.0, d.Similarity("", ""))
	})

	t.Run("disjoint texts score 0.0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.0, d.Similarity("abc", "xyz"))
	})

	t.Run("different texts score below 1.0", func(t *testing.T) {
		t.Parallel()

		got := d.Similarity("the quick brown fox", "the quick red fox")

		assert.Less(t, got, 1.0)
		assert.Greater(t, got, 0.0)
	})

	t.Run("is symmetric", func(t *testing.T) {
		t.Parallel()

		a := "The course covers parsing, diffing and rendering."
		b := "The course covers lexing, diffing and reporting."

		assert.Equal(t, d.Similarity(a, b), d.Similarity(b, a))
	})

	t.Run("is symmetric for long inputs", func(t *testing.T) {
		t.Parallel()

		a := strings.Repeat("lorem ipsum dolor sit amet ", 50)
		b := strings.Repeat("lorem ipsum dolor sit forte ", 50)

		assert.Equal(t, d.Similarity(a, b), d.Similarity(b, a))
	})
}

func TestSegments(t *testing.T) {
	t.Parallel()

	d := difflib.NewDiffer()

	// reconstruct concatenates one side of the alignment.
	reconstruct := func(segments []pagediff.DiffSegment, side1 bool) string {
		var b strings.Builder
		for _, seg := range segments {
			if side1 {
				b.WriteString(seg.TextA)
			} else {
				b.WriteString(seg.TextB)
			}
		}
		return b.String()
	}

	t.Run("round-trips both sides exactly", func(t *testing.T) {
		t.Parallel()

		cases := [][2]string{
			{"hello world", "hello brave world"},
			{"héllo wörld", "héllo brave wörld"},
			{"abcdef", "abef"},
			{"", "new content"},
			{"old content", ""},
			{"", ""},
			{"same", "same"},
		}

		for _, c := range cases {
			segments := d.Segments(c[0], c[1])

			assert.Equal(t, c[0], reconstruct(segments, true), "side 1 of %q vs %q", c[0], c[1])
			assert.Equal(t, c[1], reconstruct(segments, false), "side 2 of %q vs %q", c[0], c[1])
		}
	})

	t.Run("classifies a deletion", func(t *testing.T) {
		t.Parallel()

		segments := d.Segments("abcdef", "abef")

		require.Len(t, segments, 3)
		assert.Equal(t, pagediff.OpEqual, segments[0].Op)
		assert.Equal(t, pagediff.OpDelete, segments[1].Op)
		assert.Equal(t, "cd", segments[1].TextA)
		assert.Empty(t, segments[1].TextB)
		assert.Equal(t, pagediff.OpEqual, segments[2].Op)
	})

	t.Run("classifies an insertion", func(t *testing.T) {
		t.Parallel()

		segments := d.Segments("abef", "abcdef")

		require.Len(t, segments, 3)
		assert.Equal(t, pagediff.OpInsert, segments[1].Op)
		assert.Empty(t, segments[1].TextA)
		assert.Equal(t, "cd", segments[1].TextB)
	})

	t.Run("classifies a replacement", func(t *testing.T) {
		t.Parallel()

		segments := d.Segments("abXef", "abYef")

		require.Len(t, segments, 3)
		assert.Equal(t, pagediff.OpReplace, segments[1].Op)
		assert.Equal(t, "X", segments[1].TextA)
		assert.Equal(t, "Y", segments[1].TextB)
	})

	t.Run("equal runs carry identical text on both sides", func(t *testing.T) {
		t.Parallel()

		for _, seg := range d.Segments("shared prefix A", "shared prefix B") {
			if seg.Op == pagediff.OpEqual {
				assert.Equal(t, seg.TextA, seg.TextB)
			}
		}
	})

	t.Run("empty inputs produce no segments", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, d.Segments("", ""))
	})
}

func TestLines(t *testing.T) {
	t.Parallel()

	d := difflib.NewDiffer()

	// numbered builds a text of n unique lines, with overrides replacing
	// specific 1-based lines. Lines must stay unique so the matcher cannot
	// realign a change against a repeated filler line elsewhere.
	numbered := func(n int, overrides map[int]string) string {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = fmt.Sprintf("line %d", i+1)
		}
		for no, text := range overrides {
			lines[no-1] = text
		}
		return strings.Join(lines, "\n")
	}

	t.Run("single change yields one group with three context lines", func(t *testing.T) {
		t.Parallel()

		a := numbered(20, nil)
		b := numbered(20, map[int]string{10: "changed line"})

		groups := d.Lines(a, b)

		require.Len(t, groups, 1)
		rows := groups[0]
		require.Len(t, rows, 7) // 3 context + 1 change + 3 context

		assert.Equal(t, pagediff.OpEqual, rows[0].Op)
		assert.Equal(t, 7, rows[0].LeftNo)
		assert.Equal(t, 7, rows[0].RightNo)
		assert.Equal(t, pagediff.OpReplace, rows[3].Op)
		assert.Equal(t, 10, rows[3].LeftNo)
		assert.Equal(t, "changed line", rows[3].Right)
		assert.Equal(t, 13, rows[6].LeftNo)
	})

	t.Run("distant changes collapse into separate groups", func(t *testing.T) {
		t.Parallel()

		a := numbered(30, nil)
		b := numbered(30, map[int]string{5: "first change", 25: "second change"})

		groups := d.Lines(a, b)

		assert.Len(t, groups, 2)
	})

	t.Run("deleted line leaves the right side blank", func(t *testing.T) {
		t.Parallel()

		groups := d.Lines("x\ny\nz", "x\nz")

		require.Len(t, groups, 1)

		var deleted *pagediff.LineDiff
		for i := range groups[0] {
			if groups[0][i].Op == pagediff.OpDelete {
				deleted = &groups[0][i]
			}
		}
		require.NotNil(t, deleted)
		assert.Equal(t, 2, deleted.LeftNo)
		assert.Equal(t, "y", deleted.Left)
		assert.Equal(t, 0, deleted.RightNo)
		assert.Empty(t, deleted.Right)
	})

	t.Run("identical markup produces no change groups", func(t *testing.T) {
		t.Parallel()

		groups := d.Lines("a\nb\nc", "a\nb\nc")

		for _, g := range groups {
			for _, row := range g {
				assert.Equal(t, pagediff.OpEqual, row.Op)
			}
		}
	})
}
