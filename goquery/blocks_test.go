package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagediff/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBlocks(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("keeps only blocks with enough visible text", func(t *testing.T) {
		t.Parallel()

		html := `<p>short</p><p>this paragraph is long enough to keep</p>`

		blocks := e.ExtractBlocks(html)

		require.Len(t, blocks, 1)
		assert.Equal(t, "p", blocks[0].Tag)
		assert.Equal(t, "this paragraph is long enough to keep", blocks[0].Text)
		assert.Contains(t, blocks[0].HTML, "<p>")
	})

	t.Run("emits nested block elements separately", func(t *testing.T) {
		t.Parallel()

		html := `<div><p>a paragraph nested inside a container div</p></div>`

		blocks := e.ExtractBlocks(html)

		require.Len(t, blocks, 2)
		assert.Equal(t, "div", blocks[0].Tag)
		assert.Equal(t, "p", blocks[1].Tag)
	})

	t.Run("covers headings, list items and table cells", func(t *testing.T) {
		t.Parallel()

		html := `<h2>a heading with enough text</h2><ul><li>a list item with enough text</li></ul><table><tr><td>a table cell with enough text</td></tr></table>`

		blocks := e.ExtractBlocks(html)

		tags := make([]string, 0, len(blocks))
		for _, b := range blocks {
			tags = append(tags, b.Tag)
		}
		assert.Contains(t, tags, "h2")
		assert.Contains(t, tags, "li")
		assert.Contains(t, tags, "td")
	})

	t.Run("empty region yields no blocks", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, e.ExtractBlocks(""))
	})
}
