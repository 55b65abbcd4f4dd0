package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagediff/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("extracts links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<p><a href="/a">One</a> and <a href="/b">Two</a></p><p><a href="/c">Three</a></p>`

		links, err := e.ExtractLinks(html)

		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, "/a", links[0].URL)
		assert.Equal(t, "/b", links[1].URL)
		assert.Equal(t, "/c", links[2].URL)
	})

	t.Run("preserves duplicate raw URLs", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/a">One</a><a href="/a">Again</a>`

		links, err := e.ExtractLinks(html)

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "One", links[0].Text)
		assert.Equal(t, "Again", links[1].Text)
	})

	t.Run("skips anchors without a usable href", func(t *testing.T) {
		t.Parallel()

		html := `<a href="">empty</a><a>none</a><a href="/z">z</a>`

		links, err := e.ExtractLinks(html)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "/z", links[0].URL)
	})

	t.Run("trims visible anchor text", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/a">  spaced text  </a>`

		links, err := e.ExtractLinks(html)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "spaced text", links[0].Text)
	})

	t.Run("keeps raw URLs unresolved", func(t *testing.T) {
		t.Parallel()

		html := `<a href="../relative/path">rel</a>`

		links, err := e.ExtractLinks(html)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "../relative/path", links[0].URL)
	})

	t.Run("empty region yields no links", func(t *testing.T) {
		t.Parallel()

		links, err := e.ExtractLinks("")

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
