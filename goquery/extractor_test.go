package goquery_test

import (
	"testing"

	"github.com/fwojciec/seogenie"
	seogoquery "github.com/fwojciec/seogenie/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>  Acme Widgets — Quality Widgets Since 1999  </title>
  <meta name="description" content=" Buy the finest widgets online. ">
  <style>body { color: red; }</style>
  <script>var tracking = "ignore me";</script>
</head>
<body>
  <h1>Welcome to Acme</h1>
  <h2>Our Widgets</h2>
  <h2>Our Story</h2>
  <h3>Premium Line</h3>
  <p>Widgets for <b>every</b> occasion.</p>
  <noscript>Enable JavaScript</noscript>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, description, headings, and body text", func(t *testing.T) {
		t.Parallel()

		extractor := seogoquery.NewExtractor()
		page, err := extractor.Extract("https://acme.test", samplePage)
		require.NoError(t, err)

		assert.Equal(t, "https://acme.test", page.URL)
		assert.Equal(t, "Acme Widgets — Quality Widgets Since 1999", page.Title)
		assert.Equal(t, "Buy the finest widgets online.", page.MetaDescription)
		assert.Equal(t, []string{"Welcome to Acme"}, page.Headings["h1"])
		assert.Equal(t, []string{"Our Widgets", "Our Story"}, page.Headings["h2"])
		assert.Equal(t, []string{"Premium Line"}, page.Headings["h3"])
		assert.Empty(t, page.Headings["h4"])
		assert.Equal(t,
			"Welcome to Acme Our Widgets Our Story Premium Line Widgets for every occasion.",
			page.BodyText)
	})

	t.Run("body text excludes script, style, and head content", func(t *testing.T) {
		t.Parallel()

		extractor := seogoquery.NewExtractor()
		page, err := extractor.Extract("https://acme.test", samplePage)
		require.NoError(t, err)

		assert.NotContains(t, page.BodyText, "ignore me")
		assert.NotContains(t, page.BodyText, "color: red")
		assert.NotContains(t, page.BodyText, "Enable JavaScript")
		assert.NotContains(t, page.BodyText, "Acme Widgets — Quality")
	})

	t.Run("empty document degrades to empty fields", func(t *testing.T) {
		t.Parallel()

		extractor := seogoquery.NewExtractor()
		page, err := extractor.Extract("https://empty.test", "")
		require.NoError(t, err)

		assert.Empty(t, page.Title)
		assert.Empty(t, page.MetaDescription)
		assert.Empty(t, page.BodyText)
		for _, level := range seogenie.HeadingLevels {
			_, ok := page.Headings[level]
			assert.True(t, ok, "level %s must be present", level)
			assert.Empty(t, page.Headings[level])
		}
		require.NoError(t, page.Validate())
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		extractor := seogoquery.NewExtractor()
		page, err := extractor.Extract("https://broken.test",
			"<html><h1>Unclosed heading<h2>Sub</h2><p>text</html>")
		require.NoError(t, err)

		assert.Equal(t, []string{"Unclosed heading"}, page.Headings["h1"])
		assert.Equal(t, []string{"Sub"}, page.Headings["h2"])
		assert.Contains(t, page.BodyText, "text")
	})

	t.Run("meta description attribute missing degrades to empty", func(t *testing.T) {
		t.Parallel()

		extractor := seogoquery.NewExtractor()
		page, err := extractor.Extract("https://nodesc.test",
			`<html><head><meta name="description"></head><body>hi</body></html>`)
		require.NoError(t, err)

		assert.Empty(t, page.MetaDescription)
	})

	t.Run("uses the first title when there are several", func(t *testing.T) {
		t.Parallel()

		extractor := seogoquery.NewExtractor()
		page, err := extractor.Extract("https://two.test",
			"<title>First</title><title>Second</title>")
		require.NoError(t, err)

		assert.Equal(t, "First", page.Title)
	})
}
