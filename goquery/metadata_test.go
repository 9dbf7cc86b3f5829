package goquery_test

import (
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("extracts all fields when present", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Page Title</title>
<meta name="description" content="A page about things.">
<meta name="keywords" content="go, web, analysis">
</head>
<body><h1>Heading</h1></body>
</html>`

		ext := goquery.NewMetadataExtractor()
		meta, err := ext.ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "Page Title", meta.Title)
		assert.Equal(t, "A page about things.", meta.Description)
		assert.Equal(t, "go, web, analysis", meta.Keywords)
	})

	t.Run("title falls back to first h1", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Hello</h1><h1>Second</h1></body></html>`

		ext := goquery.NewMetadataExtractor()
		meta, err := ext.ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "Hello", meta.Title)
		assert.Equal(t, pagesift.NoDescription, meta.Description)
	})

	t.Run("description falls back to og:description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:description" content="From OpenGraph.">
</head><body></body></html>`

		ext := goquery.NewMetadataExtractor()
		meta, err := ext.ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "From OpenGraph.", meta.Description)
	})

	t.Run("placeholders when nothing is present", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewMetadataExtractor()
		meta, err := ext.ExtractMetadata("<html><body><p>text</p></body></html>")

		require.NoError(t, err)
		assert.Equal(t, pagesift.NoTitle, meta.Title)
		assert.Equal(t, pagesift.NoDescription, meta.Description)
		assert.Equal(t, pagesift.NoKeywords, meta.Keywords)
	})

	t.Run("trims whitespace in extracted values", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>
  Padded Title
</title></head><body></body></html>`

		ext := goquery.NewMetadataExtractor()
		meta, err := ext.ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "Padded Title", meta.Title)
	})
}
