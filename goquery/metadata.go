package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Ensure MetadataExtractor implements pagesift.MetadataExtractor at compile time.
var _ pagesift.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor pulls title, description and keywords from standard HTML
// tags, applying a per-field fallback chain.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata returns the page metadata. Fields that cannot be located
// are filled with their "not found" placeholder.
func (e *MetadataExtractor) ExtractMetadata(html string) (pagesift.PageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return pagesift.PageMetadata{}, pagesift.Errorf(pagesift.EINVALID, "failed to parse HTML: %v", err)
	}

	return pagesift.PageMetadata{
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
		Keywords:    extractKeywords(doc),
	}, nil
}

// extractTitle falls back from the title tag to the first h1.
func extractTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return pagesift.NoTitle
}

// extractDescription falls back from the description meta tag to the
// OpenGraph description.
func extractDescription(doc *goquery.Document) string {
	if d := metaContent(doc, `meta[name="description"]`); d != "" {
		return d
	}
	if d := metaContent(doc, `meta[property="og:description"]`); d != "" {
		return d
	}
	return pagesift.NoDescription
}

func extractKeywords(doc *goquery.Document) string {
	if k := metaContent(doc, `meta[name="keywords"]`); k != "" {
		return k
	}
	return pagesift.NoKeywords
}

// metaContent returns the trimmed content attribute of the first element
// matching the selector.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
