// Package readability provides an alternative pagesift.ContentExtractor
// built on go-readability's scoring algorithm instead of the fixed selector
// heuristics. Useful for pages whose markup defeats the heuristic table.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/pagesift/pagesift"
)

// Ensure Extractor implements pagesift.ContentExtractor at compile time.
var _ pagesift.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page's readable text, whitespace-normalized and
// capped at pagesift.MaxContentLength.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	// An empty page extracts to empty text; the caller decides whether
	// that is meaningful.
	if rawHTML == "" {
		return "", nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return pagesift.CapContent(pagesift.NormalizeText(article.TextContent)), nil
}
