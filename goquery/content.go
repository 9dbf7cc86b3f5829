// Package goquery provides CSS-selector based implementations of
// pagesift.ContentExtractor and pagesift.MetadataExtractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Ensure ContentExtractor implements pagesift.ContentExtractor at compile time.
var _ pagesift.ContentExtractor = (*ContentExtractor)(nil)

// boilerplateSelector matches elements that never hold readable content:
// scripts, styles, page chrome and common advertising containers.
const boilerplateSelector = "script, style, nav, header, footer, " +
	".sidebar, .advertisement, .ads, .social-share"

// contentSelectors is the ordered heuristic table for locating the main
// content region. Semantic containers come before generic class/id
// conventions; earlier entries win ties.
var contentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	".content",
	".post-content",
	".article-content",
	".entry-content",
	"#content",
	".main-content",
}

// minSelectorTextLength is the amount of text a selector match must carry
// before it is accepted as the main content region.
const minSelectorTextLength = 500

// ContentExtractor extracts the main readable text of a page by evaluating
// an ordered list of CSS selector heuristics, falling back to headings and
// paragraphs and finally to the full body text.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract returns the page's readable text, whitespace-normalized and capped
// at pagesift.MaxContentLength.
func (e *ContentExtractor) Extract(html string) (string, error) {
	// An empty page extracts to empty text; the caller decides whether
	// that is meaningful.
	if html == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", pagesift.Errorf(pagesift.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(boilerplateSelector).Remove()

	// First selector with enough text wins.
	for _, selector := range contentSelectors {
		text := pagesift.NormalizeText(doc.Find(selector).Text())
		if len(text) > minSelectorTextLength {
			return pagesift.CapContent(text), nil
		}
	}

	// No region qualified: collect all headings, then all paragraphs,
	// in document order.
	var parts []string
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	if text := pagesift.NormalizeText(strings.Join(parts, " ")); text != "" {
		return pagesift.CapContent(text), nil
	}

	// Last resort: whatever text the body holds.
	return pagesift.CapContent(pagesift.NormalizeText(doc.Find("body").Text())), nil
}
