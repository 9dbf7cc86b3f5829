package pagesift

import (
	"regexp"
	"strings"
)

// MaxContentLength is the upper bound on extracted content length, in runes.
// Content beyond this length is truncated and marked with Ellipsis.
const MaxContentLength = 10000

// Ellipsis marks truncated content.
const Ellipsis = "..."

// MinContentLength is the minimum amount of extracted text considered
// meaningful enough to analyze.
const MinContentLength = 100

// PageMetadata holds document metadata pulled from standard HTML tags.
// Fields are never empty; absent values carry a "not found" placeholder.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// Placeholder values for metadata fields that could not be located.
const (
	NoTitle       = "No title found"
	NoDescription = "No description found"
	NoKeywords    = "No keywords found"
)

// ContentExtractor locates the main readable text of an HTML page,
// with boilerplate removed.
type ContentExtractor interface {
	// Extract returns the page's readable text, whitespace-normalized and
	// capped at MaxContentLength. The result may be empty if the page has
	// no text at all. Same HTML in, same text out.
	Extract(html string) (string, error)
}

// MetadataExtractor pulls title, description and keywords from an HTML page.
type MetadataExtractor interface {
	// ExtractMetadata returns the page metadata, applying per-field fallback
	// chains and substituting placeholders for fields that cannot be found.
	ExtractMetadata(html string) (PageMetadata, error)
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// NormalizeText collapses runs of whitespace into single spaces and trims
// the result.
func NormalizeText(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// CapContent truncates s to MaxContentLength runes, appending Ellipsis when
// truncation occurs.
func CapContent(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxContentLength {
		return s
	}
	return string(runes[:MaxContentLength]) + Ellipsis
}
