// Package gemini implements pagesift.Analyzer using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pagesift/pagesift"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Analyzer implements pagesift.Analyzer at compile time.
var _ pagesift.Analyzer = (*Analyzer)(nil)

// Analyzer implements pagesift.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
	logger *slog.Logger
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{client: client, logger: logger}
}

// Analyze sends the page content to Gemini and parses the structured
// analysis out of its response. A malformed response degrades to
// pagesift.FallbackAnalysis and is never an error; only a failed model
// call returns one.
func (a *Analyzer) Analyze(ctx context.Context, req pagesift.AnalysisRequest) (*pagesift.Analysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EUNAVAILABLE, "model call failed: %v", err)
	}
	if result == nil {
		return nil, pagesift.Errorf(pagesift.EINTERNAL, "gemini returned nil result")
	}

	analysis, ok := ParseAnalysis(result.Text())
	if !ok {
		a.logger.Warn("model response is not valid JSON, using fallback analysis",
			"url", req.URL,
		)
	}
	return analysis, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a content analyst. You study web pages and describe their themes, sentiment and intent. Respond only with a JSON object matching the requested structure, with no surrounding text or markdown.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the analysis prompt embedding the URL, page metadata
// and extracted content.
func BuildPrompt(req pagesift.AnalysisRequest) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following web page content.\n\n")
	fmt.Fprintf(&sb, "URL: %s\n", req.URL)
	fmt.Fprintf(&sb, "Title: %s\n", req.Metadata.Title)
	fmt.Fprintf(&sb, "Description: %s\n", req.Metadata.Description)
	fmt.Fprintf(&sb, "Keywords: %s\n\n", req.Metadata.Keywords)
	fmt.Fprintf(&sb, "Content:\n%s\n\n", req.Content)
	sb.WriteString(`Return a JSON object with exactly this structure:
{
  "themes": ["the main topics and themes of the content"],
  "sentiment": {
    "overall": "positive, negative or neutral",
    "tone": "formal, informal, technical or conversational",
    "confidence": "high, medium or low"
  },
  "summary": "a concise summary of the content",
  "keyInsights": ["the most important takeaways"],
  "intentions": ["what the content is trying to achieve"],
  "targetAudience": "who the content is written for",
  "contentType": "article, blog post, documentation, product page or news",
  "expertise": "the level of expertise needed to understand the content",
  "actionablePoints": ["concrete actions a reader could take"]
}`)
	return sb.String()
}

// ParseAnalysis extracts a JSON object from the raw model response using a
// greedy match from the first "{" to the last "}". Models sometimes wrap
// the object in prose or markdown fences; the greedy match strips both.
// On any failure the deterministic fallback is returned with ok=false.
func ParseAnalysis(raw string) (analysis *pagesift.Analysis, ok bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return pagesift.FallbackAnalysis(raw), false
	}

	var parsed pagesift.Analysis
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return pagesift.FallbackAnalysis(raw), false
	}
	return &parsed, true
}
