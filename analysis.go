package pagesift

import (
	"context"
	"time"
)

// Sentiment describes the overall emotional posture of a page.
type Sentiment struct {
	Overall    string `json:"overall"`
	Tone       string `json:"tone"`
	Confidence string `json:"confidence"`
}

// AnalysisMetadata is appended to an Analysis after the model response is
// obtained. It records what was analyzed and when.
type AnalysisMetadata struct {
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ContentLength int       `json:"contentLength"`
	AnalyzedAt    time.Time `json:"analyzedAt"`
}

// Analysis is the structured content analysis returned to callers,
// either model-derived or the deterministic fallback.
type Analysis struct {
	Themes           []string          `json:"themes"`
	Sentiment        Sentiment         `json:"sentiment"`
	Summary          string            `json:"summary"`
	KeyInsights      []string          `json:"keyInsights"`
	Intentions       []string          `json:"intentions"`
	TargetAudience   string            `json:"targetAudience"`
	ContentType      string            `json:"contentType"`
	Expertise        string            `json:"expertise"`
	ActionablePoints []string          `json:"actionablePoints"`
	Metadata         *AnalysisMetadata `json:"metadata,omitempty"`
}

// AnalysisRequest carries everything the model needs to analyze a page.
type AnalysisRequest struct {
	URL      string
	Metadata PageMetadata
	Content  string
}

// Validate returns an error if the request is missing required fields.
func (r *AnalysisRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "analysis URL required")
	}
	if r.Content == "" {
		return Errorf(EINVALID, "analysis content required")
	}
	return nil
}

// Analyzer produces a structured content analysis of a page.
type Analyzer interface {
	// Analyze sends the page to a language model and returns the structured
	// analysis. A malformed model response is not an error; implementations
	// degrade to FallbackAnalysis instead. Only a failed model call returns
	// an error (EUNAVAILABLE).
	Analyze(ctx context.Context, req AnalysisRequest) (*Analysis, error)
}

// fallbackSummaryLength bounds the portion of the raw model response used as
// the fallback summary.
const fallbackSummaryLength = 500

// FallbackAnalysis returns the deterministic analysis used when the model
// response cannot be parsed as JSON. The raw response is preserved,
// truncated, as the summary.
func FallbackAnalysis(raw string) *Analysis {
	summary := raw
	if runes := []rune(summary); len(runes) > fallbackSummaryLength {
		summary = string(runes[:fallbackSummaryLength])
	}
	return &Analysis{
		Themes: []string{"Content Analysis"},
		Sentiment: Sentiment{
			Overall:    "neutral",
			Tone:       "informative",
			Confidence: "medium",
		},
		Summary:          summary + Ellipsis,
		KeyInsights:      []string{"Analysis completed successfully"},
		Intentions:       []string{"Information sharing"},
		TargetAudience:   "General audience",
		ContentType:      "Web content",
		Expertise:        "Standard",
		ActionablePoints: []string{"Review the analyzed content"},
	}
}
