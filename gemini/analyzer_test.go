package gemini_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Analyze_ReturnsErrorWhenURLEmpty(t *testing.T) {
	t.Parallel()

	analyzer := gemini.NewAnalyzer(nil, nil) // nil client ok for this test

	_, err := analyzer.Analyze(context.Background(), pagesift.AnalysisRequest{
		Content: "some content",
	})

	require.Error(t, err)
	assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	assert.Contains(t, pagesift.ErrorMessage(err), "URL required")
}

func TestAnalyzer_Analyze_ReturnsErrorWhenContentEmpty(t *testing.T) {
	t.Parallel()

	analyzer := gemini.NewAnalyzer(nil, nil)

	_, err := analyzer.Analyze(context.Background(), pagesift.AnalysisRequest{
		URL: "https://example.com",
	})

	require.Error(t, err)
	assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	assert.Contains(t, pagesift.ErrorMessage(err), "content required")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "content analyst")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	req := pagesift.AnalysisRequest{
		URL: "https://example.com/post",
		Metadata: pagesift.PageMetadata{
			Title:       "A Post",
			Description: "About something.",
			Keywords:    "one, two",
		},
		Content: "The extracted page text.",
	}

	prompt := gemini.BuildPrompt(req)

	assert.Contains(t, prompt, "URL: https://example.com/post")
	assert.Contains(t, prompt, "Title: A Post")
	assert.Contains(t, prompt, "Description: About something.")
	assert.Contains(t, prompt, "Keywords: one, two")
	assert.Contains(t, prompt, "The extracted page text.")
	for _, field := range []string{
		"themes", "sentiment", "summary", "keyInsights", "intentions",
		"targetAudience", "contentType", "expertise", "actionablePoints",
	} {
		assert.Contains(t, prompt, `"`+field+`"`)
	}
	assert.NotContains(t, prompt, "content analyst",
		"system instruction does not belong in the user prompt")
}

func TestParseAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("parses a bare JSON object", func(t *testing.T) {
		t.Parallel()

		raw := `{"themes":["go"],"summary":"about go","sentiment":{"overall":"neutral","tone":"technical","confidence":"high"}}`
		analysis, ok := gemini.ParseAnalysis(raw)

		require.True(t, ok)
		assert.Equal(t, []string{"go"}, analysis.Themes)
		assert.Equal(t, "about go", analysis.Summary)
		assert.Equal(t, "technical", analysis.Sentiment.Tone)
	})

	t.Run("extracts JSON embedded in surrounding prose", func(t *testing.T) {
		t.Parallel()

		raw := "Here is the analysis you asked for:\n{\"themes\":[\"a\"]}\nLet me know if you need more."
		analysis, ok := gemini.ParseAnalysis(raw)

		require.True(t, ok)
		assert.Equal(t, []string{"a"}, analysis.Themes)
		assert.Empty(t, analysis.Summary)
	})

	t.Run("extracts JSON from markdown fences", func(t *testing.T) {
		t.Parallel()

		raw := "```json\n{\"themes\":[\"fenced\"]}\n```"
		analysis, ok := gemini.ParseAnalysis(raw)

		require.True(t, ok)
		assert.Equal(t, []string{"fenced"}, analysis.Themes)
	})

	t.Run("response without braces yields the fixed fallback", func(t *testing.T) {
		t.Parallel()

		raw := "I could not produce JSON, sorry."
		analysis, ok := gemini.ParseAnalysis(raw)

		require.False(t, ok)
		assert.Equal(t, pagesift.FallbackAnalysis(raw), analysis)
		assert.Equal(t, []string{"Content Analysis"}, analysis.Themes)
		assert.Equal(t, raw+"...", analysis.Summary)
	})

	t.Run("unparseable braces yield the fallback", func(t *testing.T) {
		t.Parallel()

		raw := "prefix {not json at all} suffix"
		analysis, ok := gemini.ParseAnalysis(raw)

		require.False(t, ok)
		assert.Equal(t, []string{"Content Analysis"}, analysis.Themes)
	})

	t.Run("greedy match spans from first to last brace", func(t *testing.T) {
		t.Parallel()

		// Two JSON objects in one response: the greedy span covers both and
		// fails to parse, degrading to the fallback. This mirrors the
		// documented first-to-last contract rather than fixing it.
		raw := `{"themes":["a"]} and also {"themes":["b"]}`
		analysis, ok := gemini.ParseAnalysis(raw)

		require.False(t, ok)
		assert.Equal(t, []string{"Content Analysis"}, analysis.Themes)
	})

	t.Run("fallback summary truncates long responses", func(t *testing.T) {
		t.Parallel()

		raw := strings.Repeat("word ", 200) // 1000 chars, no braces
		analysis, ok := gemini.ParseAnalysis(raw)

		require.False(t, ok)
		assert.Len(t, analysis.Summary, 503)
	})
}
