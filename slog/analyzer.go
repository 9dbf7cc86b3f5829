package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagesift/pagesift"
)

// Ensure LoggingAnalyzer implements pagesift.Analyzer.
var _ pagesift.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with structured logging.
type LoggingAnalyzer struct {
	next   pagesift.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next pagesift.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs url, content size and
// duration.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, req pagesift.AnalysisRequest) (*pagesift.Analysis, error) {
	begin := time.Now()
	analysis, err := a.next.Analyze(ctx, req)
	if err != nil {
		a.logger.Error("analyze",
			"url", req.URL,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	a.logger.Info("analyze",
		"url", req.URL,
		"content_length", len(req.Content),
		"themes", len(analysis.Themes),
		"duration", time.Since(begin),
	)
	return analysis, nil
}
