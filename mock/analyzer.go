package mock

import (
	"context"

	"github.com/pagesift/pagesift"
)

var _ pagesift.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of pagesift.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, req pagesift.AnalysisRequest) (*pagesift.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, req pagesift.AnalysisRequest) (*pagesift.Analysis, error) {
	return a.AnalyzeFn(ctx, req)
}
