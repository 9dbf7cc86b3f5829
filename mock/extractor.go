package mock

import "github.com/pagesift/pagesift"

var _ pagesift.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of pagesift.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *ContentExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}

var _ pagesift.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of pagesift.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (pagesift.PageMetadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (pagesift.PageMetadata, error) {
	return e.ExtractMetadataFn(html)
}
