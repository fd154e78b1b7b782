package mock

import ghostwriter "github.com/Molefas/ghost-writer"

var _ ghostwriter.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ghostwriter.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*ghostwriter.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL string) (*ghostwriter.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}
