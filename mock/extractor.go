package mock

import "github.com/fwojciec/seogenie"

var _ seogenie.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of seogenie.Extractor.
type Extractor struct {
	ExtractFn func(url string, html string) (*seogenie.PageContent, error)
}

func (e *Extractor) Extract(url string, html string) (*seogenie.PageContent, error) {
	return e.ExtractFn(url, html)
}
