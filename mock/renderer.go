package mock

import "github.com/fwojciec/seogenie"

var _ seogenie.CloudRenderer = (*CloudRenderer)(nil)

// CloudRenderer is a mock implementation of seogenie.CloudRenderer.
type CloudRenderer struct {
	RenderFn func(text string, maxWords int) ([]byte, error)
}

func (r *CloudRenderer) Render(text string, maxWords int) ([]byte, error) {
	return r.RenderFn(text, maxWords)
}
