package mock

import (
	"context"

	"github.com/fwojciec/seogenie"
)

var _ seogenie.Advisor = (*Advisor)(nil)

// Advisor is a mock implementation of seogenie.Advisor.
type Advisor struct {
	AdviseFn func(ctx context.Context, title, description string) (string, error)
}

func (a *Advisor) Advise(ctx context.Context, title, description string) (string, error) {
	return a.AdviseFn(ctx, title, description)
}
