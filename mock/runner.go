package mock

import (
	"context"

	"github.com/fwojciec/seogenie"
)

var _ seogenie.Runner = (*Runner)(nil)

// Runner is a mock implementation of seogenie.Runner.
type Runner struct {
	RunFn func(ctx context.Context, siteURL, competitorURL string) (*seogenie.Report, error)
}

func (r *Runner) Run(ctx context.Context, siteURL, competitorURL string) (*seogenie.Report, error) {
	return r.RunFn(ctx, siteURL, competitorURL)
}
