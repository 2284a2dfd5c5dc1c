package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seogenie"
)

// Ensure LoggingAdvisor implements seogenie.Advisor.
var _ seogenie.Advisor = (*LoggingAdvisor)(nil)

// LoggingAdvisor wraps an Advisor with per-call logging.
type LoggingAdvisor struct {
	next   seogenie.Advisor
	logger *slog.Logger
}

// NewLoggingAdvisor creates a new LoggingAdvisor.
func NewLoggingAdvisor(next seogenie.Advisor, logger *slog.Logger) *LoggingAdvisor {
	return &LoggingAdvisor{next: next, logger: logger}
}

// Advise delegates to the wrapped advisor and logs the operation.
func (a *LoggingAdvisor) Advise(ctx context.Context, title, description string) (advice string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("advise",
			"title_len", len(title),
			"description_len", len(description),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Advise(ctx, title, description)
}
