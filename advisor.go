package seogenie

import "context"

// FallbackAdvice is the static advice substituted whenever the advisory
// service is unavailable. Callers must never surface an advisory failure;
// they substitute this text and carry on.
const FallbackAdvice = "1. Ensure your title is eye-catching and includes your main keyword.\n" +
	"2. Spice up your meta description with a strong call-to-action.\n" +
	"3. Add more engaging headings to structure your content effectively."

// Advisor generates natural-language SEO improvement suggestions for a
// page's title and meta description.
type Advisor interface {
	// Advise returns 2-3 short improvement suggestions. Any error is a
	// signal for the caller to fall back to FallbackAdvice; implementations
	// never degrade silently themselves.
	Advise(ctx context.Context, title, description string) (string, error)
}
