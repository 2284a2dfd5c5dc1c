package seogenie

import (
	"context"
	"fmt"
)

// Analysis is the result of running the full pipeline on a single URL.
// Every field is derived per run; nothing is shared across invocations.
type Analysis struct {
	// ID uniquely identifies this analysis run.
	ID string `json:"id"`

	// URL as supplied by the user, before scheme normalization.
	URL string `json:"url"`

	// Page holds the extracted on-page signals.
	Page *PageContent `json:"page"`

	// Score is the SEO health score in [0, MaxScore].
	Score int `json:"score"`

	// Keywords ranks the most frequent body-text terms.
	Keywords []Keyword `json:"keywords"`

	// Advice is generated advisory text, or FallbackAdvice when the
	// advisory service was unavailable.
	Advice string `json:"advice"`

	// AdviceFallback reports whether Advice is the static fallback.
	AdviceFallback bool `json:"adviceFallback"`

	// CloudID keys the rendered word-cloud image, empty when rendering
	// was skipped or failed.
	CloudID string `json:"cloudId,omitempty"`

	// Cloud is the rendered PNG, present only for the invocation that
	// produced it. Never serialized.
	Cloud []byte `json:"-"`

	// Warnings collects non-fatal degradations observed during the run.
	Warnings []string `json:"warnings,omitempty"`
}

// Report holds the outcome of a full run: one or two per-site analyses plus
// the comparison, which exists only when both analyses succeeded.
type Report struct {
	Site       *Analysis   `json:"site,omitempty"`
	Competitor *Analysis   `json:"competitor,omitempty"`
	Comparison *Comparison `json:"comparison,omitempty"`

	// Warnings collects run-level degradations, notably fetch failures
	// that left a site without results.
	Warnings []string `json:"warnings,omitempty"`
}

// Runner executes the full analysis pipeline for one or two sites.
type Runner interface {
	// Run analyzes siteURL and, when non-empty, competitorURL, site first.
	// Per-site failures degrade to report warnings; Run fails only when no
	// site URL was supplied.
	Run(ctx context.Context, siteURL, competitorURL string) (*Report, error)
}

// Comparison summarizes two analyses against each other.
type Comparison struct {
	// Diff is the signed score difference: site score minus competitor score.
	Diff int `json:"diff"`
}

// Compare computes the comparison of a site analysis against a competitor.
func Compare(site, competitor *Analysis) Comparison {
	return Comparison{Diff: site.Score - competitor.Score}
}

// Summary renders one of three mutually exclusive comparison messages.
func (c Comparison) Summary() string {
	switch {
	case c.Diff > 0:
		return fmt.Sprintf("Your site leads by %d points!", c.Diff)
	case c.Diff < 0:
		return fmt.Sprintf("Competitor leads by %d points!", -c.Diff)
	default:
		return "It's a tie! Both sites have the same SEO Health Score."
	}
}
