// Package analyze provides the on-page analysis pipeline.
// It coordinates fetching, extraction, scoring, keyword ranking, word-cloud
// rendering, and advisory generation for one or two sites, strictly
// sequentially. Every run is independent; no state crosses invocations.
package analyze

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/seogenie"
	"github.com/google/uuid"
)

// Pipeline orchestrates a full analysis run.
// Advisor and Renderer are optional: a nil Advisor always yields the static
// fallback advice, a nil Renderer skips the word cloud.
type Pipeline struct {
	Fetcher   seogenie.Fetcher
	Extractor seogenie.Extractor
	Advisor   seogenie.Advisor
	Renderer  seogenie.CloudRenderer
	Limiter   seogenie.DomainLimiter

	// TopN bounds the ranked keyword list. Zero means
	// seogenie.DefaultTopKeywords.
	TopN int

	// CloudWords bounds the rendered word cloud. Zero means
	// seogenie.DefaultCloudWords.
	CloudWords int
}

// Ensure Pipeline implements seogenie.Runner at compile time.
var _ seogenie.Runner = (*Pipeline)(nil)

// Run analyzes siteURL and, when non-empty, competitorURL, site first.
// Fetch failures degrade to warnings; the corresponding analysis stays nil
// and downstream stages for that site are skipped. Run fails only when no
// site URL was supplied at all.
func (p *Pipeline) Run(ctx context.Context, siteURL, competitorURL string) (*seogenie.Report, error) {
	if siteURL == "" {
		return nil, seogenie.Errorf(seogenie.EINVALID, "site URL required")
	}

	report := &seogenie.Report{}

	site, err := p.Analyze(ctx, siteURL)
	if err != nil {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("Could not analyze %s: %s", siteURL, seogenie.ErrorMessage(err)))
	} else {
		report.Site = site
	}

	if competitorURL != "" {
		competitor, err := p.Analyze(ctx, competitorURL)
		if err != nil {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Could not analyze %s: %s", competitorURL, seogenie.ErrorMessage(err)))
		} else {
			report.Competitor = competitor
		}
	}

	if report.Site != nil && report.Competitor != nil {
		comparison := seogenie.Compare(report.Site, report.Competitor)
		report.Comparison = &comparison
	}

	return report, nil
}

// Analyze runs the pipeline for a single URL: fetch, extract, then score,
// keywords, word cloud, and advice. Advisory and rendering failures degrade
// to warnings on the analysis; fetch and extraction failures are returned
// as errors for the caller to degrade.
func (p *Pipeline) Analyze(ctx context.Context, rawURL string) (*seogenie.Analysis, error) {
	if rawURL == "" {
		return nil, seogenie.Errorf(seogenie.EINVALID, "URL required")
	}

	if p.Limiter != nil {
		if domain := hostOf(rawURL); domain != "" {
			if err := p.Limiter.Wait(ctx, domain); err != nil {
				return nil, err
			}
		}
	}

	html, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	page, err := p.Extractor.Extract(seogenie.NormalizeURL(rawURL), html)
	if err != nil {
		return nil, err
	}

	analysis := &seogenie.Analysis{
		ID:       uuid.NewString(),
		URL:      rawURL,
		Page:     page,
		Score:    seogenie.CalculateScore(page),
		Keywords: seogenie.TopKeywords(page.BodyText, p.topN()),
	}

	p.advise(ctx, analysis)
	p.renderCloud(analysis)

	return analysis, nil
}

// advise fills in advisory text, substituting the static fallback on any
// failure. This is the single place where the advisory Err path collapses
// into seogenie.FallbackAdvice.
func (p *Pipeline) advise(ctx context.Context, analysis *seogenie.Analysis) {
	if p.Advisor == nil {
		analysis.Advice = seogenie.FallbackAdvice
		analysis.AdviceFallback = true
		analysis.Warnings = append(analysis.Warnings,
			"Advisory service not configured. Showing static advice instead.")
		return
	}

	advice, err := p.Advisor.Advise(ctx, analysis.Page.Title, analysis.Page.MetaDescription)
	if err != nil {
		analysis.Advice = seogenie.FallbackAdvice
		analysis.AdviceFallback = true
		analysis.Warnings = append(analysis.Warnings,
			fmt.Sprintf("Advisory service error: %s. Showing static advice instead.", seogenie.ErrorMessage(err)))
		return
	}

	analysis.Advice = advice
}

// renderCloud renders the word cloud, keying the image by a hash of the
// body text. Rendering failures degrade to a warning and no image.
func (p *Pipeline) renderCloud(analysis *seogenie.Analysis) {
	if p.Renderer == nil {
		return
	}

	img, err := p.Renderer.Render(analysis.Page.BodyText, p.cloudWords())
	if err != nil {
		analysis.Warnings = append(analysis.Warnings,
			fmt.Sprintf("Word cloud unavailable: %s", seogenie.ErrorMessage(err)))
		return
	}

	analysis.Cloud = img
	analysis.CloudID = fmt.Sprintf("%016x", xxhash.Sum64String(analysis.Page.BodyText))
}

func (p *Pipeline) topN() int {
	if p.TopN > 0 {
		return p.TopN
	}
	return seogenie.DefaultTopKeywords
}

func (p *Pipeline) cloudWords() int {
	if p.CloudWords > 0 {
		return p.CloudWords
	}
	return seogenie.DefaultCloudWords
}

func hostOf(rawURL string) string {
	u, err := url.Parse(seogenie.NormalizeURL(rawURL))
	if err != nil {
		return ""
	}
	return u.Host
}
