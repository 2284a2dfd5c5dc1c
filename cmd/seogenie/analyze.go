package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/seogenie"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	report, err := deps.Pipeline.Run(deps.Ctx, c.URL, c.Competitor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seogenie.ErrorMessage(err))
		return err
	}

	for _, warning := range report.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", warning)
	}

	if report.Site != nil {
		printAnalysis(deps, "Your Site Analysis", report.Site)
	}
	if report.Competitor != nil {
		printAnalysis(deps, "Competitor Site Analysis", report.Competitor)
	}

	if report.Comparison != nil {
		fmt.Fprintf(deps.Stdout, "Comparison Summary\n  %s\n", report.Comparison.Summary())
	}

	if c.CloudOut != "" {
		if err := c.writeCloud(deps, report); err != nil {
			return err
		}
	}

	if report.Site == nil {
		return seogenie.Errorf(seogenie.EUNAVAILABLE, "could not analyze %q", c.URL)
	}
	return nil
}

// writeCloud writes the site's rendered word cloud to the configured file.
func (c *AnalyzeCmd) writeCloud(deps *Dependencies, report *seogenie.Report) error {
	if report.Site == nil || report.Site.Cloud == nil {
		fmt.Fprintln(deps.Stderr, "warning: no word cloud was rendered; nothing written")
		return nil
	}
	if err := os.WriteFile(c.CloudOut, report.Site.Cloud, 0644); err != nil {
		return fmt.Errorf("writing word cloud to %q: %w", c.CloudOut, err)
	}
	fmt.Fprintf(deps.Stdout, "Word cloud written to %s\n", c.CloudOut)
	return nil
}

func printAnalysis(deps *Dependencies, header string, analysis *seogenie.Analysis) {
	fmt.Fprintf(deps.Stdout, "%s\n", header)
	fmt.Fprintf(deps.Stdout, "  URL: %s\n", analysis.Page.URL)
	fmt.Fprintf(deps.Stdout, "  Title: %s\n", analysis.Page.Title)
	fmt.Fprintf(deps.Stdout, "  Meta Description: %s\n", analysis.Page.MetaDescription)
	fmt.Fprintf(deps.Stdout, "  H1 Tags: %s\n", strings.Join(analysis.Page.Headings["h1"], ", "))
	fmt.Fprintf(deps.Stdout, "  SEO Health Score: %d / %d\n", analysis.Score, seogenie.MaxScore)

	if len(analysis.Keywords) > 0 {
		fmt.Fprintf(deps.Stdout, "  Top Keywords:\n")
		for _, kw := range analysis.Keywords {
			fmt.Fprintf(deps.Stdout, "    %-20s %d\n", kw.Term, kw.Count)
		}
	}

	fmt.Fprintf(deps.Stdout, "  Recommendations:\n")
	for _, line := range strings.Split(analysis.Advice, "\n") {
		fmt.Fprintf(deps.Stdout, "    %s\n", line)
	}

	for _, warning := range analysis.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", warning)
	}

	fmt.Fprintln(deps.Stdout)
}
