package seogenie

import "unicode/utf8"

// MaxScore is the upper bound of the SEO health score.
const MaxScore = 60

// ScoreTitle scores the page title by character length. Lengths count
// characters, not bytes, so multi-byte text bands the same as ASCII.
// The 50-60 band is treated as ideal. The bands are a fixed contract;
// they make no claim to statistical rigor.
func ScoreTitle(title string) int {
	n := utf8.RuneCountInString(title)
	switch {
	case n >= 50 && n <= 60:
		return 20
	case (n >= 30 && n < 50) || (n > 60 && n <= 70):
		return 10
	default:
		return 5
	}
}

// ScoreDescription scores the meta description by character length.
// The 120-160 band is treated as ideal.
func ScoreDescription(desc string) int {
	n := utf8.RuneCountInString(desc)
	switch {
	case n >= 120 && n <= 160:
		return 20
	case (n >= 80 && n < 120) || (n > 160 && n <= 200):
		return 10
	default:
		return 5
	}
}

// ScoreHeadings scores heading usage: 20 points for at least one h1,
// 10 for at least one h2, 10 for at least two h3.
func ScoreHeadings(headings map[string][]string) int {
	score := 0
	if len(headings["h1"]) > 0 {
		score += 20
	}
	if len(headings["h2"]) >= 1 {
		score += 10
	}
	if len(headings["h3"]) >= 2 {
		score += 10
	}
	return score
}

// CalculateScore sums the independent sub-heuristics for a page.
// The result is always in [0, MaxScore]; the cap is enforced even though
// the bands cannot exceed it.
func CalculateScore(page *PageContent) int {
	score := ScoreTitle(page.Title) +
		ScoreDescription(page.MetaDescription) +
		ScoreHeadings(page.Headings)
	return min(score, MaxScore)
}
