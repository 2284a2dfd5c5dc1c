package seogenie

import "sort"

// DefaultTopKeywords is the number of ranked keywords returned when the
// caller does not specify a limit.
const DefaultTopKeywords = 10

// Keyword is a distinct term and its occurrence count in a body of text.
type Keyword struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Tokenize splits text into lowercase keyword tokens. A token is a run of
// three or more ASCII letters; digits, punctuation, and non-ASCII bytes act
// as separators and are discarded. No stemming or stop-word removal.
func Tokenize(text string) []string {
	var tokens []string
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && isASCIILetter(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= 3 {
			tokens = append(tokens, lowerASCII(text[start:i]))
		}
		start = -1
	}
	return tokens
}

// TopKeywords ranks the distinct tokens of text by descending count and
// returns the first n. Ties keep first-occurrence order in the source text.
// n below zero is treated as zero.
func TopKeywords(text string, n int) []Keyword {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range Tokenize(text) {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	keywords := make([]Keyword, 0, len(order))
	for _, term := range order {
		keywords = append(keywords, Keyword{Term: term, Count: counts[term]})
	}

	// Stable sort over insertion order so equal counts keep discovery order.
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func lowerASCII(s string) string {
	buf := []byte(s)
	for i, b := range buf {
		if b >= 'A' && b <= 'Z' {
			buf[i] = b + ('a' - 'A')
		}
	}
	return string(buf)
}
