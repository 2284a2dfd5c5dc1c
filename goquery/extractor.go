// Package goquery provides a goquery-based implementation of
// seogenie.Extractor for pulling on-page SEO signals out of raw HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seogenie"
	"golang.org/x/net/html"
)

// Ensure Extractor implements seogenie.Extractor at compile time.
var _ seogenie.Extractor = (*Extractor)(nil)

// Extractor parses raw markup into structured page content.
// Parsing is tolerant: malformed markup never fails, absent elements
// degrade to empty fields.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns the page's on-page SEO signals.
func (e *Extractor) Extract(url string, rawHTML string) (*seogenie.PageContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, seogenie.Errorf(seogenie.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &seogenie.PageContent{
		URL:      url,
		Headings: make(map[string][]string, len(seogenie.HeadingLevels)),
	}

	page.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		page.MetaDescription = strings.TrimSpace(content)
	}

	for _, level := range seogenie.HeadingLevels {
		texts := []string{}
		doc.Find(level).Each(func(_ int, sel *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(sel.Text()))
		})
		page.Headings[level] = texts
	}

	page.BodyText = visibleText(doc)

	return page, nil
}

// invisible lists elements whose text never renders on the page.
var invisible = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// visibleText collects every visible text node in document order,
// trims each fragment, and joins them with single spaces.
func visibleText(doc *goquery.Document) string {
	var parts []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if invisible[n.Data] {
				return
			}
		case html.TextNode:
			if fields := strings.Fields(n.Data); len(fields) > 0 {
				parts = append(parts, strings.Join(fields, " "))
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range doc.Selection.Nodes {
		walk(n)
	}

	return strings.Join(parts, " ")
}
