package seogenie

import (
	"context"
	"strings"
)

// HeadingLevels lists the heading levels tracked by the extractor,
// in document significance order.
var HeadingLevels = []string{"h1", "h2", "h3", "h4"}

// PageContent holds the on-page SEO signals extracted from a single page.
// It is immutable after extraction; every field is a derived copy of the
// source markup.
type PageContent struct {
	// URL the markup was fetched from.
	URL string

	// Title is the text of the first <title> element, trimmed.
	// Empty if the page has no title.
	Title string

	// MetaDescription is the content attribute of <meta name="description">,
	// trimmed. Empty if absent.
	MetaDescription string

	// Headings maps each level in HeadingLevels to the trimmed text of
	// every matching element in document order. All four keys are always
	// present, possibly with empty slices.
	Headings map[string][]string

	// BodyText is every visible text node concatenated with single-space
	// separators, leading/trailing whitespace trimmed.
	BodyText string
}

// Validate returns an error if the page content contains invalid fields.
func (p *PageContent) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	for _, level := range HeadingLevels {
		if _, ok := p.Headings[level]; !ok {
			return Errorf(EINVALID, "page headings missing level %q", level)
		}
	}
	return nil
}

// NormalizeURL prepends a secure default scheme to a URL that lacks one.
// Mirrors what users type into the address bar: "example.com" becomes
// "https://example.com".
func NormalizeURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the response body.
	// URLs without a scheme are normalized with NormalizeURL before the
	// request is made. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor parses raw markup into structured page content.
// Implementations must parse malformed markup permissively; absent elements
// degrade to empty fields rather than errors.
type Extractor interface {
	Extract(url string, html string) (*PageContent, error)
}
