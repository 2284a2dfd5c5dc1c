// Package seogenie provides on-page SEO analysis for webpages.
// It fetches a page, extracts on-page signals (title, meta description,
// headings, visible text), computes a heuristic health score, ranks keyword
// frequency, and generates improvement suggestions, optionally comparing
// two sites side by side.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, wordcloud/).
package seogenie
