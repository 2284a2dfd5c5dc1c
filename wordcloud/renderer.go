// Package wordcloud renders body text into word-frequency cloud images
// using the psykhi/wordclouds drawing engine.
package wordcloud

import (
	"bytes"
	"image/color"
	"image/png"
	"sort"
	"strings"

	"github.com/fwojciec/seogenie"
	"github.com/psykhi/wordclouds"
)

// Default canvas dimensions for rendered clouds.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// Ensure Renderer implements seogenie.CloudRenderer at compile time.
var _ seogenie.CloudRenderer = (*Renderer)(nil)

// Renderer draws PNG word clouds. A TrueType font file is required by the
// drawing engine; without one Render degrades with EUNAVAILABLE so callers
// can skip the image.
type Renderer struct {
	fontFile string
	width    int
	height   int
	colors   []color.Color
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFontFile sets the TrueType font used for drawing.
func WithFontFile(path string) Option {
	return func(r *Renderer) {
		r.fontFile = path
	}
}

// WithSize sets the canvas dimensions in pixels.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		width:  DefaultWidth,
		height: DefaultHeight,
		colors: []color.Color{
			color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
			color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
			color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
			color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws a word cloud for text showing at most maxWords words and
// returns it PNG-encoded. maxWords <= 0 uses seogenie.DefaultCloudWords.
func (r *Renderer) Render(text string, maxWords int) ([]byte, error) {
	if r.fontFile == "" {
		return nil, seogenie.Errorf(seogenie.EUNAVAILABLE, "word cloud font not configured")
	}
	if maxWords <= 0 {
		maxWords = seogenie.DefaultCloudWords
	}

	weights := WordWeights(text, maxWords)
	if len(weights) == 0 {
		return nil, seogenie.Errorf(seogenie.EINVALID, "no words to render")
	}

	cloud := wordclouds.NewWordcloud(weights,
		wordclouds.FontFile(r.fontFile),
		wordclouds.FontMaxSize(r.height/4),
		wordclouds.FontMinSize(10),
		wordclouds.Colors(r.colors),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Width(r.width),
		wordclouds.Height(r.height),
	)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cloud.Draw()); err != nil {
		return nil, seogenie.Errorf(seogenie.EINTERNAL, "encoding word cloud: %v", err)
	}
	return buf.Bytes(), nil
}

// WordWeights computes the renderer's word weighting for text: lowercase
// whitespace-separated words with surrounding punctuation trimmed, capped
// at the maxWords most frequent. This is the renderer's own tokenization,
// independent of the keyword analyzer's.
func WordWeights(text string, maxWords int) map[string]int {
	counts := make(map[string]int)
	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !('a' <= r && r <= 'z')
		})
		if len(word) < 2 {
			continue
		}
		counts[word]++
	}

	if len(counts) <= maxWords {
		return counts
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	top := make(map[string]int, maxWords)
	for _, term := range terms[:maxWords] {
		top[term] = counts[term]
	}
	return top
}
