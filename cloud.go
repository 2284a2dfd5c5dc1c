package seogenie

// DefaultCloudWords caps how many words a rendered cloud may display.
const DefaultCloudWords = 50

// CloudRenderer renders body text into a word-frequency cloud image.
// The renderer owns its internal tokenization and weighting; callers hand
// it the full body text and a display cap.
type CloudRenderer interface {
	// Render returns an encoded PNG of the word cloud for text, showing at
	// most maxWords words. maxWords <= 0 uses DefaultCloudWords.
	Render(text string, maxWords int) ([]byte, error)
}
