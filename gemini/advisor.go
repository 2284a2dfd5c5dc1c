// Package gemini provides a Google Gemini-backed implementation of
// seogenie.Advisor.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/seogenie"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for advisory generation.
const DefaultModel = "gemini-2.5-flash"

// Sampling bounds for advisory generation. Suggestions should vary between
// runs but stay short.
const (
	temperature     = 0.7
	maxOutputTokens = 100
)

// Ensure Advisor implements seogenie.Advisor at compile time.
var _ seogenie.Advisor = (*Advisor)(nil)

// Advisor implements seogenie.Advisor using Google Gemini.
type Advisor struct {
	client *genai.Client
	model  string
}

// NewAdvisor creates a new Advisor. An empty model selects DefaultModel.
func NewAdvisor(client *genai.Client, model string) *Advisor {
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{client: client, model: model}
}

// Advise generates 2-3 improvement suggestions for the page's title and
// meta description. Errors are returned for the caller to convert into
// seogenie.FallbackAdvice; nothing is swallowed here.
func (a *Advisor) Advise(ctx context.Context, title, description string) (string, error) {
	if a.client == nil {
		return "", seogenie.Errorf(seogenie.EUNAVAILABLE, "advisory service not configured")
	}

	prompt := BuildUserPrompt(title, description)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", seogenie.Errorf(seogenie.EUNAVAILABLE, "advisory generation: %v", err)
	}
	if result == nil {
		return "", seogenie.Errorf(seogenie.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for advisory calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(temperature)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an SEO Genie with a fun, witty persona. You give short, punchy, actionable on-page SEO advice in a friendly, genie-like tone.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
}

// BuildUserPrompt builds the user prompt embedding the page's title and
// meta description.
func BuildUserPrompt(title, description string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The user has a webpage with title: %q\n", title)
	fmt.Fprintf(&sb, "and meta description: %q.\n", description)
	sb.WriteString("Give them 2-3 punchy suggestions to improve their SEO.")
	return sb.String()
}
