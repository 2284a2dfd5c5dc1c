package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seogenie"
	"github.com/fwojciec/seogenie/analyze"
	"github.com/fwojciec/seogenie/gemini"
	"github.com/fwojciec/seogenie/goquery"
	seohttp "github.com/fwojciec/seogenie/http"
	seoslog "github.com/fwojciec/seogenie/slog"
	"github.com/fwojciec/seogenie/wordcloud"
	"google.golang.org/genai"
)

// fetchRPS limits outbound requests per domain.
const fetchRPS = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Advisory API key. Resolved from GEMINI_API_KEY before Run();
	// empty is a supported state that yields static fallback advice.
	APIKey string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seogenie"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seogenie --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	advisor, err := m.advisor(ctx, logger, stderr)
	if err != nil {
		return err
	}

	deps.Pipeline = &analyze.Pipeline{
		Fetcher:   seoslog.NewLoggingFetcher(seohttp.NewFetcher(), logger),
		Extractor: goquery.NewExtractor(),
		Advisor:   advisor,
		Renderer:  renderer(cli.Font),
		Limiter:   analyze.NewDomainLimiter(fetchRPS),
		TopN:      cli.Analyze.Top,
	}
	defer deps.Pipeline.Fetcher.Close()

	return kongCtx.Run(deps)
}

// advisor builds the Gemini-backed advisor, or nil when no API key is
// configured. A nil advisor makes the pipeline fall back to static advice.
func (m *Main) advisor(ctx context.Context, logger *slog.Logger, stderr io.Writer) (seogenie.Advisor, error) {
	if m.APIKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY not set; advisory suggestions will use static advice. Get an API key at https://aistudio.google.com/apikey")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  m.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return seoslog.NewLoggingAdvisor(gemini.NewAdvisor(client, ""), logger), nil
}

// renderer builds the word-cloud renderer, or nil when no font is
// configured. A nil renderer makes the pipeline skip the image.
func renderer(font string) seogenie.CloudRenderer {
	if font == "" {
		return nil
	}
	return wordcloud.NewRenderer(wordcloud.WithFontFile(font))
}
