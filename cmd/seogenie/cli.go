package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/seogenie/analyze"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Pipeline *analyze.Pipeline
}

// CLI defines the command-line interface structure for Kong.
// Font is shared by both commands, so it lives at the top level.
type CLI struct {
	Font string `env:"SEOGENIE_FONT" help:"TrueType font for word-cloud rendering"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze one or two sites and print a report"`
	Serve   ServeCmd   `cmd:"" help:"Run the interactive web UI"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL        string `arg:"" help:"Website URL"`
	Competitor string `arg:"" optional:"" help:"Competitor website URL"`
	Top        int    `short:"n" default:"10" help:"Number of keywords to rank"`
	CloudOut   string `help:"Write the site's word-cloud PNG to this file"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"SEOGENIE_ADDR" help:"Listen address"`
}
