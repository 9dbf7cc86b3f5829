package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/gemini"
	"github.com/pagesift/pagesift/goquery"
	pshttp "github.com/pagesift/pagesift/http"
	"github.com/pagesift/pagesift/readability"
	psslog "github.com/pagesift/pagesift/slog"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Port           int           `default:"3000" env:"PORT" help:"HTTP listen port"`
	FetchTimeout   time.Duration `default:"10s" help:"Timeout for fetching the target page"`
	AnalyzeTimeout time.Duration `default:"60s" help:"Timeout for the model call"`
	Extractor      string        `default:"heuristic" enum:"heuristic,readability" help:"Content extraction strategy"`
	APIKey         string        `env:"GEMINI_API_KEY" help:"Gemini API key"`
}

// Run executes the server with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesift"),
		kong.Description("Analyze web page content with a language model"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}

	fetcher := psslog.NewLoggingFetcher(
		pshttp.NewFetcher(pshttp.WithTimeout(cli.FetchTimeout)), logger)
	defer fetcher.Close()

	analyzer := psslog.NewLoggingAnalyzer(gemini.NewAnalyzer(client, logger), logger)

	srv := pshttp.NewServer()
	srv.Addr = fmt.Sprintf(":%d", cli.Port)
	srv.Fetcher = fetcher
	srv.Content = newContentExtractor(cli.Extractor)
	srv.Metadata = goquery.NewMetadataExtractor()
	srv.Analyzer = analyzer
	srv.Logger = logger
	srv.FetchTimeout = cli.FetchTimeout
	srv.AnalyzeTimeout = cli.AnalyzeTimeout

	if err := srv.Open(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info("listening", "addr", srv.Addr, "extractor", cli.Extractor)

	<-ctx.Done()
	logger.Info("shutting down")
	return srv.Close()
}

// newContentExtractor selects the extraction strategy. Kong's enum tag
// guarantees the value is one of the two.
func newContentExtractor(name string) pagesift.ContentExtractor {
	if name == "readability" {
		return readability.NewExtractor()
	}
	return goquery.NewContentExtractor()
}
