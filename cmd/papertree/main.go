package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/batch"
	"github.com/fwojciec/papertree/chardet"
	"github.com/fwojciec/papertree/docx"
	"github.com/fwojciec/papertree/etree"
	"github.com/fwojciec/papertree/fallback"
	"github.com/fwojciec/papertree/fs"
	"github.com/fwojciec/papertree/gemini"
	"github.com/fwojciec/papertree/goldmark"
	"github.com/fwojciec/papertree/goquery"
	"github.com/fwojciec/papertree/htmltomarkdown"
	papertreehttp "github.com/fwojciec/papertree/http"
	"github.com/fwojciec/papertree/openai"
	"github.com/fwojciec/papertree/readability"
	"github.com/fwojciec/papertree/rod"
	ptslog "github.com/fwojciec/papertree/slog"
	"github.com/fwojciec/papertree/sqlite"
	"github.com/fwojciec/papertree/trafilatura"
	"google.golang.org/genai"
)

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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CollectionService papertree.CollectionService
	DocumentService   papertree.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("papertree"),
		kong.Description("Extract structured content from scholarly article exports."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'papertree --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if needsCatalog(cmd, cli) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAPERTREE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.CollectionService = sqlite.NewCollectionService(m.DB)
		m.DocumentService = sqlite.NewDocumentService(m.DB)
		deps.DB = m.DB
		deps.Collections = m.CollectionService
		deps.Documents = m.DocumentService
	}

	switch cmd {
	case "parse <input> <output>":
		var fetcher papertree.Fetcher = papertreehttp.NewFetcher()
		if cli.Parse.Browser {
			browser, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: --browser needs Chrome or Chromium installed")
				return err
			}
			fetcher = browser
		}
		if deps.Logger != nil {
			fetcher = ptslog.NewLoggingFetcher(fetcher, deps.Logger)
		}
		defer fetcher.Close()

		deps.Parser = &batch.Parser{
			Reader:   fs.NewReader(),
			Decoder:  chardet.NewDecoder(),
			Registry: newRegistry(fetcher, cli.Parse.Fallback, deps.Logger),
		}

	case "tag <input> <output>":
		tagger, model, err := newTagger(ctx, &cli.Tag, stderr)
		if err != nil {
			return err
		}
		if deps.Logger != nil {
			tagger = ptslog.NewLoggingTagger(tagger, model, deps.Logger)
		}

		deps.Tagger = &batch.Tagger{
			Readers: map[string]papertree.TextReader{
				".docx": docx.NewReader(),
				".txt":  fs.NewTextReader(chardet.NewDecoder()),
			},
			Tagger:  tagger,
			Limiter: batch.NewKeyedLimiter(cli.Tag.RPS),
			Model:   model,
			Logger: func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			},
		}
		// The local tokenizer only knows Gemini vocabularies, so counts for
		// other providers are approximate.
		if counter, err := gemini.NewTokenCounter(gemini.DefaultModel); err == nil {
			deps.Tagger.TokenCounter = counter
		}
	}

	return kongCtx.Run(deps)
}

// openAIModel is the default model for the openai provider.
const openAIModel = "gpt-4o-mini"

func needsCatalog(cmd string, cli *CLI) bool {
	switch cmd {
	case "list", "docs <name>", "delete <name>":
		return true
	case "parse <input> <output>":
		return cli.Parse.DB
	}
	return false
}

// newRegistry wires every publisher extractor behind publisher detection,
// with the generic extractor built on the selected content extractor.
func newRegistry(fetcher papertree.Fetcher, fallbackName string, logger *slog.Logger) papertree.ExtractorRegistry {
	var content papertree.ContentExtractor = trafilatura.NewExtractor()
	if fallbackName == "readability" {
		content = readability.NewExtractor()
	}
	generic := fallback.NewExtractor(content, htmltomarkdown.NewConverter(), goldmark.NewTokenizer())

	detector := goquery.NewDetector()
	registry := goquery.NewRegistry(detector, generic)
	registry.Register(papertree.PublisherMDPI, goquery.NewMDPIExtractor())
	registry.Register(papertree.PublisherSpringer, goquery.NewSpringerExtractor(fetcher))
	registry.Register(papertree.PublisherWiley, goquery.NewWileyExtractor())
	registry.Register(papertree.PublisherSAGE, goquery.NewSAGEExtractor())
	registry.Register(papertree.PublisherIOP, goquery.NewIOPExtractor())
	registry.Register(papertree.PublisherTaylor, goquery.NewTaylorExtractor())
	registry.Register(papertree.PublisherASME, goquery.NewASMEExtractor())
	registry.Register(papertree.PublisherElsevier, etree.NewElsevierExtractor())

	if logger != nil {
		return ptslog.NewLoggingRegistry(registry, detector, logger)
	}
	return registry
}

// newTagger creates the tagging client for the selected provider and
// returns it with the model it uses.
func newTagger(ctx context.Context, c *TagCmd, stderr io.Writer) (papertree.Tagger, string, error) {
	switch c.Provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, "", fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, "", fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		model := c.Model
		if model == "" {
			model = gemini.DefaultModel
		}
		return gemini.NewTagger(client, model), model, nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, "", fmt.Errorf("OPENAI_API_KEY not set")
		}
		model := c.Model
		if model == "" {
			model = openAIModel
		}
		return openai.NewTagger(openai.NewClient(apiKey, c.BaseURL), model), model, nil

	default:
		apiKey := os.Getenv("DEEPSEEK_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "DEEPSEEK_API_KEY environment variable not set. Get an API key at https://platform.deepseek.com/api_keys")
			return nil, "", fmt.Errorf("DEEPSEEK_API_KEY not set")
		}
		baseURL := c.BaseURL
		if baseURL == "" {
			baseURL = openai.DeepSeekBaseURL
		}
		model := c.Model
		if model == "" {
			model = openai.DeepSeekModel
		}
		return openai.NewTagger(openai.NewClient(apiKey, baseURL), model), model, nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("PAPERTREE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "papertree.db"
	}
	dir := filepath.Join(home, ".papertree")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "papertree.db")
}
