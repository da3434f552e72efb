package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/leetdoc"
	"github.com/fwojciec/leetdoc/capture"
	"github.com/fwojciec/leetdoc/docx"
	"github.com/fwojciec/leetdoc/extract"
	"github.com/fwojciec/leetdoc/fs"
	"github.com/fwojciec/leetdoc/gofpdf"
	"github.com/fwojciec/leetdoc/goquery"
	leethttp "github.com/fwojciec/leetdoc/http"
	"github.com/fwojciec/leetdoc/rod"
	leetslog "github.com/fwojciec/leetdoc/slog"
	"github.com/fwojciec/leetdoc/sqlite"
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
	ProblemService    leetdoc.ProblemService
	ProblemSetService leetdoc.ProblemSetService
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
		kong.Name("leetdoc"),
		kong.Description("Capture LeetCode submissions and export them as a problem set document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leetdoc --help' to see available commands")
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

	logger := newLogger(cli.Verbose, stderr)

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEETDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ProblemService = leetslog.NewLoggingProblemService(sqlite.NewProblemService(m.DB), logger)
	m.ProblemSetService = sqlite.NewProblemSetService(m.DB)
	deps.DB = m.DB
	deps.Problems = m.ProblemService
	deps.ProblemSets = m.ProblemSetService
	deps.Renderers = map[string]leetdoc.Renderer{
		"docx": docx.NewRenderer(),
		"pdf":  gofpdf.NewRenderer(),
		"md":   fs.NewMarkdownRenderer(),
	}
	deps.Capturer = &capture.Capturer{
		Parser:      goquery.NewParser(),
		Extractor:   leetslog.NewLoggingExtractor(extract.NewExtractor(logger), logger),
		Problems:    m.ProblemService,
		RateLimiter: capture.NewSiteLimiter(capture.DefaultRequestsPerSecond),
		Logger:      logger,
	}

	if strings.HasPrefix(kongCtx.Command(), "capture") {
		fetcher, err := newFetcher(&cli.Capture)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --static")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		deps.Capturer.Fetcher = rod.NewLoggingFetcher(fetcher, logger)
		deps.Capturer.Concurrency = cli.Capture.Concurrency
	}

	return kongCtx.Run(deps)
}

func newFetcher(c *CaptureCmd) (leetdoc.Fetcher, error) {
	if c.Static {
		return leethttp.NewFetcher(leethttp.WithTimeout(c.Timeout)), nil
	}
	return rod.NewFetcher(
		rod.WithFetchTimeout(c.Timeout),
		rod.WithRenderWait(c.RenderWait),
		rod.WithPagesPerBrowser(c.PagesPerBrowser),
	)
}

func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("LEETDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "leetdoc.db"
	}
	dir := filepath.Join(home, ".leetdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "leetdoc.db")
}
