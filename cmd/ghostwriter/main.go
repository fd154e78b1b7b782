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
	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/etree"
	"github.com/Molefas/ghost-writer/fs"
	"github.com/Molefas/ghost-writer/gmail"
	"github.com/Molefas/ghost-writer/gofeed"
	"github.com/Molefas/ghost-writer/goquery"
	gwhttp "github.com/Molefas/ghost-writer/http"
	"github.com/Molefas/ghost-writer/readability"
	"github.com/Molefas/ghost-writer/scan"
	gwslog "github.com/Molefas/ghost-writer/slog"
	"github.com/Molefas/ghost-writer/sqlite"
	"github.com/Molefas/ghost-writer/store"
	"github.com/Molefas/ghost-writer/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database opened for the duration of a command.
	DB *sqlite.DB

	// Fetcher shared by scanners and the reader.
	Fetcher ghostwriter.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		_ = m.Fetcher.Close()
	}
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
		kong.Name("ghostwriter"),
		kong.Description("Discover, score and curate writing inspiration from blogs, newsletters and articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ghostwriter --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.LogLevel)

	dbPath := expandHome(cli.DB)
	if dbPath == "" {
		dbPath = defaultPath("ghostwriter.db")
	}
	if dbPath != ":memory:" {
		_ = os.MkdirAll(filepath.Dir(dbPath), 0o755)
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set GHOSTWRITER_DB to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	kv := sqlite.NewStore(m.DB)
	deps.Sources = store.NewSourceService(kv)
	deps.Inspirations = store.NewInspirationService(kv)
	deps.Contents = store.NewContentService(kv)
	deps.Interests = fs.NewProfileLoader(profilePath(cli.InterestsFile, "interests.md"))
	deps.Voice = fs.NewProfileLoader(profilePath(cli.VoiceFile, "voice.md"))

	auth := &gmail.Authenticator{
		Store:        kv,
		ClientID:     cli.GoogleClientID,
		ClientSecret: cli.GoogleClientSecret,
	}
	deps.Gmail = auth
	deps.Mail = gwslog.NewLoggingMailAuthenticator(auth, logger)

	m.Fetcher = gwslog.NewLoggingFetcher(&scan.RetryFetcher{
		Fetcher: gwhttp.NewFetcher(gwhttp.WithTimeout(cli.Timeout)),
		Delays:  scan.DefaultRetryDelays(),
		Logger:  logger,
	}, logger)

	discoverer := gwslog.NewLoggingDiscoverer(&goquery.Discoverer{
		Fetcher:     m.Fetcher,
		FeedParsers: []ghostwriter.FeedParser{&etree.FeedParser{}, &gofeed.FeedParser{}},
		Limiter:     scan.NewDomainLimiter(cli.Rate),
	}, logger)

	deps.Blogs = &scan.BlogScanner{
		Sources:      deps.Sources,
		Inspirations: deps.Inspirations,
		Discoverer:   discoverer,
		Interests:    deps.Interests,
		Logger:       logger,
	}
	deps.Newsletters = &scan.NewsletterScanner{
		Sources:      deps.Sources,
		Inspirations: deps.Inspirations,
		Auth:         deps.Mail,
		Interests:    deps.Interests,
		Logger:       logger,
	}
	deps.Articles = &scan.ArticleScanner{
		Sources:      deps.Sources,
		Inspirations: deps.Inspirations,
		Fetcher:      m.Fetcher,
		Interests:    deps.Interests,
		Extractors:   []ghostwriter.Extractor{trafilatura.NewExtractor(), readability.NewExtractor()},
		Logger:       logger,
	}
	deps.Reader = &scan.Reader{
		Inspirations: deps.Inspirations,
		Bodies:       &goquery.BodyExtractor{Fetcher: m.Fetcher},
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// defaultPath returns name inside ~/.ghostwriter, or name itself when the
// home directory is unknown.
func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".ghostwriter", name)
}

func profilePath(configured, name string) string {
	if p := expandHome(configured); p != "" {
		return p
	}
	return defaultPath(name)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
