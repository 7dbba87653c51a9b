package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v6"

	"github.com/avolos/flatscan/crawl"
	flathttp "github.com/avolos/flatscan/http"
	"github.com/avolos/flatscan/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Config holds environment-driven settings. Flags take precedence where
// both exist.
type Config struct {
	DBPath      string  `env:"FLATSCAN_DB"`
	OutputDir   string  `env:"FLATSCAN_OUTPUT"`
	Concurrency int     `env:"FLATSCAN_CONCURRENCY"`
	RPS         float64 `env:"FLATSCAN_RPS" envDefault:"1"`
	Verbose     bool    `env:"FLATSCAN_VERBOSE"`
}

// Main represents the program.
type Main struct {
	// Configuration read from the environment. Set before calling Run()
	// to override.
	Config Config

	// SQLite database, opened only when a database path is configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with configuration read from the
// environment.
func NewMain() *Main {
	m := &Main{}
	_ = env.Parse(&m.Config)
	return m
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
	level := slog.LevelInfo
	if m.Config.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		OutputDir: m.Config.OutputDir,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("flatscan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'flatscan --help' to see available commands")
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

	fetcher := flathttp.NewFetcher()
	defer fetcher.Close()

	deps.Crawler = &crawl.Crawler{
		Fetcher:     fetcher,
		Limiter:     crawl.NewHostLimiter(m.Config.RPS),
		Concurrency: m.Config.Concurrency,
		Logger:      logger,
	}

	// The database is optional; listings are always written to disk and
	// additionally recorded in SQLite when a path is configured.
	dbPath := m.Config.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}
	if dbPath != "" {
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set FLATSCAN_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.Listings = sqlite.NewListingService(m.DB)
	}

	return kongCtx.Run(deps)
}
