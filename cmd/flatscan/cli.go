package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/avolos/flatscan"
	"github.com/avolos/flatscan/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Crawler   *crawl.Crawler
	Listings  flatscan.ListingWriter // nil when no database is configured
	OutputDir string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `help:"Record listings into a SQLite database at this path (overrides FLATSCAN_DB)"`

	Parse     ParseCmd     `cmd:"" help:"Extract a single listing to a JSON file"`
	ParseList ParseListCmd `cmd:"" name:"parse-list" help:"Extract every listing referenced by a catalog page"`
	Check     CheckCmd     `cmd:"" help:"Classify a link as a listing or catalog link"`
	Version   VersionCmd   `cmd:"" help:"Print the program version"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Source string `arg:"" help:"Listing URL or path to a local markup file"`
	Output string `short:"o" help:"Output file or directory (default: ./output)"`
}

// ParseListCmd is the "parse-list" subcommand.
type ParseListCmd struct {
	Source string `arg:"" help:"Catalog URL or path to a local markup file"`
	Output string `short:"o" help:"Output directory (default: timestamped under ./output)"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Link string `arg:"" help:"Link to classify"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
