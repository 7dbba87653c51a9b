package main

import (
	"fmt"

	"github.com/avolos/flatscan"
	"github.com/avolos/flatscan/fs"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	apt, err := deps.Crawler.ExtractListing(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flatscan.ErrorMessage(err))
		return err
	}

	output := c.Output
	if output == "" {
		output = deps.OutputDir
	}

	path, err := fs.SaveListing(apt, output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flatscan.ErrorMessage(err))
		return err
	}

	// Database recording is best-effort; the file on disk is the result.
	if deps.Listings != nil {
		if err := deps.Listings.CreateListing(deps.Ctx, apt); err != nil {
			deps.Logger.Error("failed to record listing", "id", apt.ID, "error", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved listing %s to %s\n", apt.ID, path)
	return nil
}
