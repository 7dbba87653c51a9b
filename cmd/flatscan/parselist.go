package main

import (
	"fmt"

	"github.com/avolos/flatscan"
	"github.com/avolos/flatscan/fs"
)

// Run executes the parse-list command.
func (c *ParseListCmd) Run(deps *Dependencies) error {
	apts, err := deps.Crawler.ExtractCatalog(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flatscan.ErrorMessage(err))
		return err
	}

	dir, err := fs.SaveBatch(apts, c.Output, deps.Logger)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flatscan.ErrorMessage(err))
		return err
	}

	if deps.Listings != nil {
		for _, apt := range apts {
			if err := deps.Listings.CreateListing(deps.Ctx, apt); err != nil {
				deps.Logger.Error("failed to record listing", "id", apt.ID, "error", err)
			}
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved %d listings to %s\n", len(apts), dir)
	return nil
}
