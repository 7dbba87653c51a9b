package main

import (
	"fmt"

	"github.com/avolos/flatscan"
	"github.com/avolos/flatscan/grammar"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	switch {
	case grammar.IsListingLink(c.Link):
		fmt.Fprintln(deps.Stdout, "listing")
	case grammar.IsCatalogLink(c.Link):
		fmt.Fprintln(deps.Stdout, "catalog")
	default:
		err := flatscan.Errorf(flatscan.EINVALID, "not a listing or catalog link: %q", c.Link)
		fmt.Fprintf(deps.Stderr, "error: %s\n", flatscan.ErrorMessage(err))
		return err
	}
	return nil
}
