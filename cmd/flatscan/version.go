package main

import "fmt"

// version is stamped by the release build; the default marks dev builds.
var version = "dev"

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "flatscan %s\n", version)
	return nil
}
