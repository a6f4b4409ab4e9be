package main

import (
	"fmt"

	"github.com/fwojciec/clinics/scrape"
)

// Run prints each source with the fetcher that would read it.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	for _, s := range deps.Config.Sources {
		kind := "file"
		if scrape.IsWebSource(s) {
			kind = "web"
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", kind, s)
	}
	return nil
}
