package main

import (
	"fmt"

	"github.com/fwojciec/papertree"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	collections, err := deps.Collections.FindCollections(deps.Ctx, papertree.CollectionFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintln(deps.Stdout, "No collections found. Use 'papertree parse --db' to create one.")
		return nil
	}

	for _, c := range collections {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", c.ID, c.Name, c.SourceDir)
	}

	return nil
}
