package main

import (
	"fmt"

	"github.com/fwojciec/papertree"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return papertree.Errorf(papertree.EINVALID, "use --force to confirm deletion")
	}

	collections, err := deps.Collections.FindCollections(deps.Ctx, papertree.CollectionFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintf(deps.Stderr, "error: collection %q not found. Use 'papertree list' to see available collections.\n", c.Name)
		return papertree.Errorf(papertree.ENOTFOUND, "collection %q not found", c.Name)
	}

	collection := collections[0]
	if err := deps.Collections.DeleteCollection(deps.Ctx, collection.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted collection %q\n", collection.Name)
	return nil
}
