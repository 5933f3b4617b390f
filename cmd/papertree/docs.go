package main

import (
	"fmt"

	"github.com/fwojciec/papertree"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
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

	docs, err := deps.Documents.FindDocuments(deps.Ctx, papertree.DocumentFilter{
		CollectionID: &collection.ID,
		SortBy:       papertree.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: collection %q has no documents\n", c.Name)
		return papertree.Errorf(papertree.ENOTFOUND, "collection %q has no documents", c.Name)
	}

	if c.Full {
		for _, doc := range docs {
			fmt.Fprint(deps.Stdout, papertree.FormatText(doc))
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents for %s (%d total):\n\n", c.Name, len(docs))
	fmt.Fprintln(deps.Stdout, papertree.FormatDocuments(docs))

	return nil
}
