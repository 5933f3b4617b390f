package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/batch"
	"github.com/fwojciec/papertree/fs"
)

// Run executes the tag command.
func (c *TagCmd) Run(deps *Dependencies) error {
	filter, err := compileFilter(c.Filter, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	if err := checkOutput(c.Input, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	sources, err := fs.ListSources(c.Input, nil, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	out := filepath.Clean(c.Output)
	store := fs.NewTextFileStore(filepath.Dir(out), filepath.Base(out))

	t := deps.Tagger
	t.Output = store
	if c.Concurrency > 0 {
		t.Concurrency = c.Concurrency
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d files\n", event.Total)
		case batch.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: unsupported file type\n", event.Source.File)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", event.Source.File, describe(event.Error))
		}
	}

	result, err := t.Tag(deps.Ctx, sources, progress)
	if err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error tagging: %v\n", err)
		return err
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Tagged %d files, %d failed, %d skipped (%s)\n",
		result.Tagged, result.Failed, result.Skipped, batch.FormatTokens(result.Tokens))
	return nil
}
