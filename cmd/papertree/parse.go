package main

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/batch"
	"github.com/fwojciec/papertree/fs"
)

// parseExts are the export formats the parse command reads.
var parseExts = []string{".html", ".htm", ".xml"}

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	filter, err := compileFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	if err := checkOutput(c.Input, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	sources, err := fs.ListSources(c.Input, parseExts, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	out := filepath.Clean(c.Output)
	store := fs.NewFileStore(filepath.Dir(out), filepath.Base(out))
	store.SetTagged(c.Tagged)

	p := deps.Parser
	p.Output = store
	p.Builder = papertree.Builder{TopDepth: c.TopDepth, KeepNestedTitles: c.KeepNestedTitles}
	if c.Publisher != "auto" {
		p.Publisher = papertree.Publisher(c.Publisher)
	}
	if c.Concurrency > 0 {
		p.Concurrency = c.Concurrency
	}

	if c.DB {
		collection, err := c.createCollection(deps)
		if err != nil {
			return err
		}
		p.Documents = deps.Documents
		p.CollectionID = collection.ID
		fmt.Fprintf(deps.Stdout, "Added collection %q (%s)\n", collection.Name, collection.ID)
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d files\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Source.File, describe(event.Error))
		case batch.ProgressCompleted:
			if event.Warnings > 0 {
				fmt.Fprintf(deps.Stderr, "  warn %s: %d warnings\n", event.Source.File, event.Warnings)
			}
		}
	}

	_, result, err := p.Parse(deps.Ctx, sources, progress)
	if err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error parsing: %v\n", err)
		return err
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Parsed %d files, %d failed (%s, %d tables)\n",
		result.Parsed, result.Failed, batch.FormatBytes(result.Bytes), result.Tables)
	fmt.Fprintf(deps.Stdout, "  Output written to %s\n", out)
	return nil
}

func (c *ParseCmd) createCollection(deps *Dependencies) (*papertree.Collection, error) {
	name := c.Name
	if name == "" {
		name = filepath.Base(filepath.Clean(c.Input))
	}

	if c.Force {
		existing, err := deps.Collections.FindCollections(deps.Ctx, papertree.CollectionFilter{Name: &name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
			return nil, err
		}
		if len(existing) > 0 {
			if err := deps.Collections.DeleteCollection(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
				return nil, err
			}
		}
	}

	collection := &papertree.Collection{Name: name, SourceDir: c.Input}
	if c.Publisher != "auto" {
		collection.Publisher = papertree.Publisher(c.Publisher)
	}
	if err := deps.Collections.CreateCollection(deps.Ctx, collection); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papertree.ErrorMessage(err))
		return nil, err
	}
	return collection, nil
}

// compileFilter validates regex patterns early and builds a NameFilter.
// It returns nil when no patterns are given.
func compileFilter(include, exclude []string) (*papertree.NameFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	filter := &papertree.NameFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, papertree.Errorf(papertree.EINVALID, "invalid filter pattern %q: %v", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, papertree.Errorf(papertree.EINVALID, "invalid exclude pattern %q: %v", pattern, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}

// checkOutput rejects output directories that would overlap the input:
// the working directory itself, the input directory, or any of its parents.
func checkOutput(input, output string) error {
	if filepath.Clean(output) == "." {
		return papertree.Errorf(papertree.EINVALID, "output directory must not be the working directory")
	}
	in, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	if in == out {
		return papertree.Errorf(papertree.EINVALID, "output directory %q is the input directory", output)
	}
	rel, err := filepath.Rel(out, in)
	if err != nil {
		return nil
	}
	if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return papertree.Errorf(papertree.EINVALID, "output directory %q contains the input directory", output)
	}
	return nil
}

// describe renders per-file errors; application errors show their message.
func describe(err error) string {
	if papertree.ErrorCode(err) != papertree.EINTERNAL {
		return papertree.ErrorMessage(err)
	}
	return err.Error()
}
