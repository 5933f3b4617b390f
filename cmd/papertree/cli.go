package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/batch"
	"github.com/fwojciec/papertree/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	DB          *sqlite.DB
	Collections papertree.CollectionService
	Documents   papertree.DocumentService
	Parser      *batch.Parser
	Tagger      *batch.Tagger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log extraction and model calls to stderr"`

	Parse  ParseCmd  `cmd:"" help:"Parse a directory of article exports"`
	Tag    TagCmd    `cmd:"" help:"Tag fatigue specimen parameters with a language model"`
	List   ListCmd   `cmd:"" help:"List cataloged collections"`
	Docs   DocsCmd   `cmd:"" help:"List documents of a collection"`
	Delete DeleteCmd `cmd:"" help:"Delete a collection and its documents"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Input            string   `arg:"" type:"existingdir" help:"Directory of .html, .htm or .xml exports"`
	Output           string   `arg:"" help:"Output directory"`
	Publisher        string   `short:"p" enum:"auto,mdpi,springer,wiley,sage,iop,tandf,asme,elsevier" default:"auto" help:"Use one publisher's extractor for every file instead of detecting it"`
	Filter           []string `short:"F" name:"filter" help:"Only parse files whose name matches the regex (repeatable)"`
	Exclude          []string `short:"x" help:"Skip files whose name matches the regex (repeatable)"`
	Tagged           bool     `help:"Write tagged token text instead of plain text"`
	KeepNestedTitles bool     `name:"keep-nested-titles" help:"Keep a lone subsection as a titled child"`
	TopDepth         int      `name:"top-depth" default:"0" help:"Shallowest allowed heading depth; shallower headings are coerced"`
	Fallback         string   `enum:"trafilatura,readability" default:"trafilatura" help:"Content extractor for unknown publishers"`
	Concurrency      int      `short:"c" default:"4" help:"Files parsed at once"`
	Browser          bool     `help:"Fetch linked table pages with headless Chrome"`
	DB               bool     `name:"db" help:"Also record documents in the catalog"`
	Name             string   `help:"Catalog collection name (default: input directory name)"`
	Force            bool     `short:"f" help:"Replace an existing collection of the same name"`
}

// TagCmd is the "tag" subcommand.
type TagCmd struct {
	Input       string   `arg:"" type:"existingdir" help:"Directory of .docx or .txt articles"`
	Output      string   `arg:"" help:"Output directory"`
	Provider    string   `enum:"deepseek,openai,gemini" default:"deepseek" help:"Model provider"`
	Model       string   `short:"m" help:"Model name (default depends on provider)"`
	BaseURL     string   `name:"base-url" help:"OpenAI-compatible endpoint (deepseek and openai providers)"`
	Filter      []string `short:"F" name:"filter" help:"Only tag files whose name matches the regex (repeatable)"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per model"`
	Concurrency int      `short:"c" default:"2" help:"Requests in flight"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Name string `arg:"" help:"Collection name"`
	Full bool   `help:"Show full document text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Collection name"`
	Force bool   `help:"Confirm deletion"`
}
