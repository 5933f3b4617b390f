package papertree

// ContentResult holds what a boilerplate-removing extractor recovers from an
// arbitrary HTML page.
type ContentResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Description is the page summary from metadata, used as the abstract.
	Description string

	// Keywords come from metadata tags or categories.
	Keywords []string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor extracts main content from HTML pages of unknown layout.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ContentResult, error)
}

// MarkdownTokenizer splits markdown into a heading-tagged token stream.
type MarkdownTokenizer interface {
	Tokenize(markdown string) ([]Token, error)
}
