package papertree

import (
	"strconv"
	"strings"
)

// FormatText renders a document as plain text: the title, the abstract and
// keywords under their labels, then every leaf of the outline in depth-first
// order. Blocks are separated by blank lines.
func FormatText(doc *Document) string {
	var b strings.Builder
	b.WriteString(doc.Title + "\n\n")
	b.WriteString("Abstract\n\n" + doc.Abstract + "\n\n")
	b.WriteString("Keywords\n\n" + strings.Join(doc.Keywords, ", ") + "\n\n")
	for _, sec := range doc.Content {
		for _, leaf := range sec.Leaves() {
			b.WriteString(leaf + "\n\n")
		}
	}
	return b.String()
}

// FormatTaggedText renders the token streams of a document, each token
// preceded by its markup tag. Headings survive in this layout, which makes it
// suitable for prompting models that need the section structure.
func FormatTaggedText(doc *Document) string {
	var b strings.Builder
	b.WriteString(doc.Title + "\n\n")
	b.WriteString("Abstract\n" + doc.Abstract + "\n\n")
	b.WriteString("Keywords\n" + strings.Join(doc.Keywords, ", ") + "\n\n")
	for i, tokens := range doc.Tokens {
		b.WriteString("[Section " + strconv.Itoa(i+1) + "]\n")
		for _, t := range tokens {
			b.WriteString("[" + t.Tag() + "]\n" + t.Text + "\n")
		}
	}
	return b.String()
}

// FormatFailure is the placeholder written in place of a document that could
// not be parsed.
func FormatFailure(src Source) string {
	return src.File + " PARSE ERROR\n"
}

// FormatDocuments formats a listing of documents, one per line, using the
// title if available and the source file otherwise.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(docs))
	for _, doc := range docs {
		header := doc.Title
		if header == "" {
			header = doc.File
		}
		if doc.DOI != "" {
			header += " (" + doc.DOI + ")"
		}
		lines = append(lines, header)
	}

	return strings.Join(lines, "\n")
}
