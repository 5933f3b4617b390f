package papertree

import "strings"

// Table is a table recovered from an article. Rows of Head and Body are
// padded to a common width. Cell spans are not resolved.
type Table struct {
	Title     string     `json:"title"`
	Head      [][]string `json:"head"`
	Body      [][]string `json:"body"`
	Footnotes []string   `json:"footnotes,omitempty"`
}

// NewTable returns a table with every row padded to the widest row.
func NewTable(title string, head, body [][]string) Table {
	width := 0
	for _, r := range head {
		width = max(width, len(r))
	}
	for _, r := range body {
		width = max(width, len(r))
	}
	return Table{
		Title: title,
		Head:  padRows(head, width),
		Body:  padRows(body, width),
	}
}

func padRows(rows [][]string, width int) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		padded := make([]string, width)
		copy(padded, r)
		out = append(out, padded)
	}
	return out
}

// JoinTables merges consecutive parts of a table that a publisher split
// column-wise: a part with the same number of head and body rows as the
// previous one is appended to it side by side. The rows of parts may be
// reused by the result.
func JoinTables(parts []Table) []Table {
	if len(parts) <= 1 {
		return parts
	}
	merged := []Table{parts[0]}
	for _, tb := range parts[1:] {
		last := &merged[len(merged)-1]
		if len(tb.Head) != len(last.Head) || len(tb.Body) != len(last.Body) {
			merged = append(merged, tb)
			continue
		}
		for i := range tb.Head {
			last.Head[i] = append(last.Head[i], tb.Head[i]...)
		}
		for i := range tb.Body {
			last.Body[i] = append(last.Body[i], tb.Body[i]...)
		}
	}
	return merged
}

// FormatTableMarkdown renders a table as a titled markdown pipe table. The
// first row (head if present) is used as the header row.
func FormatTableMarkdown(t Table) string {
	var b strings.Builder
	b.WriteString("#### " + t.Title + "\n\n")

	rows := make([][]string, 0, len(t.Head)+len(t.Body))
	rows = append(rows, t.Head...)
	rows = append(rows, t.Body...)
	if len(rows) == 0 {
		b.WriteString("*(empty table)*\n")
		return b.String()
	}

	writeRow := func(r []string) {
		b.WriteString("| " + strings.Join(r, " | ") + " |\n")
	}
	writeRow(rows[0])
	sep := make([]string, len(rows[0]))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(sep)
	for _, r := range rows[1:] {
		writeRow(r)
	}
	for _, fn := range t.Footnotes {
		b.WriteString("\n" + fn + "\n")
	}
	return b.String()
}

// TableSet is the tables of one document, keyed in dumps by document name.
type TableSet struct {
	Name   string  `json:"-"`
	Path   string  `json:"path"`
	File   string  `json:"file"`
	Tables []Table `json:"tables"`
}

// FormatTablesMarkdown renders every table set as one markdown report.
func FormatTablesMarkdown(sets []TableSet) string {
	lines := []string{"# Tables Extracted\n"}
	for _, s := range sets {
		lines = append(lines, "## "+s.Name)
		if len(s.Tables) == 0 {
			lines = append(lines, "*No tables found.*\n")
			continue
		}
		for _, t := range s.Tables {
			lines = append(lines, FormatTableMarkdown(t))
		}
	}
	return strings.Join(lines, "\n")
}
