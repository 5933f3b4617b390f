// Package docx implements papertree.TextReader for Word documents using
// go-docx.
package docx

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/fwojciec/papertree"
)

var _ papertree.TextReader = (*Reader)(nil)

// Reader reads .docx files as plain text: every body paragraph on its own
// line, followed by every table row with its cells joined by tabs.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadText returns the plain text of the Word document at src.
func (r *Reader) ReadText(ctx context.Context, src papertree.Source) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(src.FullPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", papertree.Errorf(papertree.ENOTFOUND, "file not found: %s", src.File)
		}
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", papertree.Errorf(papertree.EINVALID, "parse docx %s: %v", src.File, err)
	}

	var lines []string
	var tables []*docx.Table
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			lines = append(lines, paragraphText(it))
		case *docx.Table:
			tables = append(tables, it)
		}
	}
	for _, tbl := range tables {
		for _, row := range tbl.TableRows {
			cells := make([]string, 0, len(row.TableCells))
			for _, cell := range row.TableCells {
				cells = append(cells, cellText(cell))
			}
			lines = append(lines, strings.Join(cells, "\t"))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func cellText(cell *docx.WTableCell) string {
	paras := make([]string, 0, len(cell.Paragraphs))
	for _, p := range cell.Paragraphs {
		paras = append(paras, paragraphText(p))
	}
	return strings.Join(paras, "\n")
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return buf.String()
}
