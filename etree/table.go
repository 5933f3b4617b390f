package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/papertree"
)

// parseTables converts every ce:table into a papertree.Table. The title is
// "<label> : <caption>"; CALS thead rows form the head and tbody rows the
// body. Cells holding MathML are reduced to their identifiers, numbers and
// operators.
func parseTables(root *etree.Element) []papertree.Table {
	var out []papertree.Table
	for _, tbl := range root.FindElementsPath(ceTable) {
		t := papertree.NewTable(tableTitle(tbl), rowsOf(tbl, "thead"), rowsOf(tbl, "tbody"))
		t.Footnotes = footnotesOf(tbl)
		out = append(out, t)
	}
	return out
}

func tableTitle(tbl *etree.Element) string {
	label := textOf(tbl.FindElementPath(ceLabel))
	var caption string
	if c := tbl.FindElementPath(ceCaption); c != nil {
		caption = textOf(c.FindElementPath(ceSimplePara))
	}
	switch {
	case label != "" && caption != "":
		return label + " : " + caption
	case label != "":
		return label
	case caption != "":
		return caption
	}
	return "Untitled"
}

// rowsOf returns the cell texts of every row under the first group element
// (thead or tbody). Group, row and entry are matched by local name since
// exports differ on whether CALS elements carry their own namespace.
func rowsOf(tbl *etree.Element, group string) [][]string {
	g := tbl.FindElement(".//" + group)
	if g == nil {
		return nil
	}
	var rows [][]string
	for _, row := range g.SelectElements("row") {
		var cells []string
		for _, entry := range row.SelectElements("entry") {
			cells = append(cells, cellText(entry))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows
}

func cellText(entry *etree.Element) string {
	if entry.FindElementPath(mathMLMath) == nil {
		return textOf(entry)
	}
	var parts []string
	collectMath(entry, &parts)
	return strings.Join(parts, " ")
}

func collectMath(el *etree.Element, parts *[]string) {
	for _, c := range el.ChildElements() {
		if c.NamespaceURI() == nsMathML {
			switch c.Tag {
			case "mi", "mn", "mo", "mtext":
				if text := textOf(c); text != "" {
					*parts = append(*parts, text)
				}
				continue
			}
		}
		collectMath(c, parts)
	}
}

func footnotesOf(tbl *etree.Element) []string {
	var notes []string
	for _, fn := range tbl.FindElementsPath(ceFootnote) {
		notes = append(notes, "Footnote: "+textOf(fn))
	}
	if fn := tbl.FindElementPath(ceTableFootnote); fn != nil {
		notes = append(notes, "Table footnotes: "+textOf(fn))
	}
	return notes
}
