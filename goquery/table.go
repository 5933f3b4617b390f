package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

// parseTables converts every <table> in sel into a papertree.Table titled
// title and joins consecutive parts of split tables. Header rows come from
// <thead>; all other rows form the body.
func parseTables(sel *goquery.Selection, title string) []papertree.Table {
	var out []papertree.Table
	sel.Each(func(_ int, tbl *goquery.Selection) {
		var head, body [][]string
		tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			if tr.ParentsFiltered("thead").Length() > 0 {
				if row := cellsOf(tr, "th, td"); len(row) > 0 {
					head = append(head, row)
				}
				return
			}
			if row := cellsOf(tr, "td, th"); len(row) > 0 {
				body = append(body, row)
			}
		})
		out = append(out, papertree.NewTable(title, head, body))
	})
	return papertree.JoinTables(out)
}

func cellsOf(tr *goquery.Selection, selector string) []string {
	var row []string
	tr.ChildrenFiltered(selector).Each(func(_ int, cell *goquery.Selection) {
		row = append(row, textOf(cell))
	})
	return row
}
