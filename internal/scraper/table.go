package scraper

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/tsw/internal/draw"
)

// record is one body row of a listing table, cells keyed by column header.
type record struct {
	cells map[string]string
	row   *goquery.Selection
}

// cellText returns the text of sel with runs of whitespace collapsed.
func cellText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// headerCells returns the header cells of table: the th cells of its first
// row holding any.
func headerCells(table *goquery.Selection) *goquery.Selection {
	return table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.ChildrenFiltered("th").Length() > 0
	}).First().ChildrenFiltered("th")
}

// bodyRows returns the rows of table holding td cells.
func bodyRows(table *goquery.Selection) *goquery.Selection {
	return table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.ChildrenFiltered("td").Length() > 0
	})
}

// records reads a listing table (events, draws) into header-keyed rows.
func records(table *goquery.Selection) []record {
	var headers []string
	headerCells(table).Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, cellText(th))
	})

	var out []record
	bodyRows(table).Each(func(_ int, tr *goquery.Selection) {
		rec := record{cells: make(map[string]string, len(headers)), row: tr}
		tr.ChildrenFiltered("td").Each(func(i int, td *goquery.Selection) {
			if i < len(headers) {
				rec.cells[headers[i]] = cellText(td)
			}
		})
		out = append(out, rec)
	})
	return out
}

// span reads a rowspan/colspan attribute, defaulting to 1.
func span(sel *goquery.Selection, attr string) int {
	v, ok := sel.Attr(attr)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// drawTable reads a bracket table into columns, expanding rowspan and colspan
// so that every column holds one cell per leaf row.
func drawTable(table *goquery.Selection) draw.Table {
	var headers []string
	headerCells(table).Each(func(_ int, th *goquery.Selection) {
		text := cellText(th)
		for i := 0; i < span(th, "colspan"); i++ {
			headers = append(headers, text)
		}
	})

	width := len(headers)
	cols := make([][]string, width)
	type carry struct {
		text string
		left int
	}
	pending := make([]carry, width)

	bodyRows(table).Each(func(_ int, tr *goquery.Selection) {
		row := make([]string, width)
		col := 0
		fill := func() {
			for col < width && pending[col].left > 0 {
				row[col] = pending[col].text
				pending[col].left--
				col++
			}
		}

		tr.ChildrenFiltered("td, th").Each(func(_ int, cell *goquery.Selection) {
			fill()
			text := cellText(cell)
			rows := span(cell, "rowspan")
			for i := 0; i < span(cell, "colspan") && col < width; i++ {
				row[col] = text
				if rows > 1 {
					pending[col] = carry{text: text, left: rows - 1}
				}
				col++
			}
		})
		for ; col < width; col++ {
			if pending[col].left > 0 {
				row[col] = pending[col].text
				pending[col].left--
			}
		}

		for i := range cols {
			cols[i] = append(cols[i], row[i])
		}
	})

	t := draw.Table{Columns: make([]draw.Column, width)}
	for i, h := range headers {
		t.Columns[i] = draw.Column{Header: h, Cells: cols[i]}
	}
	return t
}
