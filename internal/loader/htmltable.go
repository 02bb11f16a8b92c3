package loader

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"licworker/internal/models"
)

// ErrNoTable is returned when a page contains no table element.
var ErrNoTable = errors.New("no table found in page")

// nextLinkPattern matches the anchor text of a pagination "next"
// control across the registry sites.
var nextLinkPattern = regexp.MustCompile(`(?i)next|›|»`)

// Table is one parsed HTML table: the header cell texts and the cell
// texts of every data row.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ParseTable extracts the first table from an HTML page. Headers come
// from the thead when present, otherwise from the first row, and the
// remaining rows become data rows.
func ParseTable(content string) (*Table, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	tableNode := findElement(doc, "table")
	if tableNode == nil {
		return nil, ErrNoTable
	}

	table := &Table{}

	rows := collectElements(tableNode, "tr")
	if len(rows) == 0 {
		return table, nil
	}

	if thead := findElement(tableNode, "thead"); thead != nil {
		for _, cell := range collectElements(thead, "th") {
			table.Headers = append(table.Headers, nodeText(cell))
		}

		headRows := collectElements(thead, "tr")
		rows = rows[len(headRows):]
	} else {
		for _, cell := range cellsOf(rows[0]) {
			table.Headers = append(table.Headers, nodeText(cell))
		}

		rows = rows[1:]
	}

	for _, row := range rows {
		cells := cellsOf(row)
		if len(cells) == 0 {
			continue
		}

		texts := make([]string, 0, len(cells))
		for _, cell := range cells {
			texts = append(texts, nodeText(cell))
		}

		table.Rows = append(table.Rows, texts)
	}

	return table, nil
}

// Records converts the table rows into raw records. Cells are keyed
// both by their header text and by position ("column_0", "column_1",
// ...), so extractors can fall back between naming schemes.
func (t *Table) Records() []models.RawRecord {
	records := make([]models.RawRecord, 0, len(t.Rows))

	for _, row := range t.Rows {
		record := models.RawRecord{}

		for i, cell := range row {
			record[fmt.Sprintf("column_%d", i)] = cell

			if i < len(t.Headers) && t.Headers[i] != "" {
				record[t.Headers[i]] = cell
			}
		}

		records = append(records, record)
	}

	return records
}

// HasNextLink reports whether the page carries a pagination link to a
// following page.
func HasNextLink(content string) bool {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return false
	}

	for _, anchor := range collectElements(doc, "a") {
		if nextLinkPattern.MatchString(nodeText(anchor)) {
			return true
		}
	}

	return false
}

// findElement returns the first element with the given tag in
// document order.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}

	return nil
}

// collectElements returns every element with the given tag in
// document order.
func collectElements(n *html.Node, tag string) []*html.Node {
	var found []*html.Node

	if n.Type == html.ElementNode && n.Data == tag {
		found = append(found, n)
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		found = append(found, collectElements(child, tag)...)
	}

	return found
}

// cellsOf returns the td and th children of a row, in order.
func cellsOf(row *html.Node) []*html.Node {
	var cells []*html.Node

	for child := row.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && (child.Data == "td" || child.Data == "th") {
			cells = append(cells, child)
		}
	}

	return cells
}

// nodeText concatenates the text content under a node, whitespace
// collapsed.
func nodeText(n *html.Node) string {
	var builder strings.Builder

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			builder.WriteString(node.Data)
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(builder.String()), " ")
}
