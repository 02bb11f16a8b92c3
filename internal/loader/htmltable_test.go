package loader

import (
	"errors"
	"testing"
)

const theadPage = `
<html><body>
<table>
  <thead>
    <tr><th>Licensee</th><th>Licence Type</th></tr>
  </thead>
  <tbody>
    <tr><td>Blue Mountain Herbals</td><td>Retail (Herb House)</td></tr>
    <tr><td>Accompong Farms</td><td>Cultivator's (Tier 2)</td></tr>
  </tbody>
</table>
</body></html>`

const headlessPage = `
<html><body>
<table>
  <tr><td>Licence holder</td><td>Province</td></tr>
  <tr><td>Tilray Cannabis Inc.</td><td>British Columbia</td></tr>
</table>
</body></html>`

func TestParseTable_WithThead(t *testing.T) {
	table, err := ParseTable(theadPage)
	if err != nil {
		t.Fatalf("ParseTable returned error: %v", err)
	}

	if len(table.Headers) != 2 || table.Headers[0] != "Licensee" || table.Headers[1] != "Licence Type" {
		t.Errorf("Headers = %v", table.Headers)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(table.Rows))
	}

	if table.Rows[0][0] != "Blue Mountain Herbals" {
		t.Errorf("Rows[0][0] = %q", table.Rows[0][0])
	}
}

func TestParseTable_FirstRowAsHeader(t *testing.T) {
	table, err := ParseTable(headlessPage)
	if err != nil {
		t.Fatalf("ParseTable returned error: %v", err)
	}

	if len(table.Headers) != 2 || table.Headers[0] != "Licence holder" {
		t.Errorf("Headers = %v", table.Headers)
	}

	if len(table.Rows) != 1 || table.Rows[0][0] != "Tilray Cannabis Inc." {
		t.Errorf("Rows = %v", table.Rows)
	}
}

func TestParseTable_NoTable(t *testing.T) {
	_, err := ParseTable(`<html><body><p>Nothing here</p></body></html>`)
	if !errors.Is(err, ErrNoTable) {
		t.Errorf("error = %v, want ErrNoTable", err)
	}
}

func TestParseTable_CollapsesWhitespace(t *testing.T) {
	page := `<table><tr><th>Name</th></tr><tr><td>
		Blue   Mountain
		Herbals
	</td></tr></table>`

	table, err := ParseTable(page)
	if err != nil {
		t.Fatalf("ParseTable returned error: %v", err)
	}

	if table.Rows[0][0] != "Blue Mountain Herbals" {
		t.Errorf("cell = %q, want collapsed whitespace", table.Rows[0][0])
	}
}

func TestTable_Records_DualKeys(t *testing.T) {
	table, err := ParseTable(theadPage)
	if err != nil {
		t.Fatalf("ParseTable returned error: %v", err)
	}

	records := table.Records()
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	first := records[0]
	if first["Licensee"] != "Blue Mountain Herbals" {
		t.Errorf("header key = %v", first["Licensee"])
	}

	if first["column_0"] != "Blue Mountain Herbals" {
		t.Errorf("positional key = %v", first["column_0"])
	}

	if first["column_1"] != "Retail (Herb House)" {
		t.Errorf("positional key = %v", first["column_1"])
	}
}

func TestHasNextLink(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "Next text", content: `<a href="?page=2">Next</a>`, want: true},
		{name: "Lowercase next", content: `<a href="?page=2">next page</a>`, want: true},
		{name: "Chevron", content: `<a href="?page=2">›</a>`, want: true},
		{name: "Double chevron", content: `<a href="?page=2">»</a>`, want: true},
		{name: "No pagination", content: `<a href="/about">About</a>`, want: false},
		{name: "No anchors", content: `<p>Next</p>`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasNextLink(tt.content); got != tt.want {
				t.Errorf("HasNextLink = %v, want %v", got, tt.want)
			}
		})
	}
}
