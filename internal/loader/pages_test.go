package loader

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"licworker/internal/config"
	"licworker/internal/fetch"
)

func pagerScraper() *fetch.Scraper {
	return fetch.NewScraperWithConfig(&config.RetryPolicy{
		MaxAttempts:       1,
		InitialDelayMs:    0,
		MaxDelayMs:        0,
		BackoffMultiplier: 1.0,
		TimeoutSec:        5,
	}, 1024)
}

func tablePage(rows []string, nextLink bool) string {
	var sb strings.Builder

	sb.WriteString("<html><body><table><tr><th>Licensee</th></tr>")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("<tr><td>%s</td></tr>", row))
	}
	sb.WriteString("</table>")

	if nextLink {
		sb.WriteString(`<a href="#">Next</a>`)
	}

	sb.WriteString("</body></html>")

	return sb.String()
}

func TestPager_FetchAll_StopsWithoutNextLink(t *testing.T) {
	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RequestURI())

		switch r.URL.Query().Get("page") {
		case "":
			fmt.Fprint(w, tablePage([]string{"First Shop", "Second Shop"}, true))
		case "2":
			fmt.Fprint(w, tablePage([]string{"Third Shop"}, false))
		default:
			t.Errorf("unexpected request for %s", r.URL.RequestURI())
		}
	}))
	defer server.Close()

	records, err := NewPager(pagerScraper(), 0).FetchAll(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}

	if len(records) != 3 {
		t.Errorf("records = %d, want 3", len(records))
	}

	if len(requests) != 2 {
		t.Fatalf("requests = %d, want 2", len(requests))
	}

	if !strings.Contains(requests[1], "?page=2") {
		t.Errorf("second request = %q, want ?page=2 appended", requests[1])
	}
}

func TestPager_FetchAll_StopsOnEmptyPage(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		if r.URL.Query().Get("page") == "" {
			// The next link promises more, but page 2 has no rows.
			fmt.Fprint(w, tablePage([]string{"First Shop"}, true))
		} else {
			fmt.Fprint(w, tablePage(nil, true))
		}
	}))
	defer server.Close()

	records, err := NewPager(pagerScraper(), 0).FetchAll(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("records = %d, want 1", len(records))
	}

	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
}

func TestPager_FetchAll_PageCap(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// Every page carries rows and a next link, so only the cap
		// can end traversal.
		fmt.Fprint(w, tablePage([]string{"Shop"}, true))
	}))
	defer server.Close()

	records, err := NewPager(pagerScraper(), 0).FetchAll(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}

	if requests != maxPages {
		t.Errorf("requests = %d, want %d", requests, maxPages)
	}

	if len(records) != maxPages {
		t.Errorf("records = %d, want %d", len(records), maxPages)
	}
}

func TestPager_FetchAll_LaterPageFailureKeepsRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "" {
			fmt.Fprint(w, tablePage([]string{"First Shop"}, true))
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	records, err := NewPager(pagerScraper(), 0).FetchAll(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("records = %d, want the first page's records", len(records))
	}
}

func TestPager_FetchAll_FirstPageFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := NewPager(pagerScraper(), 0).FetchAll(context.Background(), server.URL); err == nil {
		t.Error("expected error for an unreachable first page")
	}
}
