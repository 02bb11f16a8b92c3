package loader

import (
	"context"
	"fmt"
	"time"

	"licworker/internal/fetch"
	"licworker/internal/models"
)

// maxPages bounds pagination traversal so a broken next link can
// never loop forever.
const maxPages = 50

// Pager walks a paginated HTML table site page by page, parsing each
// page's table into raw records. Page 1 is the base URL and later
// pages append ?page=N. Traversal stops when a page yields no rows,
// when the page has no next link, or at the page cap.
type Pager struct {
	scraper *fetch.Scraper
	delay   time.Duration
}

// NewPager creates a pager over the given scraper. The delay is the
// pause between page fetches.
func NewPager(scraper *fetch.Scraper, delay time.Duration) *Pager {
	return &Pager{
		scraper: scraper,
		delay:   delay,
	}
}

// FetchAll fetches and parses every page of the table at baseURL. A
// fetch or parse failure on the first page is an error; on later
// pages it ends traversal with the records collected so far.
func (p *Pager) FetchAll(ctx context.Context, baseURL string) ([]models.RawRecord, error) {
	all := []models.RawRecord{}

	for page := 1; page <= maxPages; page++ {
		url := baseURL
		if page > 1 {
			url = fmt.Sprintf("%s?page=%d", baseURL, page)
		}

		content, err := p.scraper.Fetch(ctx, url)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("failed to fetch page %d: %w", page, err)
			}

			break
		}

		table, err := ParseTable(content)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("failed to parse page %d: %w", page, err)
			}

			break
		}

		records := table.Records()
		if len(records) == 0 {
			break
		}

		all = append(all, records...)

		if !HasNextLink(content) {
			break
		}

		if p.delay > 0 {
			select {
			case <-time.After(p.delay):
			case <-ctx.Done():
				return all, ctx.Err()
			}
		}
	}

	return all, nil
}
