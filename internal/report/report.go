// Package report summarizes extraction batches into structured
// statistics and renders them as aligned text tables.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"licworker/internal/extractor"
	"licworker/internal/models"
)

// topCities caps the rendered city breakdown.
const topCities = 10

// Stats holds the batch-level statistics of one extraction run.
type Stats struct {
	Total           int
	Processed       int
	Skipped         int
	Errored         int
	ByType          map[string]int
	ByStatus        map[string]int
	ByCity          map[string]int
	SmokeShops      int
	WithCoordinates int
}

// Collect computes batch statistics from a driver result.
func Collect(result *extractor.Result) *Stats {
	stats := &Stats{
		Total:     len(result.Documents),
		Processed: result.Processed,
		Skipped:   result.Skipped,
		Errored:   result.Errored,
		ByType:    map[string]int{},
		ByStatus:  map[string]int{},
		ByCity:    map[string]int{},
	}

	for _, doc := range result.Documents {
		stats.ByType[doc.LicenseType]++
		stats.ByStatus[doc.LicenseStatus]++
		stats.ByCity[cityLabel(doc)]++

		if doc.SmokeShop {
			stats.SmokeShops++
		}

		if len(doc.Location.Coordinates) > 0 {
			stats.WithCoordinates++
		}
	}

	return stats
}

// Render formats the statistics as a plain-text report.
func (s *Stats) Render() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total records: %d (processed %d, skipped %d, errored %d)\n", s.Total, s.Processed, s.Skipped, s.Errored))
	sb.WriteString(fmt.Sprintf("Smoke shops: %d\n", s.SmokeShops))
	sb.WriteString(fmt.Sprintf("With coordinates: %d\n", s.WithCoordinates))

	sb.WriteString("\nLicense types:\n")
	sb.WriteString(renderCounts(s.ByType, 0))

	sb.WriteString("\nLicense statuses:\n")
	sb.WriteString(renderCounts(s.ByStatus, 0))

	sb.WriteString("\nTop cities:\n")
	sb.WriteString(renderCounts(s.ByCity, topCities))

	return sb.String()
}

// cityLabel returns the document's city or a placeholder.
func cityLabel(doc *models.License) string {
	if doc.City == nil {
		return "(unknown)"
	}

	return *doc.City
}

// renderCounts formats a label-to-count map as aligned rows, largest
// count first and ties broken alphabetically. A positive limit caps
// the row count.
func renderCounts(counts map[string]int, limit int) string {
	type entry struct {
		label string
		count int
	}

	entries := make([]entry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, entry{label: label, count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}

		return entries[i].label < entries[j].label
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	// Align counts on the widest label, by display width so
	// non-ASCII names line up.
	maxWidth := 0

	for _, e := range entries {
		if w := runewidth.StringWidth(e.label); w > maxWidth {
			maxWidth = w
		}
	}

	var sb strings.Builder

	for _, e := range entries {
		padding := maxWidth - runewidth.StringWidth(e.label)
		sb.WriteString(fmt.Sprintf("  %s%s  %d\n", e.label, strings.Repeat(" ", padding), e.count))
	}

	return sb.String()
}
