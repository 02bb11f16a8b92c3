// Package pipeline binds configured jurisdiction sources to their
// loaders and extractors and runs extraction batches.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"licworker/internal/config"
	"licworker/internal/extractor"
	"licworker/internal/fetch"
	"licworker/internal/loader"
	"licworker/internal/logger"
	"licworker/internal/models"
)

// ErrUnknownJurisdiction is returned for a source whose jurisdiction
// has no registered extractor.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

// pageDelay is the pause between fetches of a paginated source.
const pageDelay = time.Second

// Pipeline runs one extraction batch per configured source: load the
// raw records in the source's native shape, drive them through the
// jurisdiction's extractor, and hand back the result.
type Pipeline struct {
	scraper *fetch.Scraper
	log     *logger.Logger
}

// New creates a pipeline using the given scraper for remote sources.
func New(scraper *fetch.Scraper, log *logger.Logger) *Pipeline {
	return &Pipeline{
		scraper: scraper,
		log:     log,
	}
}

// Run loads and extracts one source. An unreachable remote or
// unreadable file is an error; a source that yields zero records is a
// valid empty batch.
func (p *Pipeline) Run(ctx context.Context, src config.SourceConfig) (*extractor.Result, error) {
	ext, err := ForJurisdiction(src.Jurisdiction)
	if err != nil {
		return nil, err
	}

	records, err := p.load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s source: %w", src.Jurisdiction, err)
	}

	p.log.Info("loaded raw records", "jurisdiction", ext.Jurisdiction(), "records", len(records))

	result := extractor.NewDriver(ext).Run(records)

	for _, failure := range result.Failures {
		if failure.Err != nil {
			p.log.Warn("record failed", "jurisdiction", ext.Jurisdiction(), "index", failure.Index, "reason", failure.Reason, "error", failure.Err)
		} else {
			p.log.Debug("record skipped", "jurisdiction", ext.Jurisdiction(), "index", failure.Index, "reason", failure.Reason)
		}
	}

	return result, nil
}

// load obtains the source's raw records in its native shape.
func (p *Pipeline) load(ctx context.Context, src config.SourceConfig) ([]models.RawRecord, error) {
	switch Slug(src.Jurisdiction) {
	case "alberta", "colorado", "saskatchewan", "british_columbia", "bc":
		data, err := p.sourceBytes(ctx, src)
		if err != nil {
			return nil, err
		}

		return loader.LoadTabular(src.GetSource(), data)
	case "michigan":
		data, err := p.sourceBytes(ctx, src)
		if err != nil {
			return nil, err
		}

		return loader.LoadCSV(data)
	case "ontario":
		data, err := p.sourceBytes(ctx, src)
		if err != nil {
			return nil, err
		}

		return loader.LoadESRI(data)
	case "federal", "health_canada", "jamaica":
		return p.tableRecords(ctx, src)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownJurisdiction, src.Jurisdiction)
}

// tableRecords loads an HTML-table source: paginated fetch for a
// remote URL, a single saved page for a local file.
func (p *Pipeline) tableRecords(ctx context.Context, src config.SourceConfig) ([]models.RawRecord, error) {
	if src.IsLocalFile() {
		data, err := p.scraper.ReadLocalFile(src.File)
		if err != nil {
			return nil, err
		}

		table, err := loader.ParseTable(string(data))
		if err != nil {
			return nil, err
		}

		return table.Records(), nil
	}

	return loader.NewPager(p.scraper, pageDelay).FetchAll(ctx, src.URL)
}

// sourceBytes reads the source content from disk or over HTTP.
func (p *Pipeline) sourceBytes(ctx context.Context, src config.SourceConfig) ([]byte, error) {
	if src.IsLocalFile() {
		return p.scraper.ReadLocalFile(src.File)
	}

	content, err := p.scraper.Fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	return []byte(content), nil
}

// ForJurisdiction returns the extractor registered for a jurisdiction
// name. Names are matched case-insensitively with "BC" accepted for
// British Columbia.
func ForJurisdiction(name string) (extractor.Extractor, error) {
	switch Slug(name) {
	case "alberta":
		return extractor.NewAlberta(), nil
	case "british_columbia", "bc":
		return extractor.NewBritishColumbia(), nil
	case "colorado":
		return extractor.NewColorado(), nil
	case "federal", "health_canada":
		return extractor.NewFederal(), nil
	case "jamaica":
		return extractor.NewJamaica(), nil
	case "michigan":
		return extractor.NewMichigan(), nil
	case "ontario":
		return extractor.NewOntario(), nil
	case "saskatchewan":
		return extractor.NewSaskatchewan(), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownJurisdiction, name)
}

// Slug normalizes a jurisdiction name for matching and for output
// file naming: lowercased with spaces as underscores.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
