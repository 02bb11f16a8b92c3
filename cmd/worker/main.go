// Package main provides the license worker command: load configured
// jurisdiction sources, normalize them into canonical documents, and
// write the batches out.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"licworker/internal/config"
	"licworker/internal/fetch"
	"licworker/internal/logger"
	"licworker/internal/pipeline"
	"licworker/internal/report"
	"licworker/internal/sink"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to worker configuration file")
	jurisdiction := flag.String("jurisdiction", "", "Run only this jurisdiction (default: all enabled)")
	skipSink := flag.Bool("skip-sink", false, "Skip the MongoDB sink even when enabled in config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Worker.Logging.Level)
	ctx := context.Background()

	log.Info("🚀 Starting License Worker")
	log.Info(fmt.Sprintf("📍 Config: %s", *configPath))

	scraper := fetch.NewScraperWithConfig(&cfg.Worker.Retry, 10240)
	pipe := pipeline.New(scraper, log)

	sources := cfg.GetEnabledSources()
	if *jurisdiction != "" {
		sources = filterSources(sources, *jurisdiction)
		if len(sources) == 0 {
			log.Error(fmt.Sprintf("❌ No enabled source for jurisdiction %q", *jurisdiction))
			os.Exit(1)
		}
	}

	startTime := time.Now()
	failures := 0

	for _, src := range sources {
		if err := runSource(ctx, cfg, pipe, log, src, *skipSink); err != nil {
			log.Error(fmt.Sprintf("❌ %s failed: %v", src.Jurisdiction, err))

			failures++
		}
	}

	log.Info(fmt.Sprintf("✨ Worker complete in %v (%d sources, %d failed)", time.Since(startTime), len(sources), failures))

	if failures > 0 {
		os.Exit(1)
	}
}

// runSource runs one jurisdiction end to end: extract, report, write
// JSON, and optionally insert into the sink.
func runSource(ctx context.Context, cfg *config.Config, pipe *pipeline.Pipeline, log *logger.Logger, src config.SourceConfig, skipSink bool) error {
	log.Info(fmt.Sprintf("Phase 1: Extraction (%s)...", src.Jurisdiction))

	result, err := pipe.Run(ctx, src)
	if err != nil {
		return err
	}

	stats := report.Collect(result)

	log.Info(fmt.Sprintf("✅ %s: %d documents (skipped %d, errored %d)", src.Jurisdiction, stats.Total, stats.Skipped, stats.Errored))
	fmt.Println(stats.Render())

	log.Info("Phase 2: Writing output...")

	outputPath := cfg.GetOutputPath(pipeline.Slug(src.Jurisdiction))
	if err := sink.WriteJSON(outputPath, result.Documents, cfg.Worker.Output.PrettyPrint); err != nil {
		return err
	}

	log.Info(fmt.Sprintf("✅ Wrote %s", outputPath))

	if !cfg.Worker.Sink.Enabled || skipSink {
		return nil
	}

	log.Info("Phase 3: Inserting into MongoDB...")

	mongoSink, err := sink.NewMongo(ctx, cfg.Worker.Sink.URI, cfg.Worker.Sink.Database, cfg.Worker.Sink.Collection)
	if err != nil {
		return err
	}

	defer func() {
		_ = mongoSink.Close(ctx)
	}()

	inserted, err := mongoSink.InsertBatch(ctx, result.Documents)
	if err != nil {
		return err
	}

	if err := mongoSink.EnsureIndexes(ctx); err != nil {
		return err
	}

	log.Info(fmt.Sprintf("✅ Inserted %d documents", inserted))

	return nil
}

// filterSources keeps only the sources matching the given jurisdiction.
func filterSources(sources []config.SourceConfig, jurisdiction string) []config.SourceConfig {
	var matched []config.SourceConfig

	for _, src := range sources {
		if pipeline.Slug(src.Jurisdiction) == pipeline.Slug(jurisdiction) {
			matched = append(matched, src)
		}
	}

	return matched
}
