// Package main provides the uploader command: load a previously
// written JSON batch and insert it into MongoDB.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"licworker/internal/logger"
	"licworker/internal/models"
	"licworker/internal/sink"
)

func main() {
	inputPath := flag.String("input", "", "Path to a JSON batch produced by the worker")
	uri := flag.String("uri", "mongodb://localhost:27017/", "MongoDB connection URI")
	database := flag.String("database", "cannabis_licenses", "Target database name")
	collection := flag.String("collection", "licenserecords", "Target collection name")
	flag.Parse()

	log := logger.NewLogger("info")

	if *inputPath == "" {
		log.Error("Please provide a batch file with -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	docs, err := loadBatch(*inputPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to load batch: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("🚀 Uploading %d documents from %s", len(docs), *inputPath))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoSink, err := sink.NewMongo(ctx, *uri, *database, *collection)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to connect: %v", err))
		os.Exit(1)
	}

	defer func() {
		_ = mongoSink.Close(ctx)
	}()

	inserted, err := mongoSink.InsertBatch(ctx, docs)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Insert failed: %v", err))
		os.Exit(1)
	}

	if err := mongoSink.EnsureIndexes(ctx); err != nil {
		log.Error(fmt.Sprintf("❌ Index creation failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Inserted %d documents into %s.%s", inserted, *database, *collection))
}

// loadBatch reads a JSON array of canonical documents.
func loadBatch(path string) ([]*models.License, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var docs []*models.License
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return docs, nil
}
