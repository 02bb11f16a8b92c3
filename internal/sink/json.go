// Package sink persists canonical document batches: a JSON array
// file and an optional MongoDB collection.
package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"licworker/internal/models"
)

// WriteJSON writes a batch as a UTF-8 JSON array. HTML escaping is
// off so URLs and non-ASCII names are written as-is; a nil batch
// serializes as an empty array.
func WriteJSON(path string, docs []*models.License, pretty bool) error {
	if docs == nil {
		docs = []*models.License{}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)

	if pretty {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}

	return nil
}
