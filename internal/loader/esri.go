package loader

import (
	"encoding/json"
	"errors"
	"fmt"

	"licworker/internal/models"
)

// ErrNoFeatures is returned when an ESRI export carries no features array.
var ErrNoFeatures = errors.New("no features array in ESRI JSON")

// esriExport is the subset of an ArcGIS feature export this pipeline
// reads: each feature is an attributes map plus an optional point
// geometry.
type esriExport struct {
	Features []struct {
		Attributes map[string]any `json:"attributes"`
		Geometry   map[string]any `json:"geometry"`
	} `json:"features"`
}

// LoadESRI parses an ESRI ArcGIS feature export. Each feature becomes
// one record with "attributes" and "geometry" sub-maps, matching how
// the extractors address them.
func LoadESRI(data []byte) ([]models.RawRecord, error) {
	var export esriExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("failed to parse ESRI JSON: %w", err)
	}

	if export.Features == nil {
		return nil, ErrNoFeatures
	}

	records := make([]models.RawRecord, 0, len(export.Features))

	for _, feature := range export.Features {
		record := models.RawRecord{}

		if feature.Attributes != nil {
			record["attributes"] = feature.Attributes
		}

		if feature.Geometry != nil {
			record["geometry"] = feature.Geometry
		}

		records = append(records, record)
	}

	return records, nil
}
