package loader

import (
	"errors"
	"testing"
)

func TestLoadESRI(t *testing.T) {
	data := []byte(`{
		"features": [
			{
				"attributes": {"OBJECTID": 1, "PremisesName": "Queen West Cannabis Co"},
				"geometry": {"x": -79.41, "y": 43.64}
			},
			{
				"attributes": {"OBJECTID": 2, "PremisesName": "Bloor Street Cannabis"}
			}
		]
	}`)

	records, err := LoadESRI(data)
	if err != nil {
		t.Fatalf("LoadESRI returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	attributes := records[0].Sub("attributes")
	if name := attributes.Get("PremisesName"); name != "Queen West Cannabis Co" {
		t.Errorf("PremisesName = %v", name)
	}

	geometry := records[0].Sub("geometry")
	if x := geometry.Get("x"); x != -79.41 {
		t.Errorf("geometry x = %v", x)
	}

	if _, ok := records[1]["geometry"]; ok {
		t.Error("feature without geometry should carry no geometry key")
	}
}

func TestLoadESRI_EmptyFeatures(t *testing.T) {
	records, err := LoadESRI([]byte(`{"features": []}`))
	if err != nil {
		t.Fatalf("LoadESRI returned error: %v", err)
	}

	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
}

func TestLoadESRI_NoFeatures(t *testing.T) {
	_, err := LoadESRI([]byte(`{"error": {"code": 400}}`))
	if !errors.Is(err, ErrNoFeatures) {
		t.Errorf("error = %v, want ErrNoFeatures", err)
	}
}

func TestLoadESRI_InvalidJSON(t *testing.T) {
	if _, err := LoadESRI([]byte(`<html>Service unavailable</html>`)); err == nil {
		t.Error("expected error for non-JSON content")
	}
}
