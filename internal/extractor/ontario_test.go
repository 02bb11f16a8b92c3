package extractor

import (
	"testing"

	"licworker/internal/models"
)

func ontarioFeature() models.RawRecord {
	return models.RawRecord{
		"attributes": map[string]any{
			"OBJECTID":          float64(42),
			"PremisesName":      "Queen West Cannabis Co",
			"StreetAddress":     "801 Queen St W",
			"City":              "Toronto",
			"Province":          "ON",
			"PostalCode":        "M6J 1G1",
			"ApplicationStatus": "Authorized to Open",
			"PublicNoticeDate":  "2023-04-01T09:30:00",
			"Website":           "queenwestcannabis.ca",
			"URLLink":           "https://www.agco.ca/status/42",
			"Longitude":         -79.4106,
			"Latitude":          43.6465,
		},
		"geometry": map[string]any{
			"x": -8839748.12,
			"y": 5410938.66,
		},
	}
}

func TestOntario_Transform(t *testing.T) {
	doc, err := NewOntario().Transform(ontarioFeature())
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}

	if doc.BusinessName == nil || *doc.BusinessName != "Queen West Cannabis Co" {
		t.Errorf("BusinessName = %v", doc.BusinessName)
	}

	if doc.BusinessAddress == nil || *doc.BusinessAddress != "801 Queen St W, Toronto, ON, M6J 1G1" {
		t.Errorf("BusinessAddress = %v", doc.BusinessAddress)
	}

	if doc.LicenseType != "retail" {
		t.Errorf("LicenseType = %q, want retail", doc.LicenseType)
	}

	if doc.LicenseStatus != "Active" {
		t.Errorf("LicenseStatus = %q, want Active", doc.LicenseStatus)
	}

	if doc.IssueDate == nil || *doc.IssueDate != "2023-04-01T09:30:00" {
		t.Errorf("IssueDate = %v", doc.IssueDate)
	}

	if doc.FilingDocumentsURL == nil || *doc.FilingDocumentsURL != "https://www.agco.ca/status/42" {
		t.Errorf("FilingDocumentsURL = %v", doc.FilingDocumentsURL)
	}

	if !doc.GPSValidation {
		t.Error("GPSValidation = false, want true")
	}

	coords := doc.Location.Coordinates
	if len(coords) != 2 || coords[0] != -79.4106 || coords[1] != 43.6465 {
		t.Errorf("Coordinates = %v, want attribute longitude/latitude pair", coords)
	}

	if doc.ObjectID == nil || *doc.ObjectID != 42 {
		t.Errorf("ObjectID = %v, want 42", doc.ObjectID)
	}

	if doc.PostalCode == nil || *doc.PostalCode != "M6J 1G1" {
		t.Errorf("PostalCode = %v", doc.PostalCode)
	}

	if doc.ApplicationStatus == nil || *doc.ApplicationStatus != "Authorized to Open" {
		t.Errorf("ApplicationStatus = %v", doc.ApplicationStatus)
	}
}

func TestOntario_Transform_GeometryFallback(t *testing.T) {
	raw := models.RawRecord{
		"attributes": map[string]any{
			"PremisesName": "Bloor Street Cannabis",
		},
		"geometry": map[string]any{
			"x": -79.39,
			"y": 43.67,
		},
	}

	doc, err := NewOntario().Transform(raw)
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}

	coords := doc.Location.Coordinates
	if len(coords) != 2 || coords[0] != -79.39 || coords[1] != 43.67 {
		t.Errorf("Coordinates = %v, want geometry x/y pair", coords)
	}

	if !doc.GPSValidation {
		t.Error("GPSValidation = false, want true")
	}
}

func TestOntario_Transform_NoCoordinates(t *testing.T) {
	raw := models.RawRecord{
		"attributes": map[string]any{
			"PremisesName": "Bloor Street Cannabis",
			// Partial pairs never produce coordinates.
			"Longitude": -79.39,
		},
	}

	doc, err := NewOntario().Transform(raw)
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}

	if len(doc.Location.Coordinates) != 0 {
		t.Errorf("Coordinates = %v, want empty", doc.Location.Coordinates)
	}

	if doc.GPSValidation {
		t.Error("GPSValidation = true, want false")
	}
}

func TestOntario_StatusMapping(t *testing.T) {
	extractor := NewOntario()

	tests := []struct {
		name   string
		status string
		want   string
	}{
		{name: "Authorized", status: "Authorized to Open", want: "Active"},
		{name: "In progress", status: "Application In Progress - Pending", want: "Pending"},
		{name: "Denied", status: "Denied", want: "Denied"},
		{name: "Rejected maps to denied", status: "Rejected", want: "Denied"},
		{name: "Suspended", status: "Suspended", want: "Suspended"},
		{name: "Unknown status defaults to active", status: "Public Notice Period", want: "Active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := models.RawRecord{
				"attributes": map[string]any{
					"PremisesName":      "Shop",
					"ApplicationStatus": tt.status,
				},
			}

			doc, err := extractor.Transform(raw)
			if err != nil {
				t.Fatalf("Transform returned error: %v", err)
			}

			if doc.LicenseStatus != tt.want {
				t.Errorf("LicenseStatus = %q, want %q", doc.LicenseStatus, tt.want)
			}
		})
	}
}

func TestOntario_Transform_MissingSections(t *testing.T) {
	doc, err := NewOntario().Transform(models.RawRecord{})
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}

	if doc.BusinessName != nil {
		t.Errorf("BusinessName = %v, want nil", doc.BusinessName)
	}

	// Assembled addresses are always present, empty when no
	// component is.
	if doc.BusinessAddress == nil || *doc.BusinessAddress != "" {
		t.Errorf("BusinessAddress = %v, want empty string", doc.BusinessAddress)
	}

	if NewOntario().Complete(doc) {
		t.Error("Complete = true for feature without a premises name")
	}
}
