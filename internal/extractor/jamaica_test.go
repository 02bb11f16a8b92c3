package extractor

import (
	"testing"

	"licworker/internal/models"
)

func TestJamaica_Transform(t *testing.T) {
	raw := models.RawRecord{
		"Licensee":     `"Blue Mountain Herbals Ltd"`,
		"Licence Type": "Retail (Herb House)",
		"Address":      "12 Hope Road, Kingston",
		"Expiry Date":  "March 31, 2026",
	}

	doc, err := NewJamaica().Transform(raw)
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}

	if doc.BusinessName == nil || *doc.BusinessName != "Blue Mountain Herbals Ltd" {
		t.Errorf("BusinessName = %v, want quotes stripped", doc.BusinessName)
	}

	if doc.City == nil || *doc.City != "Kingston" {
		t.Errorf("City = %v, want Kingston", doc.City)
	}

	if doc.LicenseType != "retail" {
		t.Errorf("LicenseType = %q, want retail", doc.LicenseType)
	}

	if doc.OriginalLicenseType == nil || *doc.OriginalLicenseType != "Retail (Herb House)" {
		t.Errorf("OriginalLicenseType = %v", doc.OriginalLicenseType)
	}

	if doc.ExpirationDate == nil || *doc.ExpirationDate != "2026-03-31T00:00:00" {
		t.Errorf("ExpirationDate = %v", doc.ExpirationDate)
	}

	if doc.Owner.Name == nil || *doc.Owner.Name != "Blue Mountain Herbals Ltd" {
		t.Errorf("Owner.Name = %v", doc.Owner.Name)
	}

	if doc.Owner.Role == nil || *doc.Owner.Role != "Owner" {
		t.Errorf("Owner.Role = %v", doc.Owner.Role)
	}

	if doc.LicenseStatus != "Active" {
		t.Errorf("LicenseStatus = %q, want Active", doc.LicenseStatus)
	}
}

func TestJamaica_LicenceCategory(t *testing.T) {
	extractor := NewJamaica()

	tests := []struct {
		name        string
		licenceType string
		want        string
	}{
		{name: "Herb house", licenceType: "Retail (Herb House)", want: "retail"},
		{name: "Therapeutic retail", licenceType: "Retail (Therapeutic Services)", want: "retail"},
		{name: "Processing tier", licenceType: "Processing (Tier 1)", want: "processing"},
		{name: "Cultivator tier", licenceType: "Cultivator's (Tier 2)", want: "cultivation"},
		{name: "Transport", licenceType: "Transport", want: "distribution"},
		{name: "Unmatched defaults to retail", licenceType: "Research and Development", want: "retail"},
		{name: "Empty", licenceType: "", want: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractor.licenceCategory(tt.licenceType); got != tt.want {
				t.Errorf("licenceCategory(%q) = %q, want %q", tt.licenceType, got, tt.want)
			}
		})
	}
}

func TestJamaica_ParishFromAddress(t *testing.T) {
	extractor := NewJamaica()

	tests := []struct {
		name    string
		address string
		want    string
		nil_    bool
	}{
		{name: "Kingston", address: "12 Hope Road, Kingston", want: "Kingston"},
		{name: "Abbreviated parish", address: "Lot 4, Bogue Estate, St. James", want: "St. James"},
		{name: "Long form parish", address: "Content District, Saint Ann", want: "Saint Ann"},
		{name: "Case insensitive", address: "negril, WESTMORELAND", want: "Westmoreland"},
		{name: "No parish", address: "Somewhere Else", nil_: true},
		{name: "Empty", address: "", nil_: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.parishFromAddress(tt.address)

			if tt.nil_ {
				if got != nil {
					t.Errorf("parishFromAddress(%q) = %q, want nil", tt.address, *got)
				}

				return
			}

			if got == nil {
				t.Fatalf("parishFromAddress(%q) = nil, want %q", tt.address, tt.want)
			}

			if *got != tt.want {
				t.Errorf("parishFromAddress(%q) = %q, want %q", tt.address, *got, tt.want)
			}
		})
	}
}

func TestJamaica_StripQuotes(t *testing.T) {
	quoted := `"Herb House Ltd"`
	cleaned := normalizeStr(t, stripQuotes(&quoted))
	if cleaned != "Herb House Ltd" {
		t.Errorf("stripQuotes = %q", cleaned)
	}

	onlyQuotes := `""`
	if got := stripQuotes(&onlyQuotes); got != nil {
		t.Errorf("stripQuotes(%q) = %q, want nil", onlyQuotes, *got)
	}

	if got := stripQuotes(nil); got != nil {
		t.Errorf("stripQuotes(nil) = %q, want nil", *got)
	}
}

func normalizeStr(t *testing.T, s *string) string {
	t.Helper()

	if s == nil {
		t.Fatal("unexpected nil string")
	}

	return *s
}
