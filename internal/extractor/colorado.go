package extractor

import (
	"time"

	"licworker/internal/models"
	"licworker/internal/normalize"
)

// activeWindow is how recently a Colorado record must have been
// updated to be presumed active. The MED workbook carries no status
// column, only an update date.
const activeWindow = 90 * 24 * time.Hour

// Colorado extracts records from the MED licensed-facilities
// workbook. The facility type column drives classification, with the
// DBA name as secondary signal.
type Colorado struct {
	classifier normalize.Classifier
	smokeShop  normalize.SmokeShopRule
	now        func() time.Time
}

// NewColorado creates the Colorado extractor.
func NewColorado() *Colorado {
	return &Colorado{
		classifier: normalize.Classifier{
			Rules: []normalize.Rule{
				// "cultivatio" catches the truncated header variant.
				{Category: normalize.TypeCultivation, Keywords: []string{"cultivation", "cultivatio"}},
				{Category: normalize.TypeRetail, Keywords: []string{"retail", "dispensary", "store"}},
				{Category: normalize.TypeProcessing, Keywords: []string{"processing", "extraction", "manufacturing", "infusion"}},
				{Category: normalize.TypeDistribution, Keywords: []string{"distribution", "transport", "delivery"}},
				{Category: normalize.TypeTesting, Keywords: []string{"testing", "lab", "laboratory"}},
				{Category: normalize.TypeMedical, Keywords: []string{"medical marijuana"}},
				{Category: normalize.TypeOptionalPremises, Keywords: []string{"optional premises"}},
			},
			Default: normalize.TypeOther,
		},
		smokeShop: normalize.SmokeShopRule{
			Keywords: []string{"smoke", "tobacco", "vape", "cigar", "head shop"},
		},
		now: time.Now,
	}
}

// Jurisdiction returns the jurisdiction name.
func (c *Colorado) Jurisdiction() string {
	return "Colorado"
}

// Transform maps one workbook row to a canonical document.
func (c *Colorado) Transform(raw models.RawRecord) (*models.License, error) {
	doc := models.NewLicense("Colorado", "Colorado", "Colorado Department of Revenue")

	facilityName := normalize.CleanString(raw.Get("Facility Name"))
	dba := normalize.CleanString(raw.Get("DBA"))
	facilityType := normalize.CleanString(raw.Get("Facility Type"))
	street := normalize.CleanString(raw.Get("Street"))
	city := normalize.CleanString(raw.Get("City"))
	zipCode := normalize.CleanString(raw.Get("ZIP Code"))
	dateUpdated := raw.Get("Date Updated")

	businessName := facilityName
	if businessName == nil {
		businessName = dba
	}

	licenseType := c.classifier.Classify(normalize.Deref(facilityType), normalize.Deref(dba))

	doc.BusinessName = businessName
	doc.LicenseNumber = normalize.CleanString(raw.Get("License Number"))
	doc.City = city
	doc.BusinessAddress = normalize.Str(normalize.AssembleAddress(street, city, zipCode))
	// The workbook carries no issue date; the update date is the
	// closest available proxy.
	doc.IssueDate = normalize.ParseDate(dateUpdated)
	doc.LicenseType = licenseType
	doc.LicenseStatus = c.statusFromUpdate(dateUpdated)
	doc.EntityType = []string{licenseType}
	doc.CanojaVerified = true
	doc.DBA = dba
	doc.SmokeShop = c.smokeShop.Match(normalize.Deref(businessName), normalize.Deref(dba))

	return doc, nil
}

// Complete requires a business name and a license number.
func (c *Colorado) Complete(doc *models.License) bool {
	return doc.BusinessName != nil && doc.LicenseNumber != nil
}

// statusFromUpdate presumes a record updated within the active window
// is active. An absent or unparseable update date also presumes
// active; only a stale date downgrades to unknown.
func (c *Colorado) statusFromUpdate(dateUpdated any) string {
	t := normalize.ParseTime(dateUpdated)
	if t == nil {
		return normalize.StatusActive
	}

	if c.now().Sub(*t) <= activeWindow {
		return normalize.StatusActive
	}

	return normalize.StatusUnknown
}
