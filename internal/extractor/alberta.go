package extractor

import (
	"licworker/internal/models"
	"licworker/internal/normalize"
)

// Alberta extracts records from the AGLC cannabis licence workbook.
// The export carries no status column, so every listed licence is
// treated as active.
type Alberta struct {
	classifier normalize.Classifier
	smokeShop  normalize.SmokeShopRule
}

// NewAlberta creates the Alberta extractor.
func NewAlberta() *Alberta {
	return &Alberta{
		classifier: normalize.Classifier{
			Rules: []normalize.Rule{
				{Category: normalize.TypeCultivation, Keywords: []string{"cultivation", "grow", "farm"}},
				{Category: normalize.TypeRetail, Keywords: []string{"dispensary", "retail", "store"}},
				{Category: normalize.TypeProcessing, Keywords: []string{"processing", "extraction", "manufacturing"}},
				{Category: normalize.TypeDistribution, Keywords: []string{"distribution", "transport", "delivery"}},
				{Category: normalize.TypeTesting, Keywords: []string{"testing", "lab", "laboratory"}},
			},
			Default: normalize.TypeOther,
		},
		smokeShop: normalize.SmokeShopRule{
			Keywords: []string{"smoke", "tobacco", "vape", "cigar"},
		},
	}
}

// Jurisdiction returns the jurisdiction name.
func (a *Alberta) Jurisdiction() string {
	return "Alberta"
}

// Transform maps one workbook row to a canonical document.
func (a *Alberta) Transform(raw models.RawRecord) (*models.License, error) {
	doc := models.NewLicense("Alberta", "Alberta", "Health Canada")

	businessName := normalize.CleanString(raw.Get("Establishment Name"))
	city := normalize.CleanString(raw.Get("Site City Name"))
	province := normalize.CleanString(raw.Get("Site"))
	street := normalize.CleanString(raw.Get("Site Address Line 1"))
	postal := normalize.CleanString(raw.Get("Site Postal"))
	managerName := normalize.CleanString(raw.Get("Manager Name"))
	phone := normalize.ParsePhone(raw.Get("Telephone Number"))

	licenseType := a.classifier.Classify(normalize.Deref(businessName))

	doc.BusinessName = businessName
	doc.LicenseNumber = normalize.CleanString(raw.Get("Authorization Number"))
	doc.City = city
	doc.BusinessAddress = normalize.Str(normalize.AssembleAddress(street, city, province, postal))
	doc.ContactInformation.Phone = phone
	doc.Owner = models.Owner{
		Name:  managerName,
		Phone: phone,
	}

	if managerName != nil {
		doc.Owner.Role = normalize.Str("Manager")
	}

	doc.OperatorName = managerName
	doc.IssueDate = normalize.ParseDate(raw.Get("Initial Effective"))
	doc.LicenseType = licenseType
	doc.LicenseStatus = normalize.StatusActive
	doc.EntityType = []string{licenseType}
	doc.CanojaVerified = true
	doc.DBA = businessName
	doc.SmokeShop = a.smokeShop.Match(normalize.Deref(businessName))

	return doc, nil
}

// Complete requires a business name.
func (a *Alberta) Complete(doc *models.License) bool {
	return doc.BusinessName != nil
}
