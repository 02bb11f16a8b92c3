package extractor

import (
	"strings"

	"licworker/internal/models"
	"licworker/internal/normalize"
)

// BritishColumbia extracts records from the LCRB retail cannabis
// store listing. The listing only covers retail stores, so
// unclassified names default to retail, and "cannabis" in a store
// name vetoes the smoke-shop keywords.
type BritishColumbia struct {
	classifier normalize.Classifier
	smokeShop  normalize.SmokeShopRule
}

// NewBritishColumbia creates the British Columbia extractor.
func NewBritishColumbia() *BritishColumbia {
	return &BritishColumbia{
		classifier: normalize.Classifier{
			Rules: []normalize.Rule{
				{Category: normalize.TypeCultivation, Keywords: []string{"cultivation", "grow", "farm", "grower"}},
				{Category: normalize.TypeProcessing, Keywords: []string{"processing", "extraction", "manufacturing", "processor"}},
				{Category: normalize.TypeDistribution, Keywords: []string{"distribution", "transport", "delivery", "distributor"}},
				{Category: normalize.TypeTesting, Keywords: []string{"testing", "lab", "laboratory"}},
			},
			Default: normalize.TypeRetail,
		},
		smokeShop: normalize.SmokeShopRule{
			Keywords: []string{"smoke", "tobacco", "cigar"},
			Exclude:  []string{"cannabis"},
		},
	}
}

// Jurisdiction returns the jurisdiction name.
func (b *BritishColumbia) Jurisdiction() string {
	return "British Columbia"
}

// Transform maps one listing row to a canonical document.
func (b *BritishColumbia) Transform(raw models.RawRecord) (*models.License, error) {
	doc := models.NewLicense("British Columbia", "British Columbia", "Liquor and Cannabis Regulation Branch")

	establishmentName := normalize.CleanString(raw.Get("Establishment Name"))
	phone := normalize.ParsePhone(raw.Get("Phone"))
	street := normalize.CleanString(raw.Get("Address"))
	city := normalize.CleanString(raw.Get("City"))
	postal := normalize.ExtractPostalCode(nil, raw.Get("Postal"))
	status := normalize.CleanString(raw.Get("Status"))

	licenseType := b.classifier.Classify(normalize.Deref(establishmentName))

	doc.BusinessName = establishmentName
	doc.LicenseNumber = normalize.CleanString(raw.Get("Licence"))
	doc.City = city
	doc.BusinessAddress = normalize.Str(normalize.AssembleAddress(street, city, normalize.Str("BC"), postal))
	doc.ContactInformation.Phone = phone
	doc.Owner.Phone = phone
	doc.LicenseType = licenseType
	doc.LicenseStatus = normalize.StatusInactive

	if status != nil && strings.EqualFold(*status, "open") {
		doc.LicenseStatus = normalize.StatusActive
	}

	doc.EntityType = []string{licenseType}
	doc.CanojaVerified = true
	doc.DBA = establishmentName
	doc.SmokeShop = b.smokeShop.Match(normalize.Deref(establishmentName))

	return doc, nil
}

// Complete requires a business name.
func (b *BritishColumbia) Complete(doc *models.License) bool {
	return doc.BusinessName != nil
}
