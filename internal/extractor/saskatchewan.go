package extractor

import (
	"licworker/internal/models"
	"licworker/internal/normalize"
)

// saskatchewanSource labels documents extracted from the SLGA
// retailer registry.
const saskatchewanSource = "SLGA Cannabis Retailers Registry"

// Saskatchewan extracts records from the SLGA cannabis retailer
// workbook. The registry lists retail permits only, so every record
// is a retail licence, and the registry's own status text is carried
// through unmapped.
type Saskatchewan struct {
	smokeShop normalize.SmokeShopRule
}

// NewSaskatchewan creates the Saskatchewan extractor.
func NewSaskatchewan() *Saskatchewan {
	return &Saskatchewan{
		smokeShop: normalize.SmokeShopRule{
			Keywords: []string{"smoke", "tobacco", "vape", "cigar"},
		},
	}
}

// Jurisdiction returns the jurisdiction name.
func (s *Saskatchewan) Jurisdiction() string {
	return "Saskatchewan"
}

// Transform maps one workbook row to a canonical document.
func (s *Saskatchewan) Transform(raw models.RawRecord) (*models.License, error) {
	doc := models.NewLicense("Saskatchewan", "Saskatchewan", "Saskatchewan Liquor and Gaming Authority (SLGA)")

	permitNumber := normalize.CleanString(raw.Get("Permit Number"))
	operatingName := normalize.CleanString(raw.Get("Operating Name"))
	city := normalize.CleanString(raw.Get("City"))
	street := normalize.CleanString(raw.Get("Street Address"))
	status := normalize.CleanString(raw.Get("Status"))

	doc.BusinessName = operatingName
	doc.LicenseNumber = permitNumber
	doc.City = city
	doc.BusinessAddress = normalize.Str(s.fullAddress(street, city))
	doc.ContactInformation.Website = normalize.CleanWebsite(raw.Get("Website"))
	doc.OperatorName = operatingName
	doc.LicenseType = normalize.TypeRetail
	doc.EntityType = []string{normalize.TypeRetail}
	doc.CanojaVerified = true
	doc.DBA = operatingName
	doc.SmokeShop = s.smokeShop.Match(normalize.Deref(operatingName))

	if status != nil {
		doc.LicenseStatus = *status
	}

	doc.PermitNumber = permitNumber
	doc.LastUpdated = normalize.ParseDate(raw.Get("Last Updated"))
	doc.DataSource = normalize.Str(saskatchewanSource)

	return doc, nil
}

// Complete requires a business name.
func (s *Saskatchewan) Complete(doc *models.License) bool {
	return doc.BusinessName != nil
}

// fullAddress joins the street and city and suffixes the province and
// country, which the registry leaves implicit. An address with no
// components at all stays empty.
func (s *Saskatchewan) fullAddress(street, city *string) string {
	base := normalize.AssembleAddress(street, city)
	if base == "" {
		return ""
	}

	return base + ", Saskatchewan, Canada"
}
