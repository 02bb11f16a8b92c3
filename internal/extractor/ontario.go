package extractor

import (
	"licworker/internal/models"
	"licworker/internal/normalize"
)

// Ontario extracts records from the AGCO cannabis retail store ESRI
// feature export. Each feature splits into an attributes map and a
// geometry point; coordinates come from the Latitude/Longitude
// attributes, falling back to the geometry x/y pair, and are passed
// through without projection conversion.
type Ontario struct {
	classifier normalize.Classifier
	statusMap  []normalize.StatusRule
	smokeShop  normalize.SmokeShopRule
}

// NewOntario creates the Ontario extractor.
func NewOntario() *Ontario {
	return &Ontario{
		classifier: normalize.Classifier{
			Rules: []normalize.Rule{
				{Category: normalize.TypeCultivation, Keywords: []string{"cultivation", "cultivator", "grow", "farm"}},
				{Category: normalize.TypeProcessing, Keywords: []string{"processing", "processor", "extraction", "manufacturing"}},
				{Category: normalize.TypeDistribution, Keywords: []string{"distribution", "distributor", "transport", "delivery"}},
				{Category: normalize.TypeTesting, Keywords: []string{"testing", "lab", "laboratory"}},
			},
			Default: normalize.TypeRetail,
		},
		statusMap: []normalize.StatusRule{
			{Keyword: "authorized to open", Status: normalize.StatusActive},
			{Keyword: "pending", Status: normalize.StatusPending},
			{Keyword: "denied", Status: normalize.StatusDenied},
			{Keyword: "rejected", Status: normalize.StatusDenied},
			{Keyword: "suspended", Status: normalize.StatusSuspended},
		},
		smokeShop: normalize.SmokeShopRule{
			Keywords: []string{"smoke", "tobacco", "vape", "cigar", "head shop"},
		},
	}
}

// Jurisdiction returns the jurisdiction name.
func (o *Ontario) Jurisdiction() string {
	return "Ontario"
}

// Transform maps one ESRI feature to a canonical document.
func (o *Ontario) Transform(raw models.RawRecord) (*models.License, error) {
	doc := models.NewLicense("Ontario", "Ontario", "Alcohol and Gaming Commission of Ontario (AGCO)")

	attributes := raw.Sub("attributes")
	geometry := raw.Sub("geometry")

	premisesName := normalize.CleanString(attributes.Get("PremisesName"))
	street := normalize.CleanString(attributes.Get("StreetAddress"))
	city := normalize.CleanString(attributes.Get("City"))
	province := normalize.CleanString(attributes.Get("Province"))
	postalCode := normalize.CleanString(attributes.Get("PostalCode"))
	applicationStatus := normalize.CleanString(attributes.Get("ApplicationStatus"))

	coordinates := o.extractCoordinates(attributes, geometry)
	licenseType := o.classifier.Classify(normalize.Deref(premisesName))

	doc.BusinessName = premisesName
	doc.City = city
	doc.BusinessAddress = normalize.Str(normalize.AssembleAddress(street, city, province, postalCode))
	doc.ContactInformation.Website = normalize.CleanString(attributes.Get("Website"))
	doc.IssueDate = normalize.ParseDate(attributes.Get("PublicNoticeDate"))
	doc.LicenseType = licenseType
	doc.LicenseStatus = normalize.CanonicalizeStatus(applicationStatus, o.statusMap, normalize.StatusActive)
	doc.EntityType = []string{licenseType}
	doc.FilingDocumentsURL = normalize.CleanString(attributes.Get("URLLink"))
	doc.CanojaVerified = true
	doc.GPSValidation = len(coordinates) > 0
	doc.Location.Coordinates = coordinates
	doc.SmokeShop = o.smokeShop.Match(normalize.Deref(premisesName))

	doc.ApplicationStatus = applicationStatus
	doc.ObjectID = normalize.Int64(attributes.Get("OBJECTID"))
	doc.PostalCode = postalCode

	return doc, nil
}

// Complete requires a business name.
func (o *Ontario) Complete(doc *models.License) bool {
	return doc.BusinessName != nil
}

// extractCoordinates builds the [longitude, latitude] pair from the
// attribute fields, or from the geometry point when the attributes
// carry no coordinates. A partial pair yields no coordinates at all.
func (o *Ontario) extractCoordinates(attributes, geometry models.RawRecord) []float64 {
	longitude := normalize.Float(attributes.Get("Longitude"))
	latitude := normalize.Float(attributes.Get("Latitude"))

	if longitude != nil && latitude != nil {
		return []float64{*longitude, *latitude}
	}

	x := normalize.Float(geometry.Get("x"))
	y := normalize.Float(geometry.Get("y"))

	if x != nil && y != nil {
		return []float64{*x, *y}
	}

	return []float64{}
}
