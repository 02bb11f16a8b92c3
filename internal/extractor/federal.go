package extractor

import (
	"strings"

	"licworker/internal/models"
	"licworker/internal/normalize"
)

// federalSource labels documents extracted from the Health Canada
// registry page.
const federalSource = "Health Canada Official Registry"

// Federal extracts records from the Health Canada licensed
// cultivators, processors and sellers table. A single row can carry
// several licence classes at once, so the licence cell parses into a
// list feeding entity_type, with the first class as the primary
// license type.
type Federal struct{}

// NewFederal creates the Federal extractor.
func NewFederal() *Federal {
	return &Federal{}
}

// Jurisdiction returns the jurisdiction name.
func (f *Federal) Jurisdiction() string {
	return "Federal"
}

// Transform maps one registry table row to a canonical document.
func (f *Federal) Transform(raw models.RawRecord) (*models.License, error) {
	doc := models.NewLicense("Federal", "", "Health Canada")

	licenseHolder := normalize.CleanString(raw.Get("Licence holder", "License holder", "column_0"))
	province := normalize.CleanString(raw.Get("Province / Territory", "Province/Territory", "Province", "column_1"))
	licences := normalize.CleanString(raw.Get("Licences", "Licenses", "column_2"))
	products := normalize.CleanString(raw.Get("Authorized products", "column_3"))
	patients := normalize.CleanString(raw.Get("Registered patients authorized", "column_4"))
	phone := normalize.ParsePhone(raw.Get("Client care phone number", "Phone", "column_5"))

	licenseTypes := parseLicenceClasses(normalize.Deref(licences))

	doc.BusinessName = licenseHolder
	doc.Jurisdiction = normalize.Deref(province)
	doc.ContactInformation.Phone = phone
	doc.Owner.Phone = phone
	doc.OperatorName = licenseHolder
	doc.IssueDate = normalize.ParseDate(raw.Get("Initial licence date", "Initial license date", "column_6"))
	doc.LicenseType = licenseTypes[0]
	doc.LicenseStatus = f.statusFromLicences(licences)
	doc.EntityType = licenseTypes
	doc.CanojaVerified = true
	doc.DBA = licenseHolder
	doc.AuthorizedProducts = parseAuthorizedProducts(normalize.Deref(products))
	doc.RegisteredPatients = patients
	doc.Source = normalize.Str(federalSource)

	return doc, nil
}

// Complete requires a business name.
func (f *Federal) Complete(doc *models.License) bool {
	return doc.BusinessName != nil
}

// statusFromLicences reads the licence cell: a revocation note means
// revoked, any other non-empty text means the licence is in force.
func (f *Federal) statusFromLicences(licences *string) string {
	if licences == nil {
		return normalize.StatusUnknown
	}

	if strings.Contains(strings.ToLower(*licences), "revoked") {
		return normalize.StatusRevoked
	}

	return normalize.StatusActive
}

// parseLicenceClasses splits the free-text licence cell into licence
// classes. Micro classes shadow their standard counterparts so
// "micro-cultivation" does not also count as "cultivation"; a sale
// licence maps to retail. Unrecognized text yields the other class.
func parseLicenceClasses(text string) []string {
	lowered := strings.ToLower(text)
	classes := []string{}

	switch {
	case strings.Contains(lowered, "micro-processing"):
		classes = append(classes, "micro-processing")
	case strings.Contains(lowered, "processing"):
		classes = append(classes, normalize.TypeProcessing)
	}

	switch {
	case strings.Contains(lowered, "micro-cultivation"):
		classes = append(classes, "micro-cultivation")
	case strings.Contains(lowered, "cultivation"):
		classes = append(classes, normalize.TypeCultivation)
	}

	if strings.Contains(lowered, "sale") {
		classes = append(classes, normalize.TypeRetail)
	}

	if len(classes) == 0 {
		return []string{normalize.TypeOther}
	}

	return classes
}

// parseAuthorizedProducts maps the authorized-products cell into the
// product category labels used downstream.
func parseAuthorizedProducts(text string) []string {
	lowered := strings.ToLower(text)
	products := []string{}

	if strings.Contains(lowered, "plants") || strings.Contains(lowered, "seeds") {
		products = append(products, "plants_seeds")
	}

	if strings.Contains(lowered, "dried") || strings.Contains(lowered, "fresh") {
		products = append(products, "dried_fresh")
	}

	if strings.Contains(lowered, "extracts") {
		products = append(products, "extracts")
	}

	if strings.Contains(lowered, "edible") {
		products = append(products, "edibles")
	}

	if strings.Contains(lowered, "topical") {
		products = append(products, "topicals")
	}

	return products
}
