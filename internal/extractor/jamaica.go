package extractor

import (
	"strings"

	"licworker/internal/models"
	"licworker/internal/normalize"
)

// jamaicaParishes are the parish spellings that appear in CLA
// licensee addresses, including abbreviated and long-form variants.
var jamaicaParishes = []string{
	"Kingston", "St. Andrew", "Saint Andrew", "St Andrew",
	"St. Catherine", "Saint Catherine", "St Catherine",
	"Clarendon", "Manchester", "Westmoreland", "St. James",
	"Saint James", "St James", "Hanover", "Trelawny",
	"St. Ann", "Saint Ann", "St Ann", "St. Mary", "Saint Mary", "St Mary",
	"Portland", "St. Thomas", "Saint Thomas", "St Thomas",
}

// Jamaica extracts records from the Cannabis Licensing Authority
// licensee table. Addresses are free text naming a parish rather than
// a structured city field, and licence types are the CLA's own
// vocabulary ("Retail (Herb House)", "Cultivator's (Tier 2)"), which
// is preserved verbatim alongside the mapped category.
type Jamaica struct{}

// NewJamaica creates the Jamaica extractor.
func NewJamaica() *Jamaica {
	return &Jamaica{}
}

// Jurisdiction returns the jurisdiction name.
func (j *Jamaica) Jurisdiction() string {
	return "Jamaica"
}

// Transform maps one licensee table row to a canonical document.
func (j *Jamaica) Transform(raw models.RawRecord) (*models.License, error) {
	doc := models.NewLicense("Jamaica", "Jamaica", "Cannabis Licensing Authority (CLA)")

	licensee := stripQuotes(normalize.CleanString(raw.Get("Licensee", "column_0")))
	licenceType := normalize.CleanString(raw.Get("Licence Type", "License Type", "column_1"))
	address := normalize.CleanString(raw.Get("Address", "Business Address", "column_2"))

	mappedType := j.licenceCategory(normalize.Deref(licenceType))

	doc.BusinessName = licensee
	doc.City = j.parishFromAddress(normalize.Deref(address))
	doc.BusinessAddress = address
	doc.Owner = models.Owner{
		Name: licensee,
		Role: normalize.Str("Owner"),
	}
	doc.OperatorName = licensee
	doc.ExpirationDate = normalize.ParseDate(raw.Get("Expiry Date", "Expiration Date", "column_3"))
	doc.LicenseType = mappedType
	doc.LicenseStatus = normalize.StatusActive
	doc.EntityType = []string{mappedType}
	doc.CanojaVerified = true
	doc.DBA = licensee
	doc.OriginalLicenseType = licenceType

	return doc, nil
}

// Complete requires a business name.
func (j *Jamaica) Complete(doc *models.License) bool {
	return doc.BusinessName != nil
}

// licenceCategory maps a CLA licence type into the canonical
// category set. Transport licences are movement-of-product licences,
// which fit distribution; everything unmatched is retail, the bulk of
// the CLA register.
func (j *Jamaica) licenceCategory(licenceType string) string {
	lowered := strings.ToLower(licenceType)
	if lowered == "" {
		return normalize.TypeOther
	}

	switch {
	case strings.Contains(lowered, "retail") && strings.Contains(lowered, "therapeutic"):
		return normalize.TypeRetail
	case strings.Contains(lowered, "retail") && strings.Contains(lowered, "herb house"):
		return normalize.TypeRetail
	case strings.Contains(lowered, "processing"):
		return normalize.TypeProcessing
	case strings.Contains(lowered, "cultivator"), strings.Contains(lowered, "cultivation"):
		return normalize.TypeCultivation
	case strings.Contains(lowered, "transport"):
		return normalize.TypeDistribution
	}

	return normalize.TypeRetail
}

// parishFromAddress scans a free-text address for a known parish
// name. When no parish matches directly, a P.O. address is split on
// commas and the first segment mentioning a parish is returned whole.
func (j *Jamaica) parishFromAddress(address string) *string {
	if address == "" {
		return nil
	}

	lowered := strings.ToLower(address)

	for _, parish := range jamaicaParishes {
		if strings.Contains(lowered, strings.ToLower(parish)) {
			return normalize.Str(parish)
		}
	}

	if strings.Contains(lowered, "p.o.") {
		for _, part := range strings.Split(address, ",") {
			part = strings.TrimSpace(part)

			for _, parish := range jamaicaParishes {
				if strings.Contains(strings.ToLower(part), strings.ToLower(parish)) {
					return normalize.Str(part)
				}
			}
		}
	}

	return nil
}

// stripQuotes removes the double quotes some licensee names are
// wrapped in.
func stripQuotes(s *string) *string {
	if s == nil {
		return nil
	}

	return normalize.StrOrNil(strings.ReplaceAll(*s, `"`, ""))
}
