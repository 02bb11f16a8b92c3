package extractor

import (
	"regexp"
	"strings"

	"licworker/internal/models"
	"licworker/internal/normalize"
)

// michiganCityPattern pulls the city out of the trailing "City MI
// ZIP" segment of an address.
var michiganCityPattern = regexp.MustCompile(`^(.+?)\s+MI\s+\d{5}`)

// Michigan extracts records from the CRA record-list CSV export. The
// export renames its columns between downloads ("Record Number" vs
// "RecordNumber"), so every field is tried under both spellings, and
// the CRA-specific columns are preserved as provenance fields.
type Michigan struct {
	classifier normalize.Classifier
	statusMap  []normalize.StatusRule
	smokeShop  normalize.SmokeShopRule
}

// NewMichigan creates the Michigan extractor.
func NewMichigan() *Michigan {
	return &Michigan{
		classifier: normalize.Classifier{
			Rules: []normalize.Rule{
				{Category: normalize.TypeRetail, Keywords: []string{"retailer", "retail"}},
				{Category: normalize.TypeProcessing, Keywords: []string{"processor", "processing"}},
				{Category: normalize.TypeCultivation, Keywords: []string{"grower", "cultivation"}},
				// Secure transporters move product under escort and
				// must match before the plain transport keyword.
				{Category: normalize.TypeTransport, Keywords: []string{"secure transport"}},
				{Category: normalize.TypeDistribution, Keywords: []string{"transporter", "transport"}},
				{Category: normalize.TypeTesting, Keywords: []string{"testing", "lab"}},
				{Category: normalize.TypeEntity, Keywords: []string{"entity"}},
			},
			Default: normalize.TypeOther,
		},
		statusMap: []normalize.StatusRule{
			// Prequalified and inactive statuses both contain
			// "active" as a substring and must be checked first.
			{Keyword: "prequalified", Status: normalize.StatusPrequalified},
			{Keyword: "inactive", Status: normalize.StatusInactive},
			{Keyword: "active", Status: normalize.StatusActive},
			{Keyword: "expired", Status: normalize.StatusExpired},
			{Keyword: "pending", Status: normalize.StatusPending},
			{Keyword: "suspended", Status: normalize.StatusSuspended},
		},
		smokeShop: normalize.SmokeShopRule{
			Keywords: []string{"smoke", "tobacco", "vape", "cigar", "head shop"},
		},
	}
}

// Jurisdiction returns the jurisdiction name.
func (m *Michigan) Jurisdiction() string {
	return "Michigan"
}

// Transform maps one CSV row to a canonical document.
func (m *Michigan) Transform(raw models.RawRecord) (*models.License, error) {
	doc := models.NewLicense("Michigan", "Michigan", "Cannabis Regulatory Agency (CRA)")

	recordNumber := normalize.CleanString(raw.Get("Record Number", "RecordNumber"))
	recordType := normalize.CleanString(raw.Get("Record Type", "RecordType"))
	licenseName := normalize.CleanString(raw.Get("License Name", "LicenseName"))
	address := normalize.CleanString(raw.Get("Address"))
	status := normalize.CleanString(raw.Get("Status"))

	doc.BusinessName = licenseName
	doc.LicenseNumber = recordNumber
	doc.City = m.cityFromAddress(normalize.Deref(address))
	doc.BusinessAddress = address
	doc.ExpirationDate = normalize.ParseDate(raw.Get("Expiration Date", "ExpirationDate"))
	doc.LicenseType = m.classifier.Classify(normalize.Deref(recordType))
	doc.LicenseStatus = normalize.CanonicalizeStatus(status, m.statusMap, normalize.StatusUnknown)
	doc.EntityType = []string{doc.LicenseType}
	doc.SmokeShop = m.smokeShop.Match(normalize.Deref(licenseName))

	doc.RecordNumber = recordNumber
	doc.RecordType = recordType
	doc.Notes = normalize.CleanString(raw.Get("Notes"))
	doc.DisciplinaryAction = normalize.CleanString(raw.Get("Disciplinary Action", "DisciplinaryAction"))
	doc.RawStatus = status

	return doc, nil
}

// Complete requires a business name and a record number.
func (m *Michigan) Complete(doc *models.License) bool {
	return doc.BusinessName != nil && doc.LicenseNumber != nil
}

// cityFromAddress parses the city out of a "Street, City MI ZIP"
// address. When the MI-ZIP pattern is absent, the trailing comma
// segment is split on whitespace and the state and ZIP tokens are
// dropped from the end.
func (m *Michigan) cityFromAddress(address string) *string {
	if address == "" {
		return nil
	}

	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return nil
	}

	tail := strings.TrimSpace(parts[len(parts)-1])

	if match := michiganCityPattern.FindStringSubmatch(tail); match != nil {
		return normalize.StrOrNil(match[1])
	}

	tokens := strings.Fields(tail)
	switch {
	case len(tokens) > 2:
		return normalize.StrOrNil(strings.Join(tokens[:len(tokens)-2], " "))
	case len(tokens) == 2:
		return normalize.StrOrNil(tokens[0])
	}

	return nil
}
