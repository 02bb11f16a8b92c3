package models

// GeoPoint is a GeoJSON-style point. Coordinates are ordered
// [longitude, latitude] and stay empty unless the source supplies
// geocoordinates directly; no geocoding happens in this pipeline.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// ContactInformation holds the public contact channels of a licensee.
type ContactInformation struct {
	Phone   *string `json:"phone" bson:"phone"`
	Email   *string `json:"email" bson:"email"`
	Website *string `json:"website" bson:"website"`
}

// Owner holds the owner or manager details a registry exposes.
type Owner struct {
	Name         *string `json:"name" bson:"name"`
	Email        *string `json:"email" bson:"email"`
	Role         *string `json:"role" bson:"role"`
	Phone        *string `json:"phone" bson:"phone"`
	GovtIssuedID *string `json:"govt_issued_id" bson:"govt_issued_id"`
}

// License is the canonical document one raw record normalizes into.
// Every schema key is always serialized: absent string fields are
// null and list fields are empty arrays, so consumers never see a
// partial document. The trailing provenance fields are the exception;
// they exist only for the jurisdiction that supplies them.
type License struct {
	GooglePlaceID      *string            `json:"googlePlaceId" bson:"googlePlaceId"`
	BusinessName       *string            `json:"business_name" bson:"business_name"`
	LicenseNumber      *string            `json:"license_number" bson:"license_number"`
	StateName          string             `json:"stateName" bson:"stateName"`
	City               *string            `json:"city" bson:"city"`
	BusinessAddress    *string            `json:"business_address" bson:"business_address"`
	ContactInformation ContactInformation `json:"contact_information" bson:"contact_information"`
	Owner              Owner              `json:"owner" bson:"owner"`
	OperatorName       *string            `json:"operator_name" bson:"operator_name"`
	IssueDate          *string            `json:"issue_date" bson:"issue_date"`
	ExpirationDate     *string            `json:"expiration_date" bson:"expiration_date"`
	LicenseType        string             `json:"license_type" bson:"license_type"`
	LicenseStatus      string             `json:"license_status" bson:"license_status"`
	Jurisdiction       string             `json:"jurisdiction" bson:"jurisdiction"`
	RegulatoryBody     string             `json:"regulatory_body" bson:"regulatory_body"`
	EntityType         []string           `json:"entity_type" bson:"entity_type"`
	FilingDocumentsURL *string            `json:"filing_documents_url" bson:"filing_documents_url"`
	LicenseConditions  []string           `json:"license_conditions" bson:"license_conditions"`

	Claimed                   bool    `json:"claimed" bson:"claimed"`
	ClaimedBy                 *string `json:"claimedBy" bson:"claimedBy"`
	ClaimedAt                 *string `json:"claimedAt" bson:"claimedAt"`
	CanojaVerified            bool    `json:"canojaVerified" bson:"canojaVerified"`
	AdminVerificationRequired bool    `json:"adminVerificationRequired" bson:"adminVerificationRequired"`
	Featured                  bool    `json:"featured" bson:"featured"`

	DBA                  *string  `json:"dba" bson:"dba"`
	StateLicenseDocument *string  `json:"state_license_document" bson:"state_license_document"`
	UtilityBill          *string  `json:"utility_bill" bson:"utility_bill"`
	GPSValidation        bool     `json:"gps_validation" bson:"gps_validation"`
	Location             GeoPoint `json:"location" bson:"location"`
	SmokeShop            bool     `json:"smoke_shop" bson:"smoke_shop"`

	// Jurisdiction-specific provenance.
	AuthorizedProducts  []string `json:"authorized_products,omitempty" bson:"authorized_products,omitempty"`
	RegisteredPatients  *string  `json:"registered_patients_authorized,omitempty" bson:"registered_patients_authorized,omitempty"`
	Source              *string  `json:"source,omitempty" bson:"source,omitempty"`
	OriginalLicenseType *string  `json:"original_license_type,omitempty" bson:"original_license_type,omitempty"`
	ApplicationStatus   *string  `json:"application_status,omitempty" bson:"application_status,omitempty"`
	ObjectID            *int64   `json:"objectid,omitempty" bson:"objectid,omitempty"`
	PostalCode          *string  `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	PermitNumber        *string  `json:"permit_number,omitempty" bson:"permit_number,omitempty"`
	LastUpdated         *string  `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
	DataSource          *string  `json:"data_source,omitempty" bson:"data_source,omitempty"`
	RecordNumber        *string  `json:"_michigan_record_number,omitempty" bson:"_michigan_record_number,omitempty"`
	RecordType          *string  `json:"_michigan_record_type,omitempty" bson:"_michigan_record_type,omitempty"`
	Notes               *string  `json:"_michigan_notes,omitempty" bson:"_michigan_notes,omitempty"`
	DisciplinaryAction  *string  `json:"_michigan_disciplinary_action,omitempty" bson:"_michigan_disciplinary_action,omitempty"`
	RawStatus           *string  `json:"_michigan_raw_status,omitempty" bson:"_michigan_raw_status,omitempty"`
}

// NewLicense creates a structurally complete document with the
// jurisdiction constants baked in and all workflow placeholders at
// their creation-time values.
func NewLicense(stateName, jurisdiction, regulatoryBody string) *License {
	return &License{
		StateName:         stateName,
		Jurisdiction:      jurisdiction,
		RegulatoryBody:    regulatoryBody,
		LicenseStatus:     "Unknown",
		EntityType:        []string{},
		LicenseConditions: []string{},
		Location: GeoPoint{
			Type:        "Point",
			Coordinates: []float64{},
		},
	}
}
