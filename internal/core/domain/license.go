package domain

// GenerateLicenseInput requests new licenses for an organization against a package entitlement.
type GenerateLicenseInput struct {
	OrganizationAccountID int
	PackageDetailsID      int
	QuantityOfLicenses    int
}

// Quantity returns the requested quantity, defaulting to one.
func (in GenerateLicenseInput) Quantity() int {
	if in.QuantityOfLicenses <= 0 {
		return 1
	}
	return in.QuantityOfLicenses
}

// MoveLicenseInput requests that an issued license change owner.
type MoveLicenseInput struct {
	SourceOrganizationAccountID int
	TargetOrganizationAccountID int
	SerialNumberDetailID        int
}

// GeneratedLicense identifies a license created by GenerateLicense.
type GeneratedLicense struct {
	ID           int    `json:"id"`
	SerialNumber string `json:"serialNumber"`
}
