package domain

// OrganizationAccount is an organization in the reseller hierarchy.
type OrganizationAccount struct {
	ID                          int    `json:"id"`
	AccountID                   string `json:"accountId"` // External identifier known to the activation authority
	Name                        string `json:"name"`
	ParentOrganizationAccountID *int   `json:"parentOrganizationAccountId,omitempty"`
	AuditFields
}

// OrganizationPackageDetail is the entitlement binding an organization to a package.
// SerialNumbersCount is the number of licenses that may still be issued.
type OrganizationPackageDetail struct {
	ID                    int `json:"id"`
	OrganizationAccountID int `json:"organizationAccountId"`
	PackageDetailID       int `json:"packageDetailId"`
	SerialNumbersCount    int `json:"serialNumbersCount"`
	AuditFields
}

// HasRemaining reports whether quantity licenses can still be issued.
func (o OrganizationPackageDetail) HasRemaining(quantity int) bool {
	return quantity > 0 && o.SerialNumbersCount >= quantity
}
