package models

// OrganizationAccount represents a row of organization_accounts.
type OrganizationAccount struct {
	OrganizationAccountID       int    `db:"organization_account_id"`
	AccountID                   string `db:"account_id"` // External identifier
	Name                        string `db:"name"`
	ParentOrganizationAccountID *int   `db:"parent_organization_account_id"` // Nullable
	AuditFields
}

// OrganizationPackageDetail represents a row of organization_package_details.
type OrganizationPackageDetail struct {
	OrganizationPackageDetailID int `db:"organization_package_detail_id"`
	OrganizationAccountID       int `db:"organization_account_id"`
	PackageDetailID             int `db:"package_detail_id"`
	SerialNumbersCount          int `db:"serial_numbers_count"`
	AuditFields
}
