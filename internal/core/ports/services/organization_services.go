package services

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
)

// OrganizationAccountReaderSvc defines read operations for organization accounts.
type OrganizationAccountReaderSvc interface {
	// GetByID retrieves an organization account; nil means it does not exist.
	GetByID(ctx context.Context, id int) (*domain.OrganizationAccount, error)

	// GetOrgByUserID returns the organization the portal user acts for; nil means none.
	GetOrgByUserID(ctx context.Context, userID string) (*int, error)
}

// ResellerAuthorizerSvc answers reseller hierarchy questions for the request boundary.
type ResellerAuthorizerSvc interface {
	// IsChildOrganizationOfReseller reports whether organizationID is managed by resellerID.
	IsChildOrganizationOfReseller(ctx context.Context, organizationID int, resellerID int) (bool, error)
}

// OrganizationPackageWriterSvc mutates entitlements owned by an organization.
type OrganizationPackageWriterSvc interface {
	// UpdateOrgPackageDetailCount sets the remaining license count of an entitlement.
	UpdateOrgPackageDetailCount(ctx context.Context, organizationID int, organizationPackageDetailID int, newCount int) error
}

// OrganizationAccountSvcFacade combines all organization-related service interfaces.
type OrganizationAccountSvcFacade interface {
	OrganizationAccountReaderSvc
	ResellerAuthorizerSvc
	OrganizationPackageWriterSvc
}

// OrganizationPackageDetailsSvc reads entitlements.
type OrganizationPackageDetailsSvc interface {
	// GetByOrganizationIDAndPackageDetailsID retrieves the entitlement; nil means none.
	GetByOrganizationIDAndPackageDetailsID(ctx context.Context, organizationID int, packageDetailsID int) (*domain.OrganizationPackageDetail, error)
}
