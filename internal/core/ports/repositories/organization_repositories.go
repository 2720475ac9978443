package repositories

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
)

// OrganizationAccountReader defines read operations for organization accounts.
// Finders return (nil, nil) when no row matches.
type OrganizationAccountReader interface {
	// FindOrganizationAccountByID retrieves an organization account by its internal ID.
	FindOrganizationAccountByID(ctx context.Context, id int) (*domain.OrganizationAccount, error)

	// IsChildOrganizationOfReseller reports whether organizationID sits anywhere below resellerID.
	IsChildOrganizationOfReseller(ctx context.Context, organizationID int, resellerID int) (bool, error)

	// FindOrganizationIDByUserID returns the organization a portal user belongs to.
	FindOrganizationIDByUserID(ctx context.Context, userID string) (*int, error)
}

// OrganizationPackageDetailReader defines read operations for entitlements.
type OrganizationPackageDetailReader interface {
	// FindByOrganizationIDAndPackageDetailsID retrieves the entitlement of an organization for a package.
	// Inside a transaction the row is locked until commit or rollback.
	FindByOrganizationIDAndPackageDetailsID(ctx context.Context, organizationID int, packageDetailsID int) (*domain.OrganizationPackageDetail, error)
}

// OrganizationPackageDetailWriter defines write operations for entitlements.
type OrganizationPackageDetailWriter interface {
	// UpdateSerialNumbersCount sets the remaining license count of an entitlement.
	UpdateSerialNumbersCount(ctx context.Context, organizationID int, organizationPackageDetailID int, newCount int) error
}

// OrganizationPackageDetailRepositoryFacade combines entitlement reads and writes.
type OrganizationPackageDetailRepositoryFacade interface {
	OrganizationPackageDetailReader
	OrganizationPackageDetailWriter
}
