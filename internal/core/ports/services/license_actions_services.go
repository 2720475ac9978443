package services

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
)

// LicenseActionsSvc issues and transfers licenses.
type LicenseActionsSvc interface {
	// GenerateLicense issues a license for input.OrganizationAccountID against the
	// entitlement that resellerOrgAccountID holds for input.PackageDetailsID.
	GenerateLicense(ctx context.Context, input domain.GenerateLicenseInput, resellerOrgAccountID int) (*domain.GeneratedLicense, error)

	// MoveLicense reassigns an issued license from the source to the target organization.
	MoveLicense(ctx context.Context, input domain.MoveLicenseInput) error
}
