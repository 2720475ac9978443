package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/license_portal/internal/apperrors"
	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
)

// organizationAccountService provides organization lookups, reseller
// hierarchy checks and entitlement count updates.
type organizationAccountService struct {
	BaseService
	organizationRepo portsrepo.OrganizationAccountReader
	orgPackageRepo   portsrepo.OrganizationPackageDetailWriter
}

// NewOrganizationAccountService creates a new OrganizationAccountSvcFacade.
func NewOrganizationAccountService(organizationRepo portsrepo.OrganizationAccountReader, orgPackageRepo portsrepo.OrganizationPackageDetailWriter) portssvc.OrganizationAccountSvcFacade {
	return &organizationAccountService{
		organizationRepo: organizationRepo,
		orgPackageRepo:   orgPackageRepo,
	}
}

var _ portssvc.OrganizationAccountSvcFacade = (*organizationAccountService)(nil)

// GetByID returns nil without error when the organization does not exist.
func (s *organizationAccountService) GetByID(ctx context.Context, id int) (*domain.OrganizationAccount, error) {
	organization, err := s.organizationRepo.FindOrganizationAccountByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find organization account", slog.Int("organization_account_id", id))
		return nil, fmt.Errorf("failed to find organization account %d: %w", id, err)
	}
	return organization, nil
}

// GetOrgByUserID returns nil without error when the user acts for no organization.
func (s *organizationAccountService) GetOrgByUserID(ctx context.Context, userID string) (*int, error) {
	if userID == "" {
		return nil, nil
	}
	orgID, err := s.organizationRepo.FindOrganizationIDByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve organization for user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to resolve organization for user %s: %w", userID, err)
	}
	return orgID, nil
}

// IsChildOrganizationOfReseller reports whether organizationID sits below resellerID.
// An organization is not its own child.
func (s *organizationAccountService) IsChildOrganizationOfReseller(ctx context.Context, organizationID int, resellerID int) (bool, error) {
	if organizationID == resellerID {
		return false, nil
	}
	return s.organizationRepo.IsChildOrganizationOfReseller(ctx, organizationID, resellerID)
}

// UpdateOrgPackageDetailCount sets the remaining license count of an entitlement.
func (s *organizationAccountService) UpdateOrgPackageDetailCount(ctx context.Context, organizationID int, organizationPackageDetailID int, newCount int) error {
	if newCount < 0 {
		return fmt.Errorf("%w: serial numbers count cannot be negative (got %d)", apperrors.ErrValidation, newCount)
	}
	if err := s.orgPackageRepo.UpdateSerialNumbersCount(ctx, organizationID, organizationPackageDetailID, newCount); err != nil {
		s.LogError(ctx, err, "Failed to update organization package detail count",
			slog.Int("organization_account_id", organizationID),
			slog.Int("organization_package_detail_id", organizationPackageDetailID))
		return err
	}
	s.LogDebug(ctx, "Organization package detail count updated",
		slog.Int("organization_package_detail_id", organizationPackageDetailID),
		slog.Int("serial_numbers_count", newCount))
	return nil
}
