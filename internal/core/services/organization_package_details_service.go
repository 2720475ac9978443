package services

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
)

type organizationPackageDetailsService struct {
	repo portsrepo.OrganizationPackageDetailReader
}

// NewOrganizationPackageDetailsService creates a new OrganizationPackageDetailsSvc.
func NewOrganizationPackageDetailsService(repo portsrepo.OrganizationPackageDetailReader) portssvc.OrganizationPackageDetailsSvc {
	return &organizationPackageDetailsService{repo: repo}
}

func (s *organizationPackageDetailsService) GetByOrganizationIDAndPackageDetailsID(ctx context.Context, organizationID int, packageDetailsID int) (*domain.OrganizationPackageDetail, error) {
	return s.repo.FindByOrganizationIDAndPackageDetailsID(ctx, organizationID, packageDetailsID)
}
