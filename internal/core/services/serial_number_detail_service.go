package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/license_portal/internal/apperrors"
	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
)

type serialNumberDetailService struct {
	repo portsrepo.SerialNumberDetailReader
}

// NewSerialNumberDetailService creates a new SerialNumberDetailSvc.
func NewSerialNumberDetailService(repo portsrepo.SerialNumberDetailReader) portssvc.SerialNumberDetailSvc {
	return &serialNumberDetailService{repo: repo}
}

func (s *serialNumberDetailService) GetByID(ctx context.Context, id int) (*domain.SerialNumberDetail, error) {
	return s.repo.FindSerialNumberDetailByID(ctx, id)
}

func (s *serialNumberDetailService) GetIDBySerialNumber(ctx context.Context, serialNumber string) (int, error) {
	if serialNumber == "" {
		return 0, fmt.Errorf("%w: serial number is required", apperrors.ErrValidation)
	}
	return s.repo.FindIDBySerialNumber(ctx, serialNumber)
}
