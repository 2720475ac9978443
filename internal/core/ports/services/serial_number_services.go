package services

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
)

// SerialNumberDetailSvc reads issued licenses.
type SerialNumberDetailSvc interface {
	// GetByID retrieves a license; nil means it does not exist.
	GetByID(ctx context.Context, id int) (*domain.SerialNumberDetail, error)

	// GetIDBySerialNumber resolves the internal ID of a license code.
	GetIDBySerialNumber(ctx context.Context, serialNumber string) (int, error)
}
