package repositories

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
)

// SerialNumberDetailReader defines read operations for issued licenses.
type SerialNumberDetailReader interface {
	// FindSerialNumberDetailByID retrieves a license, or nil when it does not exist.
	FindSerialNumberDetailByID(ctx context.Context, id int) (*domain.SerialNumberDetail, error)

	// FindIDBySerialNumber resolves the internal ID of a license code.
	// It returns an error wrapping apperrors.ErrNotFound when the code is unknown.
	FindIDBySerialNumber(ctx context.Context, serialNumber string) (int, error)

	// OrganizationHasSerialNumberDetail reports whether the organization currently holds the license.
	OrganizationHasSerialNumberDetail(ctx context.Context, organizationID int, serialNumberDetailID int) (bool, error)
}

// SerialNumberDetailWriter defines write operations for issued licenses.
type SerialNumberDetailWriter interface {
	// SaveSerialNumberDetail records a license code minted by the activation authority and returns its ID.
	// The unit price is copied from the catalog entry of detail.ProductNumber.
	SaveSerialNumberDetail(ctx context.Context, detail domain.SerialNumberDetail) (int, error)
}

// SerialNumberDetailRepositoryFacade combines license reads and writes.
type SerialNumberDetailRepositoryFacade interface {
	SerialNumberDetailReader
	SerialNumberDetailWriter
}
