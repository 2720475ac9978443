package repositories

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
)

// PackageDetailReader defines read operations for the package catalog.
type PackageDetailReader interface {
	// GetByID retrieves a package detail, or nil when it does not exist.
	GetByID(ctx context.Context, id int) (*domain.PackageDetail, error)
}
