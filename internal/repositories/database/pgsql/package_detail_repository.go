package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	"github.com/SscSPs/license_portal/internal/models"
	"github.com/SscSPs/license_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPackageDetailRepository struct {
	BaseRepository
}

func newPgxPackageDetailRepository(pool *pgxpool.Pool) portsrepo.PackageDetailReader {
	return &PgxPackageDetailRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PackageDetailReader = (*PgxPackageDetailRepository)(nil)

// GetByID retrieves a catalog entry by ID.
func (r *PgxPackageDetailRepository) GetByID(ctx context.Context, id int) (*domain.PackageDetail, error) {
	query := `
		SELECT package_detail_id, product_number, product_name, unit_price
		FROM package_details
		WHERE package_detail_id = $1;
	`
	var m models.PackageDetail
	err := r.db(ctx).QueryRow(ctx, query, id).Scan(
		&m.PackageDetailID,
		&m.ProductNumber,
		&m.ProductName,
		&m.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find package detail %d: %w", id, err)
	}

	packageDetail := mapping.ToDomainPackageDetail(m)
	return &packageDetail, nil
}
