package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/license_portal/internal/apperrors"
	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	"github.com/SscSPs/license_portal/internal/models"
	"github.com/SscSPs/license_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrganizationPackageRepository struct {
	BaseRepository
}

func newPgxOrganizationPackageRepository(pool *pgxpool.Pool) portsrepo.OrganizationPackageDetailRepositoryFacade {
	return &PgxOrganizationPackageRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OrganizationPackageDetailRepositoryFacade = (*PgxOrganizationPackageRepository)(nil)

// FindByOrganizationIDAndPackageDetailsID retrieves an entitlement. Inside a
// transaction the row stays locked so concurrent issues cannot overdraw it.
func (r *PgxOrganizationPackageRepository) FindByOrganizationIDAndPackageDetailsID(ctx context.Context, organizationID int, packageDetailsID int) (*domain.OrganizationPackageDetail, error) {
	query := `
		SELECT organization_package_detail_id, organization_account_id, package_detail_id, serial_numbers_count, created_at, last_updated_at
		FROM organization_package_details
		WHERE organization_account_id = $1 AND package_detail_id = $2
	`
	query = lockInTx(ctx, query)

	var m models.OrganizationPackageDetail
	err := r.db(ctx).QueryRow(ctx, query, organizationID, packageDetailsID).Scan(
		&m.OrganizationPackageDetailID,
		&m.OrganizationAccountID,
		&m.PackageDetailID,
		&m.SerialNumbersCount,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find package %d entitlement of organization %d: %w", packageDetailsID, organizationID, err)
	}

	entitlement := mapping.ToDomainOrganizationPackageDetail(m)
	return &entitlement, nil
}

// UpdateSerialNumbersCount sets the remaining license count of an entitlement.
func (r *PgxOrganizationPackageRepository) UpdateSerialNumbersCount(ctx context.Context, organizationID int, organizationPackageDetailID int, newCount int) error {
	query := `
		UPDATE organization_package_details
		SET serial_numbers_count = $3, last_updated_at = NOW()
		WHERE organization_account_id = $1 AND organization_package_detail_id = $2;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query, organizationID, organizationPackageDetailID, newCount)
	if err != nil {
		return fmt.Errorf("failed to update serial numbers count of entitlement %d: %w", organizationPackageDetailID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entitlement %d of organization %d", apperrors.ErrNotFound, organizationPackageDetailID, organizationID)
	}
	return nil
}
