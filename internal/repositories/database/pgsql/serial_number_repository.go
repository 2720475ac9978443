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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSerialNumberRepository struct {
	BaseRepository
}

func newPgxSerialNumberRepository(pool *pgxpool.Pool) portsrepo.SerialNumberDetailRepositoryFacade {
	return &PgxSerialNumberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SerialNumberDetailRepositoryFacade = (*PgxSerialNumberRepository)(nil)

// findSerialNumberDetailByIDQuery has no trailing semicolon so lockInTx can extend it.
const findSerialNumberDetailByIDQuery = `
		SELECT serial_number_detail_id, serial_number, product_number, unit_price, created_at
		FROM serial_number_details
		WHERE serial_number_detail_id = $1`

// FindSerialNumberDetailByID retrieves an issued license by ID. Inside a
// transaction the row stays locked, so moves of the same license run one after
// another and each sees the ownership the previous one recorded.
func (r *PgxSerialNumberRepository) FindSerialNumberDetailByID(ctx context.Context, id int) (*domain.SerialNumberDetail, error) {
	query := lockInTx(ctx, findSerialNumberDetailByIDQuery)
	var m models.SerialNumberDetail
	err := r.db(ctx).QueryRow(ctx, query, id).Scan(
		&m.SerialNumberDetailID,
		&m.SerialNumber,
		&m.ProductNumber,
		&m.UnitPrice,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find serial number detail %d: %w", id, err)
	}

	detail := mapping.ToDomainSerialNumberDetail(m)
	return &detail, nil
}

// FindIDBySerialNumber resolves the ID of a license code.
func (r *PgxSerialNumberRepository) FindIDBySerialNumber(ctx context.Context, serialNumber string) (int, error) {
	query := `
		SELECT serial_number_detail_id
		FROM serial_number_details
		WHERE serial_number = $1;
	`
	var id int
	err := r.db(ctx).QueryRow(ctx, query, serialNumber).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: serial number %s", apperrors.ErrNotFound, serialNumber)
		}
		return 0, fmt.Errorf("failed to find serial number %s: %w", serialNumber, err)
	}
	return id, nil
}

// OrganizationHasSerialNumberDetail reports whether the latest subscription
// item for the license adds it to organizationID.
func (r *PgxSerialNumberRepository) OrganizationHasSerialNumberDetail(ctx context.Context, organizationID int, serialNumberDetailID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM (
				SELECT organization_account_id, quantity
				FROM subscription_items
				WHERE serial_number_detail_id = $2
				ORDER BY subscription_item_id DESC
				LIMIT 1
			) latest
			WHERE latest.organization_account_id = $1 AND latest.quantity > 0
		);
	`
	var holds bool
	if err := r.db(ctx).QueryRow(ctx, query, organizationID, serialNumberDetailID).Scan(&holds); err != nil {
		return false, fmt.Errorf("failed to check owner of serial number detail %d: %w", serialNumberDetailID, err)
	}
	return holds, nil
}

// SaveSerialNumberDetail records a license code. The unit price is copied from
// the catalog entry of the product.
func (r *PgxSerialNumberRepository) SaveSerialNumberDetail(ctx context.Context, detail domain.SerialNumberDetail) (int, error) {
	query := `
		INSERT INTO serial_number_details (serial_number, product_number, unit_price, created_at)
		SELECT $1, pd.product_number, pd.unit_price, $3
		FROM package_details pd
		WHERE pd.product_number = $2
		RETURNING serial_number_detail_id;
	`
	var id int
	err := r.db(ctx).QueryRow(ctx, query, detail.SerialNumber, detail.ProductNumber, detail.CreatedAt).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, detail.ProductNumber)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("%w: serial number %s", apperrors.ErrDuplicate, detail.SerialNumber)
		}
		return 0, fmt.Errorf("failed to save serial number %s: %w", detail.SerialNumber, err)
	}
	return id, nil
}
