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

type PgxOrganizationAccountRepository struct {
	BaseRepository
}

// newPgxOrganizationAccountRepository creates a new repository for organization accounts.
func newPgxOrganizationAccountRepository(pool *pgxpool.Pool) portsrepo.OrganizationAccountReader {
	return &PgxOrganizationAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrganizationAccountReader = (*PgxOrganizationAccountRepository)(nil)

// FindOrganizationAccountByID retrieves an organization account by its internal ID.
func (r *PgxOrganizationAccountRepository) FindOrganizationAccountByID(ctx context.Context, id int) (*domain.OrganizationAccount, error) {
	query := `
		SELECT organization_account_id, account_id, name, parent_organization_account_id, created_at, last_updated_at
		FROM organization_accounts
		WHERE organization_account_id = $1;
	`
	var m models.OrganizationAccount
	err := r.db(ctx).QueryRow(ctx, query, id).Scan(
		&m.OrganizationAccountID,
		&m.AccountID,
		&m.Name,
		&m.ParentOrganizationAccountID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization account %d: %w", id, err)
	}

	organization := mapping.ToDomainOrganizationAccount(m)
	return &organization, nil
}

// IsChildOrganizationOfReseller walks the parent chain of organizationID looking for resellerID.
func (r *PgxOrganizationAccountRepository) IsChildOrganizationOfReseller(ctx context.Context, organizationID int, resellerID int) (bool, error) {
	// UNION (not UNION ALL) stops the walk if the hierarchy ever contains a cycle.
	query := `
		WITH RECURSIVE ancestors AS (
			SELECT parent_organization_account_id AS id
			FROM organization_accounts
			WHERE organization_account_id = $1
			UNION
			SELECT oa.parent_organization_account_id
			FROM organization_accounts oa
			JOIN ancestors a ON oa.organization_account_id = a.id
		)
		SELECT EXISTS (SELECT 1 FROM ancestors WHERE id = $2);
	`
	var isChild bool
	if err := r.db(ctx).QueryRow(ctx, query, organizationID, resellerID).Scan(&isChild); err != nil {
		return false, fmt.Errorf("failed to check reseller hierarchy of organization %d: %w", organizationID, err)
	}
	return isChild, nil
}

// FindOrganizationIDByUserID returns the organization a portal user acts for.
func (r *PgxOrganizationAccountRepository) FindOrganizationIDByUserID(ctx context.Context, userID string) (*int, error) {
	query := `
		SELECT organization_account_id
		FROM organization_users
		WHERE user_id = $1;
	`
	var orgID int
	err := r.db(ctx).QueryRow(ctx, query, userID).Scan(&orgID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization for user %s: %w", userID, err)
	}
	return &orgID, nil
}
