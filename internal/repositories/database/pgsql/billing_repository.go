package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	"github.com/SscSPs/license_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceWriter {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceWriter = (*PgxInvoiceRepository)(nil)

// SaveInvoice inserts an invoice line and returns it with its generated ID.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (organization_account_id, kind, product_number, product_name, serial_number, quantity, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING invoice_id;
	`
	err := r.db(ctx).QueryRow(ctx, query,
		m.OrganizationAccountID,
		m.Kind,
		m.ProductNumber,
		m.ProductName,
		m.SerialNumber,
		m.Quantity,
		m.Amount,
		m.CreatedAt,
	).Scan(&m.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to save invoice for organization %d: %w", m.OrganizationAccountID, err)
	}

	saved := mapping.ToDomainInvoice(m)
	return &saved, nil
}

type PgxSubscriptionItemRepository struct {
	BaseRepository
}

func newPgxSubscriptionItemRepository(pool *pgxpool.Pool) portsrepo.SubscriptionItemWriter {
	return &PgxSubscriptionItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SubscriptionItemWriter = (*PgxSubscriptionItemRepository)(nil)

// SaveSubscriptionItem inserts a subscription ledger entry.
func (r *PgxSubscriptionItemRepository) SaveSubscriptionItem(ctx context.Context, item domain.SubscriptionItem) (*domain.SubscriptionItem, error) {
	m := mapping.ToModelSubscriptionItem(item)
	query := `
		INSERT INTO subscription_items (invoice_id, organization_account_id, serial_number_detail_id, product_number, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING subscription_item_id;
	`
	err := r.db(ctx).QueryRow(ctx, query,
		m.InvoiceID,
		m.OrganizationAccountID,
		m.SerialNumberDetailID,
		m.ProductNumber,
		m.Quantity,
		m.CreatedAt,
	).Scan(&m.SubscriptionItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to save subscription item for invoice %d: %w", m.InvoiceID, err)
	}

	saved := mapping.ToDomainSubscriptionItem(m)
	return &saved, nil
}
