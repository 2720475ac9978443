package repositories

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
)

// InvoiceWriter persists invoice lines. Invoices are never updated.
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)
}

// SubscriptionItemWriter persists subscription ledger entries.
type SubscriptionItemWriter interface {
	SaveSubscriptionItem(ctx context.Context, item domain.SubscriptionItem) (*domain.SubscriptionItem, error)
}
