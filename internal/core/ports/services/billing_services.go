package services

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
)

// InvoiceSvc creates invoice lines.
type InvoiceSvc interface {
	Add(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)
}

// SubscriptionItemSvc creates subscription ledger entries.
type SubscriptionItemSvc interface {
	Add(ctx context.Context, item domain.SubscriptionItem) (*domain.SubscriptionItem, error)
}
