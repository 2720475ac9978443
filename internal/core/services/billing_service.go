package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/license_portal/internal/apperrors"
	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
)

// invoiceService validates and records invoice lines.
type invoiceService struct {
	BaseService
	repo     portsrepo.InvoiceWriter
	validate *validator.Validate
	now      func() time.Time
}

// NewInvoiceService creates a new InvoiceSvc.
func NewInvoiceService(repo portsrepo.InvoiceWriter, validate *validator.Validate) portssvc.InvoiceSvc {
	return &invoiceService{repo: repo, validate: validate, now: time.Now}
}

func (s *invoiceService) Add(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	if err := s.validate.StructCtx(ctx, invoice); err != nil {
		return nil, fmt.Errorf("%w: invalid invoice: %s", apperrors.ErrValidation, err.Error())
	}
	invoice.CreatedAt = s.now().UTC()

	saved, err := s.repo.SaveInvoice(ctx, invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoice",
			slog.Int("organization_account_id", invoice.OrganizationAccountID),
			slog.String("kind", string(invoice.Kind)))
		return nil, err
	}
	return saved, nil
}

// subscriptionItemService validates and records subscription ledger entries.
type subscriptionItemService struct {
	BaseService
	repo     portsrepo.SubscriptionItemWriter
	validate *validator.Validate
	now      func() time.Time
}

// NewSubscriptionItemService creates a new SubscriptionItemSvc.
func NewSubscriptionItemService(repo portsrepo.SubscriptionItemWriter, validate *validator.Validate) portssvc.SubscriptionItemSvc {
	return &subscriptionItemService{repo: repo, validate: validate, now: time.Now}
}

func (s *subscriptionItemService) Add(ctx context.Context, item domain.SubscriptionItem) (*domain.SubscriptionItem, error) {
	if err := s.validate.StructCtx(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: invalid subscription item: %s", apperrors.ErrValidation, err.Error())
	}
	item.CreatedAt = s.now().UTC()

	saved, err := s.repo.SaveSubscriptionItem(ctx, item)
	if err != nil {
		s.LogError(ctx, err, "Failed to save subscription item",
			slog.Int("invoice_id", item.InvoiceID),
			slog.Int("serial_number_detail_id", item.SerialNumberDetailID))
		return nil, err
	}
	return saved, nil
}
