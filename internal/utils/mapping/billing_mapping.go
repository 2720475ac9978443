package mapping

import (
	"github.com/SscSPs/license_portal/internal/core/domain"
	"github.com/SscSPs/license_portal/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:             d.ID,
		OrganizationAccountID: d.OrganizationAccountID,
		Kind:                  string(d.Kind),
		ProductNumber:         d.ProductNumber,
		ProductName:           d.ProductName,
		SerialNumber:          d.SerialNumber,
		Quantity:              d.Quantity,
		Amount:                d.Amount,
		CreatedAt:             d.CreatedAt,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:                    m.InvoiceID,
		OrganizationAccountID: m.OrganizationAccountID,
		Kind:                  domain.InvoiceKind(m.Kind),
		ProductNumber:         m.ProductNumber,
		ProductName:           m.ProductName,
		SerialNumber:          m.SerialNumber,
		Quantity:              m.Quantity,
		Amount:                m.Amount,
		CreatedAt:             m.CreatedAt,
	}
}

// ToModelSubscriptionItem converts a domain SubscriptionItem to a model SubscriptionItem
func ToModelSubscriptionItem(d domain.SubscriptionItem) models.SubscriptionItem {
	return models.SubscriptionItem{
		SubscriptionItemID:    d.ID,
		InvoiceID:             d.InvoiceID,
		OrganizationAccountID: d.OrganizationAccountID,
		SerialNumberDetailID:  d.SerialNumberDetailID,
		ProductNumber:         d.ProductNumber,
		Quantity:              d.Quantity,
		CreatedAt:             d.CreatedAt,
	}
}

// ToDomainSubscriptionItem converts a model SubscriptionItem to a domain SubscriptionItem
func ToDomainSubscriptionItem(m models.SubscriptionItem) domain.SubscriptionItem {
	return domain.SubscriptionItem{
		ID:                    m.SubscriptionItemID,
		InvoiceID:             m.InvoiceID,
		OrganizationAccountID: m.OrganizationAccountID,
		SerialNumberDetailID:  m.SerialNumberDetailID,
		ProductNumber:         m.ProductNumber,
		Quantity:              m.Quantity,
		CreatedAt:             m.CreatedAt,
	}
}
