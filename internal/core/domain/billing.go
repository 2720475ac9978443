package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind tells which license action produced an invoice line.
type InvoiceKind string

const (
	InvoiceLicenseIssued   InvoiceKind = "LICENSE_ISSUED"
	InvoiceLicenseMovedOut InvoiceKind = "LICENSE_MOVED_OUT"
	InvoiceLicenseMovedIn  InvoiceKind = "LICENSE_MOVED_IN"
)

// Invoice is a single financial line. Quantity and Amount are signed:
// negative values remove a license from the organization.
type Invoice struct {
	ID                    int             `json:"id"`
	OrganizationAccountID int             `json:"organizationAccountId" validate:"gt=0"`
	Kind                  InvoiceKind     `json:"kind" validate:"oneof=LICENSE_ISSUED LICENSE_MOVED_OUT LICENSE_MOVED_IN"`
	ProductNumber         string          `json:"productNumber" validate:"required"`
	ProductName           string          `json:"productName"`
	SerialNumber          string          `json:"serialNumber" validate:"required"`
	Quantity              int             `json:"quantity" validate:"ne=0"`
	Amount                decimal.Decimal `json:"amount"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// SubscriptionItem mirrors an invoice line on the subscription ledger.
// The latest item for a serial number decides which organization holds it.
type SubscriptionItem struct {
	ID                    int       `json:"id"`
	InvoiceID             int       `json:"invoiceId" validate:"gt=0"`
	OrganizationAccountID int       `json:"organizationAccountId" validate:"gt=0"`
	SerialNumberDetailID  int       `json:"serialNumberDetailId" validate:"gt=0"`
	ProductNumber         string    `json:"productNumber" validate:"required"`
	Quantity              int       `json:"quantity" validate:"ne=0"`
	CreatedAt             time.Time `json:"createdAt"`
}
