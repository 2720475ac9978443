package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row of invoices. Rows are insert-only.
type Invoice struct {
	InvoiceID             int             `db:"invoice_id"`
	OrganizationAccountID int             `db:"organization_account_id"`
	Kind                  string          `db:"kind"`
	ProductNumber         string          `db:"product_number"`
	ProductName           string          `db:"product_name"`
	SerialNumber          string          `db:"serial_number"`
	Quantity              int             `db:"quantity"`
	Amount                decimal.Decimal `db:"amount"`
	CreatedAt             time.Time       `db:"created_at"`
}

// SubscriptionItem represents a row of subscription_items.
type SubscriptionItem struct {
	SubscriptionItemID    int       `db:"subscription_item_id"`
	InvoiceID             int       `db:"invoice_id"`
	OrganizationAccountID int       `db:"organization_account_id"`
	SerialNumberDetailID  int       `db:"serial_number_detail_id"`
	ProductNumber         string    `db:"product_number"`
	Quantity              int       `db:"quantity"`
	CreatedAt             time.Time `db:"created_at"`
}
