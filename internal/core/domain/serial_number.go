package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SerialNumberDetail is one issued license.
type SerialNumberDetail struct {
	ID            int             `json:"id"`
	SerialNumber  string          `json:"serialNumber"`
	ProductNumber string          `json:"productNumber"`
	UnitPrice     decimal.Decimal `json:"unitPrice"` // Value recorded when the license was issued
	CreatedAt     time.Time       `json:"createdAt"`
}
