package domain

import "github.com/shopspring/decimal"

// PackageDetail is a catalog entry a license can be issued for.
type PackageDetail struct {
	ID            int             `json:"id"`
	ProductNumber string          `json:"productNumber"`
	ProductName   string          `json:"productName"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}
