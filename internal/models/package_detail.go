package models

import "github.com/shopspring/decimal"

// PackageDetail represents a row of package_details.
type PackageDetail struct {
	PackageDetailID int             `db:"package_detail_id"`
	ProductNumber   string          `db:"product_number"`
	ProductName     string          `db:"product_name"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
}
