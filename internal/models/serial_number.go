package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SerialNumberDetail represents a row of serial_number_details.
type SerialNumberDetail struct {
	SerialNumberDetailID int             `db:"serial_number_detail_id"`
	SerialNumber         string          `db:"serial_number"`
	ProductNumber        string          `db:"product_number"`
	UnitPrice            decimal.Decimal `db:"unit_price"`
	CreatedAt            time.Time       `db:"created_at"`
}
