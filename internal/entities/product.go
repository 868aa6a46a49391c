package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Supplier struct {
	ID        int64
	PlaceID   string
	Name      string
	Address   string
	Phone     string
	Rating    float64
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
}

type Product struct {
	ID          int64
	SupplierID  int64
	Name        string
	Price       decimal.Decimal
	Unit        string
	Category    string
	Description string
	ImageURL    string
	InStock     bool
	CreatedAt   time.Time
}
