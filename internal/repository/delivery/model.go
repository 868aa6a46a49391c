package delivery

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryRequestDB struct {
	ID        int64
	OrderID   int64
	PartnerID int64
	VendorID  int64
	Status    string

	PickupAddress   string
	DeliveryAddress string
	Fee             decimal.Decimal
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type DeliveryRequestModifyDB struct {
	OrderID         *int64
	PartnerID       *int64
	VendorID        *int64
	Status          *string
	PickupAddress   *string
	DeliveryAddress *string
	Fee             *decimal.Decimal
	Notes           *string
}
