package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryRequest struct {
	ID        int64
	OrderID   int64
	PartnerID int64
	VendorID  int64
	Status    DeliveryStatusType

	PickupAddress   string
	DeliveryAddress string
	Fee             decimal.Decimal
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending    DeliveryStatusType = "pending"
	DeliveryAccepted   DeliveryStatusType = "accepted"
	DeliveryRejected   DeliveryStatusType = "rejected"
	DeliveryInProgress DeliveryStatusType = "in_progress"
	DeliveryDelivered  DeliveryStatusType = "delivered"
	DeliveryCancelled  DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

type DeliveryRequestModify struct {
	OrderID         *int64
	PartnerID       *int64
	VendorID        *int64
	Status          *DeliveryStatusType
	PickupAddress   *string
	DeliveryAddress *string
	Fee             *decimal.Decimal
	Notes           *string
}
