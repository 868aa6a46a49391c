package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID            int64
	UserID        int64
	OrderNumber   string
	Status        string
	PaymentStatus string

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string

	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	TotalAmount decimal.Decimal

	PaymentMethod    string
	GatewayOrderID   *string
	GatewayPaymentID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItemDB struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	SupplierID int64
	Name       string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

type OrderModifyDB struct {
	ID               *int64
	Status           *string
	PaymentStatus    *string
	GatewayOrderID   *string
	GatewayPaymentID *string
}
