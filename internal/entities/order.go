package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          int64
	UserID      int64
	OrderNumber string
	Status      OrderStatusType
	Payment     PaymentStatusType

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string

	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	TotalAmount decimal.Decimal

	PaymentMethod    string
	GatewayOrderID   string
	GatewayPaymentID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderConfirmed  OrderStatusType = "confirmed"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal - из этого статуса нет переходов.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type PaymentStatusType string

const (
	PaymentPending  PaymentStatusType = "pending"
	PaymentPaid     PaymentStatusType = "paid"
	PaymentFailed   PaymentStatusType = "failed"
	PaymentRefunded PaymentStatusType = "refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type OrderItem struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	SupplierID int64
	Name       string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

type OrderModify struct {
	ID               *int64
	Status           *OrderStatusType
	Payment          *PaymentStatusType
	GatewayOrderID   *string
	GatewayPaymentID *string
}

// OrderTotals - итоги заказа, считаются один раз на чекауте.
type OrderTotals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}
