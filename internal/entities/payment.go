package entities

import "github.com/shopspring/decimal"

// PaymentOrder - заказ на стороне платёжного шлюза.
type PaymentOrder struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
}
