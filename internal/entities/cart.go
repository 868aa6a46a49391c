package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartOwner - владелец корзины: либо авторизованный пользователь,
// либо анонимная сессия. Ровно одно из полей должно быть задано.
type CartOwner struct {
	UserID     *int64
	SessionKey *string
}

func (o CartOwner) IsValid() bool {
	return (o.UserID != nil) != (o.SessionKey != nil)
}

type Cart struct {
	ID         int64
	UserID     *int64
	SessionKey *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int64
	AddedAt   time.Time
}

// CartLine - позиция корзины вместе со снапшотом товара.
type CartLine struct {
	Item        CartItem
	ProductName string
	SupplierID  int64
	UnitPrice   decimal.Decimal
	Unit        string
}

func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Item.Quantity))
}

type CartView struct {
	Cart       Cart
	Lines      []CartLine
	TotalItems int64
	Subtotal   decimal.Decimal
}
