//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	CreateItems(ctx context.Context, items []entities.OrderItem) ([]entities.OrderItem, error)
	GetByID(ctx context.Context, orderID int64) (*entities.Order, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entities.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]entities.OrderItem, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type DeliveryRequestRepository interface {
	Create(ctx context.Context, requestModify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error)
}

type CartService interface {
	View(ctx context.Context, owner entities.CartOwner) (*entities.CartView, error)
	Clear(ctx context.Context, owner entities.CartOwner) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal) (*entities.PaymentOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

// OrderNumberFactory выдаёт номера вида SE12345678. Уникальность
// гарантирует индекс в БД, а не генератор.
type OrderNumberFactory interface {
	Generate() string
}

type Notifier interface {
	Dispatch(ctx context.Context, req notification.DispatchRequest) (notification.DispatchResult, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
