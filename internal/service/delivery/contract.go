//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
)

type Repository interface {
	GetForPartner(ctx context.Context, requestID, partnerID int64) (*entities.DeliveryRequest, error)
	ListByPartner(ctx context.Context, partnerID int64, status *entities.DeliveryStatusType) ([]entities.DeliveryRequest, error)

	// UpdateStatusFrom - условное обновление, отфильтрованное по
	// текущему статусу. Нет строки в статусе from - возвращает
	// ErrRequestNotFoundOrProcessed, состояние не меняется.
	UpdateStatusFrom(ctx context.Context, requestID, partnerID int64, from, to entities.DeliveryStatusType) (*entities.DeliveryRequest, error)
}

type OrderService interface {
	UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, req notification.DispatchRequest) (notification.DispatchResult, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
