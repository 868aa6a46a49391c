//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_item_delete_test
package cart_item_delete

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RemoveItem(ctx context.Context, owner entities.CartOwner, itemID int64) (*entities.CartView, error)
}
