//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_item_post_test
package cart_item_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/service/cart"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AddItem(ctx context.Context, owner entities.CartOwner, req cart.AddItemRequest) (*entities.CartView, error)
}
