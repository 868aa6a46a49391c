//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_get_test
package cart_get

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
	View(ctx context.Context, owner entities.CartOwner) (*entities.CartView, error)
}
