//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_order_post_test
package payment_order_post

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
	CreatePaymentOrder(ctx context.Context, userID int64) (*entities.PaymentOrder, error)
}
