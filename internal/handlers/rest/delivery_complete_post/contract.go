//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_complete_post_test
package delivery_complete_post

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
	Complete(ctx context.Context, requestID, partnerID int64) (*entities.DeliveryRequest, error)
}
