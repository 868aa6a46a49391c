//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_requests_get_test
package delivery_requests_get

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
	ListForPartner(ctx context.Context, partnerID int64, status *entities.DeliveryStatusType) ([]entities.DeliveryRequest, error)
}
