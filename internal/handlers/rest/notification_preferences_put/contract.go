//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_preferences_put_test
package notification_preferences_put

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
	UpdatePreferences(ctx context.Context, preference entities.NotificationPreference) (*entities.NotificationPreference, error)
}
