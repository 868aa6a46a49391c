package payment_event

import (
	"marketplace/internal/pkg/factory/payment_event_handle"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(event string) (payment_event_handle.ExecuteFn, error)
}

type paymentEvent struct {
	Event          string `json:"event"`
	GatewayOrderID string `json:"gateway_order_id"`
	PaymentID      string `json:"payment_id"`
}
