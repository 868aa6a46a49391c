package payment_event_handle

import (
	"context"
	"errors"
	"fmt"
)

// Имена событий вебхука шлюза, как они приходят в Kafka.
const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
)

var ErrUndefinedEvent = errors.New("undefined payment event")

type ExecuteFn func(ctx context.Context, gatewayOrderID, paymentID string) error

type PaymentService interface {
	MarkPaymentCaptured(ctx context.Context, gatewayOrderID, paymentID string) error
	MarkPaymentFailed(ctx context.Context, gatewayOrderID, paymentID string) error
}

type EventHandlerFactory struct {
	payments PaymentService
}

func NewEventHandlerFactory(payments PaymentService) *EventHandlerFactory {
	return &EventHandlerFactory{
		payments: payments,
	}
}

func (f *EventHandlerFactory) GetHandler(event string) (ExecuteFn, error) {
	switch event {
	case EventPaymentCaptured:
		return f.payments.MarkPaymentCaptured, nil
	case EventPaymentFailed:
		return f.payments.MarkPaymentFailed, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUndefinedEvent, event)
	}
}
