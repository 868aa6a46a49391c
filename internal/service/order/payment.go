package order

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
)

// CreatePaymentOrder открывает заказ в платёжном шлюзе на текущую
// сумму корзины. Сумма считается на сервере, клиентской не верим.
func (s *Service) CreatePaymentOrder(ctx context.Context, userID int64) (*entities.PaymentOrder, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	view, err := s.cartService.View(ctx, entities.CartOwner{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(view.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := s.ComputeTotals(view.Subtotal)

	paymentOrder, err := s.gateway.CreateOrder(ctx, totals.Total)
	if err != nil {
		return nil, fmt.Errorf("create payment order: %w", err)
	}
	return paymentOrder, nil
}

// MarkPaymentCaptured - обработка события capture от шлюза: заказ
// ищется по внешнему идентификатору, фиксируется paid.
func (s *Service) MarkPaymentCaptured(ctx context.Context, gatewayOrderID, paymentID string) error {
	return s.applyPaymentEvent(ctx, gatewayOrderID, entities.OrderModify{
		Payment:          pointer.To(entities.PaymentPaid),
		GatewayPaymentID: &paymentID,
	}, entities.NotifyPaymentReceived, entities.PriorityMedium)
}

func (s *Service) MarkPaymentFailed(ctx context.Context, gatewayOrderID, paymentID string) error {
	return s.applyPaymentEvent(ctx, gatewayOrderID, entities.OrderModify{
		Payment:          pointer.To(entities.PaymentFailed),
		GatewayPaymentID: &paymentID,
	}, entities.NotifyPaymentFailed, entities.PriorityHigh)
}

func (s *Service) applyPaymentEvent(
	ctx context.Context,
	gatewayOrderID string,
	modify entities.OrderModify,
	notificationType entities.NotificationType,
	priority entities.PriorityType,
) error {
	if gatewayOrderID == "" {
		return ErrInvalidGatewayOrderID
	}

	order, err := s.repository.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return fmt.Errorf("get order by gateway id: %w", err)
	}

	// Kafka доставляет событие как минимум один раз: статус уже
	// применён - ничего не пишем и дубликат уведомления не шлём.
	if modify.Payment != nil && order.Payment == *modify.Payment {
		return nil
	}

	modify.ID = &order.ID
	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	s.notifyOrderStatus(ctx, updated, notificationType, priority)
	return nil
}
