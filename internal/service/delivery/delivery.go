package delivery

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
	"marketplace/pkg/logger"
)

type Delivery struct {
	log          logger.Logger
	repository   Repository
	orderService OrderService
	notifier     Notifier
	txManager    TxManager
}

func New(
	log logger.Logger,
	repository Repository,
	orderService OrderService,
	notifier Notifier,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		log:          log,
		repository:   repository,
		orderService: orderService,
		notifier:     notifier,
		txManager:    txManager,
	}
}

func (d *Delivery) GetForPartner(ctx context.Context, requestID, partnerID int64) (*entities.DeliveryRequest, error) {
	if err := validateRequestAction(requestID, partnerID); err != nil {
		return nil, err
	}

	request, err := d.repository.GetForPartner(ctx, requestID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("get delivery request: %w", err)
	}
	return request, nil
}

func (d *Delivery) ListForPartner(ctx context.Context, partnerID int64, status *entities.DeliveryStatusType) ([]entities.DeliveryRequest, error) {
	if partnerID <= 0 {
		return nil, ErrInvalidPartnerID
	}

	requests, err := d.repository.ListByPartner(ctx, partnerID, status)
	if err != nil {
		return nil, fmt.Errorf("list delivery requests: %w", err)
	}
	return requests, nil
}

// Accept переводит pending-запрос в accepted и каскадом подтверждает
// заказ. Оба уведомления уходят после транзакции, их сбой не
// откатывает и не повторяет переход.
func (d *Delivery) Accept(ctx context.Context, requestID, partnerID int64) (*entities.DeliveryRequest, error) {
	if err := validateRequestAction(requestID, partnerID); err != nil {
		return nil, err
	}

	request, order, err := d.transition(ctx, requestID, partnerID,
		entities.DeliveryPending, entities.DeliveryAccepted, entities.OrderConfirmed)
	if err != nil {
		return nil, err
	}

	d.notifyVendor(ctx, request, partnerID, entities.NotifyDeliveryAccepted, entities.PriorityMedium)
	d.notifyOrderStatus(ctx, order, entities.NotifyOrderConfirmed, entities.PriorityMedium)

	return request, nil
}

// Reject переводит pending-запрос в rejected и каскадом отменяет заказ.
func (d *Delivery) Reject(ctx context.Context, requestID, partnerID int64) (*entities.DeliveryRequest, error) {
	if err := validateRequestAction(requestID, partnerID); err != nil {
		return nil, err
	}

	request, order, err := d.transition(ctx, requestID, partnerID,
		entities.DeliveryPending, entities.DeliveryRejected, entities.OrderCancelled)
	if err != nil {
		return nil, err
	}

	d.notifyVendor(ctx, request, partnerID, entities.NotifyDeliveryRejected, entities.PriorityHigh)
	d.notifyOrderStatus(ctx, order, entities.NotifyOrderCancelled, entities.PriorityHigh)

	return request, nil
}

// Start переводит accepted-запрос в in_progress, заказ - в processing.
// Уведомлений на этом переходе нет.
func (d *Delivery) Start(ctx context.Context, requestID, partnerID int64) (*entities.DeliveryRequest, error) {
	if err := validateRequestAction(requestID, partnerID); err != nil {
		return nil, err
	}

	request, _, err := d.transition(ctx, requestID, partnerID,
		entities.DeliveryAccepted, entities.DeliveryInProgress, entities.OrderProcessing)
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Complete завершает доставку, заказ становится delivered.
func (d *Delivery) Complete(ctx context.Context, requestID, partnerID int64) (*entities.DeliveryRequest, error) {
	if err := validateRequestAction(requestID, partnerID); err != nil {
		return nil, err
	}

	request, order, err := d.transition(ctx, requestID, partnerID,
		entities.DeliveryInProgress, entities.DeliveryDelivered, entities.OrderDelivered)
	if err != nil {
		return nil, err
	}

	d.notifyVendor(ctx, request, partnerID, entities.NotifyDeliveryCompleted, entities.PriorityMedium)
	d.notifyOrderStatus(ctx, order, entities.NotifyOrderDelivered, entities.PriorityMedium)

	return request, nil
}

// Cancel снимает принятую доставку, заказ отменяется.
func (d *Delivery) Cancel(ctx context.Context, requestID, partnerID int64) (*entities.DeliveryRequest, error) {
	if err := validateRequestAction(requestID, partnerID); err != nil {
		return nil, err
	}

	request, order, err := d.transition(ctx, requestID, partnerID,
		entities.DeliveryAccepted, entities.DeliveryCancelled, entities.OrderCancelled)
	if err != nil {
		return nil, err
	}

	d.notifyOrderStatus(ctx, order, entities.NotifyOrderCancelled, entities.PriorityHigh)

	return request, nil
}

// transition - условный переход запроса плюс каскад статуса заказа
// одной транзакцией. Несовпадение текущего статуса с from оставляет
// оба состояния нетронутыми.
func (d *Delivery) transition(
	ctx context.Context,
	requestID, partnerID int64,
	from, to entities.DeliveryStatusType,
	orderStatus entities.OrderStatusType,
) (*entities.DeliveryRequest, *entities.Order, error) {
	var (
		request *entities.DeliveryRequest
		order   *entities.Order
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		request, err = d.repository.UpdateStatusFrom(ctx, requestID, partnerID, from, to)
		if err != nil {
			return fmt.Errorf("update request status: %w", err)
		}

		orderModify := entities.OrderModify{
			ID:     &request.OrderID,
			Status: &orderStatus,
		}
		order, err = d.orderService.UpdateOrder(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("cascade order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return request, order, nil
}

func (d *Delivery) notifyVendor(
	ctx context.Context,
	request *entities.DeliveryRequest,
	partnerID int64,
	notificationType entities.NotificationType,
	priority entities.PriorityType,
) {
	_, err := d.notifier.Dispatch(ctx, notification.DispatchRequest{
		Recipient: request.VendorID,
		Sender:    &partnerID,
		Type:      notificationType,
		Priority:  priority,
		Entity: &entities.RelatedEntity{
			Kind: entities.KindDeliveryRequest,
			ID:   request.ID,
		},
	})
	if err != nil {
		d.log.With(
			logger.NewField("request", request.ID),
			logger.NewField("type", notificationType.String()),
			logger.NewField("error", err),
		).Warn("delivery notification dispatch failed")
	}
}

func (d *Delivery) notifyOrderStatus(
	ctx context.Context,
	order *entities.Order,
	notificationType entities.NotificationType,
	priority entities.PriorityType,
) {
	amount := order.TotalAmount
	_, err := d.notifier.Dispatch(ctx, notification.DispatchRequest{
		Recipient: order.UserID,
		Type:      notificationType,
		Priority:  priority,
		Entity: &entities.RelatedEntity{
			Kind:        entities.KindOrder,
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Amount:      &amount,
		},
	})
	if err != nil {
		d.log.With(
			logger.NewField("order", order.ID),
			logger.NewField("type", notificationType.String()),
			logger.NewField("error", err),
		).Warn("order notification dispatch failed")
	}
}
