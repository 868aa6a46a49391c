package payment_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	orderservice "marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	factory                  HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, factory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		factory:                  factory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.event: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.event: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event paymentEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.event handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event", event.Event),
		logger.NewField("gateway_order_id", event.GatewayOrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.event processing")

	execute, err := h.factory.GetHandler(event.Event)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("payment.event handler unknown event type")
		sess.MarkMessage(message, "")
		return false
	}

	err = execute(ctx, event.GatewayOrderID, event.PaymentID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.event handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrInvalidGatewayOrderID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.event handler empty gateway order id")

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.event handler no order for gateway order id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.event handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.event: processed")

	sess.MarkMessage(message, "")
	return false
}
