package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
	"marketplace/pkg/logger"
)

const (
	PaymentMethodCOD     = "cod"
	PaymentMethodGateway = "razorpay"
)

// Pricing - параметры расчёта итогов заказа. Налог считается
// от (subtotal + delivery fee).
type Pricing struct {
	DeliveryFee decimal.Decimal
	TaxRate     decimal.Decimal
}

type CheckoutRequest struct {
	UserID          int64
	PartnerID       int64
	DeliveryAddress string
	Notes           string
	PaymentMethod   string
	Payment         *PaymentConfirmation
}

// PaymentConfirmation - подтверждение оплаты от шлюза, проверяется
// подписью до открытия транзакции.
type PaymentConfirmation struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
}

type Service struct {
	log              logger.Logger
	repository       Repository
	deliveryRequests DeliveryRequestRepository
	cartService      CartService
	users            UserReader
	gateway          PaymentGateway
	numbers          OrderNumberFactory
	notifier         Notifier
	txManager        TxManager
	pricing          Pricing
}

func New(
	log logger.Logger,
	repository Repository,
	deliveryRequests DeliveryRequestRepository,
	cartService CartService,
	users UserReader,
	gateway PaymentGateway,
	numbers OrderNumberFactory,
	notifier Notifier,
	txManager TxManager,
	pricing Pricing,
) *Service {
	return &Service{
		log:              log,
		repository:       repository,
		deliveryRequests: deliveryRequests,
		cartService:      cartService,
		users:            users,
		gateway:          gateway,
		numbers:          numbers,
		notifier:         notifier,
		txManager:        txManager,
		pricing:          pricing,
	}
}

// ComputeTotals - итоги заказа от подытога корзины. Вся арифметика
// на decimal, 100.00 + 50.00 дают ровно 27.00 налога и 177.00 итога.
func (s *Service) ComputeTotals(subtotal decimal.Decimal) entities.OrderTotals {
	taxable := subtotal.Add(s.pricing.DeliveryFee)
	tax := taxable.Mul(s.pricing.TaxRate).Round(2)

	return entities.OrderTotals{
		Subtotal:    subtotal,
		DeliveryFee: s.pricing.DeliveryFee,
		Tax:         tax,
		Total:       taxable.Add(tax),
	}
}

// Checkout собирает заказ из корзины: заказ, позиции, pending-запрос
// на доставку и очистка корзины - одной транзакцией. Провал любого
// шага не оставляет ничего. Уведомления уходят после коммита и
// best-effort.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*entities.Order, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	owner := entities.CartOwner{UserID: &req.UserID}
	view, err := s.cartService.View(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(view.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := s.ComputeTotals(view.Subtotal)

	payment := entities.PaymentPending
	if req.PaymentMethod == PaymentMethodGateway {
		if !s.gateway.VerifySignature(req.Payment.GatewayOrderID, req.Payment.PaymentID, req.Payment.Signature) {
			return nil, ErrSignatureMismatch
		}
		payment = entities.PaymentPaid
	}

	var (
		order   *entities.Order
		request *entities.DeliveryRequest
	)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		record := entities.Order{
			UserID:          req.UserID,
			OrderNumber:     s.numbers.Generate(),
			Status:          entities.OrderPending,
			Payment:         payment,
			CustomerName:    user.DisplayName(),
			CustomerEmail:   user.Email,
			CustomerPhone:   user.Phone,
			DeliveryAddress: req.DeliveryAddress,
			Subtotal:        totals.Subtotal,
			DeliveryFee:     totals.DeliveryFee,
			Tax:             totals.Tax,
			TotalAmount:     totals.Total,
			PaymentMethod:   req.PaymentMethod,
		}
		if req.Payment != nil {
			record.GatewayOrderID = req.Payment.GatewayOrderID
			record.GatewayPaymentID = req.Payment.PaymentID
		}

		order, err = s.repository.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		items := make([]entities.OrderItem, 0, len(view.Lines))
		for _, line := range view.Lines {
			items = append(items, entities.OrderItem{
				OrderID:    order.ID,
				ProductID:  line.Item.ProductID,
				SupplierID: line.SupplierID,
				Name:       line.ProductName,
				Quantity:   line.Item.Quantity,
				UnitPrice:  line.UnitPrice,
				TotalPrice: line.Total(),
			})
		}
		if _, err := s.repository.CreateItems(ctx, items); err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		pending := entities.DeliveryPending
		pickup := fmt.Sprintf("Vendor Location - %s", user.Username)
		request, err = s.deliveryRequests.Create(ctx, entities.DeliveryRequestModify{
			OrderID:         &order.ID,
			PartnerID:       &req.PartnerID,
			VendorID:        &req.UserID,
			Status:          &pending,
			PickupAddress:   &pickup,
			DeliveryAddress: &req.DeliveryAddress,
			Fee:             &totals.DeliveryFee,
			Notes:           &req.Notes,
		})
		if err != nil {
			return fmt.Errorf("create delivery request: %w", err)
		}

		if err := s.cartService.Clear(ctx, owner); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyOrderStatus(ctx, order, entities.NotifyOrderPlaced, entities.PriorityMedium)
	s.notifyDeliveryRequest(ctx, request)

	return order, nil
}

// UpdateOrder - прямое обновление полей без проверки цепочки
// переходов и без уведомлений. Для каскадов из доставки и платёжного
// воркера; пользовательские переходы идут через SetStatus.
func (s *Service) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || *orderModify.ID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

// порядок пользовательской цепочки переходов; cancelled достижим
// из любого нетерминального статуса
var orderFlow = map[entities.OrderStatusType]entities.OrderStatusType{
	entities.OrderPending:    entities.OrderConfirmed,
	entities.OrderConfirmed:  entities.OrderProcessing,
	entities.OrderProcessing: entities.OrderShipped,
	entities.OrderShipped:    entities.OrderDelivered,
}

var statusNotifications = map[entities.OrderStatusType]entities.NotificationType{
	entities.OrderConfirmed: entities.NotifyOrderConfirmed,
	entities.OrderShipped:   entities.NotifyOrderShipped,
	entities.OrderDelivered: entities.NotifyOrderDelivered,
	entities.OrderCancelled: entities.NotifyOrderCancelled,
}

func canTransition(from, to entities.OrderStatusType) bool {
	if to == entities.OrderCancelled {
		return !from.Terminal()
	}
	return orderFlow[from] == to
}

// SetStatus - переход статуса по цепочке
// pending->confirmed->processing->shipped->delivered с уведомлением
// владельца заказа на значимых статусах.
func (s *Service) SetStatus(ctx context.Context, orderID int64, status entities.OrderStatusType) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !knownOrderStatus(status) {
		return nil, ErrUndefinedStatus
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !canTransition(current.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
		}

		order, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notificationType, ok := statusNotifications[status]; ok {
		s.notifyOrderStatus(ctx, order, notificationType, entities.PriorityMedium)
	}

	return order, nil
}

func (s *Service) GetForUser(ctx context.Context, orderID, userID int64) (*entities.Order, []entities.OrderItem, error) {
	if orderID <= 0 {
		return nil, nil, ErrInvalidOrderID
	}
	if userID <= 0 {
		return nil, nil, ErrInvalidUserID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("get order: %w", err)
	}
	// чужой заказ неотличим от несуществующего
	if order.UserID != userID {
		return nil, nil, ErrOrderNotFound
	}

	items, err := s.repository.ListItems(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("list order items: %w", err)
	}
	return order, items, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	orders, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) notifyOrderStatus(
	ctx context.Context,
	order *entities.Order,
	notificationType entities.NotificationType,
	priority entities.PriorityType,
) {
	amount := order.TotalAmount
	_, err := s.notifier.Dispatch(ctx, notification.DispatchRequest{
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
		s.log.With(
			logger.NewField("order", order.ID),
			logger.NewField("type", notificationType.String()),
			logger.NewField("error", err),
		).Warn("order notification dispatch failed")
	}
}

func (s *Service) notifyDeliveryRequest(ctx context.Context, request *entities.DeliveryRequest) {
	_, err := s.notifier.Dispatch(ctx, notification.DispatchRequest{
		Recipient: request.PartnerID,
		Sender:    &request.VendorID,
		Type:      entities.NotifyDeliveryRequest,
		Priority:  entities.PriorityHigh,
		Entity: &entities.RelatedEntity{
			Kind: entities.KindDeliveryRequest,
			ID:   request.ID,
		},
	})
	if err != nil {
		s.log.With(
			logger.NewField("request", request.ID),
			logger.NewField("error", err),
		).Warn("delivery request notification dispatch failed")
	}
}
