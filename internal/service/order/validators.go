package order

import "marketplace/internal/entities"

func validateCheckout(req CheckoutRequest) error {
	if req.UserID <= 0 {
		return ErrInvalidUserID
	}
	if req.PartnerID <= 0 {
		return ErrInvalidPartnerID
	}

	switch req.PaymentMethod {
	case PaymentMethodCOD:
		return nil
	case PaymentMethodGateway:
		if req.Payment == nil ||
			req.Payment.GatewayOrderID == "" ||
			req.Payment.PaymentID == "" ||
			req.Payment.Signature == "" {
			return ErrMissingPaymentData
		}
		return nil
	default:
		return ErrInvalidPaymentMethod
	}
}

func knownOrderStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending, entities.OrderConfirmed, entities.OrderProcessing,
		entities.OrderShipped, entities.OrderDelivered, entities.OrderCancelled:
		return true
	default:
		return false
	}
}
