package order

import "errors"

var (
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidPartnerID      = errors.New("invalid delivery partner id")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrMissingPaymentData    = errors.New("missing payment confirmation data")
	ErrInvalidGatewayOrderID = errors.New("invalid gateway order id")

	ErrEmptyCart           = errors.New("cart is empty")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNumberConflict = errors.New("order number already taken")
	ErrSignatureMismatch   = errors.New("payment signature verification failed")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrUndefinedStatus     = errors.New("undefined order status")
)
