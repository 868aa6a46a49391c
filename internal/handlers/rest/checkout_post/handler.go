package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/internal/service/cart"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var checkoutDTO dto.CheckoutRequest
	err := json.NewDecoder(r.Body).Decode(&checkoutDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	checkoutRequest := order.CheckoutRequest{
		UserID:          userID,
		PartnerID:       checkoutDTO.PartnerID,
		DeliveryAddress: checkoutDTO.DeliveryAddress,
		Notes:           checkoutDTO.Notes,
		PaymentMethod:   checkoutDTO.PaymentMethod,
	}
	if checkoutDTO.Payment != nil {
		checkoutRequest.Payment = &order.PaymentConfirmation{
			GatewayOrderID: checkoutDTO.Payment.GatewayOrderID,
			PaymentID:      checkoutDTO.Payment.PaymentID,
			Signature:      checkoutDTO.Payment.Signature,
		}
	}

	orderEntity, err := h.service.Checkout(r.Context(), checkoutRequest)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidUserID),
			errors.Is(err, order.ErrInvalidPartnerID),
			errors.Is(err, order.ErrInvalidPaymentMethod),
			errors.Is(err, order.ErrMissingPaymentData),
			errors.Is(err, order.ErrEmptyCart),
			errors.Is(err, order.ErrSignatureMismatch),
			errors.Is(err, cart.ErrInvalidOwner):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNumberConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
