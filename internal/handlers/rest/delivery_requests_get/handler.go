package delivery_requests_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/internal/service/delivery"
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
	partnerID, ok := identity.UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var status *entities.DeliveryStatusType
	if raw := r.URL.Query().Get("status"); raw != "" {
		value := entities.DeliveryStatusType(raw)
		status = &value
	}

	requests, err := h.service.ListForPartner(r.Context(), partnerID, status)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidPartnerID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	requestDTOs := make([]dto.DeliveryRequest, len(requests))
	for i := range requests {
		requestDTOs[i] = dto.NewDeliveryRequest(&requests[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(requestDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
