package cart_count_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/internal/service/cart"
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
	owner, ok := identity.Owner(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	count, err := h.service.Count(r.Context(), owner)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidOwner):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CartCountResponse{
		Count: count,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
