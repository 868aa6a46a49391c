package cart_item_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
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

	var itemDTO dto.CartItemAdd
	err := json.NewDecoder(r.Body).Decode(&itemDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	price, err := decimal.NewFromString(itemDTO.Product.Price)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	addRequest := cart.AddItemRequest{
		Supplier: cart.SupplierPayload{
			PlaceID:   itemDTO.Supplier.PlaceID,
			Name:      itemDTO.Supplier.Name,
			Address:   itemDTO.Supplier.Address,
			Phone:     itemDTO.Supplier.Phone,
			Rating:    itemDTO.Supplier.Rating,
			Latitude:  itemDTO.Supplier.Latitude,
			Longitude: itemDTO.Supplier.Longitude,
		},
		Product: cart.ProductPayload{
			Name:        itemDTO.Product.Name,
			Price:       price,
			Unit:        itemDTO.Product.Unit,
			Category:    itemDTO.Product.Category,
			Description: itemDTO.Product.Description,
			ImageURL:    itemDTO.Product.ImageURL,
		},
		Quantity: itemDTO.Quantity,
	}

	view, err := h.service.AddItem(r.Context(), owner, addRequest)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidOwner),
			errors.Is(err, cart.ErrInvalidQuantity),
			errors.Is(err, cart.ErrInvalidProduct):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewCart(view)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
