package notifications_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/internal/service/notification"
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
	recipientID, ok := identity.UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	filter := notification.ListFilter{
		RecipientID: recipientID,
		OnlyUnread:  query.Get("unread") == "true",
		OnlyRead:    query.Get("read") == "true",
	}

	if raw := query.Get("type"); raw != "" {
		value := entities.NotificationType(raw)
		filter.Type = &value
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.Offset = offset
	}

	notifications, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidRecipient),
			errors.Is(err, notification.ErrInvalidFilter):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	notificationDTOs := make([]dto.Notification, len(notifications))
	for i := range notifications {
		notificationDTOs[i] = dto.NewNotification(&notifications[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(notificationDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
