package notification

import "marketplace/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}
	notificationEntity := &entities.Notification{
		ID:        n.ID,
		Recipient: n.Recipient,
		Sender:    n.Sender,
		Type:      entities.NotificationType(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Priority:  entities.PriorityType(n.Priority),
		EntityID:  n.EntityID,
		ActionURL: n.ActionURL,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt,
	}
	if n.EntityKind != nil {
		kind := entities.EntityKind(*n.EntityKind)
		notificationEntity.EntityKind = &kind
	}
	return notificationEntity
}

func ToDomainList(models []NotificationDB) []entities.Notification {
	result := make([]entities.Notification, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}

func FromDomain(n *entities.Notification) *NotificationDB {
	if n == nil {
		return nil
	}
	notificationDB := &NotificationDB{
		ID:        n.ID,
		Recipient: n.Recipient,
		Sender:    n.Sender,
		Type:      n.Type.String(),
		Title:     n.Title,
		Message:   n.Message,
		Priority:  n.Priority.String(),
		EntityID:  n.EntityID,
		ActionURL: n.ActionURL,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt,
	}
	if n.EntityKind != nil {
		kind := string(*n.EntityKind)
		notificationDB.EntityKind = &kind
	}
	return notificationDB
}

func ToPreferenceDomain(p *PreferenceDB) *entities.NotificationPreference {
	if p == nil {
		return nil
	}
	return &entities.NotificationPreference{
		UserID: p.UserID,

		EmailOrderUpdates:        p.EmailOrderUpdates,
		EmailDeliveryUpdates:     p.EmailDeliveryUpdates,
		EmailPaymentUpdates:      p.EmailPaymentUpdates,
		EmailGroupBuying:         p.EmailGroupBuying,
		EmailSystemAnnouncements: p.EmailSystemAnnouncements,

		PushOrderUpdates:        p.PushOrderUpdates,
		PushDeliveryUpdates:     p.PushDeliveryUpdates,
		PushPaymentUpdates:      p.PushPaymentUpdates,
		PushGroupBuying:         p.PushGroupBuying,
		PushSystemAnnouncements: p.PushSystemAnnouncements,

		InAppOrderUpdates:        p.InAppOrderUpdates,
		InAppDeliveryUpdates:     p.InAppDeliveryUpdates,
		InAppPaymentUpdates:      p.InAppPaymentUpdates,
		InAppGroupBuying:         p.InAppGroupBuying,
		InAppSystemAnnouncements: p.InAppSystemAnnouncements,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToTemplateDomain(t *TemplateDB) *entities.NotificationTemplate {
	if t == nil {
		return nil
	}
	return &entities.NotificationTemplate{
		ID:              t.ID,
		Type:            entities.NotificationType(t.Type),
		TitleTemplate:   t.TitleTemplate,
		MessageTemplate: t.MessageTemplate,
		VariablesHelp:   t.VariablesHelp,
		IsActive:        t.IsActive,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
