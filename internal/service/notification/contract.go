//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
	List(ctx context.Context, filter ListFilter) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, recipientID int64, readAt time.Time) error
	MarkAllRead(ctx context.Context, recipientID int64, readAt time.Time) (int64, error)
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*entities.NotificationPreference, error)
	Create(ctx context.Context, preference entities.NotificationPreference) (*entities.NotificationPreference, error)
	Update(ctx context.Context, preference entities.NotificationPreference) (*entities.NotificationPreference, error)
}

type TemplateRepository interface {
	GetActiveByType(ctx context.Context, notificationType entities.NotificationType) (*entities.NotificationTemplate, error)
	Upsert(ctx context.Context, template entities.NotificationTemplate) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

// UnreadCache - кэш счётчика непрочитанных. Промах и ошибка кэша
// равнозначны: сервис падает обратно на COUNT по базе.
type UnreadCache interface {
	Get(ctx context.Context, userID int64) (int64, error)
	Set(ctx context.Context, userID, count int64) error
	Invalidate(ctx context.Context, userID int64) error
}

// ListFilter - фильтры списка уведомлений. OnlyUnread и OnlyRead
// взаимоисключающие, оба false = без фильтра по статусу.
type ListFilter struct {
	RecipientID int64
	Type        *entities.NotificationType
	OnlyUnread  bool
	OnlyRead    bool
	Limit       int64
	Offset      int64
}
