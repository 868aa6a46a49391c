package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type NotificationType string

const (
	NotifyOrderPlaced    NotificationType = "order_placed"
	NotifyOrderConfirmed NotificationType = "order_confirmed"
	NotifyOrderShipped   NotificationType = "order_shipped"
	NotifyOrderDelivered NotificationType = "order_delivered"
	NotifyOrderCancelled NotificationType = "order_cancelled"

	NotifyDeliveryRequest    NotificationType = "delivery_request"
	NotifyDeliveryAccepted   NotificationType = "delivery_accepted"
	NotifyDeliveryRejected   NotificationType = "delivery_rejected"
	NotifyDeliveryCompleted  NotificationType = "delivery_completed"
	NotifyAvailabilityUpdate NotificationType = "availability_update"

	NotifyPaymentReceived NotificationType = "payment_received"
	NotifyPaymentFailed   NotificationType = "payment_failed"

	NotifyGroupBuyingStarted   NotificationType = "group_buying_started"
	NotifyGroupBuyingJoined    NotificationType = "group_buying_joined"
	NotifyGroupBuyingCompleted NotificationType = "group_buying_completed"

	NotifySystemAnnouncement   NotificationType = "system_announcement"
	NotifyProfileUpdate        NotificationType = "profile_update"
	NotifyVerificationComplete NotificationType = "verification_complete"
)

func (t NotificationType) String() string {
	return string(t)
}

// NotificationCategory группирует типы уведомлений для настроек пользователя.
type NotificationCategory string

const (
	CategoryOrder       NotificationCategory = "order"
	CategoryDelivery    NotificationCategory = "delivery"
	CategoryPayment     NotificationCategory = "payment"
	CategoryGroupBuying NotificationCategory = "group_buying"
	CategorySystem      NotificationCategory = "system"
)

// CategoryOf - категория типа уведомления. Неизвестные типы
// попадают в системную категорию.
func CategoryOf(t NotificationType) NotificationCategory {
	switch t {
	case NotifyOrderPlaced, NotifyOrderConfirmed, NotifyOrderShipped,
		NotifyOrderDelivered, NotifyOrderCancelled:
		return CategoryOrder
	case NotifyDeliveryRequest, NotifyDeliveryAccepted, NotifyDeliveryRejected,
		NotifyDeliveryCompleted, NotifyAvailabilityUpdate:
		return CategoryDelivery
	case NotifyPaymentReceived, NotifyPaymentFailed:
		return CategoryPayment
	case NotifyGroupBuyingStarted, NotifyGroupBuyingJoined, NotifyGroupBuyingCompleted:
		return CategoryGroupBuying
	default:
		return CategorySystem
	}
}

type PriorityType string

const (
	PriorityLow    PriorityType = "low"
	PriorityMedium PriorityType = "medium"
	PriorityHigh   PriorityType = "high"
	PriorityUrgent PriorityType = "urgent"
)

func (p PriorityType) String() string {
	return string(p)
}

const DefaultPriority = PriorityMedium

// EntityKind - закрытое множество сущностей, на которые может
// ссылаться уведомление. Вместо утиной типизации по атрибутам.
type EntityKind string

const (
	KindOrder           EntityKind = "order"
	KindDeliveryRequest EntityKind = "delivery_request"
	KindGroupSession    EntityKind = "group_session"
)

// RelatedEntity - тегированная ссылка на связанную сущность плюс
// снапшот полей, нужных для подстановки в шаблон. Поля заполняет
// вызывающая сторона, диспетчер ничего не дочитывает из БД.
type RelatedEntity struct {
	Kind        EntityKind
	ID          int64
	OrderNumber string
	Amount      *decimal.Decimal
}

type Notification struct {
	ID         int64
	Recipient  int64
	Sender     *int64
	Type       NotificationType
	Title      string
	Message    string
	Priority   PriorityType
	EntityKind *EntityKind
	EntityID   *int64
	ActionURL  *string
	IsRead     bool
	ReadAt     *time.Time
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}

// NotificationPreference - 15 независимых флагов: 3 канала x 5 категорий.
// Перезаписывается только целиком.
type NotificationPreference struct {
	UserID int64

	EmailOrderUpdates        bool
	EmailDeliveryUpdates     bool
	EmailPaymentUpdates      bool
	EmailGroupBuying         bool
	EmailSystemAnnouncements bool

	PushOrderUpdates        bool
	PushDeliveryUpdates     bool
	PushPaymentUpdates      bool
	PushGroupBuying         bool
	PushSystemAnnouncements bool

	InAppOrderUpdates        bool
	InAppDeliveryUpdates     bool
	InAppPaymentUpdates      bool
	InAppGroupBuying         bool
	InAppSystemAnnouncements bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultPreference - все флаги включены, кроме push-анонсов.
func DefaultPreference(userID int64) NotificationPreference {
	return NotificationPreference{
		UserID: userID,

		EmailOrderUpdates:        true,
		EmailDeliveryUpdates:     true,
		EmailPaymentUpdates:      true,
		EmailGroupBuying:         true,
		EmailSystemAnnouncements: true,

		PushOrderUpdates:        true,
		PushDeliveryUpdates:     true,
		PushPaymentUpdates:      true,
		PushGroupBuying:         true,
		PushSystemAnnouncements: false,

		InAppOrderUpdates:        true,
		InAppDeliveryUpdates:     true,
		InAppPaymentUpdates:      true,
		InAppGroupBuying:         true,
		InAppSystemAnnouncements: true,
	}
}

// InAppEnabled - включена ли in-app доставка для категории.
func (p NotificationPreference) InAppEnabled(category NotificationCategory) bool {
	switch category {
	case CategoryOrder:
		return p.InAppOrderUpdates
	case CategoryDelivery:
		return p.InAppDeliveryUpdates
	case CategoryPayment:
		return p.InAppPaymentUpdates
	case CategoryGroupBuying:
		return p.InAppGroupBuying
	default:
		return p.InAppSystemAnnouncements
	}
}

type NotificationTemplate struct {
	ID              int64
	Type            NotificationType
	TitleTemplate   string
	MessageTemplate string
	VariablesHelp   string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
