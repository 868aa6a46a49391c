package notification

import "time"

type NotificationDB struct {
	ID         int64
	Recipient  int64
	Sender     *int64
	Type       string
	Title      string
	Message    string
	Priority   string
	EntityKind *string
	EntityID   *int64
	ActionURL  *string
	IsRead     bool
	ReadAt     *time.Time
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}

type PreferenceDB struct {
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

type TemplateDB struct {
	ID              int64
	Type            string
	TitleTemplate   string
	MessageTemplate string
	VariablesHelp   string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
