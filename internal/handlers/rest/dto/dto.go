// Package dto - транспортные структуры REST-слоя. Деньги сериализуются
// строками с двумя знаками, как их отдаёт и принимает шлюз.
package dto

import (
	"time"

	"marketplace/internal/entities"
)

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type SupplierPayload struct {
	PlaceID   string  `json:"place_id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Rating    float64 `json:"rating"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ProductPayload struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type CartItemAdd struct {
	Supplier SupplierPayload `json:"supplier"`
	Product  ProductPayload  `json:"product"`
	Quantity int64           `json:"quantity"`
}

type CartItemUpdate struct {
	Quantity int64 `json:"quantity"`
}

type CartItem struct {
	ID         int64  `json:"id"`
	ProductID  int64  `json:"product_id"`
	SupplierID int64  `json:"supplier_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
	Unit       string `json:"unit"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
}

type Cart struct {
	ID         int64      `json:"id"`
	Items      []CartItem `json:"items"`
	TotalItems int64      `json:"total_items"`
	Subtotal   string     `json:"subtotal"`
}

type CartCountResponse struct {
	Count int64 `json:"count"`
}

type PaymentConfirmation struct {
	GatewayOrderID string `json:"gateway_order_id"`
	PaymentID      string `json:"payment_id"`
	Signature      string `json:"signature"`
}

type CheckoutRequest struct {
	PartnerID       int64                `json:"partner_id"`
	DeliveryAddress string               `json:"delivery_address"`
	Notes           string               `json:"notes"`
	PaymentMethod   string               `json:"payment_method"`
	Payment         *PaymentConfirmation `json:"payment,omitempty"`
}

type PaymentOrderResponse struct {
	GatewayOrderID string `json:"gateway_order_id"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
}

type Order struct {
	ID              int64     `json:"id"`
	OrderNumber     string    `json:"order_number"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentMethod   string    `json:"payment_method"`
	CustomerName    string    `json:"customer_name"`
	DeliveryAddress string    `json:"delivery_address"`
	Subtotal        string    `json:"subtotal"`
	DeliveryFee     string    `json:"delivery_fee"`
	Tax             string    `json:"tax"`
	TotalAmount     string    `json:"total_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

type OrderItem struct {
	ID         int64  `json:"id"`
	ProductID  int64  `json:"product_id"`
	SupplierID int64  `json:"supplier_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
}

type OrderDetail struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type DeliveryRequest struct {
	ID              int64     `json:"id"`
	OrderID         int64     `json:"order_id"`
	VendorID        int64     `json:"vendor_id"`
	Status          string    `json:"status"`
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	Fee             string    `json:"fee"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Notification struct {
	ID         int64                  `json:"id"`
	Sender     *int64                 `json:"sender_id,omitempty"`
	Type       string                 `json:"type"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Priority   string                 `json:"priority"`
	EntityKind *string                `json:"entity_kind,omitempty"`
	EntityID   *int64                 `json:"entity_id,omitempty"`
	ActionURL  *string                `json:"action_url,omitempty"`
	IsRead     bool                   `json:"is_read"`
	ReadAt     *time.Time             `json:"read_at,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

type NotificationCountResponse struct {
	Unread int64 `json:"unread"`
}

type NotificationsReadAllResponse struct {
	Marked int64 `json:"marked"`
}

type NotificationPreferences struct {
	EmailOrderUpdates        bool `json:"email_order_updates"`
	EmailDeliveryUpdates     bool `json:"email_delivery_updates"`
	EmailPaymentUpdates      bool `json:"email_payment_updates"`
	EmailGroupBuying         bool `json:"email_group_buying"`
	EmailSystemAnnouncements bool `json:"email_system_announcements"`

	PushOrderUpdates        bool `json:"push_order_updates"`
	PushDeliveryUpdates     bool `json:"push_delivery_updates"`
	PushPaymentUpdates      bool `json:"push_payment_updates"`
	PushGroupBuying         bool `json:"push_group_buying"`
	PushSystemAnnouncements bool `json:"push_system_announcements"`

	InAppOrderUpdates        bool `json:"in_app_order_updates"`
	InAppDeliveryUpdates     bool `json:"in_app_delivery_updates"`
	InAppPaymentUpdates      bool `json:"in_app_payment_updates"`
	InAppGroupBuying         bool `json:"in_app_group_buying"`
	InAppSystemAnnouncements bool `json:"in_app_system_announcements"`
}

func NewCart(view *entities.CartView) Cart {
	items := make([]CartItem, len(view.Lines))
	for i, line := range view.Lines {
		items[i] = CartItem{
			ID:         line.Item.ID,
			ProductID:  line.Item.ProductID,
			SupplierID: line.SupplierID,
			Name:       line.ProductName,
			Quantity:   line.Item.Quantity,
			Unit:       line.Unit,
			UnitPrice:  line.UnitPrice.StringFixed(2),
			TotalPrice: line.Total().StringFixed(2),
		}
	}

	return Cart{
		ID:         view.Cart.ID,
		Items:      items,
		TotalItems: view.TotalItems,
		Subtotal:   view.Subtotal.StringFixed(2),
	}
}

func NewOrder(order *entities.Order) Order {
	return Order{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		Status:          order.Status.String(),
		PaymentStatus:   order.Payment.String(),
		PaymentMethod:   order.PaymentMethod,
		CustomerName:    order.CustomerName,
		DeliveryAddress: order.DeliveryAddress,
		Subtotal:        order.Subtotal.StringFixed(2),
		DeliveryFee:     order.DeliveryFee.StringFixed(2),
		Tax:             order.Tax.StringFixed(2),
		TotalAmount:     order.TotalAmount.StringFixed(2),
		CreatedAt:       order.CreatedAt,
	}
}

func NewOrderItems(items []entities.OrderItem) []OrderItem {
	result := make([]OrderItem, len(items))
	for i, item := range items {
		result[i] = OrderItem{
			ID:         item.ID,
			ProductID:  item.ProductID,
			SupplierID: item.SupplierID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.StringFixed(2),
			TotalPrice: item.TotalPrice.StringFixed(2),
		}
	}

	return result
}

func NewDeliveryRequest(request *entities.DeliveryRequest) DeliveryRequest {
	return DeliveryRequest{
		ID:              request.ID,
		OrderID:         request.OrderID,
		VendorID:        request.VendorID,
		Status:          request.Status.String(),
		PickupAddress:   request.PickupAddress,
		DeliveryAddress: request.DeliveryAddress,
		Fee:             request.Fee.StringFixed(2),
		Notes:           request.Notes,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}
}

func NewNotification(notification *entities.Notification) Notification {
	var kind *string
	if notification.EntityKind != nil {
		value := string(*notification.EntityKind)
		kind = &value
	}

	return Notification{
		ID:         notification.ID,
		Sender:     notification.Sender,
		Type:       notification.Type.String(),
		Title:      notification.Title,
		Message:    notification.Message,
		Priority:   notification.Priority.String(),
		EntityKind: kind,
		EntityID:   notification.EntityID,
		ActionURL:  notification.ActionURL,
		IsRead:     notification.IsRead,
		ReadAt:     notification.ReadAt,
		Metadata:   notification.Metadata,
		CreatedAt:  notification.CreatedAt,
	}
}

func NewNotificationPreferences(preference *entities.NotificationPreference) NotificationPreferences {
	return NotificationPreferences{
		EmailOrderUpdates:        preference.EmailOrderUpdates,
		EmailDeliveryUpdates:     preference.EmailDeliveryUpdates,
		EmailPaymentUpdates:      preference.EmailPaymentUpdates,
		EmailGroupBuying:         preference.EmailGroupBuying,
		EmailSystemAnnouncements: preference.EmailSystemAnnouncements,

		PushOrderUpdates:        preference.PushOrderUpdates,
		PushDeliveryUpdates:     preference.PushDeliveryUpdates,
		PushPaymentUpdates:      preference.PushPaymentUpdates,
		PushGroupBuying:         preference.PushGroupBuying,
		PushSystemAnnouncements: preference.PushSystemAnnouncements,

		InAppOrderUpdates:        preference.InAppOrderUpdates,
		InAppDeliveryUpdates:     preference.InAppDeliveryUpdates,
		InAppPaymentUpdates:      preference.InAppPaymentUpdates,
		InAppGroupBuying:         preference.InAppGroupBuying,
		InAppSystemAnnouncements: preference.InAppSystemAnnouncements,
	}
}

// ToEntity - полная перезапись: флаги, не присланные клиентом,
// декодируются как false и сохраняются как false.
func (p NotificationPreferences) ToEntity(userID int64) entities.NotificationPreference {
	return entities.NotificationPreference{
		UserID: userID,

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
	}
}
