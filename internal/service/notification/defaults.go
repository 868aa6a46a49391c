package notification

import "marketplace/internal/entities"

type content struct {
	title   string
	message string
}

// Зашитые дефолты на случай отсутствия активного шаблона.
var defaultContents = map[entities.NotificationType]content{
	entities.NotifyOrderPlaced:    {"New Order Placed", "Your order has been placed successfully."},
	entities.NotifyOrderConfirmed: {"Order Confirmed", "Your order has been confirmed."},
	entities.NotifyOrderShipped:   {"Order Shipped", "Your order has been shipped."},
	entities.NotifyOrderDelivered: {"Order Delivered", "Your order has been delivered."},
	entities.NotifyOrderCancelled: {"Order Cancelled", "Your order has been cancelled."},

	entities.NotifyDeliveryRequest:    {"New Delivery Request", "You have a new delivery request."},
	entities.NotifyDeliveryAccepted:   {"Delivery Accepted", "Your delivery request has been accepted."},
	entities.NotifyDeliveryRejected:   {"Delivery Rejected", "Your delivery request has been rejected."},
	entities.NotifyDeliveryCompleted:  {"Delivery Completed", "Delivery has been completed."},
	entities.NotifyAvailabilityUpdate: {"Availability Updated", "Delivery partner availability has been updated."},

	entities.NotifyPaymentReceived: {"Payment Received", "Payment has been received."},
	entities.NotifyPaymentFailed:   {"Payment Failed", "Payment has failed."},

	entities.NotifyGroupBuyingStarted:   {"Group Buying Started", "A new group buying session has started."},
	entities.NotifyGroupBuyingJoined:    {"Someone Joined", "Someone joined your group buying session."},
	entities.NotifyGroupBuyingCompleted: {"Group Buying Completed", "Group buying session has been completed."},

	entities.NotifySystemAnnouncement:   {"System Announcement", "New system announcement."},
	entities.NotifyProfileUpdate:        {"Profile Update", "Please update your profile."},
	entities.NotifyVerificationComplete: {"Verification Complete", "Your account has been verified."},
}

// defaultContent - дефолт для типа, либо общий fallback
// для неизвестного типа.
func defaultContent(notificationType entities.NotificationType) (string, string) {
	if c, ok := defaultContents[notificationType]; ok {
		return c.title, c.message
	}
	return "Notification", "You have a new notification."
}
