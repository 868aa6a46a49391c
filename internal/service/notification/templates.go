package notification

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// seedTemplates - базовый набор шаблонов. SeedTemplates приводит
// таблицу к этому набору, пользовательские правки перезаписываются.
var seedTemplates = []entities.NotificationTemplate{
	{
		Type:            entities.NotifyOrderPlaced,
		TitleTemplate:   "Order Placed Successfully",
		MessageTemplate: "Your order #{{ order_number }} has been placed successfully. Total amount: ₹{{ amount }}",
		VariablesHelp:   "Available variables: order_number, amount, recipient_name",
	},
	{
		Type:            entities.NotifyOrderConfirmed,
		TitleTemplate:   "Order Confirmed",
		MessageTemplate: "Great news! Your order #{{ order_number }} has been confirmed and is being processed.",
		VariablesHelp:   "Available variables: order_number, recipient_name",
	},
	{
		Type:            entities.NotifyOrderShipped,
		TitleTemplate:   "Order Shipped",
		MessageTemplate: "Your order #{{ order_number }} has been shipped and is on its way to you!",
		VariablesHelp:   "Available variables: order_number, recipient_name",
	},
	{
		Type:            entities.NotifyOrderDelivered,
		TitleTemplate:   "Order Delivered",
		MessageTemplate: "Your order #{{ order_number }} has been delivered successfully. Thank you for choosing StreetEats Connect!",
		VariablesHelp:   "Available variables: order_number, recipient_name",
	},
	{
		Type:            entities.NotifyOrderCancelled,
		TitleTemplate:   "Order Cancelled",
		MessageTemplate: "Your order #{{ order_number }} has been cancelled. If you have any questions, please contact support.",
		VariablesHelp:   "Available variables: order_number, recipient_name",
	},
	{
		Type:            entities.NotifyDeliveryRequest,
		TitleTemplate:   "New Delivery Request",
		MessageTemplate: "You have a new delivery request from {{ sender_name }}. Please check the details and respond.",
		VariablesHelp:   "Available variables: sender_name, recipient_name, object_id",
	},
	{
		Type:            entities.NotifyDeliveryAccepted,
		TitleTemplate:   "Delivery Request Accepted",
		MessageTemplate: "{{ sender_name }} has accepted your delivery request. Your order will be delivered soon!",
		VariablesHelp:   "Available variables: sender_name, recipient_name",
	},
	{
		Type:            entities.NotifyDeliveryRejected,
		TitleTemplate:   "Delivery Request Declined",
		MessageTemplate: "{{ sender_name }} has declined your delivery request. Please try another delivery partner.",
		VariablesHelp:   "Available variables: sender_name, recipient_name",
	},
	{
		Type:            entities.NotifyDeliveryCompleted,
		TitleTemplate:   "Delivery Completed",
		MessageTemplate: "Your delivery has been completed successfully by {{ sender_name }}.",
		VariablesHelp:   "Available variables: sender_name, recipient_name",
	},
	{
		Type:            entities.NotifyAvailabilityUpdate,
		TitleTemplate:   "Delivery Partner Available",
		MessageTemplate: "{{ sender_name }} is now available for delivery in your area. Book now for fast delivery!",
		VariablesHelp:   "Available variables: sender_name, recipient_name",
	},
	{
		Type:            entities.NotifyPaymentReceived,
		TitleTemplate:   "Payment Received",
		MessageTemplate: "We have received your payment of ₹{{ amount }}. Thank you!",
		VariablesHelp:   "Available variables: amount, recipient_name",
	},
	{
		Type:            entities.NotifyPaymentFailed,
		TitleTemplate:   "Payment Failed",
		MessageTemplate: "Your payment of ₹{{ amount }} could not be processed. Please try again or use a different payment method.",
		VariablesHelp:   "Available variables: amount, recipient_name",
	},
	{
		Type:            entities.NotifyGroupBuyingStarted,
		TitleTemplate:   "Group Buying Session Started",
		MessageTemplate: "A new group buying session has started. Join now to get better prices!",
		VariablesHelp:   "Available variables: recipient_name",
	},
	{
		Type:            entities.NotifyGroupBuyingJoined,
		TitleTemplate:   "Someone Joined Your Group",
		MessageTemplate: "{{ sender_name }} has joined your group buying session. More participants mean better prices!",
		VariablesHelp:   "Available variables: sender_name, recipient_name",
	},
	{
		Type:            entities.NotifyGroupBuyingCompleted,
		TitleTemplate:   "Group Buying Completed",
		MessageTemplate: "Your group buying session has been completed successfully. Check your orders for details.",
		VariablesHelp:   "Available variables: recipient_name",
	},
	{
		Type:            entities.NotifySystemAnnouncement,
		TitleTemplate:   "System Announcement",
		MessageTemplate: "Important update from StreetEats Connect team.",
		VariablesHelp:   "Available variables: recipient_name",
	},
	{
		Type:            entities.NotifyProfileUpdate,
		TitleTemplate:   "Profile Update Required",
		MessageTemplate: "Please update your profile information to continue using our services.",
		VariablesHelp:   "Available variables: recipient_name",
	},
	{
		Type:            entities.NotifyVerificationComplete,
		TitleTemplate:   "Account Verified",
		MessageTemplate: "Congratulations! Your account has been successfully verified. You can now access all features.",
		VariablesHelp:   "Available variables: recipient_name",
	},
}

// SeedTemplates идемпотентно записывает базовые шаблоны. Вызывается
// при старте сервиса после миграций.
func (s *Service) SeedTemplates(ctx context.Context) error {
	for _, template := range seedTemplates {
		template.IsActive = true
		if err := s.templates.Upsert(ctx, template); err != nil {
			return fmt.Errorf("seed template %q: %w", template.Type, err)
		}
	}

	s.log.With(logger.NewField("count", len(seedTemplates))).Info("notification templates seeded")
	return nil
}
