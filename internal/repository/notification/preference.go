package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/notification"
)

const preferenceColumns = `user_id,
		email_order_updates, email_delivery_updates, email_payment_updates,
		email_group_buying, email_system_announcements,
		push_order_updates, push_delivery_updates, push_payment_updates,
		push_group_buying, push_system_announcements,
		in_app_order_updates, in_app_delivery_updates, in_app_payment_updates,
		in_app_group_buying, in_app_system_announcements,
		created_at, updated_at`

type PreferenceRepository struct {
	querier Querier
}

func NewPreferenceRepository(querier Querier) *PreferenceRepository {
	return &PreferenceRepository{
		querier: querier,
	}
}

func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID int64) (*entities.NotificationPreference, error) {
	query := `
		SELECT ` + preferenceColumns + `
		FROM notification_preferences
		WHERE user_id = $1`

	var preferenceDB PreferenceDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(preferenceScanTargets(&preferenceDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("unexpected preference repository get error: %w", err)
	}

	return ToPreferenceDomain(&preferenceDB), nil
}

func (r *PreferenceRepository) Create(ctx context.Context, preference entities.NotificationPreference) (*entities.NotificationPreference, error) {
	query := `
		INSERT INTO notification_preferences (` + preferenceFieldList + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + preferenceColumns

	var preferenceDB PreferenceDB
	err := r.querier.QueryRow(ctx, query, preferenceArgs(preference)...).
		Scan(preferenceScanTargets(&preferenceDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, notification.ErrPreferenceExists
		}
		return nil, fmt.Errorf("unexpected preference repository create error: %w", err)
	}

	return ToPreferenceDomain(&preferenceDB), nil
}

// Update перезаписывает все 15 флагов целиком.
func (r *PreferenceRepository) Update(ctx context.Context, preference entities.NotificationPreference) (*entities.NotificationPreference, error) {
	query := `
		UPDATE notification_preferences
		SET email_order_updates = $2, email_delivery_updates = $3, email_payment_updates = $4,
			email_group_buying = $5, email_system_announcements = $6,
			push_order_updates = $7, push_delivery_updates = $8, push_payment_updates = $9,
			push_group_buying = $10, push_system_announcements = $11,
			in_app_order_updates = $12, in_app_delivery_updates = $13, in_app_payment_updates = $14,
			in_app_group_buying = $15, in_app_system_announcements = $16,
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + preferenceColumns

	var preferenceDB PreferenceDB
	err := r.querier.QueryRow(ctx, query, preferenceArgs(preference)...).
		Scan(preferenceScanTargets(&preferenceDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("unexpected preference repository update error: %w", err)
	}

	return ToPreferenceDomain(&preferenceDB), nil
}

const preferenceFieldList = `user_id,
		email_order_updates, email_delivery_updates, email_payment_updates,
		email_group_buying, email_system_announcements,
		push_order_updates, push_delivery_updates, push_payment_updates,
		push_group_buying, push_system_announcements,
		in_app_order_updates, in_app_delivery_updates, in_app_payment_updates,
		in_app_group_buying, in_app_system_announcements`

func preferenceArgs(p entities.NotificationPreference) []interface{} {
	return []interface{}{
		p.UserID,
		p.EmailOrderUpdates, p.EmailDeliveryUpdates, p.EmailPaymentUpdates,
		p.EmailGroupBuying, p.EmailSystemAnnouncements,
		p.PushOrderUpdates, p.PushDeliveryUpdates, p.PushPaymentUpdates,
		p.PushGroupBuying, p.PushSystemAnnouncements,
		p.InAppOrderUpdates, p.InAppDeliveryUpdates, p.InAppPaymentUpdates,
		p.InAppGroupBuying, p.InAppSystemAnnouncements,
	}
}

func preferenceScanTargets(p *PreferenceDB) []interface{} {
	return []interface{}{
		&p.UserID,
		&p.EmailOrderUpdates, &p.EmailDeliveryUpdates, &p.EmailPaymentUpdates,
		&p.EmailGroupBuying, &p.EmailSystemAnnouncements,
		&p.PushOrderUpdates, &p.PushDeliveryUpdates, &p.PushPaymentUpdates,
		&p.PushGroupBuying, &p.PushSystemAnnouncements,
		&p.InAppOrderUpdates, &p.InAppDeliveryUpdates, &p.InAppPaymentUpdates,
		&p.InAppGroupBuying, &p.InAppSystemAnnouncements,
		&p.CreatedAt, &p.UpdatedAt,
	}
}
