package notification

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const notificationColumns = `id, recipient_id, sender_id, type, title, message, priority,
		entity_kind, entity_id, action_url, is_read, read_at, metadata, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error) {
	notificationDB := FromDomain(&notificationEntity)

	query := `
		INSERT INTO notifications
			(recipient_id, sender_id, type, title, message, priority,
			entity_kind, entity_id, action_url, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + notificationColumns

	var created NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		notificationDB.Recipient,
		notificationDB.Sender,
		notificationDB.Type,
		notificationDB.Title,
		notificationDB.Message,
		notificationDB.Priority,
		notificationDB.EntityKind,
		notificationDB.EntityID,
		notificationDB.ActionURL,
		notificationDB.Metadata,
	).Scan(scanTargets(&created)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) List(ctx context.Context, filter notification.ListFilter) ([]entities.Notification, error) {
	builder := qb.
		Select("id", "recipient_id", "sender_id", "type", "title", "message", "priority",
			"entity_kind", "entity_id", "action_url", "is_read", "read_at", "metadata", "created_at").
		From("notifications").
		Where(sq.Eq{"recipient_id": filter.RecipientID}).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	// опциональные фильтры
	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": filter.Type.String()})
	}
	if filter.OnlyUnread {
		builder = builder.Where(sq.Eq{"is_read": false})
	}
	if filter.OnlyRead {
		builder = builder.Where(sq.Eq{"is_read": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, filter.Limit)
	for rows.Next() {
		var notificationDB NotificationDB
		if err := rows.Scan(scanTargets(&notificationDB)...); err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notificationModels = append(notificationModels, notificationDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}

func (r *Repository) MarkRead(ctx context.Context, id, recipientID int64, readAt time.Time) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = $1
		WHERE id = $2 AND recipient_id = $3 AND is_read = FALSE`

	result, err := r.querier.Exec(ctx, query, readAt, id, recipientID)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) MarkAllRead(ctx context.Context, recipientID int64, readAt time.Time) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = $1
		WHERE recipient_id = $2 AND is_read = FALSE`

	result, err := r.querier.Exec(ctx, query, readAt, recipientID)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository mark all read error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE recipient_id = $1 AND is_read = FALSE`

	var count int64
	err := r.querier.QueryRow(ctx, query, recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository count unread error: %w", err)
	}

	return count, nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM notifications
		WHERE created_at < $1`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository delete older error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanTargets(n *NotificationDB) []interface{} {
	return []interface{}{
		&n.ID,
		&n.Recipient,
		&n.Sender,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Priority,
		&n.EntityKind,
		&n.EntityID,
		&n.ActionURL,
		&n.IsRead,
		&n.ReadAt,
		&n.Metadata,
		&n.CreatedAt,
	}
}
