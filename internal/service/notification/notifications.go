package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

const defaultListLimit = 20

// List возвращает уведомления получателя, новые первыми.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]entities.Notification, error) {
	if filter.RecipientID <= 0 {
		return nil, ErrInvalidRecipient
	}
	if filter.OnlyUnread && filter.OnlyRead {
		return nil, ErrInvalidFilter
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	notifications, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, notificationID, recipientID int64) error {
	if recipientID <= 0 {
		return ErrInvalidRecipient
	}
	if notificationID <= 0 {
		return ErrNotificationNotFound
	}

	err := s.repository.MarkRead(ctx, notificationID, recipientID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}

	s.invalidateUnread(ctx, recipientID)
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	if recipientID <= 0 {
		return 0, ErrInvalidRecipient
	}

	marked, err := s.repository.MarkAllRead(ctx, recipientID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	s.invalidateUnread(ctx, recipientID)
	return marked, nil
}

// UnreadCount отдаёт счётчик из кэша; на промахе или ошибке кэша
// считает по базе и прогревает кэш.
func (s *Service) UnreadCount(ctx context.Context, recipientID int64) (int64, error) {
	if recipientID <= 0 {
		return 0, ErrInvalidRecipient
	}

	count, err := s.unreadCache.Get(ctx, recipientID)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.log.With(
			logger.NewField("user", recipientID),
			logger.NewField("error", err),
		).Warn("unread cache read failed")
	}

	count, err = s.repository.CountUnread(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}

	if err := s.unreadCache.Set(ctx, recipientID, count); err != nil {
		s.log.With(
			logger.NewField("user", recipientID),
			logger.NewField("error", err),
		).Warn("unread cache write failed")
	}

	return count, nil
}

// CleanupOld удаляет уведомления старше retention. Используется
// фоновой задачей.
func (s *Service) CleanupOld(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("invalid retention %s", retention)
	}

	cutoff := time.Now().UTC().Add(-retention)
	deleted, err := s.repository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}
	return deleted, nil
}
