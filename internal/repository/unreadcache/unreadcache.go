package unreadcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"marketplace/internal/service/notification"
)

const defaultTTL = 5 * time.Minute

// Cache - счётчик непрочитанных уведомлений в redis. Промах
// транслируется в notification.ErrCacheMiss, сервис в этом случае
// считает по базе и прогревает ключ заново.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client) *Cache {
	return &Cache{
		client: client,
		ttl:    defaultTTL,
	}
}

func key(userID int64) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

func (c *Cache) Get(ctx context.Context, userID int64) (int64, error) {
	count, err := c.client.Get(ctx, key(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, notification.ErrCacheMiss
		}
		return 0, fmt.Errorf("unexpected unread cache get error: %w", err)
	}
	return count, nil
}

func (c *Cache) Set(ctx context.Context, userID, count int64) error {
	err := c.client.Set(ctx, key(userID), count, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("unexpected unread cache set error: %w", err)
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context, userID int64) error {
	err := c.client.Del(ctx, key(userID)).Err()
	if err != nil {
		return fmt.Errorf("unexpected unread cache invalidate error: %w", err)
	}
	return nil
}
