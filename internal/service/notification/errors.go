package notification

import "errors"

var (
	ErrInvalidRecipient = errors.New("invalid recipient")
	ErrInvalidType      = errors.New("invalid notification type")
	ErrInvalidFilter    = errors.New("invalid list filter")

	ErrNotificationNotFound = errors.New("notification not found")
	ErrPreferenceNotFound   = errors.New("notification preference not found")
	ErrPreferenceExists     = errors.New("notification preference already exists")
	ErrTemplateNotFound     = errors.New("notification template not found")

	ErrCacheMiss = errors.New("unread count cache miss")
)
