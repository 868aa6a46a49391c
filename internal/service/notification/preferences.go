package notification

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

// GetPreferences возвращает настройки пользователя, создавая запись
// со значениями по умолчанию при первом обращении.
func (s *Service) GetPreferences(ctx context.Context, userID int64) (*entities.NotificationPreference, error) {
	if userID <= 0 {
		return nil, ErrInvalidRecipient
	}

	preference, err := s.resolvePreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve preferences: %w", err)
	}
	return preference, nil
}

// UpdatePreferences перезаписывает все флаги целиком.
func (s *Service) UpdatePreferences(ctx context.Context, preference entities.NotificationPreference) (*entities.NotificationPreference, error) {
	if preference.UserID <= 0 {
		return nil, ErrInvalidRecipient
	}

	// Строка могла ещё не существовать: для новых пользователей она
	// создаётся лениво.
	if _, err := s.resolvePreference(ctx, preference.UserID); err != nil {
		return nil, fmt.Errorf("resolve preferences: %w", err)
	}

	updated, err := s.preferences.Update(ctx, preference)
	if err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}
	return updated, nil
}
