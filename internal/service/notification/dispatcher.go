package notification

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// Outcome - явный результат диспетчеризации, чтобы вызывающий код
// и тесты могли различать "отправлено" и "подавлено настройками".
type Outcome string

const (
	OutcomeSent       Outcome = "sent"
	OutcomeSuppressed Outcome = "suppressed"
	OutcomeFailed     Outcome = "failed"
)

type DispatchResult struct {
	Outcome      Outcome
	Notification *entities.Notification
}

type DispatchRequest struct {
	Recipient int64
	Sender    *int64
	Type      entities.NotificationType

	// Title/Message переопределяют шаблон, если заданы оба либо по отдельности.
	Title   string
	Message string

	Entity    *entities.RelatedEntity
	ActionURL string
	Priority  entities.PriorityType
	Metadata  map[string]interface{}
}

type Service struct {
	log         logger.Logger
	repository  Repository
	preferences PreferenceRepository
	templates   TemplateRepository
	users       UserReader
	unreadCache UnreadCache
}

func New(
	log logger.Logger,
	repository Repository,
	preferences PreferenceRepository,
	templates TemplateRepository,
	users UserReader,
	unreadCache UnreadCache,
) *Service {
	return &Service{
		log:         log.With(),
		repository:  repository,
		preferences: preferences,
		templates:   templates,
		users:       users,
		unreadCache: unreadCache,
	}
}

// Dispatch решает, создавать ли уведомление для получателя, и создаёт его.
// Порядок фиксированный: настройки до рендеринга, чтобы не рендерить зря.
func (s *Service) Dispatch(ctx context.Context, req DispatchRequest) (DispatchResult, error) {
	if req.Recipient <= 0 {
		return DispatchResult{Outcome: OutcomeFailed}, ErrInvalidRecipient
	}
	if req.Type == "" {
		return DispatchResult{Outcome: OutcomeFailed}, ErrInvalidType
	}

	preference, err := s.resolvePreference(ctx, req.Recipient)
	if err != nil {
		return DispatchResult{Outcome: OutcomeFailed}, fmt.Errorf("resolve preference: %w", err)
	}

	if !preference.InAppEnabled(entities.CategoryOf(req.Type)) {
		return DispatchResult{Outcome: OutcomeSuppressed}, nil
	}

	title, message := req.Title, req.Message
	if title == "" || message == "" {
		renderedTitle, renderedMessage, err := s.resolveContent(ctx, req)
		if err != nil {
			return DispatchResult{Outcome: OutcomeFailed}, fmt.Errorf("resolve content: %w", err)
		}
		if title == "" {
			title = renderedTitle
		}
		if message == "" {
			message = renderedMessage
		}
	}

	actionURL := req.ActionURL
	if actionURL == "" && req.Entity != nil {
		actionURL = actionURLFor(*req.Entity)
	}

	priority := req.Priority
	if priority == "" {
		priority = entities.DefaultPriority
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	record := entities.Notification{
		Recipient: req.Recipient,
		Sender:    req.Sender,
		Type:      req.Type,
		Title:     title,
		Message:   message,
		Priority:  priority,
		Metadata:  metadata,
	}
	if req.Entity != nil {
		kind := req.Entity.Kind
		id := req.Entity.ID
		record.EntityKind = &kind
		record.EntityID = &id
	}
	if actionURL != "" {
		record.ActionURL = &actionURL
	}

	created, err := s.repository.Create(ctx, record)
	if err != nil {
		return DispatchResult{Outcome: OutcomeFailed}, fmt.Errorf("create notification: %w", err)
	}

	s.invalidateUnread(ctx, req.Recipient)

	return DispatchResult{Outcome: OutcomeSent, Notification: created}, nil
}

// resolvePreference читает настройки получателя, лениво создавая
// строку с дефолтами при первом обращении.
func (s *Service) resolvePreference(ctx context.Context, userID int64) (*entities.NotificationPreference, error) {
	preference, err := s.preferences.GetByUserID(ctx, userID)
	if err == nil {
		return preference, nil
	}
	if !errors.Is(err, ErrPreferenceNotFound) {
		return nil, err
	}

	created, err := s.preferences.Create(ctx, entities.DefaultPreference(userID))
	if err != nil {
		// гонка двух первых диспетчеризаций: строку уже создали
		if errors.Is(err, ErrPreferenceExists) {
			return s.preferences.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) invalidateUnread(ctx context.Context, userID int64) {
	if err := s.unreadCache.Invalidate(ctx, userID); err != nil {
		s.log.With(
			logger.NewField("user", userID),
			logger.NewField("error", err),
		).Warn("invalidate unread cache")
	}
}
