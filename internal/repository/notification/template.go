package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
)

type TemplateRepository struct {
	querier Querier
}

func NewTemplateRepository(querier Querier) *TemplateRepository {
	return &TemplateRepository{
		querier: querier,
	}
}

func (r *TemplateRepository) GetActiveByType(ctx context.Context, notificationType entities.NotificationType) (*entities.NotificationTemplate, error) {
	query := `
		SELECT id, type, title_template, message_template, variables_help, is_active, created_at, updated_at
		FROM notification_templates
		WHERE type = $1 AND is_active = TRUE`

	var templateDB TemplateDB
	err := r.querier.QueryRow(ctx, query, notificationType.String()).Scan(
		&templateDB.ID,
		&templateDB.Type,
		&templateDB.TitleTemplate,
		&templateDB.MessageTemplate,
		&templateDB.VariablesHelp,
		&templateDB.IsActive,
		&templateDB.CreatedAt,
		&templateDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("unexpected template repository get error: %w", err)
	}

	return ToTemplateDomain(&templateDB), nil
}

// Upsert идемпотентен: существующий шаблон того же типа
// перезаписывается новым содержимым.
func (r *TemplateRepository) Upsert(ctx context.Context, template entities.NotificationTemplate) error {
	query := `
		INSERT INTO notification_templates
			(type, title_template, message_template, variables_help, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (type) DO UPDATE
		SET title_template = EXCLUDED.title_template,
			message_template = EXCLUDED.message_template,
			variables_help = EXCLUDED.variables_help,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()`

	_, err := r.querier.Exec(
		ctx,
		query,
		template.Type.String(),
		template.TitleTemplate,
		template.MessageTemplate,
		template.VariablesHelp,
		template.IsActive,
	)
	if err != nil {
		return fmt.Errorf("unexpected template repository upsert error: %w", err)
	}

	return nil
}
