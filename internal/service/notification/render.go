package notification

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// resolveContent возвращает заголовок и текст уведомления.
// Три яруса деградации: активный шаблон -> зашитый дефолт типа ->
// общий fallback для неизвестного типа. Отсутствие шаблона никогда
// не блокирует доставку.
func (s *Service) resolveContent(ctx context.Context, req DispatchRequest) (string, string, error) {
	template, err := s.templates.GetActiveByType(ctx, req.Type)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			title, message := defaultContent(req.Type)
			return title, message, nil
		}
		return "", "", fmt.Errorf("get template: %w", err)
	}

	vars, err := s.templateVars(ctx, req)
	if err != nil {
		return "", "", err
	}

	title, titleErr := renderTemplate(template.TitleTemplate, vars)
	message, messageErr := renderTemplate(template.MessageTemplate, vars)
	if titleErr != nil || messageErr != nil {
		// битый шаблон в БД - деградируем до дефолта
		s.log.With(
			logger.NewField("type", req.Type.String()),
			logger.NewField("title_error", titleErr),
			logger.NewField("message_error", messageErr),
		).Warn("malformed notification template, falling back to default")
		title, message = defaultContent(req.Type)
	}
	return title, message, nil
}

func (s *Service) templateVars(ctx context.Context, req DispatchRequest) (map[string]string, error) {
	vars := map[string]string{
		"recipient_name": "",
		"sender_name":    "",
	}

	recipient, err := s.users.GetByID(ctx, req.Recipient)
	if err != nil {
		return nil, fmt.Errorf("get recipient %d: %w", req.Recipient, err)
	}
	vars["recipient_name"] = recipient.DisplayName()

	if req.Sender != nil {
		sender, err := s.users.GetByID(ctx, *req.Sender)
		if err != nil {
			return nil, fmt.Errorf("get sender %d: %w", *req.Sender, err)
		}
		vars["sender_name"] = sender.DisplayName()
	}

	if entity := req.Entity; entity != nil {
		vars["object_id"] = strconv.FormatInt(entity.ID, 10)
		if entity.OrderNumber != "" {
			vars["order_number"] = entity.OrderNumber
		}
		if entity.Amount != nil {
			vars["amount"] = entity.Amount.StringFixed(2)
		}
	}

	return vars, nil
}

// renderTemplate подставляет {{variable}} из vars. Неизвестные
// переменные заменяются пустой строкой, пробелы внутри скобок
// допустимы ({{ order_number }}).
func renderTemplate(template string, vars map[string]string) (string, error) {
	return fasttemplate.ExecuteFuncStringWithErr(template, "{{", "}}",
		func(w io.Writer, tag string) (int, error) {
			value, ok := vars[strings.TrimSpace(tag)]
			if !ok {
				return 0, nil
			}
			return io.WriteString(w, value)
		})
}

// actionURLFor - явный выбор URL по виду сущности вместо прощупывания
// атрибутов. Для неизвестного вида URL не выводится.
func actionURLFor(entity entities.RelatedEntity) string {
	switch entity.Kind {
	case entities.KindOrder:
		return fmt.Sprintf("/orders/%d/", entity.ID)
	case entities.KindDeliveryRequest:
		return fmt.Sprintf("/delivery/requests/%d/", entity.ID)
	case entities.KindGroupSession:
		return fmt.Sprintf("/groupbuying/sessions/%d/", entity.ID)
	default:
		return ""
	}
}
