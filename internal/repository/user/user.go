package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
)

var ErrUserNotFound = errors.New("user not found")

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository - read-only доступ к пользователям: регистрация и
// аутентификация живут в отдельном сервисе, сюда строки попадают
// извне.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, phone, type, created_at, updated_at
		FROM users
		WHERE id = $1`

	var userEntity entities.User
	var userType string
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&userEntity.ID,
		&userEntity.Username,
		&userEntity.FirstName,
		&userEntity.LastName,
		&userEntity.Email,
		&userEntity.Phone,
		&userType,
		&userEntity.CreatedAt,
		&userEntity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	userEntity.Type = entities.UserType(userType)
	return &userEntity, nil
}
