package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/internal/service/cart"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type cartDB struct {
	ID         int64
	UserID     *int64
	SessionKey *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *Repository) GetOrCreate(ctx context.Context, owner entities.CartOwner) (*entities.Cart, error) {
	// ON CONFLICT DO UPDATE вместо DO NOTHING, чтобы RETURNING
	// срабатывал и на существующей строке
	query := `
		INSERT INTO carts (user_id, session_key)
		VALUES ($1, $2)
		ON CONFLICT (COALESCE(user_id, 0), COALESCE(session_key, ''))
		DO UPDATE SET updated_at = NOW()
		RETURNING id, user_id, session_key, created_at, updated_at`

	var cartModel cartDB
	err := r.querier.QueryRow(ctx, query, owner.UserID, owner.SessionKey).Scan(
		&cartModel.ID,
		&cartModel.UserID,
		&cartModel.SessionKey,
		&cartModel.CreatedAt,
		&cartModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository get or create error: %w", err)
	}

	return &entities.Cart{
		ID:         cartModel.ID,
		UserID:     cartModel.UserID,
		SessionKey: cartModel.SessionKey,
		CreatedAt:  cartModel.CreatedAt,
		UpdatedAt:  cartModel.UpdatedAt,
	}, nil
}

func (r *Repository) ListLines(ctx context.Context, cartID int64) ([]entities.CartLine, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.added_at,
			p.name, p.supplier_id, p.price, p.unit
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.added_at`

	rows, err := r.querier.Query(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository list lines error: %w", err)
	}
	defer rows.Close()

	lines := make([]entities.CartLine, 0, 8)
	for rows.Next() {
		var (
			line  entities.CartLine
			price decimal.Decimal
		)
		err := rows.Scan(
			&line.Item.ID,
			&line.Item.CartID,
			&line.Item.ProductID,
			&line.Item.Quantity,
			&line.Item.AddedAt,
			&line.ProductName,
			&line.SupplierID,
			&price,
			&line.Unit,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected cart repository list lines error: %w", err)
		}
		line.UnitPrice = price
		lines = append(lines, line)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository list lines error: %w", err)
	}

	return lines, nil
}

func (r *Repository) AddItem(ctx context.Context, cartID, productID, quantity int64) (*entities.CartItem, error) {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, cart_id, product_id, quantity, added_at`

	var item entities.CartItem
	err := r.querier.QueryRow(ctx, query, cartID, productID, quantity).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.AddedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository add item error: %w", err)
	}

	return &item, nil
}

func (r *Repository) SetQuantity(ctx context.Context, cartID, itemID, quantity int64) (*entities.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = $1
		WHERE id = $2 AND cart_id = $3
		RETURNING id, cart_id, product_id, quantity, added_at`

	var item entities.CartItem
	err := r.querier.QueryRow(ctx, query, quantity, itemID, cartID).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.AddedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected cart repository set quantity error: %w", err)
	}

	return &item, nil
}

func (r *Repository) DeleteItem(ctx context.Context, cartID, itemID int64) error {
	query := `
		DELETE FROM cart_items
		WHERE id = $1 AND cart_id = $2`

	result, err := r.querier.Exec(ctx, query, itemID, cartID)
	if err != nil {
		return fmt.Errorf("unexpected cart repository delete item error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context, cartID int64) error {
	query := `
		DELETE FROM cart_items
		WHERE cart_id = $1`

	_, err := r.querier.Exec(ctx, query, cartID)
	if err != nil {
		return fmt.Errorf("unexpected cart repository clear error: %w", err)
	}
	return nil
}
