package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, user_id, order_number, status, payment_status,
		customer_name, customer_email, customer_phone, delivery_address,
		subtotal, delivery_fee, tax, total_amount,
		payment_method, gateway_order_id, gateway_payment_id,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders
			(user_id, order_number, status, payment_status,
			customer_name, customer_email, customer_phone, delivery_address,
			subtotal, delivery_fee, tax, total_amount,
			payment_method, gateway_order_id, gateway_payment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.UserID,
		orderEntity.OrderNumber,
		orderEntity.Status.String(),
		orderEntity.Payment.String(),
		orderEntity.CustomerName,
		orderEntity.CustomerEmail,
		orderEntity.CustomerPhone,
		orderEntity.DeliveryAddress,
		orderEntity.Subtotal,
		orderEntity.DeliveryFee,
		orderEntity.Tax,
		orderEntity.TotalAmount,
		orderEntity.PaymentMethod,
		nullifyEmpty(orderEntity.GatewayOrderID),
		nullifyEmpty(orderEntity.GatewayPaymentID),
	).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrOrderNumberConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) CreateItems(ctx context.Context, items []entities.OrderItem) ([]entities.OrderItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	builder := qb.
		Insert("order_items").
		Columns("order_id", "product_id", "supplier_id", "name", "quantity", "unit_price", "total_price").
		Suffix("RETURNING id, order_id, product_id, supplier_id, name, quantity, unit_price, total_price")

	for _, item := range items {
		builder = builder.Values(
			item.OrderID,
			item.ProductID,
			item.SupplierID,
			item.Name,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]OrderItemDB, 0, len(items))
	for rows.Next() {
		var itemDB OrderItemDB
		err := rows.Scan(
			&itemDB.ID,
			&itemDB.OrderID,
			&itemDB.ProductID,
			&itemDB.SupplierID,
			&itemDB.Name,
			&itemDB.Quantity,
			&itemDB.UnitPrice,
			&itemDB.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
		}
		itemModels = append(itemModels, itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	return ToItemDomainList(itemModels), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID int64) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE gateway_order_id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, gatewayOrderID).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get by gateway id error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		if err := rows.Scan(scanTargets(&orderDB)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) ListItems(ctx context.Context, orderID int64) ([]entities.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, supplier_id, name, quantity, unit_price, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]OrderItemDB, 0, 8)
	for rows.Next() {
		var itemDB OrderItemDB
		err := rows.Scan(
			&itemDB.ID,
			&itemDB.OrderID,
			&itemDB.ProductID,
			&itemDB.SupplierID,
			&itemDB.Name,
			&itemDB.Quantity,
			&itemDB.UnitPrice,
			&itemDB.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
		}
		itemModels = append(itemModels, itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
	}

	return ToItemDomainList(itemModels), nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	modifyDB := FromDomainModify(&orderModify)

	builder := qb.
		Update("orders")

	// опциональные поля
	if modifyDB.Status != nil {
		builder = builder.Set("status", modifyDB.Status)
	}
	if modifyDB.PaymentStatus != nil {
		builder = builder.Set("payment_status", modifyDB.PaymentStatus)
	}
	if modifyDB.GatewayOrderID != nil {
		builder = builder.Set("gateway_order_id", modifyDB.GatewayOrderID)
	}
	if modifyDB.GatewayPaymentID != nil {
		builder = builder.Set("gateway_payment_id", modifyDB.GatewayPaymentID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modifyDB.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.UserID,
		&o.OrderNumber,
		&o.Status,
		&o.PaymentStatus,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.DeliveryAddress,
		&o.Subtotal,
		&o.DeliveryFee,
		&o.Tax,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.GatewayOrderID,
		&o.GatewayPaymentID,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}

func nullifyEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
