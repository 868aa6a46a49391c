package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"marketplace/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository - снапшоты внешнего каталога. Строки только
// дополняются: существующий поставщик или товар не перетирается
// данными из очередного payload.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) UpsertSupplier(ctx context.Context, supplier entities.Supplier) (*entities.Supplier, error) {
	query := `
		INSERT INTO suppliers (place_id, name, address, phone, rating, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (place_id) DO UPDATE SET place_id = EXCLUDED.place_id
		RETURNING id, place_id, name, address, phone, rating, latitude, longitude, created_at`

	var found entities.Supplier
	err := r.querier.QueryRow(
		ctx,
		query,
		supplier.PlaceID,
		supplier.Name,
		supplier.Address,
		supplier.Phone,
		supplier.Rating,
		supplier.Latitude,
		supplier.Longitude,
	).Scan(
		&found.ID,
		&found.PlaceID,
		&found.Name,
		&found.Address,
		&found.Phone,
		&found.Rating,
		&found.Latitude,
		&found.Longitude,
		&found.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository upsert supplier error: %w", err)
	}

	return &found, nil
}

func (r *Repository) UpsertProduct(ctx context.Context, product entities.Product) (*entities.Product, error) {
	query := `
		INSERT INTO products (supplier_id, name, price, unit, category, description, image_url, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (supplier_id, name) DO UPDATE SET supplier_id = EXCLUDED.supplier_id
		RETURNING id, supplier_id, name, price, unit, category, description, image_url, in_stock, created_at`

	var found entities.Product
	err := r.querier.QueryRow(
		ctx,
		query,
		product.SupplierID,
		product.Name,
		product.Price,
		product.Unit,
		product.Category,
		product.Description,
		product.ImageURL,
		product.InStock,
	).Scan(
		&found.ID,
		&found.SupplierID,
		&found.Name,
		&found.Price,
		&found.Unit,
		&found.Category,
		&found.Description,
		&found.ImageURL,
		&found.InStock,
		&found.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository upsert product error: %w", err)
	}

	return &found, nil
}
