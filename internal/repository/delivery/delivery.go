package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const requestColumns = `id, order_id, partner_id, vendor_id, status,
		pickup_address, delivery_address, fee, notes, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, requestModify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error) {
	modifyDB := FromDomainModify(&requestModify)

	query := `
		INSERT INTO delivery_requests
			(order_id, partner_id, vendor_id, status, pickup_address, delivery_address, fee, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + requestColumns

	var requestDB DeliveryRequestDB
	err := r.querier.QueryRow(
		ctx,
		query,
		modifyDB.OrderID,
		modifyDB.PartnerID,
		modifyDB.VendorID,
		modifyDB.Status,
		modifyDB.PickupAddress,
		modifyDB.DeliveryAddress,
		modifyDB.Fee,
		modifyDB.Notes,
	).Scan(
		&requestDB.ID,
		&requestDB.OrderID,
		&requestDB.PartnerID,
		&requestDB.VendorID,
		&requestDB.Status,
		&requestDB.PickupAddress,
		&requestDB.DeliveryAddress,
		&requestDB.Fee,
		&requestDB.Notes,
		&requestDB.CreatedAt,
		&requestDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

func (r *Repository) GetForPartner(ctx context.Context, requestID, partnerID int64) (*entities.DeliveryRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM delivery_requests
		WHERE id = $1 AND partner_id = $2`

	var requestDB DeliveryRequestDB
	err := r.querier.QueryRow(ctx, query, requestID, partnerID).Scan(
		&requestDB.ID,
		&requestDB.OrderID,
		&requestDB.PartnerID,
		&requestDB.VendorID,
		&requestDB.Status,
		&requestDB.PickupAddress,
		&requestDB.DeliveryAddress,
		&requestDB.Fee,
		&requestDB.Notes,
		&requestDB.CreatedAt,
		&requestDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrRequestNotFoundOrProcessed
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

func (r *Repository) ListByPartner(ctx context.Context, partnerID int64, status *entities.DeliveryStatusType) ([]entities.DeliveryRequest, error) {
	builder := qb.
		Select("id", "order_id", "partner_id", "vendor_id", "status",
			"pickup_address", "delivery_address", "fee", "notes", "created_at", "updated_at").
		From("delivery_requests").
		Where(sq.Eq{"partner_id": partnerID}).
		OrderBy("created_at DESC")

	// опциональный фильтр по статусу
	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	requestModels := make([]DeliveryRequestDB, 0, 8)
	for rows.Next() {
		var requestDB DeliveryRequestDB
		err := rows.Scan(
			&requestDB.ID,
			&requestDB.OrderID,
			&requestDB.PartnerID,
			&requestDB.VendorID,
			&requestDB.Status,
			&requestDB.PickupAddress,
			&requestDB.DeliveryAddress,
			&requestDB.Fee,
			&requestDB.Notes,
			&requestDB.CreatedAt,
			&requestDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		requestModels = append(requestModels, requestDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToDomainList(requestModels), nil
}

// UpdateStatusFrom - условный переход статуса: строка обновляется
// только если сейчас находится в статусе from и принадлежит партнёру.
// Повторный или чужой вызов не находит строку и возвращает
// ErrRequestNotFoundOrProcessed.
func (r *Repository) UpdateStatusFrom(ctx context.Context, requestID, partnerID int64, from, to entities.DeliveryStatusType) (*entities.DeliveryRequest, error) {
	query := `
		UPDATE delivery_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND partner_id = $3 AND status = $4
		RETURNING ` + requestColumns

	var requestDB DeliveryRequestDB
	err := r.querier.QueryRow(ctx, query, to.String(), requestID, partnerID, from.String()).Scan(
		&requestDB.ID,
		&requestDB.OrderID,
		&requestDB.PartnerID,
		&requestDB.VendorID,
		&requestDB.Status,
		&requestDB.PickupAddress,
		&requestDB.DeliveryAddress,
		&requestDB.Fee,
		&requestDB.Notes,
		&requestDB.CreatedAt,
		&requestDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrRequestNotFoundOrProcessed
		}
		return nil, fmt.Errorf("unexpected delivery repository update status error: %w", err)
	}

	return ToDomain(&requestDB), nil
}
