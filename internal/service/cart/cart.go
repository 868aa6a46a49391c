package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

const (
	defaultUnit     = "kg"
	defaultCategory = "general"
)

// SupplierPayload - снапшот поставщика из клиентского payload.
// Идентичность определяет place_id; при его отсутствии подставляется
// временный ключ от имени.
type SupplierPayload struct {
	PlaceID   string
	Name      string
	Address   string
	Phone     string
	Rating    float64
	Latitude  float64
	Longitude float64
}

type ProductPayload struct {
	Name        string
	Price       decimal.Decimal
	Unit        string
	Category    string
	Description string
	ImageURL    string
}

type AddItemRequest struct {
	Supplier SupplierPayload
	Product  ProductPayload
	Quantity int64
}

type Service struct {
	repository Repository
	catalog    CatalogRepository
	txManager  TxManager
}

func New(repository Repository, catalog CatalogRepository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		catalog:    catalog,
		txManager:  txManager,
	}
}

// View - корзина владельца с позициями и итогами. Корзина заводится
// лениво при первом обращении.
func (s *Service) View(ctx context.Context, owner entities.CartOwner) (*entities.CartView, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}

	cart, err := s.repository.GetOrCreate(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	lines, err := s.repository.ListLines(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}

	view := &entities.CartView{
		Cart:     *cart,
		Lines:    lines,
		Subtotal: decimal.Zero,
	}
	for _, line := range lines {
		view.TotalItems += line.Item.Quantity
		view.Subtotal = view.Subtotal.Add(line.Total())
	}
	return view, nil
}

// AddItem апсертит поставщика и товар из payload, затем добавляет
// позицию: повторное добавление того же товара увеличивает количество.
func (s *Service) AddItem(ctx context.Context, owner entities.CartOwner, req AddItemRequest) (*entities.CartView, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}
	if err := validateAddItem(req); err != nil {
		return nil, err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		supplier, err := s.catalog.UpsertSupplier(ctx, supplierRecord(req.Supplier))
		if err != nil {
			return fmt.Errorf("upsert supplier: %w", err)
		}

		product, err := s.catalog.UpsertProduct(ctx, productRecord(supplier.ID, req.Product))
		if err != nil {
			return fmt.Errorf("upsert product: %w", err)
		}

		cart, err := s.repository.GetOrCreate(ctx, owner)
		if err != nil {
			return fmt.Errorf("get cart: %w", err)
		}

		if _, err := s.repository.AddItem(ctx, cart.ID, product.ID, req.Quantity); err != nil {
			return fmt.Errorf("add cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.View(ctx, owner)
}

// UpdateItem меняет количество позиции; нулевое и отрицательное
// количество удаляет её.
func (s *Service) UpdateItem(ctx context.Context, owner entities.CartOwner, itemID, quantity int64) (*entities.CartView, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}
	if itemID <= 0 {
		return nil, ErrInvalidItemID
	}

	cart, err := s.repository.GetOrCreate(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	if quantity <= 0 {
		if err := s.repository.DeleteItem(ctx, cart.ID, itemID); err != nil {
			return nil, fmt.Errorf("delete cart item: %w", err)
		}
	} else {
		if _, err := s.repository.SetQuantity(ctx, cart.ID, itemID, quantity); err != nil {
			return nil, fmt.Errorf("set cart item quantity: %w", err)
		}
	}

	return s.View(ctx, owner)
}

func (s *Service) RemoveItem(ctx context.Context, owner entities.CartOwner, itemID int64) (*entities.CartView, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}
	if itemID <= 0 {
		return nil, ErrInvalidItemID
	}

	cart, err := s.repository.GetOrCreate(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	if err := s.repository.DeleteItem(ctx, cart.ID, itemID); err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}

	return s.View(ctx, owner)
}

func (s *Service) Count(ctx context.Context, owner entities.CartOwner) (int64, error) {
	view, err := s.View(ctx, owner)
	if err != nil {
		return 0, err
	}
	return view.TotalItems, nil
}

func (s *Service) Clear(ctx context.Context, owner entities.CartOwner) error {
	if err := validateOwner(owner); err != nil {
		return err
	}

	cart, err := s.repository.GetOrCreate(ctx, owner)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}

	if err := s.repository.Clear(ctx, cart.ID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func supplierRecord(payload SupplierPayload) entities.Supplier {
	placeID := payload.PlaceID
	if placeID == "" {
		placeID = fmt.Sprintf("temp_%s", payload.Name)
	}
	name := payload.Name
	if name == "" {
		name = "Unknown Supplier"
	}

	return entities.Supplier{
		PlaceID:   placeID,
		Name:      name,
		Address:   payload.Address,
		Phone:     payload.Phone,
		Rating:    payload.Rating,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
	}
}

func productRecord(supplierID int64, payload ProductPayload) entities.Product {
	unit := payload.Unit
	if unit == "" {
		unit = defaultUnit
	}
	category := payload.Category
	if category == "" {
		category = defaultCategory
	}

	return entities.Product{
		SupplierID:  supplierID,
		Name:        payload.Name,
		Price:       payload.Price,
		Unit:        unit,
		Category:    category,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		InStock:     true,
	}
}
