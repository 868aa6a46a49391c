//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_test
package cart

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	GetOrCreate(ctx context.Context, owner entities.CartOwner) (*entities.Cart, error)
	ListLines(ctx context.Context, cartID int64) ([]entities.CartLine, error)
	// AddItem добавляет позицию либо увеличивает количество
	// существующей (upsert по паре cart_id/product_id).
	AddItem(ctx context.Context, cartID, productID, quantity int64) (*entities.CartItem, error)
	// SetQuantity возвращает ErrItemNotFound, если позиция не
	// принадлежит корзине.
	SetQuantity(ctx context.Context, cartID, itemID, quantity int64) (*entities.CartItem, error)
	DeleteItem(ctx context.Context, cartID, itemID int64) error
	Clear(ctx context.Context, cartID int64) error
}

// CatalogRepository - upsert справочника поставщиков и товаров из
// клиентского payload: каталог живёт снаружи, мы храним снапшоты.
type CatalogRepository interface {
	UpsertSupplier(ctx context.Context, supplier entities.Supplier) (*entities.Supplier, error)
	UpsertProduct(ctx context.Context, product entities.Product) (*entities.Product, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
