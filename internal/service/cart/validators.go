package cart

import (
	"strings"

	"marketplace/internal/entities"
)

func validateOwner(owner entities.CartOwner) error {
	if !owner.IsValid() {
		return ErrInvalidOwner
	}
	return nil
}

func validateAddItem(req AddItemRequest) error {
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if strings.TrimSpace(req.Product.Name) == "" {
		return ErrInvalidProduct
	}
	if req.Product.Price.IsNegative() {
		return ErrInvalidProduct
	}
	return nil
}
