package cart

import "errors"

var (
	ErrInvalidOwner    = errors.New("cart owner must be either user id or session key")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidItemID   = errors.New("invalid cart item id")
	ErrInvalidProduct  = errors.New("invalid product payload")
	ErrItemNotFound    = errors.New("cart item not found")
)
