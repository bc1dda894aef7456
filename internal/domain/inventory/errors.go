package inventory

import "errors"

var (
	ErrStockNotFound     = errors.New("stock item not found")
	ErrInvalidAdjustment = errors.New("invalid adjustment type")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrZeroQuantity      = errors.New("adjustment quantity must be non-zero")
)
