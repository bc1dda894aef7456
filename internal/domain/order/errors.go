package order

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrNoItems             = errors.New("order must have at least one item")
	ErrInvalidQuantity     = errors.New("item quantity must be at least 1")
	ErrInvalidStatus       = errors.New("unknown order status")
	ErrIllegalTransition   = errors.New("illegal order status transition")
	ErrLeadAlreadyHasOrder = errors.New("lead already has an order")
)
