package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInactiveProduct = errors.New("product is not active for sale")
)
