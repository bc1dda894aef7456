package order

import (
	"github.com/shopspring/decimal"
)

// ItemInput is a line before pricing: product reference, quantity and
// unit price.
type ItemInput struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
	Price       float64 `json:"price" validate:"gte=0"`
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PriceItems computes line totals and the subtotal. Quantities below one
// are rejected; all arithmetic is decimal so the invariant
// total = subtotal − discount + tax holds to the paisa.
func PriceItems(inputs []ItemInput) ([]Item, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, ErrNoItems
	}

	items := make([]Item, 0, len(inputs))
	subtotal := decimal.Zero

	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, decimal.Zero, ErrInvalidQuantity
		}
		price := decimal.NewFromFloat(in.Price)
		lineTotal := round2(price.Mul(decimal.NewFromInt(int64(in.Quantity))))
		subtotal = subtotal.Add(lineTotal)

		total, _ := lineTotal.Float64()
		items = append(items, Item{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			Price:       in.Price,
			Total:       total,
		})
	}

	return items, round2(subtotal), nil
}

// Totals applies discount and tax to a subtotal.
func Totals(subtotal, discount, tax decimal.Decimal) decimal.Decimal {
	return round2(subtotal.Sub(discount).Add(tax))
}
