package pos

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"crackershop/internal/domain/catalog"
	"crackershop/internal/domain/order"
)

var (
	ErrEmptyCart      = errors.New("cart has no items")
	ErrUnknownProduct = errors.New("unknown product in cart")
)

// CartLine is one scanned product at the counter.
type CartLine struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type CheckoutRequest struct {
	CustomerName string     `json:"customerName"`
	Phone        string     `json:"phone"`
	City         string     `json:"city"`
	Lines        []CartLine `json:"lines" validate:"required,min=1,dive"`
	PaymentMode  string     `json:"paymentMode" validate:"required,oneof=Cash UPI Bank"`
	DeliveryType string     `json:"deliveryType"`
}

// StockDeductor takes sold quantities out of inventory after a sale.
type StockDeductor interface {
	DeductForSale(ctx context.Context, productID string, quantity int, ref string) error
}

type Service struct {
	products *catalog.Service
	orders   *order.Service
	stock    StockDeductor
}

func NewService(products *catalog.Service, orders *order.Service, stock StockDeductor) *Service {
	return &Service{products: products, orders: orders, stock: stock}
}

// Checkout prices the cart from the catalog, records an order and
// deducts stock. Lines carry MRP, the gap down to selling price becomes
// the discount, and GST is added per product rate, so the receipt
// arithmetic stays total = subtotal - discount + tax.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*order.Order, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	inputs := make([]order.ItemInput, 0, len(req.Lines))
	discount := decimal.Zero
	tax := decimal.Zero

	for _, line := range req.Lines {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				return nil, ErrUnknownProduct
			}
			return nil, err
		}

		qty := decimal.NewFromInt(int64(line.Quantity))
		selling := decimal.NewFromFloat(p.SellingPrice)
		mrp := decimal.NewFromFloat(p.MRP)

		if mrp.GreaterThan(selling) {
			discount = discount.Add(mrp.Sub(selling).Mul(qty))
		}
		gstRate := decimal.NewFromFloat(p.GSTPercentage).Div(decimal.NewFromInt(100))
		tax = tax.Add(selling.Mul(qty).Mul(gstRate))

		unit := p.MRP
		if unit < p.SellingPrice {
			unit = p.SellingPrice
		}
		inputs = append(inputs, order.ItemInput{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Price:       unit,
		})
	}

	items, subtotal, err := order.PriceItems(inputs)
	if err != nil {
		return nil, err
	}
	discount = discount.Round(2)
	tax = tax.Round(2)
	total := order.Totals(subtotal, discount, tax)

	subF, _ := subtotal.Float64()
	discF, _ := discount.Float64()
	taxF, _ := tax.Float64()
	totalF, _ := total.Float64()

	deliveryType := order.DeliveryType(req.DeliveryType)
	if deliveryType == "" {
		deliveryType = order.DeliveryPickup
	}
	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Walk-in"
	}

	o := &order.Order{
		CustomerName: customerName,
		Phone:        req.Phone,
		City:         req.City,
		Items:        items,
		Subtotal:     subF,
		Discount:     discF,
		Tax:          taxF,
		TotalAmount:  totalF,
		PaymentMode:  order.PaymentMode(req.PaymentMode),
		DeliveryType: deliveryType,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	// Stock deduction is advisory: the sale already happened at the
	// counter, a failed deduction must not unwind it.
	if s.stock != nil {
		for _, line := range req.Lines {
			if err := s.stock.DeductForSale(ctx, line.ProductID, line.Quantity, o.OrderNo); err != nil {
				log.Printf("event=pos_stock_deduct_failed order=%s product=%s error=%v", o.OrderNo, line.ProductID, err)
			}
		}
	}

	return o, nil
}
