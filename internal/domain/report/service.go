package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"crackershop/internal/domain/inventory"
	"crackershop/internal/domain/lead"
	"crackershop/internal/domain/order"
)

// SalesSummary aggregates orders within a date range.
type SalesSummary struct {
	From          string             `json:"from,omitempty"`
	To            string             `json:"to,omitempty"`
	OrderCount    int                `json:"orderCount"`
	Revenue       float64            `json:"revenue"`
	TotalDiscount float64            `json:"totalDiscount"`
	TotalTax      float64            `json:"totalTax"`
	ByPaymentMode map[string]int     `json:"byPaymentMode"`
	ByStatus      map[string]int     `json:"byStatus"`
	TopProducts   []ProductSaleCount `json:"topProducts"`
}

type ProductSaleCount struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// Funnel shows how many leads sit at each pipeline stage and the
// overall conversion rate, converted / total non-rejected.
type Funnel struct {
	Stages         []FunnelStage `json:"stages"`
	Total          int           `json:"total"`
	Converted      int           `json:"converted"`
	Rejected       int           `json:"rejected"`
	ConversionRate float64       `json:"conversionRate"`
}

type FunnelStage struct {
	Stage lead.Stage `json:"stage"`
	Count int        `json:"count"`
}

// StockReport summarizes inventory health.
type StockReport struct {
	Items          int                   `json:"items"`
	TotalUnits     int                   `json:"totalUnits"`
	LowStock       []inventory.StockItem `json:"lowStock"`
	OverLegalLimit []inventory.StockItem `json:"overLegalLimit"`
}

type Service struct {
	orders *order.Repository
	leads  *lead.Repository
	stock  *inventory.Repository
}

func NewService(orders *order.Repository, leads *lead.Repository, stock *inventory.Repository) *Service {
	return &Service{orders: orders, leads: leads, stock: stock}
}

// Sales builds a sales summary for the given window. Zero times mean
// an open end.
func (s *Service) Sales(ctx context.Context, from, to time.Time) (*SalesSummary, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &SalesSummary{
		ByPaymentMode: map[string]int{},
		ByStatus:      map[string]int{},
	}
	if !from.IsZero() {
		out.From = from.Format("2006-01-02")
	}
	if !to.IsZero() {
		out.To = to.Format("2006-01-02")
	}

	revenue := decimal.Zero
	discount := decimal.Zero
	tax := decimal.Zero
	byProduct := map[string]*ProductSaleCount{}
	productOrder := []string{}

	for _, o := range orders {
		if !from.IsZero() && o.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !o.CreatedAt.Before(to) {
			continue
		}
		out.ByStatus[string(o.Status)]++
		if o.Status == order.StatusCancelled {
			continue
		}

		out.OrderCount++
		out.ByPaymentMode[string(o.PaymentMode)]++
		revenue = revenue.Add(decimal.NewFromFloat(o.TotalAmount))
		discount = discount.Add(decimal.NewFromFloat(o.Discount))
		tax = tax.Add(decimal.NewFromFloat(o.Tax))

		for _, item := range o.Items {
			p, ok := byProduct[item.ProductID]
			if !ok {
				p = &ProductSaleCount{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = p
				productOrder = append(productOrder, item.ProductID)
			}
			p.Quantity += item.Quantity
			p.Revenue += item.Total
		}
	}

	out.Revenue, _ = revenue.Round(2).Float64()
	out.TotalDiscount, _ = discount.Round(2).Float64()
	out.TotalTax, _ = tax.Round(2).Float64()

	top := make([]ProductSaleCount, 0, len(productOrder))
	for _, id := range productOrder {
		top = append(top, *byProduct[id])
	}
	// simple selection by quantity, lists are small
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			if top[j].Quantity > top[i].Quantity {
				top[i], top[j] = top[j], top[i]
			}
		}
	}
	if len(top) > 5 {
		top = top[:5]
	}
	out.TopProducts = top

	return out, nil
}

// LeadFunnel counts leads per stage and derives the conversion rate.
func (s *Service) LeadFunnel(ctx context.Context) (*Funnel, error) {
	counts, err := s.leads.CountByStage(ctx)
	if err != nil {
		return nil, err
	}

	f := &Funnel{}
	for _, stage := range lead.Stages() {
		n := counts[stage]
		f.Stages = append(f.Stages, FunnelStage{Stage: stage, Count: n})
		f.Total += n
		switch stage {
		case lead.StageConverted:
			f.Converted = n
		case lead.StageRejected:
			f.Rejected = n
		}
	}
	if base := f.Total - f.Rejected; base > 0 {
		rate := decimal.NewFromInt(int64(f.Converted)).
			Div(decimal.NewFromInt(int64(base))).
			Mul(decimal.NewFromInt(100)).Round(2)
		f.ConversionRate, _ = rate.Float64()
	}
	return f, nil
}

// Stock reports inventory totals and the items needing attention.
func (s *Service) Stock(ctx context.Context) (*StockReport, error) {
	items, err := s.stock.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &StockReport{
		LowStock:       []inventory.StockItem{},
		OverLegalLimit: []inventory.StockItem{},
	}
	for _, item := range items {
		out.Items++
		out.TotalUnits += item.CurrentStock
		switch item.ComputeStatus() {
		case inventory.StatusWarning, inventory.StatusCritical:
			out.LowStock = append(out.LowStock, item)
		case inventory.StatusOverstock:
			out.OverLegalLimit = append(out.OverLegalLimit, item)
		}
	}
	return out, nil
}
