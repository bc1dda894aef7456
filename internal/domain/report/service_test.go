package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crackershop/internal/database"
	"crackershop/internal/domain/inventory"
	"crackershop/internal/domain/lead"
	"crackershop/internal/domain/order"
)

type reportFixture struct {
	svc    *Service
	orders *order.Service
	leads  *lead.Repository
	stock  *inventory.Service
}

func setupReports(t *testing.T) *reportFixture {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db,
		&lead.Lead{}, &order.Order{},
		&inventory.StockItem{}, &inventory.StockAdjustment{},
	))

	orderRepo := order.NewRepository(db)
	require.NoError(t, orderRepo.EnsureIndexes())
	leadRepo := lead.NewRepository(db)
	stockRepo := inventory.NewRepository(db)

	return &reportFixture{
		svc:    NewService(orderRepo, leadRepo, stockRepo),
		orders: order.NewService(orderRepo, nil, nil),
		leads:  leadRepo,
		stock:  inventory.NewService(stockRepo),
	}
}

func seedOrder(t *testing.T, f *reportFixture, total float64, mode order.PaymentMode) *order.Order {
	t.Helper()

	o := &order.Order{
		CustomerName: "Ravi",
		Phone:        "9876511111",
		Items: order.ItemList{
			{ProductID: "p1", ProductName: "Sparkler", Quantity: 10, Price: total / 10, Total: total},
		},
		Subtotal:    total,
		TotalAmount: total,
		PaymentMode: mode,
	}
	require.NoError(t, f.orders.Create(context.Background(), o))
	return o
}

func TestSalesSummary(t *testing.T) {
	f := setupReports(t)
	ctx := context.Background()

	seedOrder(t, f, 500, order.PaymentCash)
	seedOrder(t, f, 1500, order.PaymentUPI)
	cancelled := seedOrder(t, f, 9999, order.PaymentCash)
	_, err := f.orders.UpdateStatus(ctx, cancelled.ID, order.StatusCancelled)
	require.NoError(t, err)

	summary, err := f.svc.Sales(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)

	// cancelled orders count toward the status breakdown, not revenue
	assert.Equal(t, 2, summary.OrderCount)
	assert.InDelta(t, 2000.0, summary.Revenue, 0.001)
	assert.Equal(t, 1, summary.ByPaymentMode[string(order.PaymentCash)])
	assert.Equal(t, 1, summary.ByPaymentMode[string(order.PaymentUPI)])
	assert.Equal(t, 2, summary.ByStatus[string(order.StatusPending)])
	assert.Equal(t, 1, summary.ByStatus[string(order.StatusCancelled)])
	require.NotEmpty(t, summary.TopProducts)
	assert.Equal(t, "Sparkler", summary.TopProducts[0].ProductName)
}

func TestSalesSummaryDateWindow(t *testing.T) {
	f := setupReports(t)
	ctx := context.Background()

	seedOrder(t, f, 500, order.PaymentCash)

	past, err := f.svc.Sales(ctx, time.Time{}, time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, 0, past.OrderCount)

	current, err := f.svc.Sales(ctx, time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, current.OrderCount)
}

func TestLeadFunnel(t *testing.T) {
	f := setupReports(t)
	ctx := context.Background()
	now := time.Now()

	stages := []lead.Stage{
		lead.StageNew, lead.StageNew, lead.StageContacted,
		lead.StageConverted, lead.StageRejected,
	}
	for i, stage := range stages {
		require.NoError(t, f.leads.Create(ctx, &lead.Lead{
			ID: string(rune('a' + i)), CustomerName: "n", Phone: "p",
			LeadSource: lead.SourceWebsite, LeadStatus: stage,
			CreatedAt: now, UpdatedAt: now,
		}))
	}

	funnel, err := f.svc.LeadFunnel(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, funnel.Total)
	assert.Equal(t, 1, funnel.Converted)
	assert.Equal(t, 1, funnel.Rejected)
	// 1 converted out of 4 non-rejected
	assert.InDelta(t, 25.0, funnel.ConversionRate, 0.001)

	byStage := map[lead.Stage]int{}
	for _, s := range funnel.Stages {
		byStage[s.Stage] = s.Count
	}
	assert.Equal(t, 2, byStage[lead.StageNew])
	assert.Equal(t, 1, byStage[lead.StageContacted])
}

func TestLeadFunnelEmpty(t *testing.T) {
	f := setupReports(t)

	funnel, err := f.svc.LeadFunnel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, funnel.Total)
	assert.Zero(t, funnel.ConversionRate)
}

func TestStockReport(t *testing.T) {
	f := setupReports(t)
	ctx := context.Background()

	require.NoError(t, f.stock.CreateItem(ctx, &inventory.StockItem{
		SKU: "SAFE", CurrentStock: 200, MinAllowedStock: 30, LegalLimit: 400, ReorderLevel: 20,
	}))
	require.NoError(t, f.stock.CreateItem(ctx, &inventory.StockItem{
		SKU: "LOW", CurrentStock: 10, MinAllowedStock: 30, LegalLimit: 400, ReorderLevel: 20,
	}))
	require.NoError(t, f.stock.CreateItem(ctx, &inventory.StockItem{
		SKU: "OVER", CurrentStock: 450, MinAllowedStock: 30, LegalLimit: 400, ReorderLevel: 20,
	}))

	r, err := f.svc.Stock(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Items)
	assert.Equal(t, 660, r.TotalUnits)
	require.Len(t, r.LowStock, 1)
	assert.Equal(t, "LOW", r.LowStock[0].SKU)
	require.Len(t, r.OverLegalLimit, 1)
	assert.Equal(t, "OVER", r.OverLegalLimit[0].SKU)
}
