package lead

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crackershop/internal/database"
	"crackershop/internal/domain/customer"
	"crackershop/internal/domain/order"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &Lead{}, &order.Order{}, &customer.Customer{}))

	orderRepo := order.NewRepository(db)
	require.NoError(t, orderRepo.EnsureIndexes())

	customers := customer.NewService(customer.NewRepository(db))
	orders := order.NewService(orderRepo, customers, nil)
	return NewService(NewRepository(db), orders, nil)
}

func TestCreateAlwaysStartsAtNewLead(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, &CreateLeadRequest{
		CustomerName: "Ravi Kumar",
		Phone:        "9876511111",
		LeadStatus:   string(StageConfirmed), // old form sends this; ignored
	})
	require.NoError(t, err)
	assert.Equal(t, StageNew, l.LeadStatus)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, SourceWebsite, l.LeadSource)
	assert.False(t, l.CreatedAt.IsZero())
	assert.False(t, l.UpdatedAt.IsZero())
}

func TestCreateDefaultsUnknownSourceToWebsite(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, &CreateLeadRequest{
		CustomerName: "Meena", Phone: "111", LeadSource: "Telegram",
	})
	require.NoError(t, err)
	assert.Equal(t, SourceWebsite, l.LeadSource)

	l, err = svc.Create(ctx, &CreateLeadRequest{
		CustomerName: "Arun", Phone: "222", LeadSource: "Walk-in",
	})
	require.NoError(t, err)
	assert.Equal(t, SourceWalkIn, l.LeadSource)
}

func TestAdvanceWalksThePipeline(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, &CreateLeadRequest{CustomerName: "Ravi", Phone: "1"})
	require.NoError(t, err)

	expected := []Stage{StageContacted, StageQuotation, StageNegotiation, StageConfirmed, StageConverted}
	for _, want := range expected {
		l, err = svc.Advance(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, want, l.LeadStatus)
	}

	_, err = svc.Advance(ctx, l.ID)
	assert.ErrorIs(t, err, ErrTerminalStage)
}

func TestUpdateStatusRejectsJumps(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, &CreateLeadRequest{CustomerName: "Ravi", Phone: "1"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, l.ID, StageConfirmed)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = svc.UpdateStatus(ctx, l.ID, Stage("Shipped"))
	assert.ErrorIs(t, err, ErrUnknownStage)

	l, err = svc.UpdateStatus(ctx, l.ID, StageContacted)
	require.NoError(t, err)
	assert.Equal(t, StageContacted, l.LeadStatus)

	// backward moves need the override
	_, err = svc.UpdateStatus(ctx, l.ID, StageNew)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	l, err = svc.OverrideStatus(ctx, l.ID, StageConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StageConfirmed, l.LeadStatus)

	l, err = svc.OverrideStatus(ctx, l.ID, StageNew)
	require.NoError(t, err)
	assert.Equal(t, StageNew, l.LeadStatus)
}

func TestRejectFromAnyNonTerminalStage(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, &CreateLeadRequest{CustomerName: "Ravi", Phone: "1", Notes: "bulk order"})
	require.NoError(t, err)

	l, err = svc.Reject(ctx, l.ID, "price too high")
	require.NoError(t, err)
	assert.Equal(t, StageRejected, l.LeadStatus)
	assert.Contains(t, l.Notes, "bulk order")
	assert.Contains(t, l.Notes, "Rejected: price too high")

	_, err = svc.Reject(ctx, l.ID, "again")
	assert.ErrorIs(t, err, ErrTerminalStage)
}

func confirmLead(t *testing.T, svc *Service, name, phone string) *Lead {
	t.Helper()
	ctx := context.Background()

	l, err := svc.Create(ctx, &CreateLeadRequest{CustomerName: name, Phone: phone, City: "Sivakasi"})
	require.NoError(t, err)
	for l.LeadStatus != StageConfirmed {
		l, err = svc.Advance(ctx, l.ID)
		require.NoError(t, err)
	}
	return l
}

func TestConvertToOrderComputesTotals(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l := confirmLead(t, svc, "Ravi Kumar", "9876511111")

	o, err := svc.ConvertToOrder(ctx, l.ID, &ConvertRequest{
		Items: []order.ItemInput{
			{ProductID: "p1", ProductName: "Sparkler Gold 30cm", Quantity: 500, Price: 45},
		},
		PaymentMode: order.PaymentCash,
	})
	require.NoError(t, err)

	assert.InDelta(t, 22500.0, o.Subtotal, 0.001)
	assert.InDelta(t, 22500.0, o.TotalAmount, 0.001)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, l.ID, o.ConvertedFromLead)
	assert.Equal(t, "Ravi Kumar", o.CustomerName)
	assert.NotEmpty(t, o.OrderNo)

	got, err := svc.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, StageConverted, got.LeadStatus)
}

func TestConvertAppliesDiscountAndTax(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l := confirmLead(t, svc, "Meena Traders", "9876522222")

	o, err := svc.ConvertToOrder(ctx, l.ID, &ConvertRequest{
		Items: []order.ItemInput{
			{ProductID: "p1", ProductName: "Flower Pot Big", Quantity: 10, Price: 190},
			{ProductID: "p2", ProductName: "Sky Shot 30", Quantity: 2, Price: 1450},
		},
		Discount:    300,
		Tax:         846,
		PaymentMode: order.PaymentUPI,
	})
	require.NoError(t, err)

	// 1900 + 2900 = 4800; 4800 - 300 + 846 = 5346
	assert.InDelta(t, 4800.0, o.Subtotal, 0.001)
	assert.InDelta(t, 5346.0, o.TotalAmount, 0.001)
}

func TestConvertRequiresConfirmedStage(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, &CreateLeadRequest{CustomerName: "Ravi", Phone: "1"})
	require.NoError(t, err)

	req := &ConvertRequest{
		Items:       []order.ItemInput{{ProductID: "p1", ProductName: "X", Quantity: 1, Price: 10}},
		PaymentMode: order.PaymentCash,
	}

	_, err = svc.ConvertToOrder(ctx, l.ID, req)
	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestConvertTwiceFails(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l := confirmLead(t, svc, "Arun Stores", "9876533333")

	req := &ConvertRequest{
		Items:       []order.ItemInput{{ProductID: "p1", ProductName: "X", Quantity: 1, Price: 10}},
		PaymentMode: order.PaymentCash,
	}

	_, err := svc.ConvertToOrder(ctx, l.ID, req)
	require.NoError(t, err)

	_, err = svc.ConvertToOrder(ctx, l.ID, req)
	assert.ErrorIs(t, err, ErrAlreadyConverted)
}

func TestConvertValidatesItems(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l := confirmLead(t, svc, "Lakshmi", "9876544444")

	_, err := svc.ConvertToOrder(ctx, l.ID, &ConvertRequest{
		Items:       []order.ItemInput{},
		PaymentMode: order.PaymentCash,
	})
	assert.ErrorIs(t, err, order.ErrNoItems)

	_, err = svc.ConvertToOrder(ctx, l.ID, &ConvertRequest{
		Items:       []order.ItemInput{{ProductID: "p1", ProductName: "X", Quantity: 0, Price: 10}},
		PaymentMode: order.PaymentCash,
	})
	assert.ErrorIs(t, err, order.ErrInvalidQuantity)

	// lead untouched by failed conversions
	got, err := svc.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, StageConfirmed, got.LeadStatus)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, &CreateLeadRequest{CustomerName: name, Phone: name})
		require.NoError(t, err)
	}

	leads, err := svc.List(ctx, FilterOptions{})
	require.NoError(t, err)
	require.Len(t, leads, 3)
	assert.Equal(t, "first", leads[0].CustomerName)
	assert.Equal(t, "second", leads[1].CustomerName)
	assert.Equal(t, "third", leads[2].CustomerName)
}

func TestStatsCountsByStage(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, &CreateLeadRequest{CustomerName: "n", Phone: "p"})
		require.NoError(t, err)
	}
	l, err := svc.Create(ctx, &CreateLeadRequest{CustomerName: "m", Phone: "q"})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, l.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats[StageNew])
	assert.Equal(t, 1, stats[StageContacted])
}
