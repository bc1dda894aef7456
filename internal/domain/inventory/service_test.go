package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crackershop/internal/database"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &StockItem{}, &StockAdjustment{}))
	return NewService(NewRepository(db))
}

func seedItem(t *testing.T, svc *Service, stock int) *StockItem {
	t.Helper()

	item := &StockItem{
		ProductID: "p1", ProductName: "Sparkler Gold 30cm", SKU: "SPK-G30",
		CurrentStock: stock, MinAllowedStock: 30, MaxAllowedStock: 500,
		LegalLimit: 400, ReorderLevel: 20, Location: "Godown A",
	}
	require.NoError(t, svc.CreateItem(context.Background(), item))
	return item
}

func TestCreateItemComputesStatus(t *testing.T) {
	svc := setupService(t)

	safe := seedItem(t, svc, 200)
	assert.Equal(t, StatusSafe, safe.Status)

	warning := &StockItem{SKU: "W", CurrentStock: 25, MinAllowedStock: 30, ReorderLevel: 10}
	require.NoError(t, svc.CreateItem(context.Background(), warning))
	assert.Equal(t, StatusWarning, warning.Status)

	critical := &StockItem{SKU: "C", CurrentStock: 5, MinAllowedStock: 30, ReorderLevel: 20}
	require.NoError(t, svc.CreateItem(context.Background(), critical))
	assert.Equal(t, StatusCritical, critical.Status)

	over := &StockItem{SKU: "O", CurrentStock: 450, MinAllowedStock: 30, LegalLimit: 400}
	require.NoError(t, svc.CreateItem(context.Background(), over))
	assert.Equal(t, StatusOverstock, over.Status)
}

func TestAdjustInAndOut(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	item := seedItem(t, svc, 100)

	got, err := svc.Adjust(ctx, item.ID, AdjustmentIn, 50, "purchase", "admin")
	require.NoError(t, err)
	assert.Equal(t, 150, got.CurrentStock)

	got, err = svc.Adjust(ctx, item.ID, AdjustmentOut, 30, "sale", "admin")
	require.NoError(t, err)
	assert.Equal(t, 120, got.CurrentStock)

	// corrections carry a signed delta
	got, err = svc.Adjust(ctx, item.ID, AdjustmentCorrection, -20, "damaged", "admin")
	require.NoError(t, err)
	assert.Equal(t, 100, got.CurrentStock)

	ledger, err := svc.ListAdjustments(ctx, item.ID, 0)
	require.NoError(t, err)
	assert.Len(t, ledger, 3)
}

func TestAdjustRejectsBadInput(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	item := seedItem(t, svc, 10)

	_, err := svc.Adjust(ctx, item.ID, AdjustmentType("steal"), 5, "", "")
	assert.ErrorIs(t, err, ErrInvalidAdjustment)

	_, err = svc.Adjust(ctx, item.ID, AdjustmentOut, 0, "", "")
	assert.ErrorIs(t, err, ErrZeroQuantity)

	_, err = svc.Adjust(ctx, item.ID, AdjustmentOut, 11, "oversell", "")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = svc.Adjust(ctx, "missing", AdjustmentIn, 5, "", "")
	assert.ErrorIs(t, err, ErrStockNotFound)

	// stock unchanged after the failures
	got, err := svc.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.CurrentStock)
}

func TestAdjustOverLegalLimitAllowedButFlagged(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	item := seedItem(t, svc, 390)

	got, err := svc.Adjust(ctx, item.ID, AdjustmentIn, 50, "festival stock", "admin")
	require.NoError(t, err)
	assert.Equal(t, 440, got.CurrentStock)
	assert.Equal(t, StatusOverstock, got.Status)
	assert.True(t, got.OverLegalLimit())

	warnings, err := svc.LegalWarnings(ctx)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, item.ID, warnings[0].ID)
}

func TestDeductForSale(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	item := seedItem(t, svc, 100)

	require.NoError(t, svc.DeductForSale(ctx, "p1", 10, "ORD-2026-ABC123"))

	got, err := svc.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, got.CurrentStock)

	// untracked products are silently skipped
	assert.NoError(t, svc.DeductForSale(ctx, "not-tracked", 5, "ORD-2026-ABC124"))
}
