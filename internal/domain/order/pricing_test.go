package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceItemsComputesLineTotals(t *testing.T) {
	items, subtotal, err := PriceItems([]ItemInput{
		{ProductID: "p1", ProductName: "Sparkler", Quantity: 500, Price: 45},
		{ProductID: "p2", ProductName: "Flower Pot", Quantity: 3, Price: 190},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.InDelta(t, 22500.0, items[0].Total, 0.001)
	assert.InDelta(t, 570.0, items[1].Total, 0.001)
	assert.True(t, subtotal.Equal(decimal.NewFromInt(23070)))
}

func TestPriceItemsAvoidsFloatDrift(t *testing.T) {
	// 0.1 * 3 is 0.30000000000000004 in float64
	items, subtotal, err := PriceItems([]ItemInput{
		{ProductID: "p1", Quantity: 3, Price: 0.1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, items[0].Total, 0.0001)
	assert.True(t, subtotal.Equal(decimal.NewFromFloat(0.3)), "got %s", subtotal)
}

func TestPriceItemsRejectsBadInput(t *testing.T) {
	_, _, err := PriceItems(nil)
	assert.ErrorIs(t, err, ErrNoItems)

	_, _, err = PriceItems([]ItemInput{{ProductID: "p1", Quantity: 0, Price: 10}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, _, err = PriceItems([]ItemInput{{ProductID: "p1", Quantity: -5, Price: 10}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestTotals(t *testing.T) {
	total := Totals(decimal.NewFromInt(4800), decimal.NewFromInt(300), decimal.NewFromInt(846))
	assert.True(t, total.Equal(decimal.NewFromInt(5346)), "got %s", total)

	// rounds to two decimals
	total = Totals(decimal.NewFromFloat(100.005), decimal.Zero, decimal.Zero)
	assert.Equal(t, "100.01", total.StringFixed(2))
}
