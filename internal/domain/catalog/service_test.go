package catalog

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
	require.NoError(t, database.Migrate(db, &Product{}))
	// nil redis client: cache disabled, straight to the repository
	return NewService(NewRepository(db), nil)
}

func seedProducts(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()

	products := []*Product{
		{Name: "Sparkler Gold 30cm", ShortDescription: "Classic sparklers", Category: "Sparklers", SKU: "SPK-G30", MRP: 60, SellingPrice: 45, GSTPercentage: 18},
		{Name: "Flower Pot Big", ShortDescription: "Large fountain", Category: "Fountains", SKU: "FP-BIG", MRP: 250, SellingPrice: 190, GSTPercentage: 18},
		{Name: "Sky Shot 30", ShortDescription: "Aerial cake", Category: "Aerial", SKU: "SKY-30", MRP: 1800, SellingPrice: 1450, GSTPercentage: 18, RequiresLicense: true},
	}
	for _, p := range products {
		require.NoError(t, svc.Create(ctx, p))
	}
}

func TestCreateStampsDefaults(t *testing.T) {
	svc := setupService(t)

	p := &Product{Name: "Sparkler", SKU: "SPK-1", MRP: 60, SellingPrice: 45}
	require.NoError(t, svc.Create(context.Background(), p))

	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Active)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestListFilters(t *testing.T) {
	svc := setupService(t)
	seedProducts(t, svc)
	ctx := context.Background()

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	aerial, err := svc.List(ctx, ListFilter{Category: "Aerial"})
	require.NoError(t, err)
	require.Len(t, aerial, 1)
	assert.Equal(t, "Sky Shot 30", aerial[0].Name)

	// search covers name and description, case-insensitive
	byDesc, err := svc.List(ctx, ListFilter{Search: "FOUNTAIN"})
	require.NoError(t, err)
	require.Len(t, byDesc, 1)
	assert.Equal(t, "Flower Pot Big", byDesc[0].Name)
}

func TestListActiveOnly(t *testing.T) {
	svc := setupService(t)
	seedProducts(t, svc)
	ctx := context.Background()

	p, err := svc.List(ctx, ListFilter{Category: "Sparklers"})
	require.NoError(t, err)
	require.Len(t, p, 1)

	discontinued := p[0]
	discontinued.Active = false
	require.NoError(t, svc.Update(ctx, &discontinued))

	active, err := svc.List(ctx, ListFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
