package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/product"
	"github.com/hugohenrick/pdv-loja/internal/event"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

func newCatalog(t *testing.T) *Service {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewService(repository.NewProductRepository(store), event.NewBus(), logger.NewNopLogger())
}

func validInput() ProductInput {
	return ProductInput{
		Name:     "Café Torrado",
		Category: product.CategoryFood,
		Price:    decimal.NewFromFloat(12.5),
		Stock:    20,
		Barcode:  "7890001112223",
	}
}

func TestAddAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog(t)

	p, err := svc.Add(ctx, validInput())
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	assert.False(t, p.DateAdded.IsZero())

	found, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Café Torrado", found.Name)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog(t)

	input := validInput()
	input.Name = "X"
	input.Price = decimal.NewFromInt(-1)

	_, err := svc.Add(ctx, input)
	assert.ErrorIs(t, err, ErrValidation)

	// Nada persistido
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByIDUnknownReturnsNil(t *testing.T) {
	svc := newCatalog(t)
	p, err := svc.GetByID(context.Background(), "inexistente")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog(t)

	p, err := svc.Add(ctx, validInput())
	require.NoError(t, err)

	input := validInput()
	input.Name = "Café Premium"
	input.Price = decimal.NewFromInt(20)

	updated, err := svc.Update(ctx, p.ID, input)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Café Premium", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, p.DateAdded.Unix(), updated.DateAdded.Unix())

	missing, err := svc.Update(ctx, "inexistente", input)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog(t)

	p, err := svc.Add(ctx, validInput())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog(t)

	_, err := svc.Add(ctx, validInput())
	require.NoError(t, err)

	other := validInput()
	other.Name = "Caderno"
	other.Category = product.CategoryBooks
	_, err = svc.Add(ctx, other)
	require.NoError(t, err)

	results, err := svc.Search(ctx, "café", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Café Torrado", results[0].Name)

	results, err = svc.Search(ctx, "", product.CategoryBooks)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Caderno", results[0].Name)
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog(t)

	p, err := svc.Add(ctx, validInput())
	require.NoError(t, err)

	stock, err := svc.AdjustStock(ctx, p.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 15, stock)

	stock, err = svc.AdjustStock(ctx, p.ID, -100)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)

	stock, err = svc.AdjustStock(ctx, p.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, stock)
}
