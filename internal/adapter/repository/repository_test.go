package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-loja/internal/domain/customer"
	"github.com/hugohenrick/pdv-loja/internal/domain/product"
	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
)

func TestProductRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(kvstore.NewMemoryStore())

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	p, err := product.NewProduct("Notebook", product.CategoryElectronics, decimal.NewFromFloat(899.99), 15, "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Notebook", found.Name)

	found.Stock = 7
	require.NoError(t, repo.Update(ctx, found))

	require.NoError(t, repo.UpdateStock(ctx, p.ID, 3))
	found, err = repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Stock)

	deleted, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Remover de novo é um no-op
	deleted, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCustomerRepositoryDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(kvstore.NewMemoryStore())

	c1, err := customer.NewCustomer("Maria Silva", "maria@example.com", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c1))

	// Mesmo nome com caixa diferente
	c2, err := customer.NewCustomer("MARIA SILVA", "outra@example.com", "", "")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, c2), ErrCustomerDuplicate)

	// Mesmo email com caixa diferente
	c3, err := customer.NewCustomer("Joana Souza", "MARIA@example.com", "", "")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, c3), ErrCustomerDuplicate)

	// Sem colisão
	c4, err := customer.NewCustomer("Joana Souza", "joana@example.com", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c4))

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestSaleRepositoryDateRangeInclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(kvstore.NewMemoryStore())

	base := time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)
	for i, day := range []int{-2, 0, 2} {
		s := &sale.Sale{
			ID:            string(rune('a' + i)),
			ReceiptNumber: "R-test",
			Items:         []sale.Item{{ProductID: "p", Name: "P", Price: decimal.NewFromInt(1), Quantity: 1}},
			Total:         decimal.NewFromInt(1),
			PaymentMethod: sale.PaymentCard,
			Date:          base.AddDate(0, 0, day),
		}
		require.NoError(t, repo.Create(ctx, s))
	}

	// Intervalo inclusivo nas duas pontas
	sales, err := repo.FindByDateRange(ctx, base.AddDate(0, 0, -2), base)
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	sales, err = repo.FindByDateRange(ctx, base, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestSettingsRepositoryDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(kvstore.NewMemoryStore())

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My Shop", s.ShopName)
	assert.True(t, s.TaxRate.IsZero())
	assert.True(t, s.EnableQRPayment)

	s.ShopName = "Mercadinho Central"
	s.TaxRate = decimal.NewFromFloat(0.07)
	require.NoError(t, repo.Save(ctx, s))

	saved, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mercadinho Central", saved.ShopName)
	assert.True(t, saved.TaxRate.Equal(decimal.NewFromFloat(0.07)))
}
