package customers

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
	"github.com/hugohenrick/pdv-loja/internal/event"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

func newCustomers(t *testing.T) (*Service, sale.Repository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	sales := repository.NewSaleRepository(store)
	svc := NewService(repository.NewCustomerRepository(store), sales, event.NewBus(), logger.NewNopLogger())
	return svc, sales
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCustomers(t)

	c, err := svc.Add(ctx, CustomerInput{Name: "Maria", Email: "maria@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)
	assert.Equal(t, 0, c.TotalPurchases)
	assert.True(t, c.TotalSpent.IsZero())

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAddDuplicateRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCustomers(t)

	_, err := svc.Add(ctx, CustomerInput{Name: "Maria", Email: "maria@example.com"})
	require.NoError(t, err)

	// Mesmo nome com caixa diferente
	_, err = svc.Add(ctx, CustomerInput{Name: "MARIA", Email: "outra@example.com"})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Mesmo email com caixa diferente
	_, err = svc.Add(ctx, CustomerInput{Name: "Outra", Email: "MARIA@example.com"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdatePreservesStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCustomers(t)

	c, err := svc.Add(ctx, CustomerInput{Name: "Maria", Email: "maria@example.com"})
	require.NoError(t, err)

	c.TotalPurchases = 2
	c.TotalSpent = decimal.NewFromInt(30)

	updated, err := svc.Update(ctx, c.ID, CustomerInput{Name: "Maria Silva", Email: "maria@example.com"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Maria Silva", updated.Name)
	assert.Equal(t, c.DateAdded.Unix(), updated.DateAdded.Unix())
}

func TestDeleteUnknownReturnsFalse(t *testing.T) {
	svc, _ := newCustomers(t)
	deleted, err := svc.Delete(context.Background(), "inexistente")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func makeCustomerSale(t *testing.T, customerID string, total int64, refunded bool) *sale.Sale {
	t.Helper()
	items := []sale.Item{{ProductID: "p1", Name: "Produto", Price: decimal.NewFromInt(total), Quantity: 1}}
	s, err := sale.NewSale(items, decimal.Zero, sale.PaymentCard, decimal.Zero, customerID, "")
	require.NoError(t, err)
	if refunded {
		require.NoError(t, s.Refund())
	}
	return s
}

func TestRecomputeStats(t *testing.T) {
	ctx := context.Background()
	svc, sales := newCustomers(t)

	c, err := svc.Add(ctx, CustomerInput{Name: "Maria", Email: "maria@example.com"})
	require.NoError(t, err)

	require.NoError(t, sales.Create(ctx, makeCustomerSale(t, c.ID, 10, false)))
	require.NoError(t, sales.Create(ctx, makeCustomerSale(t, c.ID, 20, false)))
	require.NoError(t, sales.Create(ctx, makeCustomerSale(t, c.ID, 30, false)))
	// Venda estornada e venda de outro cliente ficam de fora
	require.NoError(t, sales.Create(ctx, makeCustomerSale(t, c.ID, 99, true)))
	require.NoError(t, sales.Create(ctx, makeCustomerSale(t, "outro", 50, false)))

	recomputed, err := svc.RecomputeStats(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, recomputed)
	assert.Equal(t, 3, recomputed.TotalPurchases)
	assert.True(t, recomputed.TotalSpent.Equal(decimal.NewFromInt(60)), "spent = %s", recomputed.TotalSpent)

	reloaded, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.TotalPurchases)
}

func TestRecomputeStatsUnknownCustomer(t *testing.T) {
	svc, _ := newCustomers(t)
	c, err := svc.RecomputeStats(context.Background(), "inexistente")
	require.NoError(t, err)
	assert.Nil(t, c)
}
