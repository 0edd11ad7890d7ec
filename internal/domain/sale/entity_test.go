package sale

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaleTotals(t *testing.T) {
	items := []Item{
		{ProductID: "p1", Name: "Produto", Price: decimal.NewFromInt(10), Quantity: 2},
	}
	taxRate := decimal.NewFromFloat(0.1)

	s, err := NewSale(items, taxRate, PaymentCard, decimal.Zero, "", "")
	require.NoError(t, err)

	assert.True(t, s.Subtotal.Equal(decimal.NewFromInt(20)), "subtotal = %s", s.Subtotal)
	assert.True(t, s.Tax.Equal(decimal.NewFromInt(2)), "tax = %s", s.Tax)
	assert.True(t, s.Total.Equal(decimal.NewFromInt(22)), "total = %s", s.Total)

	// Invariantes da venda
	assert.True(t, s.Total.Equal(s.Subtotal.Add(s.Tax)))
	sum := decimal.Zero
	for _, item := range s.Items {
		sum = sum.Add(item.Subtotal())
	}
	assert.True(t, s.Subtotal.Equal(sum))
}

func TestNewSaleCashInsufficient(t *testing.T) {
	items := []Item{
		{ProductID: "p1", Name: "Produto", Price: decimal.NewFromInt(10), Quantity: 2},
	}

	_, err := NewSale(items, decimal.NewFromFloat(0.1), PaymentCash, decimal.NewFromInt(20), "", "")
	assert.ErrorIs(t, err, ErrInsufficientPayment)
}

func TestNewSaleCashChange(t *testing.T) {
	items := []Item{
		{ProductID: "p1", Name: "Produto", Price: decimal.NewFromInt(10), Quantity: 2},
	}

	s, err := NewSale(items, decimal.NewFromFloat(0.1), PaymentCash, decimal.NewFromInt(25), "", "")
	require.NoError(t, err)
	assert.True(t, s.Change.Equal(decimal.NewFromInt(3)), "change = %s", s.Change)
}

func TestNewSaleEmptyCart(t *testing.T) {
	_, err := NewSale(nil, decimal.Zero, PaymentCash, decimal.Zero, "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewSaleInvalidPaymentMethod(t *testing.T) {
	items := []Item{
		{ProductID: "p1", Name: "Produto", Price: decimal.NewFromInt(10), Quantity: 1},
	}
	_, err := NewSale(items, decimal.Zero, "cheque", decimal.Zero, "", "")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestRefund(t *testing.T) {
	items := []Item{
		{ProductID: "p1", Name: "Produto", Price: decimal.NewFromInt(10), Quantity: 1},
	}
	s, err := NewSale(items, decimal.Zero, PaymentCard, decimal.Zero, "", "")
	require.NoError(t, err)

	require.NoError(t, s.Refund())
	assert.True(t, s.Refunded)
	require.NotNil(t, s.RefundDate)

	assert.ErrorIs(t, s.Refund(), ErrAlreadyRefunded)
}

func TestGenerateReceiptNumber(t *testing.T) {
	at := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)
	millis := fmt.Sprintf("%d", at.UnixMilli())

	got := GenerateReceiptNumber(at)
	want := fmt.Sprintf("R20260307-%s", millis[len(millis)-6:])
	assert.Equal(t, want, got)
}
