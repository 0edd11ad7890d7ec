package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStockStatus(t *testing.T) {
	assert.Equal(t, StockStatusOut, GetStockStatus(0))
	assert.Equal(t, StockStatusLow, GetStockStatus(5))
	assert.Equal(t, StockStatusLow, GetStockStatus(10))
	assert.Equal(t, StockStatusIn, GetStockStatus(11))
}

func TestStockStatusStrings(t *testing.T) {
	// Os três valores fazem parte do contrato de dados exportados
	assert.Equal(t, "out-of-stock", string(StockStatusOut))
	assert.Equal(t, "low-stock", string(StockStatusLow))
	assert.Equal(t, "in-stock", string(StockStatusIn))
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Camiseta", CategoryClothing, decimal.NewFromFloat(19.99), 25, "", "")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.False(t, p.DateAdded.IsZero())
	assert.Equal(t, 25, p.Stock)
}

func TestNewProductInvalid(t *testing.T) {
	_, err := NewProduct("X", CategoryClothing, decimal.NewFromFloat(19.99), 25, "", "")
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestValidateOrderedViolations(t *testing.T) {
	p := &Product{
		Name:     "A",
		Category: "",
		Price:    decimal.Zero,
		Stock:    -1,
	}

	violations := p.Validate()
	require.Len(t, violations, 4)
	assert.Contains(t, violations[0], "nome")
	assert.Contains(t, violations[1], "categoria")
	assert.Contains(t, violations[2], "preço")
	assert.Contains(t, violations[3], "estoque")
}

func TestValidateUnknownCategory(t *testing.T) {
	p := &Product{
		Name:     "Notebook",
		Category: "gadgets",
		Price:    decimal.NewFromInt(100),
		Stock:    1,
	}

	violations := p.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "categoria")
}

func TestMatches(t *testing.T) {
	p := &Product{Name: "Wireless Mouse", Category: CategoryElectronics, Barcode: "789123"}

	assert.True(t, p.Matches("mouse"))
	assert.True(t, p.Matches("electro"))
	assert.True(t, p.Matches("789"))
	assert.True(t, p.Matches(""))
	assert.False(t, p.Matches("teclado"))
}
