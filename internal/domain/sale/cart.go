package sale

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-loja/internal/domain/product"
)

var (
	// ErrInsufficientStock é retornado ao tentar colocar no carrinho mais
	// unidades do que o estoque atual do produto
	ErrInsufficientStock = errors.New("estoque insuficiente")
	// ErrItemNotInCart é retornado quando o produto não está no carrinho
	ErrItemNotInCart = errors.New("produto não está no carrinho")
	// ErrInvalidQuantity é retornado para quantidades menores que 1
	ErrInvalidQuantity = errors.New("quantidade deve ser maior ou igual a 1")
)

// Cart é a coleção ordenada e efêmera de linhas sendo montadas para uma
// venda. Não é persistido: só vira registro quando o checkout conclui.
// A quantidade de cada linha é limitada ao estoque do produto no momento em
// que a linha é adicionada ou incrementada; o checkout não revalida.
type Cart struct {
	items []Item
}

// NewCart cria um carrinho vazio
func NewCart() *Cart {
	return &Cart{}
}

// AddItem adiciona uma unidade (ou mais) de um produto ao carrinho.
// Se o produto já está no carrinho, a quantidade da linha é incrementada.
func (c *Cart) AddItem(p *product.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			if c.items[i].Quantity+quantity > p.Stock {
				return ErrInsufficientStock
			}
			c.items[i].Quantity += quantity
			return nil
		}
	}

	if quantity > p.Stock {
		return ErrInsufficientStock
	}

	c.items = append(c.items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
	})
	return nil
}

// UpdateQuantity define a quantidade absoluta de uma linha do carrinho.
// Quantidade zero remove a linha.
func (c *Cart) UpdateQuantity(p *product.Product, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		if !c.RemoveItem(p.ID) {
			return ErrItemNotInCart
		}
		return nil
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}

	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotInCart
}

// RemoveItem remove a linha do produto informado, se existir
func (c *Cart) RemoveItem(productID string) bool {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear esvazia o carrinho
func (c *Cart) Clear() {
	c.items = nil
}

// IsEmpty verifica se o carrinho está vazio
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items retorna uma cópia das linhas do carrinho, na ordem de inserção
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Totals calcula subtotal, imposto e total do carrinho para a alíquota dada
func (c *Cart) Totals(taxRate decimal.Decimal) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	tax = subtotal.Mul(taxRate)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}
