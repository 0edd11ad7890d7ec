package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidProduct é retornado quando os dados do produto não passam na validação
	ErrInvalidProduct = errors.New("dados do produto inválidos")
)

// Category define a categoria do produto
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryFood        Category = "food"
	CategoryBooks       Category = "books"
	CategoryOther       Category = "other"
)

// IsValid verifica se a categoria é uma das categorias conhecidas
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryFood, CategoryBooks, CategoryOther:
		return true
	}
	return false
}

// StockStatus é a classificação derivada do estoque restante
type StockStatus string

const (
	StockStatusOut StockStatus = "out-of-stock"
	StockStatusLow StockStatus = "low-stock"
	StockStatusIn  StockStatus = "in-stock"
)

// Limite de estoque abaixo do qual o produto é considerado em baixa.
// Faz parte do contrato observável do sistema, junto com os três
// valores de StockStatus.
const LowStockThreshold = 10

// GetStockStatus retorna a classificação do estoque informado
func GetStockStatus(stock int) StockStatus {
	if stock == 0 {
		return StockStatusOut
	}
	if stock <= LowStockThreshold {
		return StockStatusLow
	}
	return StockStatusIn
}

// Product representa um produto do catálogo.
// As tags JSON seguem o formato dos dados exportados (camelCase) para manter
// compatibilidade com backups existentes.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Barcode     string          `json:"barcode,omitempty"`
	Description string          `json:"description,omitempty"`
	DateAdded   time.Time       `json:"dateAdded"`
}

// NewProduct cria um novo produto com ID e data de cadastro atribuídos
func NewProduct(name string, category Category, price decimal.Decimal, stock int, barcode, description string) (*Product, error) {
	p := &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Price:       price,
		Stock:       stock,
		Barcode:     barcode,
		Description: description,
		DateAdded:   time.Now(),
	}

	if violations := p.Validate(); len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProduct, strings.Join(violations, "; "))
	}

	return p, nil
}

// Validate retorna a lista ordenada de violações dos dados do produto.
// Lista vazia significa produto válido.
func (p *Product) Validate() []string {
	var violations []string

	if len(strings.TrimSpace(p.Name)) < 2 {
		violations = append(violations, "o nome do produto deve ter pelo menos 2 caracteres")
	}

	if p.Category == "" {
		violations = append(violations, "selecione uma categoria")
	} else if !p.Category.IsValid() {
		violations = append(violations, "categoria desconhecida")
	}

	if !p.Price.IsPositive() {
		violations = append(violations, "o preço deve ser maior que zero")
	}

	if p.Stock < 0 {
		violations = append(violations, "o estoque deve ser maior ou igual a zero")
	}

	return violations
}

// StockStatus retorna a classificação do estoque atual do produto
func (p *Product) StockStatus() StockStatus {
	return GetStockStatus(p.Stock)
}

// Matches verifica se o produto corresponde ao termo de busca
// (nome, categoria ou código de barras)
func (p *Product) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(string(p.Category)), q) ||
		(p.Barcode != "" && strings.Contains(p.Barcode, query))
}
