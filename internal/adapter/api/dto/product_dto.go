package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-loja/internal/domain/product"
)

// ProductRequest representa a requisição de cadastro ou atualização de produto
type ProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Category    product.Category `json:"category" binding:"required"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	Stock       int              `json:"stock"`
	Barcode     string           `json:"barcode"`
	Description string           `json:"description"`
}

// StockAdjustmentRequest representa a requisição de ajuste de estoque
type StockAdjustmentRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    product.Category `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int              `json:"stock"`
	StockStatus product.StockStatus `json:"stock_status"`
	Barcode     string           `json:"barcode,omitempty"`
	Description string           `json:"description,omitempty"`
	DateAdded   time.Time        `json:"date_added"`
}

// StockAdjustmentResponse representa a resposta de ajuste de estoque
type StockAdjustmentResponse struct {
	ProductID   string              `json:"product_id"`
	Stock       int                 `json:"stock"`
	StockStatus product.StockStatus `json:"stock_status"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ToProductResponse converte um produto do domínio para DTO
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		StockStatus: p.StockStatus(),
		Barcode:     p.Barcode,
		Description: p.Description,
		DateAdded:   p.DateAdded,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio para DTO
func ToProductListResponse(products []*product.Product) *ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = *ToProductResponse(p)
	}

	return &ProductListResponse{
		Items: items,
		Total: len(items),
	}
}
