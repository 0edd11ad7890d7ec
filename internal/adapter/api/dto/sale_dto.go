package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
)

// CartItemRequest representa a requisição de inclusão de item no carrinho
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CartQuantityRequest representa a requisição de alteração de quantidade.
// Quantidade zero remove a linha do carrinho.
type CartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// CheckoutRequest representa a requisição de fechamento de venda
type CheckoutRequest struct {
	PaymentMethod sale.PaymentMethod `json:"payment_method" binding:"required"`
	CashReceived  decimal.Decimal    `json:"cash_received"`
	CustomerID    string             `json:"customer_id"`
}

// SaleItemResponse representa uma linha da venda na resposta
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID            string             `json:"id"`
	ReceiptNumber string             `json:"receipt_number"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod sale.PaymentMethod `json:"payment_method"`
	CashReceived  decimal.Decimal    `json:"cash_received,omitempty"`
	Change        decimal.Decimal    `json:"change,omitempty"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	Date          time.Time          `json:"date"`
	Refunded      bool               `json:"refunded"`
	RefundDate    *time.Time         `json:"refund_date,omitempty"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// CartResponse representa o conteúdo corrente do carrinho com os totais
type CartResponse struct {
	Items    []SaleItemResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Tax      decimal.Decimal    `json:"tax"`
	Total    decimal.Decimal    `json:"total"`
}

// ToSaleItemResponse converte uma linha de venda do domínio para DTO
func ToSaleItemResponse(item sale.Item) SaleItemResponse {
	return SaleItemResponse{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal(),
	}
}

// ToSaleResponse converte uma venda do domínio para DTO
func ToSaleResponse(s *sale.Sale) *SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = ToSaleItemResponse(item)
	}

	return &SaleResponse{
		ID:            s.ID,
		ReceiptNumber: s.ReceiptNumber,
		Items:         items,
		Subtotal:      s.Subtotal,
		Tax:           s.Tax,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CashReceived:  s.CashReceived,
		Change:        s.Change,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		Date:          s.Date,
		Refunded:      s.Refunded,
		RefundDate:    s.RefundDate,
	}
}

// ToSaleListResponse converte uma lista de vendas do domínio para DTO
func ToSaleListResponse(sales []*sale.Sale) *SaleListResponse {
	items := make([]SaleResponse, len(sales))
	for i, s := range sales {
		items[i] = *ToSaleResponse(s)
	}

	return &SaleListResponse{
		Items: items,
		Total: len(items),
	}
}

// ToCartResponse monta a resposta do carrinho a partir das linhas e totais
func ToCartResponse(items []sale.Item, subtotal, tax, total decimal.Decimal) *CartResponse {
	lines := make([]SaleItemResponse, len(items))
	for i, item := range items {
		lines[i] = ToSaleItemResponse(item)
	}

	return &CartResponse{
		Items:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}
