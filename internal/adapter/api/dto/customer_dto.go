package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-loja/internal/domain/customer"
)

// CustomerRequest representa a requisição de cadastro ou atualização de cliente
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	TotalPurchases int             `json:"total_purchases"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	DateAdded      time.Time       `json:"date_added"`
}

// CustomerListResponse representa a resposta de lista de clientes
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}

// ToCustomerResponse converte um cliente do domínio para DTO
func ToCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		TotalPurchases: c.TotalPurchases,
		TotalSpent:     c.TotalSpent,
		DateAdded:      c.DateAdded,
	}
}

// ToCustomerListResponse converte uma lista de clientes do domínio para DTO
func ToCustomerListResponse(customers []*customer.Customer) *CustomerListResponse {
	items := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = *ToCustomerResponse(c)
	}

	return &CustomerListResponse{
		Items: items,
		Total: len(items),
	}
}
