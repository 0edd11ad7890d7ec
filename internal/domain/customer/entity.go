package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyName é retornado quando o nome do cliente está vazio
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Customer representa um cliente da loja. TotalPurchases e TotalSpent são
// estatísticas desnormalizadas: derivadas das vendas não estornadas do
// cliente, mas gravadas junto ao registro e atualizadas a cada venda.
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	DateAdded      time.Time       `json:"dateAdded"`
	TotalPurchases int             `json:"totalPurchases"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
}

// NewCustomer cria um novo cliente com ID e data de cadastro atribuídos
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	return &Customer{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Address:    address,
		DateAdded:  time.Now(),
		TotalSpent: decimal.Zero,
	}, nil
}

// RegisterPurchase incrementa as estatísticas do cliente após uma venda
func (c *Customer) RegisterPurchase(total decimal.Decimal) {
	c.TotalPurchases++
	c.TotalSpent = c.TotalSpent.Add(total)
}

// ConflictsWith verifica se este cliente colide com os dados informados
// (mesmo nome ou mesmo email, ignorando maiúsculas e minúsculas)
func (c *Customer) ConflictsWith(name, email string) bool {
	if strings.EqualFold(c.Name, name) {
		return true
	}
	return c.Email != "" && email != "" && strings.EqualFold(c.Email, email)
}
