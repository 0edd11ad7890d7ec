package sale

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// List retorna todas as vendas registradas
	List(ctx context.Context) ([]*Sale, error)

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// FindByDateRange retorna as vendas com data dentro do intervalo,
	// inclusivo nas duas extremidades
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*Sale, error)

	// FindByCustomer retorna as vendas associadas a um cliente
	FindByCustomer(ctx context.Context, customerID string) ([]*Sale, error)

	// Create registra uma nova venda
	Create(ctx context.Context, s *Sale) error

	// Update atualiza uma venda existente (estorno)
	Update(ctx context.Context, s *Sale) error

	// ReplaceAll substitui a coleção inteira de vendas
	ReplaceAll(ctx context.Context, sales []*Sale) error
}
