package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// List retorna todos os clientes cadastrados
	List(ctx context.Context) ([]*Customer, error)

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// Create cadastra um novo cliente. Retorna erro de duplicidade quando
	// nome ou email colidem com um cliente existente.
	Create(ctx context.Context, c *Customer) error

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Delete remove um cliente
	Delete(ctx context.Context, id string) (bool, error)

	// ReplaceAll substitui a coleção inteira de clientes
	ReplaceAll(ctx context.Context, customers []*Customer) error
}
