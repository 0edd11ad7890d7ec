package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// List retorna todos os produtos do catálogo
	List(ctx context.Context) ([]*Product, error)

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// Create adiciona um novo produto ao catálogo
	Create(ctx context.Context, p *Product) error

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto do catálogo
	Delete(ctx context.Context, id string) (bool, error)

	// UpdateStock grava o novo valor absoluto de estoque de um produto
	UpdateStock(ctx context.Context, id string, stock int) error

	// ReplaceAll substitui a coleção inteira de produtos
	ReplaceAll(ctx context.Context, products []*Product) error
}
