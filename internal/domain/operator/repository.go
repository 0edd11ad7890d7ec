package operator

import (
	"context"
)

// Repository define a interface para operações de repositório de operadores
type Repository interface {
	// List retorna todos os operadores cadastrados
	List(ctx context.Context) ([]*Operator, error)

	// FindByEmail busca um operador pelo email
	FindByEmail(ctx context.Context, email string) (*Operator, error)

	// Create cadastra um novo operador
	Create(ctx context.Context, o *Operator) error
}
