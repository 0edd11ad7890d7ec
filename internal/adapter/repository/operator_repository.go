package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/pdv-loja/internal/domain/operator"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
)

// Erros específicos do repositório de operadores
var (
	ErrOperatorNotFound  = errors.New("operador não encontrado")
	ErrOperatorDuplicate = errors.New("já existe um operador com este email")
)

// OperatorRepository implementa operator.Repository sobre o armazenamento
// chave-valor (chave "operators")
type OperatorRepository struct {
	store kvstore.Store
}

// NewOperatorRepository cria uma nova instância de OperatorRepository
func NewOperatorRepository(store kvstore.Store) operator.Repository {
	return &OperatorRepository{store: store}
}

func (r *OperatorRepository) load(ctx context.Context) ([]*operator.Operator, error) {
	data, err := r.store.Get(ctx, kvstore.KeyOperators)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao carregar operadores: %w", err)
	}

	var operators []*operator.Operator
	if err := json.Unmarshal(data, &operators); err != nil {
		return nil, fmt.Errorf("erro ao decodificar operadores: %w", err)
	}
	return operators, nil
}

// List implementa operator.Repository.List
func (r *OperatorRepository) List(ctx context.Context) ([]*operator.Operator, error) {
	return r.load(ctx)
}

// FindByEmail implementa operator.Repository.FindByEmail
func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (*operator.Operator, error) {
	operators, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range operators {
		if strings.EqualFold(o.Email, email) {
			return o, nil
		}
	}
	return nil, ErrOperatorNotFound
}

// Create implementa operator.Repository.Create
func (r *OperatorRepository) Create(ctx context.Context, o *operator.Operator) error {
	operators, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range operators {
		if strings.EqualFold(existing.Email, o.Email) {
			return ErrOperatorDuplicate
		}
	}
	operators = append(operators, o)

	data, err := json.Marshal(operators)
	if err != nil {
		return fmt.Errorf("erro ao codificar operadores: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyOperators, data); err != nil {
		return fmt.Errorf("erro ao gravar operadores: %w", err)
	}
	return nil
}
