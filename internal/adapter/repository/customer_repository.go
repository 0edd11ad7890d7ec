package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-loja/internal/domain/customer"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
)

// Erros específicos do repositório de clientes
var (
	ErrCustomerNotFound  = errors.New("cliente não encontrado")
	ErrCustomerDuplicate = errors.New("já existe um cliente com este nome ou email")
)

// CustomerRepository implementa customer.Repository sobre o armazenamento
// chave-valor (chave "customers")
type CustomerRepository struct {
	store kvstore.Store
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(store kvstore.Store) customer.Repository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) load(ctx context.Context) ([]*customer.Customer, error) {
	data, err := r.store.Get(ctx, kvstore.KeyCustomers)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao carregar clientes: %w", err)
	}

	var customers []*customer.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, fmt.Errorf("erro ao decodificar clientes: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) save(ctx context.Context, customers []*customer.Customer) error {
	if customers == nil {
		customers = []*customer.Customer{}
	}
	data, err := json.Marshal(customers)
	if err != nil {
		return fmt.Errorf("erro ao codificar clientes: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyCustomers, data); err != nil {
		return fmt.Errorf("erro ao gravar clientes: %w", err)
	}
	return nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	return r.load(ctx)
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	customers, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// Create implementa customer.Repository.Create. O cadastro é rejeitado com
// ErrCustomerDuplicate quando nome ou email já existem (comparação sem
// distinção de maiúsculas).
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	customers, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range customers {
		if existing.ConflictsWith(c.Name, c.Email) {
			return ErrCustomerDuplicate
		}
	}
	customers = append(customers, c)
	return r.save(ctx, customers)
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	customers, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == c.ID {
			customers[i] = c
			return r.save(ctx, customers)
		}
	}
	return ErrCustomerNotFound
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id string) (bool, error) {
	customers, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range customers {
		if customers[i].ID == id {
			customers = append(customers[:i], customers[i+1:]...)
			if err := r.save(ctx, customers); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ReplaceAll implementa customer.Repository.ReplaceAll
func (r *CustomerRepository) ReplaceAll(ctx context.Context, customers []*customer.Customer) error {
	return r.save(ctx, customers)
}
