package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
)

// Erros específicos do repositório de vendas
var (
	ErrSaleNotFound = errors.New("venda não encontrada")
)

// SaleRepository implementa sale.Repository sobre o armazenamento
// chave-valor (chave "sales")
type SaleRepository struct {
	store kvstore.Store
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(store kvstore.Store) sale.Repository {
	return &SaleRepository{store: store}
}

func (r *SaleRepository) load(ctx context.Context) ([]*sale.Sale, error) {
	data, err := r.store.Get(ctx, kvstore.KeySales)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao carregar vendas: %w", err)
	}

	var sales []*sale.Sale
	if err := json.Unmarshal(data, &sales); err != nil {
		return nil, fmt.Errorf("erro ao decodificar vendas: %w", err)
	}
	return sales, nil
}

func (r *SaleRepository) save(ctx context.Context, sales []*sale.Sale) error {
	if sales == nil {
		sales = []*sale.Sale{}
	}
	data, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("erro ao codificar vendas: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeySales, data); err != nil {
		return fmt.Errorf("erro ao gravar vendas: %w", err)
	}
	return nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	return r.load(ctx)
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	sales, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrSaleNotFound
}

// FindByDateRange implementa sale.Repository.FindByDateRange
func (r *SaleRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	sales, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*sale.Sale
	for _, s := range sales {
		if !s.Date.Before(from) && !s.Date.After(to) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// FindByCustomer implementa sale.Repository.FindByCustomer
func (r *SaleRepository) FindByCustomer(ctx context.Context, customerID string) ([]*sale.Sale, error) {
	sales, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*sale.Sale
	for _, s := range sales {
		if s.CustomerID == customerID {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	sales, err := r.load(ctx)
	if err != nil {
		return err
	}
	sales = append(sales, s)
	return r.save(ctx, sales)
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	sales, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range sales {
		if sales[i].ID == s.ID {
			sales[i] = s
			return r.save(ctx, sales)
		}
	}
	return ErrSaleNotFound
}

// ReplaceAll implementa sale.Repository.ReplaceAll
func (r *SaleRepository) ReplaceAll(ctx context.Context, sales []*sale.Sale) error {
	return r.save(ctx, sales)
}
