package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-loja/internal/domain/product"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
)

// Erros específicos do repositório de produtos
var (
	ErrProductNotFound = errors.New("produto não encontrado")
)

// ProductRepository implementa product.Repository sobre o armazenamento
// chave-valor: a coleção inteira vive como um documento JSON na chave
// "products" e é reescrita a cada mutação.
type ProductRepository struct {
	store kvstore.Store
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(store kvstore.Store) product.Repository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) load(ctx context.Context) ([]*product.Product, error) {
	data, err := r.store.Get(ctx, kvstore.KeyProducts)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao carregar produtos: %w", err)
	}

	var products []*product.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("erro ao decodificar produtos: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) save(ctx context.Context, products []*product.Product) error {
	if products == nil {
		products = []*product.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("erro ao codificar produtos: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyProducts, data); err != nil {
		return fmt.Errorf("erro ao gravar produtos: %w", err)
	}
	return nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	return r.load(ctx)
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	products = append(products, p)
	return r.save(ctx, products)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return r.save(ctx, products)
		}
	}
	return ErrProductNotFound
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	products, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			if err := r.save(ctx, products); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// UpdateStock implementa product.Repository.UpdateStock
func (r *ProductRepository) UpdateStock(ctx context.Context, id string, stock int) error {
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products[i].Stock = stock
			return r.save(ctx, products)
		}
	}
	return ErrProductNotFound
}

// ReplaceAll implementa product.Repository.ReplaceAll
func (r *ProductRepository) ReplaceAll(ctx context.Context, products []*product.Product) error {
	return r.save(ctx, products)
}
