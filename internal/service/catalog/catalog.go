package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/product"
	"github.com/hugohenrick/pdv-loja/internal/event"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

var (
	// ErrValidation é retornado quando os dados do produto não passam na validação
	ErrValidation = errors.New("validação de produto falhou")
)

// ProductInput agrupa os dados de cadastro ou atualização de um produto
type ProductInput struct {
	Name        string
	Category    product.Category
	Price       decimal.Decimal
	Stock       int
	Barcode     string
	Description string
}

// Service implementa as operações do catálogo de produtos
type Service struct {
	products product.Repository
	bus      *event.Bus
	logger   logger.Logger
}

// NewService cria uma nova instância do serviço de catálogo
func NewService(products product.Repository, bus *event.Bus, logger logger.Logger) *Service {
	return &Service{
		products: products,
		bus:      bus,
		logger:   logger,
	}
}

// List retorna todos os produtos do catálogo
func (s *Service) List(ctx context.Context) ([]*product.Product, error) {
	return s.products.List(ctx)
}

// GetByID busca um produto pelo ID. Retorna nil quando não existe.
func (s *Service) GetByID(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Search retorna os produtos que correspondem ao termo (nome, categoria ou
// código de barras), opcionalmente restritos a uma categoria
func (s *Service) Search(ctx context.Context, query string, category product.Category) ([]*product.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*product.Product
	for _, p := range all {
		if category != "" && p.Category != category {
			continue
		}
		if p.Matches(query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Add valida e cadastra um novo produto. Violações de validação abortam a
// operação antes de qualquer mutação.
func (s *Service) Add(ctx context.Context, input ProductInput) (*product.Product, error) {
	p, err := product.NewProduct(input.Name, input.Category, input.Price, input.Stock, input.Barcode, input.Description)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("produto cadastrado", "id", p.ID, "name", p.Name)
	s.bus.Publish(event.TopicProductChanged, p)
	return p, nil
}

// Update valida e atualiza um produto existente. Retorna nil quando o
// produto não existe.
func (s *Service) Update(ctx context.Context, id string, input ProductInput) (*product.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updated := *p
	updated.Name = input.Name
	updated.Category = input.Category
	updated.Price = input.Price
	updated.Stock = input.Stock
	updated.Barcode = input.Barcode
	updated.Description = input.Description

	if violations := updated.Validate(); len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(violations, "; "))
	}

	if err := s.products.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.bus.Publish(event.TopicProductChanged, &updated)
	return &updated, nil
}

// Delete remove um produto do catálogo. Retorna false quando o produto
// não existe.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("produto removido", "id", id)
		s.bus.Publish(event.TopicProductChanged, id)
	}
	return deleted, nil
}

// AdjustStock aplica um delta ao estoque de um produto, saturando em zero:
// o resultado nunca é negativo e a operação nunca falha por isso. Retorna o
// novo estoque.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	newStock := p.Stock + delta
	if newStock < 0 {
		newStock = 0
	}

	if err := s.products.UpdateStock(ctx, id, newStock); err != nil {
		return 0, err
	}

	s.bus.Publish(event.TopicProductChanged, id)
	return newStock, nil
}
