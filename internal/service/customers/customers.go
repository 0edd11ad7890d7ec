package customers

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/customer"
	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
	"github.com/hugohenrick/pdv-loja/internal/event"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

var (
	// ErrDuplicate é retornado quando nome ou email colidem com um cliente existente
	ErrDuplicate = repository.ErrCustomerDuplicate
)

// CustomerInput agrupa os dados de cadastro ou atualização de um cliente
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Service implementa as operações sobre o cadastro de clientes
type Service struct {
	customers customer.Repository
	sales     sale.Repository
	bus       *event.Bus
	logger    logger.Logger
}

// NewService cria uma nova instância do serviço de clientes
func NewService(customers customer.Repository, sales sale.Repository, bus *event.Bus, logger logger.Logger) *Service {
	return &Service{
		customers: customers,
		sales:     sales,
		bus:       bus,
		logger:    logger,
	}
}

// List retorna todos os clientes cadastrados
func (s *Service) List(ctx context.Context) ([]*customer.Customer, error) {
	return s.customers.List(ctx)
}

// GetByID busca um cliente pelo ID. Retorna nil quando não existe.
func (s *Service) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Add cadastra um novo cliente. A operação é abortada com ErrDuplicate
// quando nome ou email já existem, sem distinção de maiúsculas.
func (s *Service) Add(ctx context.Context, input CustomerInput) (*customer.Customer, error) {
	c, err := customer.NewCustomer(input.Name, input.Email, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}

	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("cliente cadastrado", "id", c.ID, "name", c.Name)
	s.bus.Publish(event.TopicCustomerChanged, c)
	return c, nil
}

// Update atualiza os dados cadastrais de um cliente, preservando as
// estatísticas acumuladas. Retorna nil quando o cliente não existe.
func (s *Service) Update(ctx context.Context, id string, input CustomerInput) (*customer.Customer, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if input.Name == "" {
		return nil, customer.ErrEmptyName
	}

	updated := *c
	updated.Name = input.Name
	updated.Email = input.Email
	updated.Phone = input.Phone
	updated.Address = input.Address

	if err := s.customers.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.bus.Publish(event.TopicCustomerChanged, &updated)
	return &updated, nil
}

// Delete remove um cliente. Retorna false quando o cliente não existe.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.customers.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("cliente removido", "id", id)
		s.bus.Publish(event.TopicCustomerChanged, id)
	}
	return deleted, nil
}

// RecomputeStats recalcula TotalPurchases e TotalSpent a partir das vendas
// não estornadas do cliente e persiste apenas quando algo mudou. É o
// mecanismo de reconciliação para as estatísticas desnormalizadas.
func (s *Service) RecomputeStats(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, nil
		}
		return nil, err
	}

	sales, err := s.sales.FindByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	totalPurchases := 0
	totalSpent := decimal.Zero
	for _, sl := range sales {
		if sl.Refunded {
			continue
		}
		totalPurchases++
		totalSpent = totalSpent.Add(sl.Total)
	}

	if c.TotalPurchases == totalPurchases && c.TotalSpent.Equal(totalSpent) {
		return c, nil
	}

	updated := *c
	updated.TotalPurchases = totalPurchases
	updated.TotalSpent = totalSpent

	if err := s.customers.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("estatísticas do cliente recalculadas", "id", id,
		"purchases", totalPurchases, "spent", totalSpent)
	return &updated, nil
}
