package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/customer"
	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
	"github.com/hugohenrick/pdv-loja/internal/domain/settings"
	"github.com/hugohenrick/pdv-loja/internal/event"
	"github.com/hugohenrick/pdv-loja/internal/service/catalog"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// CheckoutInput agrupa os parâmetros do fechamento de uma venda
type CheckoutInput struct {
	PaymentMethod sale.PaymentMethod
	CashReceived  decimal.Decimal
	CustomerID    string
}

// Totals é o resumo corrente do carrinho
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Service implementa o fluxo de venda do caixa: montagem do carrinho,
// fechamento e estorno.
//
// Todas as mutações passam por um único mutex: o fluxo foi desenhado para
// um caixa por processo, e a serialização garante que o estoque seja lido
// e gravado sem intercalação. Os passos do fechamento (gravar venda,
// baixar estoque, atualizar estatísticas) são escritas independentes, não
// uma transação: uma interrupção no meio pode deixar venda gravada com
// estoque por baixar. Risco aceito do modelo de implantação local.
type Service struct {
	mu   sync.Mutex
	cart *sale.Cart

	catalog   *catalog.Service
	sales     sale.Repository
	customers customer.Repository
	settings  settings.Repository
	bus       *event.Bus
	logger    logger.Logger
}

// NewService cria uma nova instância do serviço de checkout com carrinho vazio
func NewService(
	catalogService *catalog.Service,
	sales sale.Repository,
	customers customer.Repository,
	settingsRepo settings.Repository,
	bus *event.Bus,
	logger logger.Logger,
) *Service {
	return &Service{
		cart:      sale.NewCart(),
		catalog:   catalogService,
		sales:     sales,
		customers: customers,
		settings:  settingsRepo,
		bus:       bus,
		logger:    logger,
	}
}

// Cart retorna as linhas correntes do carrinho
func (s *Service) Cart() []sale.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartTotals calcula o resumo do carrinho com a alíquota configurada
func (s *Service) CartTotals(ctx context.Context) (*Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalsLocked(ctx)
}

func (s *Service) cartTotalsLocked(ctx context.Context) (*Totals, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	subtotal, tax, total := s.cart.Totals(cfg.TaxRate)
	return &Totals{Subtotal: subtotal, Tax: tax, Total: total}, nil
}

// AddItem adiciona unidades de um produto ao carrinho. A quantidade é
// limitada ao estoque do produto neste momento; o fechamento não revalida.
func (s *Service) AddItem(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return repository.ErrProductNotFound
	}

	return s.cart.AddItem(p, quantity)
}

// UpdateQuantity define a quantidade absoluta de uma linha do carrinho
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return repository.ErrProductNotFound
	}

	return s.cart.UpdateQuantity(p, quantity)
}

// RemoveItem remove uma linha do carrinho
func (s *Service) RemoveItem(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.RemoveItem(productID)
}

// ClearCart esvazia o carrinho sem registrar venda
func (s *Service) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Checkout fecha a venda corrente:
//
//  1. calcula subtotal, imposto e total do carrinho;
//  2. valida o pagamento (dinheiro insuficiente aborta sem nenhuma mutação);
//  3. grava a venda com recibo numerado;
//  4. baixa o estoque de cada linha, saturando em zero;
//  5. atualiza as estatísticas do cliente, quando informado;
//  6. publica o evento de venda concluída;
//  7. esvazia o carrinho.
func (s *Service) Checkout(ctx context.Context, input CheckoutInput) (*sale.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return nil, sale.ErrEmptyCart
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	var cust *customer.Customer
	if input.CustomerID != "" {
		cust, err = s.customers.FindByID(ctx, input.CustomerID)
		if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, err
		}
	}

	// A venda só referencia clientes existentes; um identificador que não
	// resolve é descartado em vez de gravado como vínculo quebrado.
	customerID := ""
	customerName := ""
	if cust != nil {
		customerID = cust.ID
		customerName = cust.Name
	}

	// NewSale valida o pagamento; em caso de erro nada foi persistido ainda
	newSale, err := sale.NewSale(s.cart.Items(), cfg.TaxRate, input.PaymentMethod,
		input.CashReceived, customerID, customerName)
	if err != nil {
		return nil, err
	}

	if err := s.sales.Create(ctx, newSale); err != nil {
		return nil, err
	}

	// Baixa de estoque por linha. Produtos removidos do catálogo depois de
	// entrarem no carrinho são ignorados; a venda mantém a quantidade
	// originalmente pretendida.
	for _, item := range newSale.Items {
		if _, err := s.catalog.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			s.logger.Error("falha ao baixar estoque após venda gravada",
				"sale", newSale.ID, "product", item.ProductID, "error", err)
			return newSale, err
		}
	}

	if cust != nil {
		updated := *cust
		updated.RegisterPurchase(newSale.Total)
		if err := s.customers.Update(ctx, &updated); err != nil {
			s.logger.Error("falha ao atualizar estatísticas do cliente",
				"sale", newSale.ID, "customer", cust.ID, "error", err)
			return newSale, err
		}
	}

	s.bus.Publish(event.TopicSaleCompleted, newSale)
	s.cart.Clear()

	s.logger.Info("venda concluída", "receipt", newSale.ReceiptNumber,
		"total", newSale.Total, "method", newSale.PaymentMethod)
	return newSale, nil
}

// Refund estorna uma venda: devolve ao estoque a quantidade de cada linha e
// marca a venda como estornada. As estatísticas do cliente não são
// revertidas; estornos continuam contando como compras realizadas.
func (s *Service) Refund(ctx context.Context, saleID string) (*sale.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, err := s.sales.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := sl.Refund(); err != nil {
		return nil, err
	}

	for _, item := range sl.Items {
		if _, err := s.catalog.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
	}

	if err := s.sales.Update(ctx, sl); err != nil {
		return nil, err
	}

	s.bus.Publish(event.TopicSaleRefunded, sl)
	s.logger.Info("venda estornada", "receipt", sl.ReceiptNumber, "total", sl.Total)
	return sl, nil
}
