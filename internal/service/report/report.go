package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-loja/internal/domain/customer"
	"github.com/hugohenrick/pdv-loja/internal/domain/product"
	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// DefaultPeriodDays é a janela padrão dos relatórios quando nenhum
// intervalo é informado
const DefaultPeriodDays = 30

// Period delimita o intervalo de um relatório, inclusivo nas duas pontas
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Summary traz as estatísticas básicas do período
type Summary struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalTransactions int             `json:"total_transactions"`
	AverageSale       decimal.Decimal `json:"average_sale"`
}

// PaymentBreakdown acumula contagem e valor por forma de pagamento
type PaymentBreakdown struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// ProductRanking é uma posição na lista de produtos mais vendidos
type ProductRanking struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// SalesReport é o relatório completo de um período de vendas
type SalesReport struct {
	Period         Period                              `json:"period"`
	Summary        Summary                             `json:"summary"`
	PaymentMethods map[sale.PaymentMethod]PaymentBreakdown `json:"payment_methods"`
	TopProducts    []ProductRanking                    `json:"top_products"`
	Sales          []*sale.Sale                        `json:"sales"`
}

// Dashboard é o resumo geral exibido na tela inicial do caixa
type Dashboard struct {
	TotalSales        decimal.Decimal  `json:"total_sales"`
	TotalTransactions int              `json:"total_transactions"`
	AverageSale       decimal.Decimal  `json:"average_sale"`
	TodayTotal        decimal.Decimal  `json:"today_total"`
	TodayTransactions int              `json:"today_transactions"`
	TopProducts       []ProductRanking `json:"top_products"`
	LowStockCount     int              `json:"low_stock_count"`
	ProductCount      int              `json:"product_count"`
	CustomerCount     int              `json:"customer_count"`
}

// Service agrega vendas em relatórios por período, exportação CSV e o
// resumo do painel. Vendas estornadas permanecem nos relatórios: o estorno
// marca a venda mas não a remove do histórico.
type Service struct {
	sales     sale.Repository
	products  product.Repository
	customers customer.Repository
	logger    logger.Logger
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(sales sale.Repository, products product.Repository, customers customer.Repository, logger logger.Logger) *Service {
	return &Service{
		sales:     sales,
		products:  products,
		customers: customers,
		logger:    logger,
	}
}

// DefaultPeriod retorna a janela padrão: os últimos 30 dias, do início do
// primeiro dia ao fim do dia corrente
func DefaultPeriod(now time.Time) Period {
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -DefaultPeriodDays)
	return Period{From: start, To: end}
}

// SalesReport monta o relatório do intervalo informado. Intervalo zerado
// usa a janela padrão.
func (s *Service) SalesReport(ctx context.Context, period Period) (*SalesReport, error) {
	if period.From.IsZero() && period.To.IsZero() {
		period = DefaultPeriod(time.Now())
	}

	sales, err := s.sales.FindByDateRange(ctx, period.From, period.To)
	if err != nil {
		return nil, err
	}

	totalSales := decimal.Zero
	methods := make(map[sale.PaymentMethod]PaymentBreakdown)
	for _, sl := range sales {
		totalSales = totalSales.Add(sl.Total)

		breakdown := methods[sl.PaymentMethod]
		breakdown.Count++
		breakdown.Total = breakdown.Total.Add(sl.Total)
		methods[sl.PaymentMethod] = breakdown
	}

	average := decimal.Zero
	if len(sales) > 0 {
		average = totalSales.Div(decimal.NewFromInt(int64(len(sales))))
	}

	return &SalesReport{
		Period: period,
		Summary: Summary{
			TotalSales:        totalSales,
			TotalTransactions: len(sales),
			AverageSale:       average,
		},
		PaymentMethods: methods,
		TopProducts:    rankProducts(sales, 10, byRevenue),
		Sales:          sales,
	}, nil
}

// walkInCustomer identifica vendas sem cliente associado no CSV exportado.
const walkInCustomer = "Walk-in Customer"

// ExportCSV escreve as vendas do período em CSV, uma linha por venda.
// A coluna itemsDetails resume as linhas da venda no formato
// "Nome (quantidadexpreço)" separado por "; ".
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, period Period) error {
	rpt, err := s.SalesReport(ctx, period)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"date", "receiptNumber", "customer", "paymentMethod",
		"items", "subtotal", "tax", "total", "itemsDetails",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, sl := range rpt.Sales {
		customerName := sl.CustomerName
		if customerName == "" {
			customerName = walkInCustomer
		}

		details := make([]string, 0, len(sl.Items))
		for _, item := range sl.Items {
			details = append(details, fmt.Sprintf("%s (%dx%s)", item.Name, item.Quantity, item.Price.String()))
		}

		record := []string{
			sl.Date.Format(time.RFC3339),
			sl.ReceiptNumber,
			customerName,
			string(sl.PaymentMethod),
			strconv.Itoa(len(sl.Items)),
			sl.Subtotal.String(),
			sl.Tax.String(),
			sl.Total.String(),
			strings.Join(details, "; "),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Dashboard monta o resumo geral da loja: totais acumulados, movimento do
// dia, produtos mais vendidos por quantidade e contadores de catálogo
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	totalSales := decimal.Zero
	for _, sl := range sales {
		totalSales = totalSales.Add(sl.Total)
	}
	average := decimal.Zero
	if len(sales) > 0 {
		average = totalSales.Div(decimal.NewFromInt(int64(len(sales))))
	}

	today := DefaultPeriod(time.Now())
	today.From = time.Date(today.To.Year(), today.To.Month(), today.To.Day(), 0, 0, 0, 0, today.To.Location())
	todayTotal := decimal.Zero
	todayCount := 0
	for _, sl := range sales {
		if !sl.Date.Before(today.From) && !sl.Date.After(today.To) {
			todayTotal = todayTotal.Add(sl.Total)
			todayCount++
		}
	}

	lowStock := 0
	for _, p := range products {
		if p.Stock <= product.LowStockThreshold {
			lowStock++
		}
	}

	return &Dashboard{
		TotalSales:        totalSales,
		TotalTransactions: len(sales),
		AverageSale:       average,
		TodayTotal:        todayTotal,
		TodayTransactions: todayCount,
		TopProducts:       rankProducts(sales, 5, byQuantity),
		LowStockCount:     lowStock,
		ProductCount:      len(products),
		CustomerCount:     len(customers),
	}, nil
}

type rankOrder int

const (
	byRevenue rankOrder = iota
	byQuantity
)

// rankProducts acumula quantidade e receita por produto em todas as linhas
// das vendas e retorna os primeiros colocados. O nome capturado na venda é
// usado tal qual; produtos já removidos do catálogo continuam ranqueados.
func rankProducts(sales []*sale.Sale, limit int, order rankOrder) []ProductRanking {
	byProduct := make(map[string]*ProductRanking)
	for _, sl := range sales {
		for _, item := range sl.Items {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &ProductRanking{ProductID: item.ProductID, Name: item.Name}
				byProduct[item.ProductID] = entry
			}
			entry.Quantity += item.Quantity
			entry.Revenue = entry.Revenue.Add(item.Subtotal())
		}
	}

	ranking := make([]ProductRanking, 0, len(byProduct))
	for _, entry := range byProduct {
		ranking = append(ranking, *entry)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if order == byQuantity {
			if ranking[i].Quantity != ranking[j].Quantity {
				return ranking[i].Quantity > ranking[j].Quantity
			}
		} else if !ranking[i].Revenue.Equal(ranking[j].Revenue) {
			return ranking[i].Revenue.GreaterThan(ranking[j].Revenue)
		}
		return ranking[i].Name < ranking[j].Name
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
