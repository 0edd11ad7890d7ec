package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/customer"
	"github.com/hugohenrick/pdv-loja/internal/domain/product"
	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

func newReportFixture(t *testing.T) (*Service, sale.Repository, product.Repository, customer.Repository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	sales := repository.NewSaleRepository(store)
	products := repository.NewProductRepository(store)
	customers := repository.NewCustomerRepository(store)
	return NewService(sales, products, customers, logger.NewNopLogger()), sales, products, customers
}

func makeSale(t *testing.T, items []sale.Item, method sale.PaymentMethod, date time.Time) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale(items, decimal.Zero, method, decimal.NewFromInt(1000), "", "")
	require.NoError(t, err)
	s.Date = date
	return s
}

func TestSalesReportAggregates(t *testing.T) {
	ctx := context.Background()
	svc, sales, _, _ := newReportFixture(t)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, sales.Create(ctx, makeSale(t, []sale.Item{
		{ProductID: "p1", Name: "Café", Price: decimal.NewFromInt(10), Quantity: 2},
	}, sale.PaymentCash, base)))
	require.NoError(t, sales.Create(ctx, makeSale(t, []sale.Item{
		{ProductID: "p2", Name: "Açúcar", Price: decimal.NewFromInt(5), Quantity: 1},
		{ProductID: "p1", Name: "Café", Price: decimal.NewFromInt(10), Quantity: 1},
	}, sale.PaymentCard, base.Add(time.Hour))))
	require.NoError(t, sales.Create(ctx, makeSale(t, []sale.Item{
		{ProductID: "p2", Name: "Açúcar", Price: decimal.NewFromInt(5), Quantity: 3},
	}, sale.PaymentCash, base.AddDate(0, 0, 5))))

	rpt, err := svc.SalesReport(ctx, Period{From: base.AddDate(0, 0, -1), To: base.AddDate(0, 0, 10)})
	require.NoError(t, err)

	assert.Equal(t, 3, rpt.Summary.TotalTransactions)
	assert.True(t, rpt.Summary.TotalSales.Equal(decimal.NewFromInt(50)), "total = %s", rpt.Summary.TotalSales)
	assert.True(t, rpt.Summary.AverageSale.Equal(decimal.NewFromFloat(16.666666666666667)) ||
		rpt.Summary.AverageSale.Sub(decimal.NewFromFloat(16.6667)).Abs().LessThan(decimal.NewFromFloat(0.01)))

	cash := rpt.PaymentMethods[sale.PaymentCash]
	assert.Equal(t, 2, cash.Count)
	assert.True(t, cash.Total.Equal(decimal.NewFromInt(35)))
	card := rpt.PaymentMethods[sale.PaymentCard]
	assert.Equal(t, 1, card.Count)
	assert.True(t, card.Total.Equal(decimal.NewFromInt(15)))

	require.Len(t, rpt.TopProducts, 2)
	assert.Equal(t, "Café", rpt.TopProducts[0].Name)
	assert.Equal(t, 3, rpt.TopProducts[0].Quantity)
	assert.True(t, rpt.TopProducts[0].Revenue.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Açúcar", rpt.TopProducts[1].Name)
}

func TestSalesReportRangeInclusive(t *testing.T) {
	ctx := context.Background()
	svc, sales, _, _ := newReportFixture(t)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	item := []sale.Item{{ProductID: "p1", Name: "Café", Price: decimal.NewFromInt(10), Quantity: 1}}
	require.NoError(t, sales.Create(ctx, makeSale(t, item, sale.PaymentCard, from)))
	require.NoError(t, sales.Create(ctx, makeSale(t, item, sale.PaymentCard, to)))
	require.NoError(t, sales.Create(ctx, makeSale(t, item, sale.PaymentCard, from.Add(-time.Second))))
	require.NoError(t, sales.Create(ctx, makeSale(t, item, sale.PaymentCard, to.Add(time.Second))))

	rpt, err := svc.SalesReport(ctx, Period{From: from, To: to})
	require.NoError(t, err)
	assert.Equal(t, 2, rpt.Summary.TotalTransactions)
}

func TestSalesReportIncludesRefunded(t *testing.T) {
	ctx := context.Background()
	svc, sales, _, _ := newReportFixture(t)

	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := makeSale(t, []sale.Item{
		{ProductID: "p1", Name: "Café", Price: decimal.NewFromInt(10), Quantity: 1},
	}, sale.PaymentCard, date)
	require.NoError(t, s.Refund())
	require.NoError(t, sales.Create(ctx, s))

	rpt, err := svc.SalesReport(ctx, Period{From: date.AddDate(0, 0, -1), To: date.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, 1, rpt.Summary.TotalTransactions)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	svc, sales, _, _ := newReportFixture(t)

	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	itemName := "Café \"especial\",\nmoído"
	s, err := sale.NewSale([]sale.Item{
		{ProductID: "p1", Name: itemName, Price: decimal.NewFromInt(10), Quantity: 2},
	}, decimal.NewFromFloat(0.1), sale.PaymentCash, decimal.NewFromInt(100), "c1", `Silva, "Maria"`)
	require.NoError(t, err)
	s.Date = date
	require.NoError(t, sales.Create(ctx, s))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf, Period{From: date.AddDate(0, 0, -1), To: date.AddDate(0, 0, 1)}))

	raw := buf.String()
	assert.Contains(t, raw, `"Silva, ""Maria"""`)
	assert.Contains(t, raw, `"Café ""especial"",`)

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	header := []string{
		"date", "receiptNumber", "customer", "paymentMethod",
		"items", "subtotal", "tax", "total", "itemsDetails",
	}
	assert.Equal(t, header, records[0])

	row := records[1]
	assert.Equal(t, s.ReceiptNumber, row[1])
	assert.Equal(t, `Silva, "Maria"`, row[2])
	assert.Equal(t, "cash", row[3])
	assert.Equal(t, "1", row[4])
	assert.Equal(t, "20", row[5])
	assert.Equal(t, "2", row[6])
	assert.Equal(t, "22", row[7])
	assert.Equal(t, itemName+" (2x10)", row[8])
}

func TestExportCSVWalkInCustomer(t *testing.T) {
	ctx := context.Background()
	svc, sales, _, _ := newReportFixture(t)

	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := makeSale(t, []sale.Item{
		{ProductID: "p1", Name: "Café", Price: decimal.NewFromInt(10), Quantity: 1},
	}, sale.PaymentCard, date)
	require.NoError(t, sales.Create(ctx, s))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf, Period{From: date.AddDate(0, 0, -1), To: date.AddDate(0, 0, 1)}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Walk-in Customer", records[1][2])
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	svc, sales, products, customers := newReportFixture(t)

	low, err := product.NewProduct("Produto Baixo", product.CategoryFood, decimal.NewFromInt(5), 3, "", "")
	require.NoError(t, err)
	require.NoError(t, products.Create(ctx, low))
	high, err := product.NewProduct("Produto Alto", product.CategoryFood, decimal.NewFromInt(5), 50, "", "")
	require.NoError(t, err)
	require.NoError(t, products.Create(ctx, high))

	c, err := customer.NewCustomer("Maria", "maria@example.com", "", "")
	require.NoError(t, err)
	require.NoError(t, customers.Create(ctx, c))

	item := []sale.Item{{ProductID: low.ID, Name: low.Name, Price: decimal.NewFromInt(5), Quantity: 2}}
	require.NoError(t, sales.Create(ctx, makeSale(t, item, sale.PaymentCard, time.Now())))
	require.NoError(t, sales.Create(ctx, makeSale(t, item, sale.PaymentCard, time.Now().AddDate(0, 0, -2))))

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, dash.TotalTransactions)
	assert.True(t, dash.TotalSales.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 1, dash.TodayTransactions)
	assert.True(t, dash.TodayTotal.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 1, dash.LowStockCount)
	assert.Equal(t, 2, dash.ProductCount)
	assert.Equal(t, 1, dash.CustomerCount)
	require.Len(t, dash.TopProducts, 1)
	assert.Equal(t, 4, dash.TopProducts[0].Quantity)
}

func TestDefaultPeriodSpansTrailing30Days(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	p := DefaultPeriod(now)

	assert.Equal(t, time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC), p.From)
	assert.True(t, p.To.After(now))
	assert.Equal(t, 15, p.To.Day())
}
