package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/route"
	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/operator"
	"github.com/hugohenrick/pdv-loja/internal/event"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pdv-loja/internal/service/backup"
	"github.com/hugohenrick/pdv-loja/internal/service/catalog"
	"github.com/hugohenrick/pdv-loja/internal/service/checkout"
	"github.com/hugohenrick/pdv-loja/internal/service/customers"
	"github.com/hugohenrick/pdv-loja/internal/service/report"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// newTestRouter monta a API completa sobre o armazenamento em memória, com
// um operador administrador já cadastrado
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	gin.SetMode(gin.TestMode)

	store := kvstore.NewMemoryStore()
	log := logger.NewNopLogger()

	productRepo := repository.NewProductRepository(store)
	customerRepo := repository.NewCustomerRepository(store)
	saleRepo := repository.NewSaleRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)
	operatorRepo := repository.NewOperatorRepository(store)

	admin, err := operator.NewOperator("Administrador", "admin@loja.test", operator.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, admin.SetPassword("senha-forte"))
	require.NoError(t, operatorRepo.Create(context.Background(), admin))

	bus := event.NewBus()
	catalogService := catalog.NewService(productRepo, bus, log)
	customersService := customers.NewService(customerRepo, saleRepo, bus, log)
	checkoutService := checkout.NewService(catalogService, saleRepo, customerRepo, settingsRepo, bus, log)
	reportService := report.NewService(saleRepo, productRepo, customerRepo, log)
	backupService := backup.NewService(store, log)

	router := gin.New()
	api := router.Group("/api/v1")

	saleController := controller.NewSaleController(saleRepo, checkoutService, log)
	route.RegisterAuthRoutes(api, controller.NewAuthController(operatorRepo, log))
	route.RegisterProductRoutes(api, controller.NewProductController(catalogService, log))
	route.RegisterCustomerRoutes(api, controller.NewCustomerController(customersService, log), saleController)
	route.RegisterPOSRoutes(api, controller.NewPOSController(checkoutService, log))
	route.RegisterSaleRoutes(api, saleController)
	route.RegisterReportRoutes(api, controller.NewReportController(reportService, log))
	route.RegisterSettingsRoutes(api, controller.NewSettingsController(settingsRepo, bus, log))
	route.RegisterBackupRoutes(api, controller.NewBackupController(backupService, log))

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@loja.test",
		"password": "senha-forte",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := decode(t, rec)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@loja.test",
		"password": "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSaleFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	// Cadastrar produto
	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", token, gin.H{
		"name":     "Café Torrado",
		"category": "food",
		"price":    "10",
		"stock":    10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	productID, _ := decode(t, rec)["id"].(string)
	require.NotEmpty(t, productID)

	// Adicionar ao carrinho
	rec = doJSON(t, router, http.MethodPost, "/api/v1/pos/cart/items", token, gin.H{
		"product_id": productID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Fechar a venda
	rec = doJSON(t, router, http.MethodPost, "/api/v1/pos/checkout", token, gin.H{
		"payment_method": "card",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sale := decode(t, rec)
	assert.NotEmpty(t, sale["receipt_number"])
	assert.Equal(t, "20", sale["total"])

	// Estoque baixado
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/products/%s", productID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(8), decode(t, rec)["stock"])

	// Painel reflete a venda
	rec = doJSON(t, router, http.MethodGet, "/api/v1/reports/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["total_transactions"])
}

func TestSettingsUpdateReplacesWholeDocument(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/settings", token, gin.H{
		"shop_name": "Mercearia Central",
		"tax_rate":  "0.1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// PUT sem tax_rate zera o campo: a atualização substitui o documento
	// inteiro, não mescla com o valor anterior
	rec = doJSON(t, router, http.MethodPut, "/api/v1/settings", token, gin.H{
		"shop_name": "Mercearia Central",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/settings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Mercearia Central", body["shop_name"])
	assert.Equal(t, "0", body["tax_rate"])
}

func TestBackupImportRequiresAllCollections(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/backup/import", token, gin.H{
		"products":  []gin.H{},
		"sales":     []gin.H{},
		"customers": []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
