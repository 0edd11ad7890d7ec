package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/pdv-loja/docs"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/route"
	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/operator"
	"github.com/hugohenrick/pdv-loja/internal/event"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/database"
	"github.com/hugohenrick/pdv-loja/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pdv-loja/internal/service/backup"
	"github.com/hugohenrick/pdv-loja/internal/service/catalog"
	"github.com/hugohenrick/pdv-loja/internal/service/checkout"
	"github.com/hugohenrick/pdv-loja/internal/service/customers"
	"github.com/hugohenrick/pdv-loja/internal/service/report"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	store  kvstore.Store
	logger logger.Logger
	close  func()
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
// montadas. STORE_BACKEND=memory sobe o PDV sem banco de dados, útil para
// demonstração e desenvolvimento; o padrão é PostgreSQL.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	var (
		store   kvstore.Store
		closeFn = func() {}
	)
	if os.Getenv("STORE_BACKEND") == "memory" {
		log.Warn("armazenamento em memória habilitado, os dados não serão persistidos")
		store = kvstore.NewMemoryStore()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := database.NewPostgresPool(ctx)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
		}
		if err := database.RunMigrations(); err != nil {
			pool.Close()
			return nil, fmt.Errorf("erro ao executar migrações: %w", err)
		}
		store = kvstore.NewPostgresStore(pool)
		closeFn = pool.Close
	}

	// Repositórios sobre o armazenamento chave-valor
	productRepo := repository.NewProductRepository(store)
	customerRepo := repository.NewCustomerRepository(store)
	saleRepo := repository.NewSaleRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)
	operatorRepo := repository.NewOperatorRepository(store)

	bus := event.NewBus()

	// Serviços de domínio
	catalogService := catalog.NewService(productRepo, bus, log)
	customersService := customers.NewService(customerRepo, saleRepo, bus, log)
	checkoutService := checkout.NewService(catalogService, saleRepo, customerRepo, settingsRepo, bus, log)
	reportService := report.NewService(saleRepo, productRepo, customerRepo, log)
	backupService := backup.NewService(store, log)

	if err := bootstrapAdmin(operatorRepo, log); err != nil {
		closeFn()
		return nil, err
	}

	// Controllers
	productController := controller.NewProductController(catalogService, log)
	customerController := controller.NewCustomerController(customersService, log)
	posController := controller.NewPOSController(checkoutService, log)
	saleController := controller.NewSaleController(saleRepo, checkoutService, log)
	reportController := controller.NewReportController(reportService, log)
	settingsController := controller.NewSettingsController(settingsRepo, bus, log)
	backupController := controller.NewBackupController(backupService, log)
	authController := controller.NewAuthController(operatorRepo, log)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, authController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterCustomerRoutes(api, customerController, saleController)
	route.RegisterPOSRoutes(api, posController)
	route.RegisterSaleRoutes(api, saleController)
	route.RegisterReportRoutes(api, reportController)
	route.RegisterSettingsRoutes(api, settingsController)
	route.RegisterBackupRoutes(api, backupController)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &App{
		router: router,
		store:  store,
		logger: log,
		close:  closeFn,
	}, nil
}

// bootstrapAdmin cria o operador administrador inicial quando o cadastro de
// operadores ainda está vazio e as credenciais foram informadas por ambiente
func bootstrapAdmin(operators operator.Repository, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := operators.List(ctx)
	if err != nil {
		return fmt.Errorf("erro ao verificar operadores: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Warn("nenhum operador cadastrado e ADMIN_EMAIL/ADMIN_PASSWORD não definidos")
		return nil
	}

	admin, err := operator.NewOperator("Administrador", email, operator.RoleAdmin)
	if err != nil {
		return err
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := operators.Create(ctx, admin); err != nil {
		return fmt.Errorf("erro ao criar operador administrador: %w", err)
	}

	log.Info("operador administrador inicial criado", "email", email)
	return nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	a.close()
}
