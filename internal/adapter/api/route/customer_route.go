package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/pkg/middleware"
)

// RegisterCustomerRoutes registra as rotas do cadastro de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController, saleController *controller.SaleController) {
	customers := r.Group("/customers")
	customers.Use(middleware.AuthMiddleware())
	{
		customers.GET("", customerController.List)
		customers.POST("", customerController.Create)
		customers.GET("/:id", customerController.Get)
		customers.PUT("/:id", customerController.Update)
		customers.DELETE("/:id", customerController.Delete)
		customers.POST("/:id/recompute-stats", customerController.RecomputeStats)
		customers.GET("/:id/sales", saleController.FindByCustomer)
	}
}
