package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/pkg/middleware"
)

// RegisterSaleRoutes registra as rotas do histórico de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(middleware.AuthMiddleware())
	{
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.POST("/:id/refund", saleController.Refund)
	}
}
