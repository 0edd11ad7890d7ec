package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/pkg/middleware"
)

// RegisterProductRoutes registra as rotas do catálogo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(middleware.AuthMiddleware())
	{
		products.GET("", productController.List)
		products.POST("", productController.Create)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
		products.PATCH("/:id/stock", productController.AdjustStock)
	}
}
