package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/pkg/middleware"
)

// RegisterPOSRoutes registra as rotas do carrinho e do fechamento de venda
func RegisterPOSRoutes(r *gin.RouterGroup, posController *controller.POSController) {
	pos := r.Group("/pos")
	pos.Use(middleware.AuthMiddleware())
	{
		pos.GET("/cart", posController.GetCart)
		pos.DELETE("/cart", posController.ClearCart)
		pos.POST("/cart/items", posController.AddItem)
		pos.PUT("/cart/items/:productId", posController.UpdateQuantity)
		pos.DELETE("/cart/items/:productId", posController.RemoveItem)
		pos.POST("/checkout", posController.Checkout)
	}
}
