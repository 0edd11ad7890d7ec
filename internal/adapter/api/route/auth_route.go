package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/pkg/middleware"
)

// RegisterAuthRoutes registra as rotas de autenticação e gestão de operadores
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)

		operators := auth.Group("/operators")
		operators.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
		{
			operators.GET("", authController.ListOperators)
			operators.POST("", authController.CreateOperator)
		}
	}
}
