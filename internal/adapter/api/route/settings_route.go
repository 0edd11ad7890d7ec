package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/pkg/middleware"
)

// RegisterSettingsRoutes registra as rotas de configurações da loja
func RegisterSettingsRoutes(r *gin.RouterGroup, settingsController *controller.SettingsController) {
	settings := r.Group("/settings")
	settings.Use(middleware.AuthMiddleware())
	{
		settings.GET("", settingsController.Get)
		settings.PUT("", settingsController.Update)
	}
}
