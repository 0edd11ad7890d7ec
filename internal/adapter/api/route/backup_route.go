package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/pkg/middleware"
)

// RegisterBackupRoutes registra as rotas de exportação e importação de dados.
// A importação sobrescreve todos os dados da loja, então fica restrita a
// administradores.
func RegisterBackupRoutes(r *gin.RouterGroup, backupController *controller.BackupController) {
	backup := r.Group("/backup")
	backup.Use(middleware.AuthMiddleware())
	{
		backup.GET("/export", backupController.Export)
		backup.POST("/import", middleware.AdminOnly(), backupController.Import)
	}
}
