package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-loja/pkg/middleware"
)

// RegisterReportRoutes registra as rotas de relatórios e do painel
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/sales", reportController.SalesReport)
		reports.GET("/sales/csv", reportController.ExportCSV)
		reports.GET("/dashboard", reportController.Dashboard)
	}
}
