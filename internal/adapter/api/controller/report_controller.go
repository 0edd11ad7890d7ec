package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-loja/internal/service/report"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// ReportController gerencia os relatórios de vendas e o painel da loja
type ReportController struct {
	reports *report.Service
	logger  logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportService *report.Service, logger logger.Logger) *ReportController {
	return &ReportController{
		reports: reportService,
		logger:  logger,
	}
}

func (c *ReportController) period(ctx *gin.Context) (report.Period, error) {
	from, to, filtered, err := parseDateRange(ctx)
	if err != nil {
		return report.Period{}, err
	}
	if !filtered {
		return report.Period{}, nil
	}
	return report.Period{From: from, To: to}, nil
}

// SalesReport retorna o relatório de vendas de um período
// @Summary Relatório de vendas
// @Description Totais, transações, formas de pagamento e produtos mais vendidos do período; sem intervalo, usa os últimos 30 dias
// @Tags reports
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} report.SalesReport
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) SalesReport(ctx *gin.Context) {
	period, err := c.period(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "intervalo de datas inválido", err.Error()))
		return
	}

	rpt, err := c.reports.SalesReport(ctx, period)
	if err != nil {
		c.logger.Error("erro ao gerar relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rpt)
}

// ExportCSV exporta as vendas do período em CSV
// @Summary Exportar relatório em CSV
// @Description Gera um arquivo CSV com uma linha por venda do período
// @Tags reports
// @Accept json
// @Produce text/csv
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {string} string "conteúdo CSV"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales/csv [get]
func (c *ReportController) ExportCSV(ctx *gin.Context) {
	period, err := c.period(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "intervalo de datas inválido", err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := c.reports.ExportCSV(ctx, &buf, period); err != nil {
		c.logger.Error("erro ao exportar relatório CSV", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar relatório", err.Error()))
		return
	}

	filename := fmt.Sprintf("sales-report-%s.csv", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// Dashboard retorna o resumo geral da loja
// @Summary Painel da loja
// @Description Totais acumulados, movimento do dia, produtos mais vendidos e contadores de catálogo
// @Tags reports
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} report.Dashboard
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/dashboard [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	dash, err := c.reports.Dashboard(ctx)
	if err != nil {
		c.logger.Error("erro ao montar painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar painel", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dash)
}
