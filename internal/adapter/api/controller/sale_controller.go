package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
	"github.com/hugohenrick/pdv-loja/internal/service/checkout"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// SaleController gerencia o histórico de vendas e estornos
type SaleController struct {
	sales    sale.Repository
	checkout *checkout.Service
	logger   logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(sales sale.Repository, checkoutService *checkout.Service, logger logger.Logger) *SaleController {
	return &SaleController{
		sales:    sales,
		checkout: checkoutService,
		logger:   logger,
	}
}

// parseDateRange lê os parâmetros from e to no formato AAAA-MM-DD. O limite
// superior é estendido até o fim do dia para que o intervalo seja inclusivo.
func parseDateRange(ctx *gin.Context) (time.Time, time.Time, bool, error) {
	fromStr := ctx.Query("from")
	toStr := ctx.Query("to")
	if fromStr == "" && toStr == "" {
		return time.Time{}, time.Time{}, false, nil
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, true, nil
}

// List retorna as vendas registradas
// @Summary Listar vendas
// @Description Retorna as vendas registradas, com filtro opcional por intervalo de datas
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} dto.SaleListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	from, to, filtered, err := parseDateRange(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "intervalo de datas inválido", err.Error()))
		return
	}

	var sales []*sale.Sale
	if filtered {
		sales, err = c.sales.FindByDateRange(ctx, from, to)
	} else {
		sales, err = c.sales.List(ctx)
	}
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda pelo ID
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	s, err := c.sales.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// FindByCustomer retorna as vendas de um cliente
// @Summary Vendas por cliente
// @Description Retorna as vendas associadas a um cliente
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SaleListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/sales [get]
func (c *SaleController) FindByCustomer(ctx *gin.Context) {
	sales, err := c.sales.FindByCustomer(ctx, ctx.Param("id"))
	if err != nil {
		c.logger.Error("erro ao listar vendas do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas do cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// Refund estorna uma venda
// @Summary Estornar venda
// @Description Devolve o estoque das linhas e marca a venda como estornada
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/refund [post]
func (c *SaleController) Refund(ctx *gin.Context) {
	s, err := c.checkout.Refund(ctx, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSaleNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
		case errors.Is(err, sale.ErrAlreadyRefunded):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao estornar venda", err.Error()))
		default:
			c.logger.Error("erro ao estornar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao estornar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}
