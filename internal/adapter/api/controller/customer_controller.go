package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-loja/internal/domain/customer"
	"github.com/hugohenrick/pdv-loja/internal/service/customers"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customers *customers.Service
	logger    logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customersService *customers.Service, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customers: customersService,
		logger:    logger,
	}
}

// List retorna todos os clientes cadastrados
// @Summary Listar clientes
// @Description Retorna todos os clientes cadastrados
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	all, err := c.customers.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(all))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	found, err := c.customers.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}
	if found == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(found))
}

// Create cadastra um novo cliente
// @Summary Criar cliente
// @Description Cadastra um novo cliente; nome e email não podem colidir com um cliente existente
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.customers.Add(ctx, customers.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrDuplicate):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "cliente já cadastrado", err.Error()))
		case errors.Is(err, customer.ErrEmptyName):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		default:
			c.logger.Error("erro ao criar cliente", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(created))
}

// Update atualiza os dados cadastrais de um cliente
// @Summary Atualizar cliente
// @Description Atualiza os dados cadastrais; as estatísticas de compra são preservadas
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	updated, err := c.customers.Update(ctx, ctx.Param("id"), customers.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, customer.ErrEmptyName) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar cliente", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cliente", err.Error()))
		return
	}
	if updated == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(updated))
}

// Delete remove um cliente do cadastro
// @Summary Remover cliente
// @Description Remove um cliente; o histórico de vendas associado é preservado
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	deleted, err := c.customers.Delete(ctx, ctx.Param("id"))
	if err != nil {
		c.logger.Error("erro ao remover cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover cliente", err.Error()))
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente removido com sucesso", nil))
}

// RecomputeStats reconcilia as estatísticas do cliente com o histórico de vendas
// @Summary Recalcular estatísticas
// @Description Recalcula total de compras e total gasto a partir das vendas não estornadas
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/recompute-stats [post]
func (c *CustomerController) RecomputeStats(ctx *gin.Context) {
	recomputed, err := c.customers.RecomputeStats(ctx, ctx.Param("id"))
	if err != nil {
		c.logger.Error("erro ao recalcular estatísticas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao recalcular estatísticas", err.Error()))
		return
	}
	if recomputed == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(recomputed))
}
