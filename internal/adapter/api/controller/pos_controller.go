package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/sale"
	"github.com/hugohenrick/pdv-loja/internal/service/checkout"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// POSController gerencia o carrinho do caixa e o fechamento de vendas
type POSController struct {
	checkout *checkout.Service
	logger   logger.Logger
}

// NewPOSController cria uma nova instância de POSController
func NewPOSController(checkoutService *checkout.Service, logger logger.Logger) *POSController {
	return &POSController{
		checkout: checkoutService,
		logger:   logger,
	}
}

// GetCart retorna o conteúdo corrente do carrinho com os totais
// @Summary Consultar carrinho
// @Description Retorna as linhas do carrinho e os totais com a alíquota configurada
// @Tags pos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/cart [get]
func (c *POSController) GetCart(ctx *gin.Context) {
	totals, err := c.checkout.CartTotals(ctx)
	if err != nil {
		c.logger.Error("erro ao calcular totais do carrinho", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar carrinho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(c.checkout.Cart(), totals.Subtotal, totals.Tax, totals.Total))
}

// AddItem adiciona um produto ao carrinho
// @Summary Adicionar item
// @Description Adiciona unidades de um produto ao carrinho, limitado ao estoque disponível
// @Tags pos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.CartItemRequest true "Produto e quantidade"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/cart/items [post]
func (c *POSController) AddItem(ctx *gin.Context) {
	var req dto.CartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.checkout.AddItem(ctx, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
		case errors.Is(err, sale.ErrInsufficientStock), errors.Is(err, sale.ErrInvalidQuantity):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao adicionar item", err.Error()))
		default:
			c.logger.Error("erro ao adicionar item ao carrinho", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao adicionar item", err.Error()))
		}
		return
	}

	c.GetCart(ctx)
}

// UpdateQuantity define a quantidade de uma linha do carrinho
// @Summary Alterar quantidade
// @Description Define a quantidade absoluta de uma linha; quantidade zero remove a linha
// @Tags pos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param productId path string true "ID do produto"
// @Param quantity body dto.CartQuantityRequest true "Nova quantidade"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/cart/items/{productId} [put]
func (c *POSController) UpdateQuantity(ctx *gin.Context) {
	var req dto.CartQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.checkout.UpdateQuantity(ctx, ctx.Param("productId"), req.Quantity); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
		case errors.Is(err, sale.ErrInsufficientStock), errors.Is(err, sale.ErrItemNotInCart):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao alterar quantidade", err.Error()))
		default:
			c.logger.Error("erro ao alterar quantidade no carrinho", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao alterar quantidade", err.Error()))
		}
		return
	}

	c.GetCart(ctx)
}

// RemoveItem remove uma linha do carrinho
// @Summary Remover item
// @Description Remove uma linha do carrinho
// @Tags pos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param productId path string true "ID do produto"
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pos/cart/items/{productId} [delete]
func (c *POSController) RemoveItem(ctx *gin.Context) {
	if !c.checkout.RemoveItem(ctx.Param("productId")) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não está no carrinho", ""))
		return
	}

	c.GetCart(ctx)
}

// ClearCart esvazia o carrinho
// @Summary Esvaziar carrinho
// @Description Remove todas as linhas do carrinho sem registrar venda
// @Tags pos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /pos/cart [delete]
func (c *POSController) ClearCart(ctx *gin.Context) {
	c.checkout.ClearCart()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("carrinho esvaziado", nil))
}

// Checkout fecha a venda corrente
// @Summary Fechar venda
// @Description Valida o pagamento, registra a venda, baixa o estoque e atualiza o cliente
// @Tags pos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param checkout body dto.CheckoutRequest true "Forma de pagamento"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/checkout [post]
func (c *POSController) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := c.checkout.Checkout(ctx, checkout.CheckoutInput{
		PaymentMethod: req.PaymentMethod,
		CashReceived:  req.CashReceived,
		CustomerID:    req.CustomerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, sale.ErrEmptyCart),
			errors.Is(err, sale.ErrInsufficientPayment),
			errors.Is(err, sale.ErrInvalidPaymentMethod):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao fechar venda", err.Error()))
		default:
			c.logger.Error("erro ao fechar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao fechar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}
