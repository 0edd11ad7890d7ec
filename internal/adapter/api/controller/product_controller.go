package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/product"
	"github.com/hugohenrick/pdv-loja/internal/service/catalog"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// ProductController gerencia as requisições relacionadas ao catálogo de produtos
type ProductController struct {
	catalog *catalog.Service
	logger  logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(catalogService *catalog.Service, logger logger.Logger) *ProductController {
	return &ProductController{
		catalog: catalogService,
		logger:  logger,
	}
}

// List retorna todos os produtos do catálogo
// @Summary Listar produtos
// @Description Retorna todos os produtos, com filtro opcional por texto e categoria
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Texto de busca (nome, categoria, código de barras)"
// @Param category query string false "Categoria do produto"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	query := ctx.Query("q")
	category := product.Category(ctx.Query("category"))

	var (
		products []*product.Product
		err      error
	)
	if query == "" && category == "" {
		products, err = c.catalog.List(ctx)
	} else {
		products, err = c.catalog.Search(ctx, query, category)
	}
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.catalog.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}
	if p == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Create cadastra um novo produto
// @Summary Criar produto
// @Description Cadastra um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.catalog.Add(ctx, catalog.ProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Barcode:     req.Barcode,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Update atualiza um produto existente
// @Summary Atualizar produto
// @Description Atualiza os dados de um produto existente
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.catalog.Update(ctx, ctx.Param("id"), catalog.ProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Barcode:     req.Barcode,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}
	if p == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto do catálogo
// @Summary Remover produto
// @Description Remove um produto do catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	deleted, err := c.catalog.Delete(ctx, ctx.Param("id"))
	if err != nil {
		c.logger.Error("erro ao remover produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover produto", err.Error()))
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido com sucesso", nil))
}

// AdjustStock aplica um delta ao estoque de um produto
// @Summary Ajustar estoque
// @Description Aplica um delta ao estoque do produto, saturando em zero
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param adjustment body dto.StockAdjustmentRequest true "Delta de estoque"
// @Success 200 {object} dto.StockAdjustmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock [patch]
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	var req dto.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	id := ctx.Param("id")
	stock, err := c.catalog.AdjustStock(ctx, id, req.Delta)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao ajustar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ajustar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.StockAdjustmentResponse{
		ProductID:   id,
		Stock:       stock,
		StockStatus: product.GetStockStatus(stock),
	})
}
