package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-loja/internal/adapter/repository"
	"github.com/hugohenrick/pdv-loja/internal/domain/operator"
	"github.com/hugohenrick/pdv-loja/pkg/jwt"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// tokenTTL é a validade do token de acesso do operador
const tokenTTL = 24 * time.Hour

// AuthController gerencia a autenticação dos operadores de caixa
type AuthController struct {
	operators operator.Repository
	logger    logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(operators operator.Repository, logger logger.Logger) *AuthController {
	return &AuthController{
		operators: operators,
		logger:    logger,
	}
}

// Login autentica um operador e emite um token de acesso
// @Summary Login do operador
// @Description Autentica o operador por email e senha e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais do operador"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	op, err := c.operators.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
			return
		}
		c.logger.Error("erro ao buscar operador", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar", err.Error()))
		return
	}

	if !op.CheckPassword(req.Password) || !op.IsActive() {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
		return
	}

	token, err := jwt.GenerateToken(op.ID, string(op.Role), tokenTTL)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	c.logger.Info("operador autenticado", "operator", op.ID, "role", op.Role)
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Operator:    *dto.ToOperatorResponse(op),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(tokenTTL),
	})
}

// Refresh renova um token de acesso válido
// @Summary Renovar token
// @Description Emite um novo token JWT a partir de um token ainda válido
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshTokenRequest true "Token atual"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	token, err := jwt.RefreshToken(req.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(tokenTTL),
	})
}

// CreateOperator cadastra um novo operador de caixa
// @Summary Criar operador
// @Description Cadastra um novo operador; disponível apenas para administradores
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param operator body dto.OperatorRequest true "Dados do operador"
// @Success 201 {object} dto.OperatorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/operators [post]
func (c *AuthController) CreateOperator(ctx *gin.Context) {
	var req dto.OperatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	op, err := operator.NewOperator(req.Name, req.Email, req.Role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar operador", err.Error()))
		return
	}
	if err := op.SetPassword(req.Password); err != nil {
		c.logger.Error("erro ao definir senha do operador", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar operador", err.Error()))
		return
	}

	if err := c.operators.Create(ctx, op); err != nil {
		if errors.Is(err, repository.ErrOperatorDuplicate) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "operador já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao salvar operador", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar operador", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOperatorResponse(op))
}

// ListOperators retorna os operadores cadastrados
// @Summary Listar operadores
// @Description Retorna os operadores cadastrados; disponível apenas para administradores
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.OperatorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/operators [get]
func (c *AuthController) ListOperators(ctx *gin.Context) {
	all, err := c.operators.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar operadores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar operadores", err.Error()))
		return
	}

	items := make([]dto.OperatorResponse, len(all))
	for i, op := range all {
		items[i] = *dto.ToOperatorResponse(op)
	}

	ctx.JSON(http.StatusOK, items)
}
