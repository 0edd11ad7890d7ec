package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-loja/internal/domain/settings"
	"github.com/hugohenrick/pdv-loja/internal/event"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// SettingsController gerencia as configurações da loja
type SettingsController struct {
	settings settings.Repository
	bus      *event.Bus
	logger   logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settingsRepo settings.Repository, bus *event.Bus, logger logger.Logger) *SettingsController {
	return &SettingsController{
		settings: settingsRepo,
		bus:      bus,
		logger:   logger,
	}
}

// Get retorna as configurações da loja
// @Summary Consultar configurações
// @Description Retorna as configurações atuais; valores padrão quando nada foi gravado
// @Tags settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	cfg, err := c.settings.Get(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(cfg))
}

// Update grava as configurações da loja por completo
// @Summary Atualizar configurações
// @Description Grava as configurações; a alíquota de imposto deve estar entre 0 e 1
// @Tags settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param settings body dto.SettingsRequest true "Configurações da loja"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cfg := req.ToSettings()
	if !cfg.Valid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "alíquota de imposto fora do intervalo permitido", ""))
		return
	}

	if err := c.settings.Save(ctx, cfg); err != nil {
		c.logger.Error("erro ao gravar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar configurações", err.Error()))
		return
	}

	c.bus.Publish(event.TopicSettingsChanged, cfg)
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(cfg))
}
