package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-loja/internal/service/backup"
	"github.com/hugohenrick/pdv-loja/pkg/logger"
)

// BackupController gerencia a exportação e importação dos dados da loja
type BackupController struct {
	backup *backup.Service
	logger logger.Logger
}

// NewBackupController cria uma nova instância de BackupController
func NewBackupController(backupService *backup.Service, logger logger.Logger) *BackupController {
	return &BackupController{
		backup: backupService,
		logger: logger,
	}
}

// Export exporta todos os dados da loja em um documento JSON
// @Summary Exportar dados
// @Description Gera um documento com produtos, vendas, clientes e configurações
// @Tags backup
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} backup.Document
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /backup/export [get]
func (c *BackupController) Export(ctx *gin.Context) {
	doc, err := c.backup.Export(ctx)
	if err != nil {
		c.logger.Error("erro ao exportar dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar dados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, doc)
}

// Import importa um documento de backup, sobrescrevendo todos os dados
// @Summary Importar dados
// @Description Sobrescreve produtos, vendas, clientes e configurações; nada é aplicado se alguma coleção estiver ausente
// @Tags backup
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param backup body backup.Document true "Documento de backup"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /backup/import [post]
func (c *BackupController) Import(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler o corpo da requisição", err.Error()))
		return
	}

	if err := c.backup.ImportJSON(ctx, body); err != nil {
		if errors.Is(err, backup.ErrInvalidBackup) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "backup inválido", err.Error()))
			return
		}
		c.logger.Error("erro ao importar dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao importar dados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("dados importados com sucesso", nil))
}
