package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-loja/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-loja/internal/domain/operator"
	"github.com/hugohenrick/pdv-loja/pkg/jwt"
)

// AuthMiddleware é o middleware para autenticação do operador
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token não informado", ""))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", ""))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
			return
		}

		c.Set("operator_id", claims.OperatorID)
		c.Set("operator_role", claims.Role)

		c.Next()
	}
}

// AdminOnly restringe a rota a operadores administradores. Deve ser usado
// depois de AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("operator_role")
		if !ok || role != string(operator.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "acesso restrito a administradores", ""))
			return
		}

		c.Next()
	}
}
