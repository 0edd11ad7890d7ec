package dto

import (
	"time"

	"github.com/hugohenrick/pdv-loja/internal/domain/operator"
)

// LoginRequest representa os dados para login do operador
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	Operator    OperatorResponse `json:"operator"`
	AccessToken string           `json:"access_token"`
	ExpiresAt   time.Time        `json:"expires_at"`
}

// RefreshTokenRequest representa os dados para renovação de token
type RefreshTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// RefreshTokenResponse representa a resposta de renovação de token
type RefreshTokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// OperatorRequest representa a requisição de cadastro de operador
type OperatorRequest struct {
	Name     string        `json:"name" binding:"required"`
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required,min=6"`
	Role     operator.Role `json:"role" binding:"required"`
}

// OperatorResponse representa a resposta de operador, sem o hash da senha
type OperatorResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      operator.Role   `json:"role"`
	Status    operator.Status `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToOperatorResponse converte um operador do domínio para DTO
func ToOperatorResponse(o *operator.Operator) *OperatorResponse {
	return &OperatorResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Role:      o.Role,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
