package operator

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyName é retornado quando o nome do operador está vazio
	ErrEmptyName = errors.New("nome não pode ser vazio")
	// ErrEmptyEmail é retornado quando o email do operador está vazio
	ErrEmptyEmail = errors.New("email não pode ser vazio")
)

// Role representa o papel do operador do caixa
type Role string

const (
	RoleAdmin   Role = "admin"   // Administrador da loja
	RoleCashier Role = "cashier" // Operador de caixa
)

// Status representa o status do operador
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Operator representa um operador autorizado a usar o PDV
type Operator struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"` // hash bcrypt, nunca a senha em claro
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewOperator cria um novo operador ativo
func NewOperator(name, email string, role Role) (*Operator, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}

	return &Operator{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: time.Now(),
	}, nil
}

// SetPassword configura a senha do operador com hash
func (o *Operator) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	o.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (o *Operator) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(o.Password), []byte(password))
	return err == nil
}

// IsActive verifica se o operador está ativo
func (o *Operator) IsActive() bool {
	return o.Status == StatusActive
}

// IsAdmin verifica se o operador é um administrador
func (o *Operator) IsAdmin() bool {
	return o.Role == RoleAdmin
}
