package sale

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCart é retornado quando o checkout é iniciado com carrinho vazio
	ErrEmptyCart = errors.New("carrinho vazio")
	// ErrInsufficientPayment é retornado quando o valor em dinheiro é menor que o total
	ErrInsufficientPayment = errors.New("valor recebido insuficiente")
	// ErrInvalidPaymentMethod é retornado quando a forma de pagamento é desconhecida
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
	// ErrAlreadyRefunded é retornado ao tentar estornar uma venda já estornada
	ErrAlreadyRefunded = errors.New("venda já estornada")
)

// PaymentMethod define a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentQR   PaymentMethod = "qr"
)

// IsValid verifica se a forma de pagamento é conhecida
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentQR:
		return true
	}
	return false
}

// Item é uma linha da venda. Nome e preço são capturados no momento da venda:
// alterações posteriores no catálogo não mudam vendas já registradas.
type Item struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal retorna o valor da linha (preço x quantidade)
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale representa uma venda concluída.
// Invariantes: Total == Subtotal + Tax e Subtotal == soma dos subtotais das
// linhas, calculados uma única vez na criação.
type Sale struct {
	ID            string          `json:"id"`
	ReceiptNumber string          `json:"receiptNumber"`
	Items         []Item          `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CashReceived  decimal.Decimal `json:"cashReceived,omitempty"`
	Change        decimal.Decimal `json:"change,omitempty"`
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	Date          time.Time       `json:"date"`
	Refunded      bool            `json:"refunded,omitempty"`
	RefundDate    *time.Time      `json:"refundDate,omitempty"`
}

// NewSale monta uma venda a partir das linhas do carrinho, calculando os
// totais e validando o pagamento. Para pagamento em dinheiro, cashReceived
// menor que o total resulta em ErrInsufficientPayment e nenhuma venda é criada.
func NewSale(items []Item, taxRate decimal.Decimal, method PaymentMethod, cashReceived decimal.Decimal, customerID, customerName string) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax)

	change := decimal.Zero
	if method == PaymentCash {
		if cashReceived.LessThan(total) {
			return nil, ErrInsufficientPayment
		}
		change = cashReceived.Sub(total)
	} else {
		cashReceived = decimal.Zero
	}

	now := time.Now()
	lines := make([]Item, len(items))
	copy(lines, items)

	return &Sale{
		ID:            uuid.New().String(),
		ReceiptNumber: GenerateReceiptNumber(now),
		Items:         lines,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: method,
		CashReceived:  cashReceived,
		Change:        change,
		CustomerID:    customerID,
		CustomerName:  customerName,
		Date:          now,
	}, nil
}

// Refund marca a venda como estornada
func (s *Sale) Refund() error {
	if s.Refunded {
		return ErrAlreadyRefunded
	}
	now := time.Now()
	s.Refunded = true
	s.RefundDate = &now
	return nil
}

// GenerateReceiptNumber formata o número de recibo de uma venda:
// R<ano><mês><dia>-<últimos 6 dígitos do epoch em milissegundos>.
// O formato faz parte do contrato de dados exportados.
func GenerateReceiptNumber(at time.Time) string {
	millis := strconv.FormatInt(at.UnixMilli(), 10)
	last6 := millis
	if len(millis) > 6 {
		last6 = millis[len(millis)-6:]
	}
	return fmt.Sprintf("R%d%02d%02d-%s", at.Year(), int(at.Month()), at.Day(), last6)
}
