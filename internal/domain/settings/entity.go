package settings

import (
	"context"

	"github.com/shopspring/decimal"
)

// Settings é o registro singleton de configuração da loja
type Settings struct {
	ShopName              string          `json:"shopName"`
	ShopAddress           string          `json:"shopAddress"`
	ShopPhone             string          `json:"shopPhone"`
	TaxRate               decimal.Decimal `json:"taxRate"`
	EnableQRPayment       bool            `json:"enableQRPayment"`
	QRPaymentInstructions string          `json:"qrPaymentInstructions"`
	Currency              string          `json:"currency"`
	Theme                 string          `json:"theme"`
}

// Default retorna as configurações padrão usadas enquanto nada foi gravado
func Default() *Settings {
	return &Settings{
		ShopName:              "My Shop",
		ShopAddress:           "123 Main Street, City, State",
		ShopPhone:             "+1 234 567 8900",
		TaxRate:               decimal.Zero,
		EnableQRPayment:       true,
		QRPaymentInstructions: "Scan QR code to pay with your mobile wallet",
		Currency:              "USD",
		Theme:                 "light",
	}
}

// Valid verifica se a alíquota de imposto está no intervalo [0, 1]
func (s *Settings) Valid() bool {
	return !s.TaxRate.IsNegative() && s.TaxRate.LessThanOrEqual(decimal.NewFromInt(1))
}

// Repository define a interface para acesso às configurações da loja
type Repository interface {
	// Get retorna as configurações atuais, ou as padrão quando nada foi gravado
	Get(ctx context.Context) (*Settings, error)

	// Save grava as configurações por completo
	Save(ctx context.Context, s *Settings) error
}
