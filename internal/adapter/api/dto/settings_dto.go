package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-loja/internal/domain/settings"
)

// SettingsRequest representa a requisição de atualização das configurações
type SettingsRequest struct {
	ShopName              string          `json:"shop_name" binding:"required"`
	ShopAddress           string          `json:"shop_address"`
	ShopPhone             string          `json:"shop_phone"`
	TaxRate               decimal.Decimal `json:"tax_rate"`
	EnableQRPayment       bool            `json:"enable_qr_payment"`
	QRPaymentInstructions string          `json:"qr_payment_instructions"`
	Currency              string          `json:"currency"`
	Theme                 string          `json:"theme"`
}

// SettingsResponse representa a resposta das configurações da loja
type SettingsResponse struct {
	ShopName              string          `json:"shop_name"`
	ShopAddress           string          `json:"shop_address"`
	ShopPhone             string          `json:"shop_phone"`
	TaxRate               decimal.Decimal `json:"tax_rate"`
	EnableQRPayment       bool            `json:"enable_qr_payment"`
	QRPaymentInstructions string          `json:"qr_payment_instructions"`
	Currency              string          `json:"currency"`
	Theme                 string          `json:"theme"`
}

// ToSettings converte a requisição para o registro de domínio
func (r *SettingsRequest) ToSettings() *settings.Settings {
	return &settings.Settings{
		ShopName:              r.ShopName,
		ShopAddress:           r.ShopAddress,
		ShopPhone:             r.ShopPhone,
		TaxRate:               r.TaxRate,
		EnableQRPayment:       r.EnableQRPayment,
		QRPaymentInstructions: r.QRPaymentInstructions,
		Currency:              r.Currency,
		Theme:                 r.Theme,
	}
}

// ToSettingsResponse converte o registro de domínio para DTO
func ToSettingsResponse(s *settings.Settings) *SettingsResponse {
	return &SettingsResponse{
		ShopName:              s.ShopName,
		ShopAddress:           s.ShopAddress,
		ShopPhone:             s.ShopPhone,
		TaxRate:               s.TaxRate,
		EnableQRPayment:       s.EnableQRPayment,
		QRPaymentInstructions: s.QRPaymentInstructions,
		Currency:              s.Currency,
		Theme:                 s.Theme,
	}
}
