package request

import (
	"strings"

	"vitrine_industrial/internal/domain/entities"
)

// QuoteSubmitRequest is the public "request a quote" form of product pages.
type QuoteSubmitRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CompanyName     string `json:"company_name"`
	ProductInterest string `json:"product_interest"`
	Message         string `json:"message"`
}

func (r QuoteSubmitRequest) ToPatch() entities.QuoteRequestPatch {
	return entities.QuoteRequestPatch{
		CustomerName:    trimmed(r.CustomerName),
		CustomerEmail:   trimmed(r.CustomerEmail),
		CustomerPhone:   trimmed(r.CustomerPhone),
		CompanyName:     optional(r.CompanyName),
		ProductInterest: optional(r.ProductInterest),
		Message:         optional(r.Message),
	}
}

type QuoteUpdateRequest struct {
	entities.QuoteRequestPatch
}

// OrcamentoSubmitRequest is the contact form of the site.
type OrcamentoSubmitRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Telefone   string `json:"telefone"`
	Email      string `json:"email" binding:"omitempty,email"`
	Produto    string `json:"produto"`
	Quantidade *int   `json:"quantidade"`
	Mensagem   string `json:"mensagem"`
}

func (r OrcamentoSubmitRequest) ToPatch() entities.OrcamentoPatch {
	return entities.OrcamentoPatch{
		Nome:       trimmed(r.Nome),
		Telefone:   trimmed(r.Telefone),
		Email:      trimmed(r.Email),
		Produto:    trimmed(r.Produto),
		Quantidade: r.Quantidade,
		Mensagem:   trimmed(r.Mensagem),
	}
}

type OrcamentoUpdateRequest struct {
	entities.OrcamentoPatch
}

type SettingsRequest struct {
	entities.SettingsPatch
}

func trimmed(s string) *string {
	v := strings.TrimSpace(s)
	return &v
}

// optional maps a blank form field to "not provided".
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return trimmed(s)
}
