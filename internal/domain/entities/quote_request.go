package entities

import "time"

// QuoteStatus is the sales pipeline stage of a QuoteRequest.
type QuoteStatus string

const (
	QuoteStatusNew        QuoteStatus = "NEW"
	QuoteStatusInProgress QuoteStatus = "IN_PROGRESS"
	QuoteStatusWon        QuoteStatus = "WON"
	QuoteStatusLost       QuoteStatus = "LOST"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusInProgress, QuoteStatusWon, QuoteStatusLost:
		return true
	}
	return false
}

// QuoteRequest is the catalog-side quote request submitted from product pages.
//
// It lives next to Orcamento (the "simple quote" of the admin panel) and the
// two are never reconciled.
type QuoteRequest struct {
	ID              string      `json:"id"`
	Status          QuoteStatus `json:"status"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	CompanyName     string      `json:"company_name,omitempty"`
	ProductInterest string      `json:"product_interest,omitempty"`
	Message         string      `json:"message,omitempty"`
	InternalNotes   string      `json:"internal_notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type QuoteRequestPatch struct {
	Status          *QuoteStatus `json:"status,omitempty"`
	CustomerName    *string      `json:"customer_name,omitempty"`
	CustomerEmail   *string      `json:"customer_email,omitempty"`
	CustomerPhone   *string      `json:"customer_phone,omitempty"`
	CompanyName     *string      `json:"company_name,omitempty"`
	ProductInterest *string      `json:"product_interest,omitempty"`
	Message         *string      `json:"message,omitempty"`
	InternalNotes   *string      `json:"internal_notes,omitempty"`
}

func (patch QuoteRequestPatch) Apply(q *QuoteRequest) {
	if patch.Status != nil {
		q.Status = *patch.Status
	}
	setString(&q.CustomerName, patch.CustomerName)
	setString(&q.CustomerEmail, patch.CustomerEmail)
	setString(&q.CustomerPhone, patch.CustomerPhone)
	setString(&q.CompanyName, patch.CompanyName)
	setString(&q.ProductInterest, patch.ProductInterest)
	setString(&q.Message, patch.Message)
	setString(&q.InternalNotes, patch.InternalNotes)
}

type QuoteFilter struct {
	Search string
	Status QuoteStatus
}
