package orders

import (
	"github.com/edutorres-dev/BellaVitta/pkg/pagination"
)

// Submission is the raw checkout payload the gate validates.
type Submission struct {
	Description   string `json:"descricao_pedido" validate:"required"`
	Total         string `json:"valor_total" validate:"required"`
	Address       string `json:"endereco" validate:"required"`
	PaymentMethod string `json:"metodo_pagamento" validate:"required"`
}

// CheckoutInput carries the submission plus the authenticated customer data.
type CheckoutInput struct {
	CustomerID      string
	CustomerName    string
	CustomerContact string
	Submission      Submission
}

// CheckoutResult is returned after the order commits.
type CheckoutResult struct {
	OrderID      string `json:"pedido_id"`
	Status       string `json:"status"`
	Message      string `json:"mensagem"`
	WhatsAppLink string `json:"link_whatsapp"`
}

// AdminListFilters narrows the back-office order listing.
type AdminListFilters struct {
	Status  string
	Date    string // YYYY-MM-DD, matches the ordered_at day
	OrderID string
	Page    pagination.Params
}
