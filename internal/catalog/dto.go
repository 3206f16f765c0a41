package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
)

// CreateProductInput carries the fields the back office submits for a new pizza.
type CreateProductInput struct {
	Name        string          `json:"nome" validate:"required,min=2,max=80"`
	Image       string          `json:"imagem" validate:"required,max=255"`
	PriceSmall  decimal.Decimal `json:"preco_pequena" validate:"required"`
	PriceMedium decimal.Decimal `json:"preco_media" validate:"required"`
	PriceLarge  decimal.Decimal `json:"preco_grande" validate:"required"`
}

// UpdateProductInput carries partial updates for an existing pizza.
type UpdateProductInput struct {
	ID          uuid.UUID
	Name        *string          `json:"nome,omitempty" validate:"omitempty,min=2,max=80"`
	Image       *string          `json:"imagem,omitempty" validate:"omitempty,max=255"`
	PriceSmall  *decimal.Decimal `json:"preco_pequena,omitempty"`
	PriceMedium *decimal.Decimal `json:"preco_media,omitempty"`
	PriceLarge  *decimal.Decimal `json:"preco_grande,omitempty"`
}

// MenuView is what the public catalog endpoint returns.
type MenuView struct {
	Items        []models.Product `json:"itens"`
	FromFallback bool             `json:"-"`
}
