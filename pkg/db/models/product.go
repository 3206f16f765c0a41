package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is one pizza on the menu with its three size tiers.
type Product struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"column:name;not null;uniqueIndex" json:"nome"`
	Image       string          `gorm:"column:image;not null" json:"imagem"`
	PriceSmall  decimal.Decimal `gorm:"column:price_small;type:numeric(10,2);not null" json:"preco_pequena"`
	PriceMedium decimal.Decimal `gorm:"column:price_medium;type:numeric(10,2);not null" json:"preco_media"`
	PriceLarge  decimal.Decimal `gorm:"column:price_large;type:numeric(10,2);not null" json:"preco_grande"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
