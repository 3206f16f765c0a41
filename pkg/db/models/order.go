package models

import (
	"time"

	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the durable record of one accepted submission. Description keeps
// the grouped line items in the shared grammar so the finance reports can
// re-parse it.
type Order struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName    string              `gorm:"column:customer_name;not null"`
	CustomerContact string              `gorm:"column:customer_contact;not null"`
	Description     string              `gorm:"column:description;not null"`
	OrderedAt       time.Time           `gorm:"column:ordered_at;not null"`
	Address         string              `gorm:"column:address;not null"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;type:text;not null"`
	Total           decimal.Decimal     `gorm:"column:total;type:numeric(10,2);not null"`
	Status          enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'confirmado'"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
