package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a storefront account. Contact is stored in
// internationally dialable form (55 + DDD + 9 digits) so the WhatsApp
// handoff never needs reformatting.
type Customer struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;type:text;not null;uniqueIndex"`
	Contact      string    `gorm:"column:contact;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
