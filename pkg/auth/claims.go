package auth

import (
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	CustomerID uuid.UUID
	Name       string
	Role       enums.ActorRole
	JTI        string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Name       string          `json:"name"`
	Role       enums.ActorRole `json:"role"`
	jwt.RegisteredClaims
}
