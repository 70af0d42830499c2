package auth

import "time"

// Claims representa la información extraída del token de sesión.
type Claims struct {
	UserID string
	Email  string
	Name   string
	Role   string

	// TokenID es el jti; lo usa logout para revocar.
	TokenID   string
	ExpiresAt time.Time
}
