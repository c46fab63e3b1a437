package service

import "github.com/golang-jwt/jwt/v5"

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying stateless
// bearer tokens. Validity is computed from the signature, never looked up.
type TokenService interface {
	// Issue creates a signed token whose payload carries the account identifier.
	Issue(userID string) (string, error)

	// Validate checks structural validity and signature and returns the embedded
	// claims. Any failure, including an empty token, is an error the caller maps
	// to the Unauthorized kind.
	Validate(tokenString string) (*Claims, error)
}
