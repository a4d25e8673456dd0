package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenPayload carries the identity fields minted into a token.
type AccessTokenPayload struct {
	UserID int
	Email  string
	Name   string
	JTI    string
}

// AccessTokenClaims is the JWT claim set for storefront sessions.
type AccessTokenClaims struct {
	UserID int    `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}
