package types

import "github.com/golang-jwt/jwt/v5"

// Tokens is the pair of signed tokens returned by a successful login.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// JWTClaims are the claims carried by access and refresh tokens.
type JWTClaims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
