// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the token provider interfaces defined there.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents the payload embedded inside a session JWT.
//
// # Why custom claims?
//
// By embedding the AccountID, Mobile, and Role directly inside the JWT,
// the gate middleware can reconstruct the active account context WITHOUT
// querying the database on every single API request. The registered ID
// claim (jti) is what the revocation set tracks.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	AccountID int64  `json:"aid"`
	Mobile    string `json:"mob"`
	Role      string `json:"rol"`
}

// TokenService handles generation and verification of session JWTs using HS256.
//
// The signing secret is process-wide, loaded once at startup, and read-only
// afterwards. Construction fails if no secret is configured — there is no
// fallback default.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService from the configured shared secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: session signing secret is not configured")
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Generate creates a signed session token for an account.
//
// The token embeds {account id, mobile, role}, a fresh jti for revocation
// tracking, and expires at issuance time + timeToLive.
func (service *TokenService) Generate(accountID int64, mobile string, role AccountRole, timeToLive time.Duration) (string, *AuthClaims, error) {
	currentTime := time.Now()
	claims := &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", accountID),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		AccountID: accountID,
		Mobile:    mobile,
		Role:      string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, claims, nil
}

// Verify checks the signature and validity window of a session JWT string.
//
// Malformed input, a foreign signing algorithm, a bad signature, and an
// elapsed expiry all fail verification. Revocation is checked one layer up;
// this method is pure cryptography.
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
