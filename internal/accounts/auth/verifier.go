// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package auth

import (
	"context"
	"fmt"

	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/platform/sec"
)

// TokenCryptographer is the signature/expiry side of token verification.
//
// Satisfied by [sec.TokenService]; abstracted so verifier tests can fake
// the cryptography independently of the denylist.
type TokenCryptographer interface {
	Verify(tokenString string) (*sec.AuthClaims, error)
}

// Verifier performs full session token verification: cryptographic validity
// first, then denylist membership for both the token's jti and its account.
//
// It satisfies the gate middleware's TokenVerifier contract.
type Verifier struct {
	tokens      TokenCryptographer
	revocations RevocationStore
}

// NewVerifier constructs a [Verifier] from its two verification layers.
func NewVerifier(tokens TokenCryptographer, revocations RevocationStore) *Verifier {
	return &Verifier{
		tokens:      tokens,
		revocations: revocations,
	}
}

/*
VerifyToken validates a session token string end to end.

Description: Checks signature, algorithm, and expiry via the token service,
then rejects tokens whose jti was denylisted by logout or whose account was
denylisted by deletion. Fail-closed: a denylist lookup error rejects the token.

Parameters:
  - context: context.Context
  - tokenStr: string

Returns:
  - *sec.AuthClaims: Verified claims
  - error: apperr.Unauthorized on any verification failure
*/
func (verifier *Verifier) VerifyToken(context context.Context, tokenStr string) (*sec.AuthClaims, error) {

	// Cryptographic validity: signature, algorithm, and expiry window.
	claims, err := verifier.tokens.Verify(tokenStr)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token.")
	}

	// Denylist: the token's own jti (set by logout).
	revoked, err := verifier.revocations.IsTokenRevoked(context, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_verifier_token_denylist_failed: %w", err)
	}
	if revoked {
		return nil, apperr.Unauthorized("Token has been revoked.")
	}

	// Denylist: the whole account (set by account deletion).
	revoked, err = verifier.revocations.IsAccountRevoked(context, claims.AccountID)
	if err != nil {
		return nil, fmt.Errorf("auth_verifier_account_denylist_failed: %w", err)
	}
	if revoked {
		return nil, apperr.Unauthorized("Token has been revoked.")
	}

	return claims, nil
}
