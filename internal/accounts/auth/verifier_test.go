// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/ridelink/internal/accounts/auth"
	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/platform/sec"
)

// fakeCryptographer resolves a fixed token string to fixed claims, so the
// denylist layer can be tested without real signing.
type fakeCryptographer struct {
	validToken string
	claims     *sec.AuthClaims
}

func (crypto *fakeCryptographer) Verify(tokenString string) (*sec.AuthClaims, error) {
	if tokenString != crypto.validToken {
		return nil, errors.New("token signature is invalid")
	}
	return crypto.claims, nil
}

// failingRevocationStore simulates an unreachable denylist backend.
type failingRevocationStore struct{}

func (failingRevocationStore) RevokeToken(context.Context, string, time.Duration) error {
	return errors.New("connection refused")
}

func (failingRevocationStore) IsTokenRevoked(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func (failingRevocationStore) RevokeAccount(context.Context, int64, time.Duration) error {
	return errors.New("connection refused")
}

func (failingRevocationStore) IsAccountRevoked(context.Context, int64) (bool, error) {
	return false, errors.New("connection refused")
}

func verifierFixture() (*fakeCryptographer, *fakeRevocationStore) {
	claims := &sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		AccountID: 42,
		Mobile:    "9876543210",
		Role:      string(sec.RoleRider),
	}
	return &fakeCryptographer{validToken: "valid-token", claims: claims}, newFakeRevocationStore()
}

/*
TestVerifier_ValidToken verifies a cryptographically valid, non-revoked token
passes and yields its claims.
*/
func TestVerifier_ValidToken(t *testing.T) {
	crypto, revocations := verifierFixture()
	verifier := auth.NewVerifier(crypto, revocations)

	claims, err := verifier.VerifyToken(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
}

/*
TestVerifier_InvalidSignature verifies a bad token maps to a generic 401.
*/
func TestVerifier_InvalidSignature(t *testing.T) {
	crypto, revocations := verifierFixture()
	verifier := auth.NewVerifier(crypto, revocations)

	claims, err := verifier.VerifyToken(context.Background(), "forged-token")
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestVerifier_RevokedJTI verifies a token denylisted by logout no longer
verifies even though its signature and expiry are still valid.
*/
func TestVerifier_RevokedJTI(t *testing.T) {
	crypto, revocations := verifierFixture()
	verifier := auth.NewVerifier(crypto, revocations)

	require.NoError(t, revocations.RevokeToken(context.Background(), "jti-1", time.Hour))

	claims, err := verifier.VerifyToken(context.Background(), "valid-token")
	require.Error(t, err)
	assert.Nil(t, claims)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Token has been revoked.", ae.Message)
}

/*
TestVerifier_RevokedAccount verifies every token of a deleted account is
rejected, not just the one presented at deletion time.
*/
func TestVerifier_RevokedAccount(t *testing.T) {
	crypto, revocations := verifierFixture()
	verifier := auth.NewVerifier(crypto, revocations)

	require.NoError(t, revocations.RevokeAccount(context.Background(), 42, time.Hour))

	claims, err := verifier.VerifyToken(context.Background(), "valid-token")
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.Equal(t, "Token has been revoked.", apperr.As(err).Message)
}

/*
TestVerifier_FailsClosed verifies a denylist lookup failure rejects the token
instead of letting it through unverified.
*/
func TestVerifier_FailsClosed(t *testing.T) {
	crypto, _ := verifierFixture()
	verifier := auth.NewVerifier(crypto, failingRevocationStore{})

	claims, err := verifier.VerifyToken(context.Background(), "valid-token")
	require.Error(t, err)
	assert.Nil(t, claims)
}
