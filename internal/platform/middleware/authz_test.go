// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/ridelink/internal/platform/ctxutil"
	"github.com/ridelink/ridelink/internal/platform/middleware"
	"github.com/ridelink/ridelink/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (verifier *fakeVerifier) VerifyToken(_ context.Context, tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr != verifier.validToken {
		return nil, errors.New("token rejected")
	}
	return verifier.claims, nil
}

func riderVerifier() *fakeVerifier {
	return &fakeVerifier{
		validToken: "good-token",
		claims:     &sec.AuthClaims{AccountID: 42, Mobile: "9876543210", Role: string(sec.RoleRider)},
	}
}

// probeHandler records whether the downstream handler ran and what claims it saw.
type probeHandler struct {
	called bool
	claims *sec.AuthClaims
}

func (probe *probeHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	probe.called = true
	probe.claims = ctxutil.GetAccount(request.Context())
	writer.WriteHeader(http.StatusOK)
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Code
}

// # Authenticate

/*
TestAuthenticate_AnonymousPassthrough verifies a request without an
Authorization header proceeds with no claims in context.
*/
func TestAuthenticate_AnonymousPassthrough(t *testing.T) {
	probe := &probeHandler{}
	handler := middleware.Authenticate(riderVerifier())(probe)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, probe.called)
	assert.Nil(t, probe.claims)
}

/*
TestAuthenticate_MalformedHeader verifies non-Bearer headers are rejected
before any verification attempt.
*/
func TestAuthenticate_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing_scheme", "good-token"},
		{"wrong_scheme", "Basic good-token"},
		{"extra_parts", "Bearer good token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &probeHandler{}
			handler := middleware.Authenticate(riderVerifier())(probe)

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Authorization", tt.header)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, probe.called)
		})
	}
}

/*
TestAuthenticate_ValidToken verifies a valid Bearer token injects claims for
downstream handlers.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	probe := &probeHandler{}
	handler := middleware.Authenticate(riderVerifier())(probe)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer good-token")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, probe.called)
	require.NotNil(t, probe.claims)
	assert.Equal(t, int64(42), probe.claims.AccountID)
}

/*
TestAuthenticate_RejectedToken verifies a failed verification stops the chain
with 401.
*/
func TestAuthenticate_RejectedToken(t *testing.T) {
	probe := &probeHandler{}
	handler := middleware.Authenticate(riderVerifier())(probe)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer forged-token")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, recorder))
	assert.False(t, probe.called)
}

// # RequireAuth

/*
TestRequireAuth_BlocksAnonymous verifies the gate rejects anonymous requests
and never invokes the downstream handler.
*/
func TestRequireAuth_BlocksAnonymous(t *testing.T) {
	probe := &probeHandler{}
	handler := middleware.RequireAuth(probe)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, probe.called)
}

/*
TestRequireAuth_PassesAuthenticated verifies authenticated requests go through.
*/
func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	probe := &probeHandler{}
	handler := middleware.RequireAuth(probe)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := ctxutil.WithAccount(request.Context(), &sec.AuthClaims{AccountID: 1, Role: string(sec.RoleRider)})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, probe.called)
}

// # RequireRole

/*
TestRequireRole_Matrix verifies the role gate: anonymous gets 401, the wrong
variant gets 403, the right variant passes. There is no role hierarchy.
*/
func TestRequireRole_Matrix(t *testing.T) {
	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		wantStatus int
		wantCalled bool
	}{
		{"anonymous", nil, http.StatusUnauthorized, false},
		{"rider_blocked", &sec.AuthClaims{AccountID: 1, Role: string(sec.RoleRider)}, http.StatusForbidden, false},
		{"driver_allowed", &sec.AuthClaims{AccountID: 2, Role: string(sec.RoleDriver)}, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &probeHandler{}
			handler := middleware.RequireRole(sec.RoleDriver)(probe)

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithAccount(request.Context(), tt.claims))
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantCalled, probe.called)
		})
	}
}
