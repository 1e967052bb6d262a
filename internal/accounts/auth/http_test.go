// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/ridelink/internal/accounts/auth"
	"github.com/ridelink/ridelink/internal/platform/ctxutil"
	"github.com/ridelink/ridelink/internal/platform/sec"
)

func newTestHandler() (http.Handler, *fakeAccountRepository, *fakeRevocationStore) {
	service, repository, revocations := newTestService()
	return auth.NewHandler(service).Routes(), repository, revocations
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

const signUpBody = `{
	"mobile": "9876543210",
	"email": "alice@example.com",
	"password": "secret1",
	"firstname": "Alice",
	"role": "rider"
}`

// # Signup Endpoint

/*
TestSignUp_Created verifies a valid signup responds 201 and the body never
exposes the password in any form.
*/
func TestSignUp_Created(t *testing.T) {
	handler, _, _ := newTestHandler()

	recorder := postJSON(t, handler, "/signup", signUpBody)
	require.Equal(t, http.StatusCreated, recorder.Code)

	raw := recorder.Body.String()
	assert.NotContains(t, raw, "secret1")
	assert.NotContains(t, raw, "password")
	assert.NotContains(t, raw, "passwordhash")

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID     int64  `json:"id"`
			Mobile string `json:"mobile"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotZero(t, body.Data.ID)
	assert.Equal(t, "9876543210", body.Data.Mobile)
}

/*
TestSignUp_DuplicateMobileConflict verifies the second signup with the same
mobile responds 409, driven by the storage constraint rather than a pre-check.
*/
func TestSignUp_DuplicateMobileConflict(t *testing.T) {
	handler, _, _ := newTestHandler()

	require.Equal(t, http.StatusCreated, postJSON(t, handler, "/signup", signUpBody).Code)

	duplicate := strings.Replace(signUpBody, "alice@example.com", "other@example.com", 1)
	recorder := postJSON(t, handler, "/signup", duplicate)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Mobile number is already registered.")
}

/*
TestSignUp_ValidationFirstFailure verifies exactly one violation is reported,
in declared rule order, when several fields are invalid at once.
*/
func TestSignUp_ValidationFirstFailure(t *testing.T) {
	handler, _, _ := newTestHandler()

	// Invalid email, invalid mobile, short password: only the email error
	// may appear.
	recorder := postJSON(t, handler, "/signup", `{
		"mobile": "123",
		"email": "not-an-email",
		"password": "abc",
		"firstname": "Alice"
	}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Code    string `json:"code"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "email", body.Details[0].Field)
}

/*
TestSignUp_InvalidJSON verifies a malformed body responds 400 before any
validation runs.
*/
func TestSignUp_InvalidJSON(t *testing.T) {
	handler, _, _ := newTestHandler()

	recorder := postJSON(t, handler, "/signup", "{not json")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestSignUp_RejectsUnknownRole verifies only the rider and driver variants are
accepted.
*/
func TestSignUp_RejectsUnknownRole(t *testing.T) {
	handler, _, _ := newTestHandler()

	recorder := postJSON(t, handler, "/signup",
		strings.Replace(signUpBody, `"rider"`, `"admin"`, 1))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "role")
}

// # Login Endpoint

/*
TestLogin_Success verifies the login envelope carries the bearer token, its
expiry, and a trimmed account view.
*/
func TestLogin_Success(t *testing.T) {
	handler, _, _ := newTestHandler()

	require.Equal(t, http.StatusCreated, postJSON(t, handler, "/signup", signUpBody).Code)

	recorder := postJSON(t, handler, "/login", `{"mobile": "9876543210", "password": "secret1"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token     string `json:"token"`
			TokenType string `json:"token_type"`
			Account   struct {
				Mobile string `json:"mobile"`
				Role   string `json:"role"`
			} `json:"account"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Token)
	assert.Equal(t, "Bearer", body.Data.TokenType)
	assert.Equal(t, "9876543210", body.Data.Account.Mobile)
	assert.Equal(t, "rider", body.Data.Account.Role)
}

/*
TestLogin_WrongPassword verifies failed credentials respond 401 with the
generic message.
*/
func TestLogin_WrongPassword(t *testing.T) {
	handler, _, _ := newTestHandler()

	require.Equal(t, http.StatusCreated, postJSON(t, handler, "/signup", signUpBody).Code)

	recorder := postJSON(t, handler, "/login", `{"mobile": "9876543210", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), auth.LoginFailedMessage)
}

// # Gated Endpoints

/*
TestLogout_RequiresAuthentication verifies the logout route is gated.
*/
func TestLogout_RequiresAuthentication(t *testing.T) {
	handler, _, _ := newTestHandler()

	recorder := postJSON(t, handler, "/logout", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestDeleteAccount_Flow verifies the delete endpoint soft-deletes the caller's
own account and rejects foreign targets.
*/
func TestDeleteAccount_Flow(t *testing.T) {
	handler, repository, _ := newTestHandler()

	require.Equal(t, http.StatusCreated, postJSON(t, handler, "/signup", signUpBody).Code)

	var accountID int64
	for id := range repository.accounts {
		accountID = id
	}

	claims := &sec.AuthClaims{AccountID: accountID, Mobile: "9876543210", Role: string(sec.RoleRider)}

	send := func(target string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodPost, "/delete-account", strings.NewReader(target))
		request = request.WithContext(ctxutil.WithAccount(request.Context(), claims))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	// Foreign account: forbidden.
	assert.Equal(t, http.StatusForbidden, send(`{"account_id": 999}`).Code)

	// Missing id: validation failure.
	assert.Equal(t, http.StatusBadRequest, send(`{}`).Code)

	// Own account: deleted, row retained.
	assert.Equal(t, http.StatusOK, send(`{"account_id": `+jsonInt(accountID)+`}`).Code)
	require.NotNil(t, repository.accounts[accountID])
	assert.True(t, repository.accounts[accountID].IsDeleted())
}

func jsonInt(n int64) string {
	raw, _ := json.Marshal(n)
	return string(raw)
}
