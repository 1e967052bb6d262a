// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/platform/respond"
	"github.com/ridelink/ridelink/pkg/pagination"
)

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestOK_Envelope verifies the standard success envelope shape.
*/
func TestOK_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, "Login successful.", map[string]string{"token": "abc"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful.", body["message"])
	require.NotNil(t, body["data"])
}

/*
TestCreated_Envelope verifies resource creation responds with 201 and the
success envelope.
*/
func TestCreated_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Created(recorder, "Account created successfully.", map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Account created successfully.", body["message"])
}

/*
TestPaginated_Envelope verifies list responses carry a metadata block alongside
the data array.
*/
func TestPaginated_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()

	meta := pagination.NewMeta(2, 10, 35)
	respond.Paginated(recorder, "Favourites retrieved successfully.", []string{"home", "office"}, meta)

	assert.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])

	metaBody, ok := body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), metaBody["page"])
	assert.Equal(t, float64(35), metaBody["total"])
	assert.Equal(t, float64(4), metaBody["total_pages"])
}

/*
TestError_AppError verifies a domain error maps to its HTTP status and the
error envelope exposes the machine-readable code.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/account/me", nil)

	respond.Error(recorder, request, apperr.NotFound("Account"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Account not found.", body["message"])
}

/*
TestError_UnexpectedError verifies non-domain errors are masked: the client
sees a generic 500 envelope, never the internal error text.
*/
func TestError_UnexpectedError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/account/me", nil)

	respond.Error(recorder, request, errors.New("pq: connection refused on 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.NotContains(t, recorder.Body.String(), "connection refused")
}

/*
TestError_ValidationDetails verifies field-level validation failures surface
in the details array.
*/
func TestError_ValidationDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", nil)

	fieldError := apperr.FieldError{Field: "mobile", Message: "Mobile number must be 10 digits."}
	respond.Error(recorder, request, apperr.ValidationError(fieldError.Message, fieldError))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeBody(t, recorder)
	details, ok := body["details"].([]interface{})
	require.True(t, ok)
	require.Len(t, details, 1)

	first, ok := details[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "mobile", first["field"])
}
