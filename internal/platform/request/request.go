// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ridelink/ridelink/internal/platform/apperr"
	"github.com/ridelink/ridelink/internal/platform/ctxutil"
	"github.com/ridelink/ridelink/internal/platform/sec"
	"github.com/ridelink/ridelink/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
NumericID retrieves a named URL parameter and parses it as a numeric identifier.

Returns:
  - int64: The parsed identifier
  - error: apperr.ValidationError when the parameter is not a positive integer
*/
func NumericID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validate.RequiredError(name, "Must be a positive numeric id.")
	}
	return id, nil
}

/*
Claims extracts the authenticated account claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAccount(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the account claims.

Returns:
  - *sec.AuthClaims: The authenticated account claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {

	// Get account claims
	claims := ctxutil.GetAccount(request.Context())

	// If the request is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required.")
	}

	return claims, nil
}

/*
RequiredAccountID returns the numeric account id of the currently logged-in caller.

Returns:
  - int64: Account id
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredAccountID(request *http.Request) (int64, error) {

	// Get account claims
	claims, err := RequiredClaims(request)

	// If the request is not authenticated, return an error
	if err != nil {
		return 0, err
	}

	return claims.AccountID, nil
}
