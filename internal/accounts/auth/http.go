// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

/*
HTTP delivery layer for the authentication lifecycle.

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface with the {success, message, data} envelope.
  - Security: Orchestrates JWT issuance and revocation.
  - Verification: Enforces strict first-fail input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ridelink/ridelink/internal/platform/middleware"
	requestutil "github.com/ridelink/ridelink/internal/platform/request"
	"github.com/ridelink/ridelink/internal/platform/respond"
	"github.com/ridelink/ridelink/internal/platform/sec"
	"github.com/ridelink/ridelink/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /signup         : Creates a new rider or driver account.
//   - POST /login          : Authenticates and returns a session JWT.
//   - POST /logout         : Revokes the presented token (gated).
//   - POST /delete-account : Soft-deletes the caller's account (gated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/signup", handler.signUp)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.logout)
		r.Post("/delete-account", handler.deleteAccount)
	})

	return router
}

// # Request Payloads

type signUpRequest struct {
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Gender    string `json:"gender"`
	DOB       string `json:"dob"`
	Role      string `json:"role"`
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type deleteAccountRequest struct {
	AccountID int64 `json:"account_id"`
}

// loginAccount is the trimmed account view embedded in the login response.
type loginAccount struct {
	ID        int64           `json:"id"`
	Mobile    string          `json:"mobile"`
	FirstName string          `json:"firstname"`
	Role      sec.AccountRole `json:"role"`
}

/*
SignUp handles the creation of a new account.

POST /api/v1/auth/signup

Description: Validates input (first violated rule only, declared order),
hashes the password, and persists one account row. Duplicate mobile or email
surfaces from the storage constraint as a 409.

Request:
  - Body: signUpRequest (Mobile, Email, Password, FirstName[, LastName, Gender, DOB, Role])

Response:
  - 201: Account: Created account, password hash excluded
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Mobile or Email already registered
*/
func (handler *Handler) signUp(writer http.ResponseWriter, request *http.Request) {
	var input signUpRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// Rule order is part of the API contract: clients see the first
	// violated rule only, in exactly this sequence.
	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldMobile, input.Mobile).
		Mobile(FieldMobile, input.Mobile).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, PasswordMinLen).
		Required(FieldFirstName, input.FirstName)

	if input.DOB != "" {
		validator.Date(FieldDOB, input.DOB)
	}
	if input.Role != "" {
		validator.OneOf(FieldRole, input.Role, string(sec.RoleRider), string(sec.RoleDriver))
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var dateOfBirth *time.Time
	if input.DOB != "" {
		parsed, _ := time.Parse("2006-01-02", input.DOB)
		dateOfBirth = &parsed
	}

	account, err := handler.authService.SignUp(request.Context(), SignUpInput{
		Mobile:      input.Mobile,
		Email:       input.Email,
		Password:    input.Password,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Gender:      input.Gender,
		DateOfBirth: dateOfBirth,
		Role:        sec.AccountRole(input.Role),
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Account created successfully.", account)
}

/*
Login authenticates an account and issues the session token.

POST /api/v1/auth/login

Description: Verifies credentials by mobile number and responds with a
24-hour HS256 session JWT.

Request:
  - Body: loginRequest (Mobile, Password)

Response:
  - 200: LoginSession: Token, token type, expiry, and trimmed account
  - 401: ErrUnauthorized: Generic invalid-credentials message
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldMobile, input.Mobile).
		Mobile(FieldMobile, input.Mobile).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Mobile:   input.Mobile,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Login successful.", map[string]any{
		FieldToken:     session.Token,
		FieldTokenType: "Bearer",
		FieldExpiresAt: session.ExpiresAt,
		FieldAccount: loginAccount{
			ID:        session.Account.ID,
			Mobile:    session.Account.Mobile,
			FirstName: session.Account.FirstName,
			Role:      session.Account.Role,
		},
	})
}

/*
Logout revokes the presented session token.

POST /api/v1/auth/logout

Description: Denylists the token's jti for its remaining lifetime. The
operation is idempotent and always succeeds for an authenticated caller.

Response:
  - 200: Success: Token revoked
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Logged out successfully.", nil)
}

/*
DeleteAccount soft-deletes the caller's account.

POST /api/v1/auth/delete-account

Description: Marks the account row as deleted and denylists the account id
so outstanding tokens stop verifying. Only the token's own account may be
deleted.

Request:
  - Body: deleteAccountRequest (AccountID)

Response:
  - 200: Success: Account deleted
  - 403: ErrForbidden: Target is a different account
  - 404: ErrNotFound: Account missing or already deleted
*/
func (handler *Handler) deleteAccount(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input deleteAccountRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.AccountID <= 0 {
		respond.Error(writer, request, validate.RequiredError(FieldAccountID, "Must be a positive numeric id."))
		return
	}

	if err := handler.authService.DeleteAccount(request.Context(), claims, input.AccountID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Account deleted successfully.", nil)
}
