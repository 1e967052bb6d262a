// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package profile

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ridelink/ridelink/internal/accounts/auth"
	"github.com/ridelink/ridelink/internal/platform/middleware"
	requestutil "github.com/ridelink/ridelink/internal/platform/request"
	"github.com/ridelink/ridelink/internal/platform/respond"
	"github.com/ridelink/ridelink/internal/platform/validate"
	"github.com/ridelink/ridelink/pkg/pointer"
)

// Handler implements the account profile HTTP endpoints.
type Handler struct {
	profileService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{profileService: service}
}

// Routes returns a [chi.Router] configured with profile routes.
//
// # Endpoints
//   - GET   /me : Returns the caller's account.
//   - PATCH /me : Partially updates the caller's account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/me", handler.me)
	router.Patch("/me", handler.update)

	return router
}

type updateRequest struct {
	Email      *string `json:"email"`
	FirstName  *string `json:"firstname"`
	LastName   *string `json:"lastname"`
	Gender     *string `json:"gender"`
	DOB        *string `json:"dob"`
	AvatarPath *string `json:"avatarpath"`
}

/*
Me returns the authenticated account.

GET /api/v1/account/me

Response:
  - 200: Account: Caller's account, password hash excluded
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.profileService.Get(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Account retrieved successfully.", account)
}

/*
Update partially updates the authenticated account's profile.

PATCH /api/v1/account/me

Description: Applies only the provided fields. The mobile number is not
accepted here; it is immutable after creation.

Request:
  - Body: updateRequest (Email, FirstName, LastName, Gender, DOB, AvatarPath, all optional)

Response:
  - 200: Account: Updated account
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.Email != nil {
		validator.Required(auth.FieldEmail, pointer.Val(input.Email)).
			Email(auth.FieldEmail, pointer.Val(input.Email))
	}
	if input.FirstName != nil {
		validator.Required(auth.FieldFirstName, pointer.Val(input.FirstName))
	}
	if input.DOB != nil {
		validator.Date(auth.FieldDOB, pointer.Val(input.DOB))
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var dateOfBirth *time.Time
	if input.DOB != nil {
		parsed, _ := time.Parse("2006-01-02", pointer.Val(input.DOB))
		dateOfBirth = &parsed
	}

	account, err := handler.profileService.Update(request.Context(), accountID, UpdateInput{
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Gender:      input.Gender,
		DateOfBirth: dateOfBirth,
		AvatarPath:  input.AvatarPath,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Account updated successfully.", account)
}
