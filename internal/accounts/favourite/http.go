// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package favourite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ridelink/ridelink/internal/platform/middleware"
	requestutil "github.com/ridelink/ridelink/internal/platform/request"
	"github.com/ridelink/ridelink/internal/platform/respond"
	"github.com/ridelink/ridelink/internal/platform/validate"
	"github.com/ridelink/ridelink/pkg/pagination"
)

// Handler implements the favourites HTTP endpoints.
type Handler struct {
	favouriteService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{favouriteService: service}
}

// Routes returns a [chi.Router] configured with favourite routes.
//
// # Endpoints
//   - GET    /      : Paginated list of the caller's favourites.
//   - POST   /      : Creates a favourite.
//   - PATCH  /{id}  : Updates an owned favourite.
//   - DELETE /{id}  : Soft-deletes an owned favourite.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

/*
List returns a page of the caller's favourites.

GET /api/v1/favourites

Response:
  - 200: []Favourite with pagination metadata
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	favourites, meta, err := handler.favouriteService.List(request.Context(), accountID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "Favourites retrieved successfully.", favourites, meta)
}

/*
Create persists a new favourite for the caller.

POST /api/v1/favourites

Request:
  - Body: createRequest (Title, Description)

Response:
  - 201: Favourite: Created entity
  - 400: ErrInvalidJSON: Missing title
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 120)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	favourite, err := handler.favouriteService.Create(request.Context(), accountID, CreateInput{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Favourite created successfully.", favourite)
}

/*
Update applies a partial update to an owned favourite.

PATCH /api/v1/favourites/{id}

Response:
  - 200: Favourite: Updated entity
  - 404: ErrNotFound: Unknown or foreign id
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.NumericID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	favourite, err := handler.favouriteService.Update(request.Context(), accountID, id, UpdateInput{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Favourite updated successfully.", favourite)
}

/*
Remove soft-deletes an owned favourite.

DELETE /api/v1/favourites/{id}

Response:
  - 200: Success: Favourite deleted
  - 404: ErrNotFound: Unknown or foreign id
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.NumericID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.favouriteService.Delete(request.Context(), accountID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Favourite deleted successfully.", nil)
}
