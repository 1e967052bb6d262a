// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package document

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ridelink/ridelink/internal/platform/middleware"
	requestutil "github.com/ridelink/ridelink/internal/platform/request"
	"github.com/ridelink/ridelink/internal/platform/respond"
	"github.com/ridelink/ridelink/internal/platform/sec"
	"github.com/ridelink/ridelink/internal/platform/validate"
	"github.com/ridelink/ridelink/pkg/pagination"
)

// Handler implements the document HTTP endpoints.
type Handler struct {
	documentService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{documentService: service}
}

// Routes returns a [chi.Router] configured with document routes.
//
// # Endpoints
//   - GET  / : Paginated list of the driver's documents.
//   - POST / : Registers a document.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleDriver))

	router.Get("/", handler.list)
	router.Post("/", handler.create)

	return router
}

type createRequest struct {
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	CardNumber  string `json:"cardnumber"`
	ExpiredDate string `json:"expireddate"`
}

/*
List returns a page of the driver's documents.

GET /api/v1/documents

Response:
  - 200: []Document with pagination metadata
  - 403: ErrForbidden: Caller is not a driver
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	driverID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	documents, meta, err := handler.documentService.List(request.Context(), driverID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "Documents retrieved successfully.", documents, meta)
}

/*
Create registers a new identity document for the driver.

POST /api/v1/documents

Request:
  - Body: createRequest (CardNumber[, Name, Photo, ExpiredDate])

Response:
  - 201: Document: Created entity
  - 400: ErrInvalidJSON: Missing card number or bad date
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	driverID, err := requestutil.RequiredAccountID(request)
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
	validator.Required(FieldCardNumber, input.CardNumber)
	if input.ExpiredDate != "" {
		validator.Date(FieldExpiredDate, input.ExpiredDate)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var expiredDate *time.Time
	if input.ExpiredDate != "" {
		parsed, _ := time.Parse("2006-01-02", input.ExpiredDate)
		expiredDate = &parsed
	}

	document, err := handler.documentService.Create(request.Context(), driverID, CreateInput{
		Name:        input.Name,
		Photo:       input.Photo,
		CardNumber:  input.CardNumber,
		ExpiredDate: expiredDate,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Document registered successfully.", document)
}
