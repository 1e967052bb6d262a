// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package vehicle

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ridelink/ridelink/internal/platform/middleware"
	requestutil "github.com/ridelink/ridelink/internal/platform/request"
	"github.com/ridelink/ridelink/internal/platform/respond"
	"github.com/ridelink/ridelink/internal/platform/sec"
	"github.com/ridelink/ridelink/internal/platform/validate"
	"github.com/ridelink/ridelink/pkg/pagination"
)

// Handler implements the vehicle HTTP endpoints.
type Handler struct {
	vehicleService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{vehicleService: service}
}

// Routes returns a [chi.Router] configured with vehicle routes.
//
// The whole surface is driver-only: RequireRole implies authentication.
//
// # Endpoints
//   - GET  / : Paginated list of the driver's vehicles.
//   - POST / : Registers a vehicle.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleDriver))

	router.Get("/", handler.list)
	router.Post("/", handler.create)

	return router
}

type createRequest struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	ModelYear    string `json:"modelyear"`
	LicensePlate string `json:"licenseplate"`
	Color        string `json:"color"`
	BookingType  string `json:"bookingtype"`
}

/*
List returns a page of the driver's vehicles.

GET /api/v1/vehicles

Response:
  - 200: []Vehicle with pagination metadata
  - 403: ErrForbidden: Caller is not a driver
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	driverID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	vehicles, meta, err := handler.vehicleService.List(request.Context(), driverID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "Vehicles retrieved successfully.", vehicles, meta)
}

/*
Create registers a new vehicle for the driver.

POST /api/v1/vehicles

Request:
  - Body: createRequest (Brand, Model, ModelYear, LicensePlate, BookingType[, Color])

Response:
  - 201: Vehicle: Created entity
  - 400: ErrInvalidJSON: Bad input or validation failure
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
	validator.Required(FieldBrand, input.Brand).
		Required(FieldModel, input.Model).
		Required(FieldModelYear, input.ModelYear).
		Required(FieldLicensePlate, input.LicensePlate).
		Required(FieldBookingType, input.BookingType)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	vehicle, err := handler.vehicleService.Create(request.Context(), driverID, CreateInput{
		Brand:        input.Brand,
		Model:        input.Model,
		ModelYear:    input.ModelYear,
		LicensePlate: input.LicensePlate,
		Color:        input.Color,
		BookingType:  input.BookingType,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Vehicle registered successfully.", vehicle)
}
