// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package order

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

// Handler implements the trip order HTTP endpoints.
type Handler struct {
	orderService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{orderService: service}
}

// Routes returns a [chi.Router] configured with order routes.
//
// # Endpoints
//   - POST /               : Records a trip order.
//   - GET  /               : Paginated list of the driver's orders.
//   - GET  /open           : The driver's still-running trips.
//   - GET  /{id}           : A single owned order.
//   - POST /{id}/complete  : Marks an owned order as finished.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleDriver))

	router.Post("/", handler.create)
	router.Get("/", handler.list)
	router.Get("/open", handler.listOpen)
	router.Get("/{id}", handler.get)
	router.Post("/{id}/complete", handler.complete)

	return router
}

type createRequest struct {
	OrderName string `json:"ordername"`
	CashType  string `json:"cashtype"`
	Amount    string `json:"amount"`
	Kilometer string `json:"kilometer"`
	Pickup    string `json:"pickup"`
	Dropoff   string `json:"dropoff"`
	Note      string `json:"note"`
	TripFare  string `json:"tripfare"`
}

/*
Create records a new trip order for the driver.

POST /api/v1/orders

Request:
  - Body: createRequest (all fields optional free-form text)

Response:
  - 201: Order: Created entity with no status (open)
  - 403: ErrForbidden: Caller is not a driver
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

	order, err := handler.orderService.Create(request.Context(), driverID, CreateInput{
		OrderName: input.OrderName,
		CashType:  input.CashType,
		Amount:    input.Amount,
		Kilometer: input.Kilometer,
		Pickup:    input.Pickup,
		Dropoff:   input.Dropoff,
		Note:      input.Note,
		TripFare:  input.TripFare,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Order created successfully.", order)
}

/*
List returns a page of the driver's orders.

GET /api/v1/orders

Response:
  - 200: []Order with pagination metadata
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	handler.listOrders(writer, request, false)
}

/*
ListOpen returns the driver's still-running trips (orders with no status).

GET /api/v1/orders/open

Response:
  - 200: []Order with pagination metadata
*/
func (handler *Handler) listOpen(writer http.ResponseWriter, request *http.Request) {
	handler.listOrders(writer, request, true)
}

// listOrders is the shared implementation of the two list endpoints.
func (handler *Handler) listOrders(writer http.ResponseWriter, request *http.Request, openOnly bool) {
	driverID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	orders, meta, err := handler.orderService.List(request.Context(), driverID, openOnly, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "Orders retrieved successfully.", orders, meta)
}

/*
Get returns a single owned order.

GET /api/v1/orders/{id}

Response:
  - 200: Order
  - 404: ErrNotFound: Unknown or foreign id
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	driverID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.NumericID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.orderService.Get(request.Context(), driverID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Order retrieved successfully.", order)
}

/*
Complete marks an owned order as finished.

POST /api/v1/orders/{id}/complete

Response:
  - 200: Order: Updated entity with completed status
  - 404: ErrNotFound: Unknown or foreign id
*/
func (handler *Handler) complete(writer http.ResponseWriter, request *http.Request) {
	driverID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.NumericID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.orderService.Complete(request.Context(), driverID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Order completed successfully.", order)
}
